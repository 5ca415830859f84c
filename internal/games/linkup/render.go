package linkup

import (
	"fmt"

	"github.com/vovakirdan/tui-linkup/internal/core"
	"github.com/vovakirdan/tui-linkup/internal/games/linkup/board"
)

// Screen layout constants
const (
	cellW    = 4 // Screen columns per grid cell
	hudRows  = 3
	boardTop = hudRows + 1
)

// Visual characters for rendering
const (
	TileGlyph     = '█'
	EmptyGlyph    = '·'
	EndpointGlyph = '●'
)

// tileColors maps board colors to screen colors.
var tileColors = map[board.Color]core.Color{
	board.ColorRed:     core.ColorRed,
	board.ColorGreen:   core.ColorGreen,
	board.ColorBlue:    core.ColorBlue,
	board.ColorYellow:  core.ColorYellow,
	board.ColorMagenta: core.ColorMagenta,
	board.ColorCyan:    core.ColorCyan,
}

// geometry places a grid, border ring included, on the screen.
type geometry struct {
	X, Y   int // Screen position of grid cell (0, 0)
	Width  int // Grid width in cells, border included
	Height int
}

func newGeometry(screenW int, g *board.Grid) geometry {
	geo := geometry{Y: boardTop, Width: g.Width(), Height: g.Height()}
	geo.X = (screenW - geo.Width*cellW) / 2
	return geo
}

// cellX returns the left screen column of a grid cell.
func (geo geometry) cellX(c board.Coord) int {
	return geo.X + c.Col*cellW
}

// cellY returns the screen row of a grid cell.
func (geo geometry) cellY(c board.Coord) int {
	return geo.Y + c.Row
}

// bounds is the screen area covered by the grid.
func (geo geometry) bounds() core.Rect {
	return core.NewRect(geo.X, geo.Y, geo.Width*cellW, geo.Height)
}

// cellAt maps a screen position to the grid cell under it.
func (geo geometry) cellAt(x, y int) (board.Coord, bool) {
	if geo.Width == 0 || !geo.bounds().Contains(x, y) {
		return board.Coord{}, false
	}
	return board.C(y-geo.Y, (x-geo.X)/cellW), true
}

// minScreen returns the terminal size needed to draw a grid.
func minScreen(g *board.Grid) (w, h int) {
	return g.Width()*cellW + 2, boardTop + g.Height() + 3
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.snap.State == StateConfiguring {
		g.renderSetup(dst)
		return
	}

	needW, needH := minScreen(g.snap.Grid)
	if dst.Width() < needW || dst.Height() < needH {
		g.geo = geometry{}
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	g.geo = newGeometry(dst.Width(), g.snap.Grid)

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFlash(dst)

	if g.snap.State == StateOver {
		g.renderOverlay(dst)
		return
	}
	dst.DrawTextCenteredWithColor(dst.Height()-1, g.helpLine(), core.ColorGray)
}

// renderSetup draws the board size selector.
func (g *Game) renderSetup(dst *core.Screen) {
	g.geo = geometry{}
	mid := dst.Height() / 2

	dst.DrawTextCenteredWithColor(mid-4, "L I N K   U P", core.ColorBrightYellow)
	dst.DrawTextCenteredWithColor(mid-3, "connect matching tiles with at most two turns", core.ColorGray)

	if g.layout != nil {
		dst.DrawTextCentered(mid-1, fmt.Sprintf("Layout: %s (%dx%d)", g.layoutName, g.layout.Rows, g.layout.Cols))
	} else {
		size := g.snap.Size
		dst.DrawTextCentered(mid-1, fmt.Sprintf("Board size:  ◀ %d x %d ▶", size, size))
	}
	dst.DrawTextCentered(mid, fmt.Sprintf("Time limit:  %ds", g.cfg.Timer.TimeLimit))
	if g.cfg.Difficulty != "" {
		dst.DrawTextCenteredWithColor(mid+1, fmt.Sprintf("Difficulty:  %s", g.cfg.Difficulty), core.ColorGray)
	}

	if g.layoutErr != "" {
		dst.DrawTextCenteredWithColor(mid+3, g.layoutErr, core.ColorRed)
	}

	help := "←/→ size  •  Enter start  •  q quit"
	if g.layout != nil {
		help = "Enter start  •  q quit"
	}
	dst.DrawTextCenteredWithColor(dst.Height()-1, help, core.ColorGray)
}

// renderHUD draws score, timer and status lines.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.snap

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCenteredWithColor(0, "LINK UP", core.ColorBrightYellow)

	timeText := fmt.Sprintf("Time: %ds", snap.TimeLeft)
	timeColor := core.ColorDefault
	if snap.TimeLeft <= 5 {
		timeColor = core.ColorRed
	}
	dst.DrawTextWithColor(dst.Width()-core.TextWidth(timeText)-1, 0, timeText, timeColor)

	dst.DrawText(1, 1, fmt.Sprintf("Tiles: %d", snap.Grid.OccupiedCount()))
	sizeText := fmt.Sprintf("%dx%d", snap.Grid.Rows, snap.Grid.Cols)
	dst.DrawTextWithColor(dst.Width()-core.TextWidth(sizeText)-1, 1, sizeText, core.ColorGray)
	if snap.Stuck {
		dst.DrawTextCenteredWithColor(1, "No moves left! Press b to give up", core.ColorRed)
	}

	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

// renderBoard draws the frame, tiles, cursor and highlights.
func (g *Game) renderBoard(dst *core.Screen) {
	snap := g.snap
	geo := g.geo

	b := geo.bounds()
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2), core.ColorGray)

	hinted := func(c board.Coord) bool {
		return g.hintFrames > 0 && (c == g.hint[0] || c == g.hint[1])
	}

	for row := 1; row <= snap.Grid.Rows; row++ {
		for col := 1; col <= snap.Grid.Cols; col++ {
			c := board.C(row, col)
			x, y := geo.cellX(c), geo.cellY(c)

			cell := snap.Grid.Get(c)
			if !cell.Occupied {
				dst.SetWithColor(x+1, y, EmptyGlyph, core.ColorGray)
			} else {
				attr := core.AttrNone
				selected := snap.Selection != nil && *snap.Selection == c
				if selected {
					attr = core.AttrBold | core.AttrReverse
					dst.SetWithColor(x, y, '[', core.ColorBrightWhite)
					dst.SetWithColor(x+3, y, ']', core.ColorBrightWhite)
				} else if hinted(c) {
					attr = core.AttrReverse
				}
				tile := core.Cell{Rune: TileGlyph, Color: tileColors[cell.Color], Attr: attr}
				dst.SetCell(x+1, y, tile)
				dst.SetCell(x+2, y, tile)
			}

			if c == g.cursor && snap.State == StatePlaying {
				dst.SetWithColor(x, y, '<', core.ColorBrightWhite)
				dst.SetWithColor(x+3, y, '>', core.ColorBrightWhite)
			}
		}
	}
}

// renderFlash draws the path of the last match while it is fading out.
func (g *Game) renderFlash(dst *core.Screen) {
	if len(g.flash) < 2 {
		return
	}
	color := tileColors[g.flashColor]
	if g.flashFrames%2 == 1 {
		color = core.ColorBrightYellow
	}

	steps := unitSteps(g.flash)
	for i, c := range steps {
		var links []board.Dir
		if i > 0 {
			links = append(links, dirTo(c, steps[i-1]))
		}
		if i < len(steps)-1 {
			links = append(links, dirTo(c, steps[i+1]))
		}

		x, y := g.geo.cellX(c), g.geo.cellY(c)
		anchor := x + 1

		glyph := EndpointGlyph
		if len(links) == 2 {
			glyph = pathGlyph(links[0], links[1])
		}
		dst.SetWithColor(anchor, y, glyph, color)

		for _, d := range links {
			switch d {
			case board.DirLeft:
				dst.SetWithColor(x, y, '─', color)
			case board.DirRight:
				dst.DrawHLine(anchor+1, y, cellW-2, '─', color)
			}
		}
	}
}

// unitSteps expands waypoints into every cell the path crosses.
func unitSteps(p board.Path) []board.Coord {
	out := []board.Coord{p[0]}
	for i := 1; i < len(p); i++ {
		cur := out[len(out)-1]
		for cur != p[i] {
			cur = cur.Step(dirTo(cur, p[i]))
			out = append(out, cur)
		}
	}
	return out
}

// dirTo returns the direction from a toward an aligned point b.
func dirTo(a, b board.Coord) board.Dir {
	switch {
	case b.Row < a.Row:
		return board.DirUp
	case b.Row > a.Row:
		return board.DirDown
	case b.Col < a.Col:
		return board.DirLeft
	default:
		return board.DirRight
	}
}

// pathGlyph returns the box-drawing rune joining two directions.
func pathGlyph(a, b board.Dir) rune {
	has := func(d board.Dir) bool { return a == d || b == d }
	switch {
	case has(board.DirLeft) && has(board.DirRight):
		return '─'
	case has(board.DirUp) && has(board.DirDown):
		return '│'
	case has(board.DirDown) && has(board.DirRight):
		return '┌'
	case has(board.DirDown) && has(board.DirLeft):
		return '┐'
	case has(board.DirUp) && has(board.DirRight):
		return '└'
	default:
		return '┘'
	}
}

func (g *Game) helpLine() string {
	if g.cfg.Gameplay.Hints {
		return "arrows move  •  Enter select  •  h hint  •  b give up  •  q quit"
	}
	return "arrows move  •  Enter select  •  b give up  •  q quit"
}

// renderOverlay draws the game-over box.
func (g *Game) renderOverlay(dst *core.Screen) {
	var title string
	switch g.outcome {
	case outcomeCleared:
		title = "BOARD CLEARED!"
	case outcomeForfeit:
		title = "GAVE UP"
	default:
		title = "TIME'S UP"
	}

	g.drawCenteredBox(dst, title,
		fmt.Sprintf("Score: %d  |  Time used: %ds", g.snap.Score, g.snap.Elapsed),
		"r restart  •  b back  •  q quit",
	)
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	boxW := core.TextWidth(title)
	for _, l := range lines {
		boxW = core.Max(boxW, core.TextWidth(l))
	}
	boxW += 4
	boxH := 3 + len(lines)*2

	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	titleX := box.X + (boxW-core.TextWidth(title))/2
	dst.DrawTextStyled(titleX, box.Y+1, title, core.ColorBrightYellow, core.AttrBold)

	for i, l := range lines {
		x := box.X + (boxW-core.TextWidth(l))/2
		dst.DrawText(x, box.Y+3+i*2, l)
	}
}
