package linkup

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/vovakirdan/tui-linkup/internal/config"
	"github.com/vovakirdan/tui-linkup/internal/core"
	"github.com/vovakirdan/tui-linkup/internal/games/linkup/board"
	"github.com/vovakirdan/tui-linkup/internal/games/linkup/layouts"
	"github.com/vovakirdan/tui-linkup/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "linkup"

// hintSeconds is how long a hinted pair stays highlighted.
const hintSeconds = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// Overrides set via CLI; zero means "use the config value".
var (
	sizeOverride int
	timeOverride int
	layoutRef    string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetBoardSize overrides the initial board size.
func SetBoardSize(size int) {
	sizeOverride = size
}

// SetTimeLimit overrides the countdown in seconds.
func SetTimeLimit(secs int) {
	timeOverride = secs
}

// SetLayout selects a fixed board: a YAML file path or a built-in layout ID.
func SetLayout(ref string) {
	layoutRef = ref
}

// outcome records why the last game ended.
type outcome int

const (
	outcomeNone outcome = iota
	outcomeCleared
	outcomeTimeUp
	outcomeForfeit
)

// Game adapts a Session to the platform game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.LinkupConfig
	session *Session
	snap    Snapshot

	layout     *board.Grid
	layoutName string
	layoutErr  string

	cursor  board.Coord
	frames  int // Frames since the last one-second tick
	outcome outcome

	hint       [2]board.Coord
	hintFrames int

	flash       board.Path
	flashColor  board.Color
	flashFrames int

	geo geometry // Board placement from the last Render, used for mouse hits
}

// New creates a new Link Up game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Link Up"
}

// Reset loads the configuration and returns to the size selector.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadLinkup(configPath)
	if err != nil {
		cfg = config.DefaultLinkupConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyLinkupPreset(&cfg, difficultyPreset)
	}
	if sizeOverride > 0 {
		cfg.Board.DefaultSize = sizeOverride
	}
	if timeOverride > 0 {
		cfg.Timer.TimeLimit = timeOverride
	}
	cfg.Validate()
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.session = NewSession(SettingsFromConfig(cfg), rand.New(rand.NewSource(seed)))

	g.layout, g.layoutName, g.layoutErr = nil, "", ""
	if layoutRef != "" {
		g.loadLayout(layoutRef)
	}

	g.resetRound()
	g.refresh()
}

// loadLayout resolves ref as a file first, then as a built-in ID.
// Failures fall back to generated boards and are shown on the setup screen.
func (g *Game) loadLayout(ref string) {
	var (
		l   layouts.Layout
		err error
	)
	if _, statErr := os.Stat(ref); statErr == nil {
		l, err = layouts.LoadFile(ref)
	} else {
		l, err = layouts.Builtin().LoadByID(ref)
	}
	if err == nil {
		err = l.Validate()
	}
	var grid *board.Grid
	if err == nil {
		grid, err = l.ToGrid()
	}
	if err != nil {
		g.layoutErr = fmt.Sprintf("layout %q unavailable, using random boards", ref)
		return
	}
	g.layout = grid
	g.layoutName = l.Name
}

// resetRound clears per-game adapter state.
func (g *Game) resetRound() {
	g.cursor = board.C(1, 1)
	g.frames = 0
	g.outcome = outcomeNone
	g.hintFrames = 0
	g.flash = nil
	g.flashFrames = 0
}

func (g *Game) refresh() {
	g.snap = g.session.Snapshot()
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.flashFrames > 0 {
		g.flashFrames--
		if g.flashFrames == 0 {
			g.flash = nil
		}
	}
	if g.hintFrames > 0 {
		g.hintFrames--
	}

	switch g.session.State() {
	case StateConfiguring:
		g.stepConfiguring(in)
	case StatePlaying:
		g.stepPlaying(in)
	case StateOver:
		g.stepOver(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepConfiguring(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft), in.Has(core.ActionDown):
		g.session.DecreaseSize()
	case in.Has(core.ActionRight), in.Has(core.ActionUp):
		g.session.IncreaseSize()
	case in.Has(core.ActionSelect), in.Has(core.ActionClick):
		g.start()
		return
	default:
		return
	}
	g.refresh()
}

func (g *Game) start() {
	g.resetRound()
	if g.layout != nil {
		g.session.StartWithGrid(g.layout)
	} else {
		g.session.Start()
	}
	g.refresh()
	g.checkOver()
}

func (g *Game) stepPlaying(in core.InputFrame) {
	changed := false

	if in.Has(core.ActionUp) {
		g.moveCursor(-1, 0)
	}
	if in.Has(core.ActionDown) {
		g.moveCursor(1, 0)
	}
	if in.Has(core.ActionLeft) {
		g.moveCursor(0, -1)
	}
	if in.Has(core.ActionRight) {
		g.moveCursor(0, 1)
	}

	if p, ok := in.Click(); ok {
		if c, hit := g.geo.cellAt(p.X, p.Y); hit {
			g.cursor = c
			g.selectTile(c)
			changed = true
		}
	}
	if in.Has(core.ActionSelect) {
		g.selectTile(g.cursor)
		changed = true
	}

	if in.Has(core.ActionHint) && g.cfg.Gameplay.Hints {
		if a, b, ok := g.session.Hint(); ok {
			g.hint = [2]board.Coord{a, b}
			g.hintFrames = hintSeconds * g.runtime.TickRate
		}
	}

	if in.Has(core.ActionBack) {
		if g.session.Forfeit() == nil {
			g.outcome = outcomeForfeit
		}
		g.refresh()
		return
	}

	if g.session.State() == StatePlaying {
		g.frames++
		if g.frames >= g.runtime.TickRate {
			g.frames = 0
			g.session.Tick()
			changed = true
		}
	}

	if changed {
		g.refresh()
		g.checkOver()
	}
}

func (g *Game) moveCursor(dr, dc int) {
	if g.snap.Grid == nil {
		return
	}
	g.cursor = board.C(
		core.Clamp(g.cursor.Row+dr, 1, g.snap.Grid.Rows),
		core.Clamp(g.cursor.Col+dc, 1, g.snap.Grid.Cols),
	)
}

func (g *Game) selectTile(c board.Coord) {
	color := g.snap.Grid.Get(c).Color

	res := g.session.SelectTile(c)
	if !res.Matched {
		return
	}

	g.hintFrames = 0
	g.flash = res.Path
	g.flashColor = color
	g.flashFrames = g.cfg.Display.PathFlashMs * g.runtime.TickRate / 1000
	if g.flashFrames == 0 {
		g.flash = nil
	}
}

// checkOver records the outcome once the session has ended.
func (g *Game) checkOver() {
	if g.snap.State != StateOver || g.outcome != outcomeNone {
		return
	}
	if g.snap.Won {
		g.outcome = outcomeCleared
	} else {
		g.outcome = outcomeTimeUp
	}
}

func (g *Game) stepOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		g.resetRound()
		if g.layout != nil {
			g.session.Back()
			g.session.StartWithGrid(g.layout)
		} else {
			g.session.Restart(0)
		}
		g.refresh()
		g.checkOver()
	case in.Has(core.ActionBack):
		g.session.Back()
		g.resetRound()
		g.refresh()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.State == StateOver,
		Paused:   g.snap.State == StateConfiguring,
	}
}

// Result describes the finished game for the scoreboard.
func (g *Game) Result() core.Result {
	r := core.Result{
		Score:       g.snap.Score,
		Won:         g.snap.Won,
		ElapsedSecs: g.snap.Elapsed,
	}
	if g.snap.Grid != nil {
		r.Rows = g.snap.Grid.Rows
		r.Cols = g.snap.Grid.Cols
	}
	return r
}

// Snapshot returns the session snapshot as of the last frame.
func (g *Game) Snapshot() Snapshot {
	return g.snap
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
