package board

// Grid is the board: an interior of Rows x Cols tiles surrounded by a
// one-cell border ring that is always empty and free to path through.
// Cells are stored in row-major order over the full (Rows+2) x (Cols+2) area.
type Grid struct {
	Rows  int    // Interior rows
	Cols  int    // Interior columns
	Cells []Cell // Flat array of cells, length (Rows+2)*(Cols+2)
}

// NewGrid creates an empty grid with the given interior dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, (rows+2)*(cols+2)),
	}
}

// Height returns the full grid height including the border ring.
func (g *Grid) Height() int {
	return g.Rows + 2
}

// Width returns the full grid width including the border ring.
func (g *Grid) Width() int {
	return g.Cols + 2
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.Width() + c.Col
}

// InBounds returns true if the coordinate addresses any cell, border included.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height() && c.Col >= 0 && c.Col < g.Width()
}

// IsInterior returns true if the coordinate lies in the playable region.
func (g *Grid) IsInterior(c Coord) bool {
	return c.Row >= 1 && c.Row <= g.Rows && c.Col >= 1 && c.Col <= g.Cols
}

// Get returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.Cells[g.index(c)]
}

// Place puts a tile of the given color on an interior cell.
// Border and out-of-bounds coordinates are ignored.
func (g *Grid) Place(c Coord, color Color) {
	if g.IsInterior(c) {
		g.Cells[g.index(c)] = Tile(color)
	}
}

// Remove empties the cell at the given coordinate.
// Removing an empty, border or out-of-bounds cell does nothing.
func (g *Grid) Remove(c Coord) {
	if !g.IsInterior(c) {
		return
	}
	g.Cells[g.index(c)] = Empty()
}

// Occupied reports whether the cell at c holds a tile.
func (g *Grid) Occupied(c Coord) bool {
	return g.Get(c).Occupied
}

// OccupiedCount returns the number of tiles left on the board.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Occupied {
			count++
		}
	}
	return count
}

// IsWin returns true once every interior cell is empty.
func (g *Grid) IsWin() bool {
	for r := 1; r <= g.Rows; r++ {
		for c := 1; c <= g.Cols; c++ {
			if g.Cells[g.index(C(r, c))].Occupied {
				return false
			}
		}
	}
	return true
}

// IsWin reports whether the grid has been cleared.
func IsWin(g *Grid) bool {
	return g.IsWin()
}

// OccupiedCoords returns all tile coordinates in scan order.
func (g *Grid) OccupiedCoords() []Coord {
	coords := make([]Coord, 0)
	for r := 1; r <= g.Rows; r++ {
		for c := 1; c <= g.Cols; c++ {
			if g.Occupied(C(r, c)) {
				coords = append(coords, C(r, c))
			}
		}
	}
	return coords
}

// CountByColor returns the number of tiles per color.
func (g *Grid) CountByColor() map[Color]int {
	counts := make(map[Color]int)
	for _, cell := range g.Cells {
		if cell.Occupied {
			counts[cell.Color]++
		}
	}
	return counts
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// String renders the interior as rows of color chars, '.' for empty cells.
func (g *Grid) String() string {
	buf := make([]rune, 0, g.Rows*(g.Cols+1))
	for r := 1; r <= g.Rows; r++ {
		if r > 1 {
			buf = append(buf, '\n')
		}
		for c := 1; c <= g.Cols; c++ {
			cell := g.Get(C(r, c))
			if cell.Occupied {
				buf = append(buf, cell.Color.Char())
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
