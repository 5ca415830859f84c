package board

import (
	"fmt"
	"math/rand"
	"strings"
)

// Generate builds a fresh rows x cols board.
//
// When the cell count is odd, one uniformly chosen interior cell is reserved
// as empty before pairing. The remaining cells receive count/2 color pairs,
// cycling through the palette, so a color may appear more than twice on
// larger boards. Labels are shuffled with Fisher-Yates and placed in scan
// order, skipping the reserved cell.
//
// Every tile has at least one same-colored partner; full solvability is not
// guaranteed.
func Generate(rows, cols int, rng *rand.Rand) *Grid {
	g := NewGrid(rows, cols)
	total := g.Rows * g.Cols
	if total == 0 {
		return g
	}

	emptyIndex := -1
	if total%2 == 1 {
		emptyIndex = rng.Intn(total)
	}

	usable := total - total%2
	labels := make([]Color, 0, usable)
	for i := 0; i < usable/2; i++ {
		color := Color(i % PaletteSize)
		labels = append(labels, color, color)
	}

	for i := len(labels) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		labels[i], labels[j] = labels[j], labels[i]
	}

	next := 0
	for index := 0; index < total; index++ {
		if index == emptyIndex {
			continue
		}
		g.Place(C(index/g.Cols+1, index%g.Cols+1), labels[next])
		next++
	}

	return g
}

// FromRows builds a grid from rows of color chars, '.' marking empty cells.
// The interior width is the longest row; shorter rows are padded with empty cells.
func FromRows(rows []string) (*Grid, error) {
	cols := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}

	g := NewGrid(len(rows), cols)
	for r, row := range rows {
		for c, ch := range []rune(row) {
			if ch == '.' || ch == ' ' {
				continue
			}
			color, ok := ParseColor(strings.ToLower(string(ch)))
			if !ok {
				return nil, fmt.Errorf("board: unknown tile %q at row %d col %d", ch, r+1, c+1)
			}
			g.Place(C(r+1, c+1), color)
		}
	}
	return g, nil
}

// MustFromRows is like FromRows but panics on malformed input.
// Intended for fixed boards in tests and built-in layouts.
func MustFromRows(rows ...string) *Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}
