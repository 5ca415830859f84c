package board

import (
	"math/rand"
	"testing"
)

func TestNewGridBorder(t *testing.T) {
	g := NewGrid(3, 4)

	if g.Height() != 5 || g.Width() != 6 {
		t.Fatalf("size = %dx%d, want 5x6", g.Height(), g.Width())
	}
	if len(g.Cells) != 30 {
		t.Errorf("len(Cells) = %d, want 30", len(g.Cells))
	}

	tests := []struct {
		c        Coord
		inBounds bool
		interior bool
	}{
		{C(0, 0), true, false},
		{C(1, 1), true, true},
		{C(3, 4), true, true},
		{C(4, 5), true, false},
		{C(1, 5), true, false},
		{C(5, 0), false, false},
		{C(-1, 2), false, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.c); got != tt.inBounds {
			t.Errorf("InBounds(%v) = %v, want %v", tt.c, got, tt.inBounds)
		}
		if got := g.IsInterior(tt.c); got != tt.interior {
			t.Errorf("IsInterior(%v) = %v, want %v", tt.c, got, tt.interior)
		}
	}
}

func TestPlaceAndRemove(t *testing.T) {
	g := NewGrid(2, 2)

	g.Place(C(0, 1), ColorRed)
	if g.Occupied(C(0, 1)) {
		t.Error("placing on the border ring should be ignored")
	}

	g.Place(C(1, 1), ColorBlue)
	if cell := g.Get(C(1, 1)); !cell.Occupied || cell.Color != ColorBlue {
		t.Errorf("Get(1,1) = %+v, want blue tile", cell)
	}
	if g.OccupiedCount() != 1 {
		t.Errorf("OccupiedCount = %d, want 1", g.OccupiedCount())
	}

	g.Remove(C(1, 1))
	g.Remove(C(1, 1))
	if g.Occupied(C(1, 1)) {
		t.Error("tile should be removed")
	}
	if !g.IsWin() || !IsWin(g) {
		t.Error("empty board should be a win")
	}
}

func TestCloneIndependent(t *testing.T) {
	g := MustFromRows("RG", "GR")
	clone := g.Clone()

	if !g.Equal(clone) {
		t.Fatal("clone should equal original")
	}

	clone.Remove(C(1, 1))
	if !g.Occupied(C(1, 1)) {
		t.Error("removing from clone should not affect the original")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after modifying the clone")
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([]string{"RG.", "b"})
	if err != nil {
		t.Fatalf("FromRows returned error: %v", err)
	}
	if g.Rows != 2 || g.Cols != 3 {
		t.Fatalf("size = %dx%d, want 2x3", g.Rows, g.Cols)
	}
	if got, want := g.String(), "RG.\nB.."; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if _, err := FromRows([]string{"RX"}); err == nil {
		t.Error("expected error for unknown tile char")
	}
}

func TestGenerateFillsBoard(t *testing.T) {
	tests := []struct {
		rows, cols int
		empty      int
	}{
		{2, 2, 0},
		{4, 4, 0},
		{5, 5, 1},
		{3, 5, 1},
		{12, 12, 0},
		{1, 1, 1},
	}

	for _, tt := range tests {
		rng := rand.New(rand.NewSource(42))
		g := Generate(tt.rows, tt.cols, rng)

		total := tt.rows * tt.cols
		if got := g.OccupiedCount(); got != total-tt.empty {
			t.Errorf("%dx%d: OccupiedCount = %d, want %d", tt.rows, tt.cols, got, total-tt.empty)
		}

		for color, n := range g.CountByColor() {
			if n%2 != 0 {
				t.Errorf("%dx%d: color %v appears %d times, want even", tt.rows, tt.cols, color, n)
			}
		}

		for r := 0; r < g.Height(); r++ {
			for c := 0; c < g.Width(); c++ {
				if !g.IsInterior(C(r, c)) && g.Occupied(C(r, c)) {
					t.Errorf("%dx%d: border cell (%d,%d) is occupied", tt.rows, tt.cols, r, c)
				}
			}
		}
	}
}

func TestGeneratePaletteCycle(t *testing.T) {
	g := Generate(4, 4, rand.New(rand.NewSource(7)))
	counts := g.CountByColor()

	// 8 pairs over 6 colors: the first two colors get a second pair.
	want := map[Color]int{
		ColorRed:     4,
		ColorGreen:   4,
		ColorBlue:    2,
		ColorYellow:  2,
		ColorMagenta: 2,
		ColorCyan:    2,
	}
	for color, n := range want {
		if counts[color] != n {
			t.Errorf("count[%v] = %d, want %d", color, counts[color], n)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(6, 6, rand.New(rand.NewSource(99)))
	b := Generate(6, 6, rand.New(rand.NewSource(99)))
	if !a.Equal(b) {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", a, b)
	}
}
