package linkup

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-linkup/internal/games/linkup/board"
)

func newTestSession(t *testing.T, settings Settings) *Session {
	t.Helper()
	return NewSession(settings, rand.New(rand.NewSource(1)))
}

func startWith(t *testing.T, rows ...string) *Session {
	t.Helper()
	s := newTestSession(t, DefaultSettings())
	if err := s.StartWithGrid(board.MustFromRows(rows...)); err != nil {
		t.Fatalf("StartWithGrid failed: %v", err)
	}
	return s
}

func ignored(res SelectResult) bool {
	return !res.Selected && !res.Deselected && !res.Matched && !res.Won && len(res.Path) == 0
}

func selectPair(s *Session, a, b board.Coord) SelectResult {
	s.SelectTile(a)
	return s.SelectTile(b)
}

func TestTwoByTwoWin(t *testing.T) {
	s := startWith(t, "RR", "GG")

	res := selectPair(s, board.C(1, 1), board.C(1, 2))
	if !res.Matched || res.Won {
		t.Fatalf("first pair: %+v, want matched but not won", res)
	}
	if s.State() != StatePlaying {
		t.Fatalf("state = %v after first pair, want playing", s.State())
	}

	res = selectPair(s, board.C(2, 1), board.C(2, 2))
	if !res.Matched || !res.Won {
		t.Fatalf("second pair: %+v, want matched and won", res)
	}

	snap := s.Snapshot()
	if snap.State != StateOver || !snap.Won {
		t.Errorf("snapshot = %v won=%v, want over and won", snap.State, snap.Won)
	}
	if snap.Score != 2 {
		t.Errorf("Score = %d, want 2", snap.Score)
	}
}

func TestFourByFourSolvableOrder(t *testing.T) {
	s := startWith(t, "RRGG", "BBYY", "MMCC", "RRGG")

	for r := 1; r <= 4; r++ {
		for _, c := range []int{1, 3} {
			res := selectPair(s, board.C(r, c), board.C(r, c+1))
			if !res.Matched {
				t.Fatalf("pair (%d,%d)-(%d,%d) did not match", r, c, r, c+1)
			}
		}
	}

	snap := s.Snapshot()
	if snap.State != StateOver || !snap.Won || snap.Score != 8 {
		t.Errorf("snapshot = state %v won %v score %d, want over, won, 8", snap.State, snap.Won, snap.Score)
	}
	if snap.Grid.OccupiedCount() != 0 {
		t.Errorf("OccupiedCount = %d, want 0", snap.Grid.OccupiedCount())
	}
}

func TestCountdownExpires(t *testing.T) {
	settings := DefaultSettings()
	settings.TimeLimit = 30
	s := newTestSession(t, settings)
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	var res TickResult
	for i := 0; i < 31; i++ {
		res = s.Tick()
	}

	if !res.Over || res.TimeLeft != 0 {
		t.Errorf("after 31 ticks: %+v, want over with 0 left", res)
	}

	snap := s.Snapshot()
	if snap.State != StateOver || snap.Won {
		t.Errorf("state = %v won = %v, want over and lost", snap.State, snap.Won)
	}
	if snap.Elapsed != 30 {
		t.Errorf("Elapsed = %d, want 30", snap.Elapsed)
	}
}

func TestTickOutsidePlaying(t *testing.T) {
	s := newTestSession(t, DefaultSettings())

	res := s.Tick()
	if res.Over || res.TimeLeft != 30 {
		t.Errorf("Tick while configuring = %+v, want {30 false}", res)
	}
	if s.State() != StateConfiguring {
		t.Errorf("state = %v, want configuring", s.State())
	}
}

func TestWinStopsTimer(t *testing.T) {
	s := startWith(t, "RR")
	s.Tick()

	selectPair(s, board.C(1, 1), board.C(1, 2))
	before := s.Snapshot().TimeLeft

	res := s.Tick()
	if !res.Over || res.TimeLeft != before {
		t.Errorf("Tick after win = %+v, want over with %d left", res, before)
	}
	if !s.Snapshot().Won {
		t.Error("win should not be undone by later ticks")
	}
}

func TestMatchAndMismatchDeltas(t *testing.T) {
	s := startWith(t, "RGR", "G.B", "..B")

	count := func() int { return s.Snapshot().Grid.OccupiedCount() }

	// Mismatched colors change nothing
	before := count()
	res := selectPair(s, board.C(1, 1), board.C(1, 2))
	if res.Matched {
		t.Fatal("red and green should not match")
	}
	if s.Snapshot().Score != 0 || count() != before {
		t.Errorf("mismatch changed state: score %d, count %d", s.Snapshot().Score, count())
	}
	if s.Snapshot().Selection != nil {
		t.Error("selection should be cleared after the second click")
	}

	// A match removes exactly two tiles and scores one point
	res = selectPair(s, board.C(2, 3), board.C(3, 3))
	if !res.Matched {
		t.Fatal("adjacent blue tiles should match")
	}
	if s.Snapshot().Score != 1 {
		t.Errorf("Score = %d, want 1", s.Snapshot().Score)
	}
	if count() != before-2 {
		t.Errorf("OccupiedCount = %d, want %d", count(), before-2)
	}
	if res.Path.Turns() > board.MaxTurns {
		t.Errorf("path has %d turns", res.Path.Turns())
	}
}

func TestSelectionRules(t *testing.T) {
	s := startWith(t, "R.R")

	if res := s.SelectTile(board.C(1, 1)); !res.Selected {
		t.Fatalf("first click = %+v, want Selected", res)
	}

	// Empty, border and out-of-range cells are ignored and keep the selection
	for _, c := range []board.Coord{board.C(1, 2), board.C(0, 0), board.C(-3, 9)} {
		if res := s.SelectTile(c); !ignored(res) {
			t.Errorf("SelectTile(%v) = %+v, want ignored", c, res)
		}
	}
	if sel := s.Snapshot().Selection; sel == nil || *sel != board.C(1, 1) {
		t.Fatalf("selection = %v, want (1,1)", sel)
	}

	if res := s.SelectTile(board.C(1, 1)); !res.Deselected {
		t.Errorf("second click on same tile = %+v, want Deselected", res)
	}
	if s.Snapshot().Selection != nil {
		t.Error("selection should be cleared")
	}
}

func TestIllegalTransitions(t *testing.T) {
	s := newTestSession(t, DefaultSettings())

	if err := s.Forfeit(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Forfeit while configuring: %v", err)
	}
	if err := s.Back(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Back while configuring: %v", err)
	}

	if _, err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := s.Start(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Start while playing: %v", err)
	}
	if _, err := s.Restart(6); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Restart while playing: %v", err)
	}
	if err := s.Configure(8); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Configure while playing: %v", err)
	}
	if err := s.Back(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Back while playing: %v", err)
	}
	if s.State() != StatePlaying || s.Size() != 5 {
		t.Errorf("illegal calls changed state: %v size %d", s.State(), s.Size())
	}

	if err := s.Forfeit(); err != nil {
		t.Fatalf("Forfeit failed: %v", err)
	}
	if s.Snapshot().Won {
		t.Error("forfeit should not count as a win")
	}
	if res := s.SelectTile(board.C(1, 1)); !ignored(res) {
		t.Errorf("SelectTile after game over = %+v, want ignored", res)
	}
	if err := s.StartWithGrid(board.MustFromRows("RR")); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("StartWithGrid while over: %v", err)
	}
}

func TestConfigureSize(t *testing.T) {
	s := newTestSession(t, DefaultSettings())

	if s.Size() != 5 {
		t.Fatalf("default size = %d, want 5", s.Size())
	}

	steps := []struct {
		op   func() error
		want int
	}{
		{s.IncreaseSize, 7},
		{s.IncreaseSize, 9},
		{s.IncreaseSize, 11},
		{s.IncreaseSize, 12},
		{s.IncreaseSize, 12},
		{func() error { return s.Configure(5) }, 5},
		{s.DecreaseSize, 4},
		{s.DecreaseSize, 4},
		{func() error { return s.Configure(100) }, 12},
	}
	for i, step := range steps {
		if err := step.op(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if s.Size() != step.want {
			t.Errorf("step %d: size = %d, want %d", i, s.Size(), step.want)
		}
	}
}

func TestStartGeneratesBoard(t *testing.T) {
	s := newTestSession(t, DefaultSettings())

	g, err := s.Start()
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if g.Rows != 5 || g.Cols != 5 {
		t.Fatalf("size = %dx%d, want 5x5", g.Rows, g.Cols)
	}
	if g.OccupiedCount() != 24 {
		t.Errorf("OccupiedCount = %d, want 24 on an odd board", g.OccupiedCount())
	}

	// The returned grid is a copy
	g.Remove(g.OccupiedCoords()[0])
	if s.Snapshot().Grid.OccupiedCount() != 24 {
		t.Error("modifying the returned grid should not affect the session")
	}
}

func TestBackAndRestart(t *testing.T) {
	s := startWith(t, "RR")
	selectPair(s, board.C(1, 1), board.C(1, 2))

	if err := s.Back(); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	snap := s.Snapshot()
	if snap.State != StateConfiguring || snap.Grid != nil {
		t.Errorf("after Back: state %v grid %v, want configuring without a board", snap.State, snap.Grid)
	}
	if snap.Size != 5 {
		t.Errorf("size = %d, want the stored 5", snap.Size)
	}

	g, err := s.Restart(6)
	if err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if g.Rows != 6 || g.OccupiedCount() != 36 {
		t.Errorf("restart board = %dx%d with %d tiles, want 6x6 full", g.Rows, g.Cols, g.OccupiedCount())
	}
	if snap := s.Snapshot(); snap.Score != 0 || snap.TimeLeft != 30 {
		t.Errorf("restart should reset score and timer, got %d / %d", snap.Score, snap.TimeLeft)
	}

	// Restart from Over keeps the size when newSize <= 0
	s.Forfeit()
	g, err = s.Restart(0)
	if err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if g.Rows != 6 {
		t.Errorf("Restart(0) size = %d, want 6", g.Rows)
	}
}

func TestStuckAndHint(t *testing.T) {
	s := startWith(t, "RG", "GR")
	if !s.Snapshot().Stuck {
		t.Error("diagonal 2x2 should be stuck")
	}
	if _, _, ok := s.Hint(); ok {
		t.Error("stuck board should have no hint")
	}

	s = startWith(t, "R.", ".R")
	if s.Snapshot().Stuck {
		t.Error("connectable board should not be stuck")
	}
	a, b, ok := s.Hint()
	if !ok {
		t.Fatal("expected a hint")
	}
	if res := selectPair(s, a, b); !res.Matched {
		t.Errorf("hinted pair %v %v did not match", a, b)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := startWith(t, "RR")

	snap := s.Snapshot()
	snap.Grid.Remove(board.C(1, 1))

	if !s.Snapshot().Grid.Occupied(board.C(1, 1)) {
		t.Error("snapshot grid should be a copy")
	}
}

func TestGeneratedGameInvariants(t *testing.T) {
	s := newTestSession(t, DefaultSettings())
	if err := s.Configure(8); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if _, err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for s.State() == StatePlaying {
		a, b, ok := s.Hint()
		if !ok {
			break
		}
		before := s.Snapshot()
		res := selectPair(s, a, b)
		after := s.Snapshot()

		if !res.Matched {
			t.Fatalf("hinted pair %v %v did not match", a, b)
		}
		if after.Score != before.Score+1 {
			t.Fatalf("score %d -> %d, want +1", before.Score, after.Score)
		}
		if after.Grid.OccupiedCount() != before.Grid.OccupiedCount()-2 {
			t.Fatalf("occupied %d -> %d, want -2", before.Grid.OccupiedCount(), after.Grid.OccupiedCount())
		}
	}

	snap := s.Snapshot()
	if snap.State == StateOver && !snap.Won {
		t.Error("game ended without a win or a timeout")
	}
}
