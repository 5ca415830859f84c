package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-linkup/internal/core"
	"github.com/vovakirdan/tui-linkup/internal/registry"
	"github.com/vovakirdan/tui-linkup/internal/storage"
)

// fakeGame reports whatever state the test sets.
type fakeGame struct {
	state  core.GameState
	result core.Result
	resets int
	steps  int
	last   core.InputFrame
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Result() core.Result { return g.result }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func init() {
	registry.Register("fake", func() registry.Game {
		return &fakeGame{state: core.GameState{Paused: true}}
	})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{ID: m.tickID})
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should schedule the first tick")
	}
	if g.resets != 1 {
		t.Errorf("Reset called %d times, want 1", g.resets)
	}
}

func TestModelInputReachesNextTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())

	m = update(t, m, runeKey('h'))
	m = update(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, m)

	if !g.last.Has(core.ActionHint) {
		t.Error("hint key should reach the game")
	}
	if p, ok := g.last.Click(); !ok || p != (core.Point{X: 5, Y: 6}) {
		t.Errorf("click = %v, %v, want (5, 6)", p, ok)
	}

	// Input is consumed by one tick
	tick(t, m)
	if !g.last.Empty() {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())

	m = update(t, m, TickMsg{ID: m.tickID + 1})
	if g.steps != 0 {
		t.Errorf("stale tick stepped the game %d times", g.steps)
	}
	tick(t, m)
	if g.steps != 1 {
		t.Errorf("steps = %d, want 1", g.steps)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, testConfig())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackToMenuOnlyWhenEmbedded(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		paused   bool
		want     bool
	}{
		{"embedded on setup screen", true, true, true},
		{"embedded while playing", true, false, false},
		{"standalone", false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{state: core.GameState{Paused: tt.paused}}
			m := NewModel(g, nil, testConfig())
			if tt.embedded {
				m = m.Embedded(nil)
			}
			m = tick(t, m)
			m = update(t, m, runeKey('b'))

			if m.BackToMenu() != tt.want {
				t.Errorf("BackToMenu() = %v, want %v", m.BackToMenu(), tt.want)
			}
		})
	}
}

func TestModelRecordsResultOncePerGameOver(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testConfig())

	g.state = core.GameState{Score: 12, GameOver: true}
	g.result = core.Result{Score: 12, Won: true, Rows: 4, Cols: 4, ElapsedSecs: 20}
	m = tick(t, m)
	m = tick(t, m)

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d results, want 1", len(scores))
	}
	if !scores[0].Won || scores[0].Rows != 4 || scores[0].ElapsedSecs != 20 {
		t.Errorf("saved %+v, want the game's result", scores[0])
	}

	// A new round followed by a second game over saves again
	g.state = core.GameState{Paused: true}
	m = tick(t, m)
	g.state = core.GameState{Score: 6, GameOver: true}
	g.result = core.Result{Score: 6, Rows: 4, Cols: 4, ElapsedSecs: 30}
	tick(t, m)

	scores, err = store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("saved %d results, want 2", len(scores))
	}
}

func TestModelSkipsEmptyLoss(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{state: core.GameState{GameOver: true}}
	m := NewModel(g, store, testConfig())

	tick(t, m)

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("saved %d results for a scoreless loss, want 0", len(scores))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if g.resets != 1 {
		t.Errorf("resize reset the game; resets = %d", g.resets)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, want 60x20", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "fake board") {
		t.Error("View() should show the game's render")
	}
}
