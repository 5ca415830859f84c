package linkup

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-linkup/internal/config"
	"github.com/vovakirdan/tui-linkup/internal/core"
	"github.com/vovakirdan/tui-linkup/internal/games/linkup/board"
)

// ErrIllegalTransition is returned when an operation is not valid in the
// session's current state. The session is left unchanged.
var ErrIllegalTransition = errors.New("linkup: illegal state transition")

// State is the lifecycle phase of a session.
type State int

const (
	StateConfiguring State = iota // Choosing the board size
	StatePlaying                  // Board on screen, timer running
	StateOver                     // Won, timed out or forfeited
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Settings are the tunables a session is created with.
type Settings struct {
	DefaultSize int
	MinSize     int
	MaxSize     int
	SizeStep    int
	TimeLimit   int // Seconds
}

// DefaultSettings returns the classic rules: 4..12 step 2, 5x5, 30 seconds.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultLinkupConfig())
}

// SettingsFromConfig extracts session settings from the game configuration.
func SettingsFromConfig(cfg config.LinkupConfig) Settings {
	return Settings{
		DefaultSize: cfg.Board.DefaultSize,
		MinSize:     cfg.Board.MinSize,
		MaxSize:     cfg.Board.MaxSize,
		SizeStep:    cfg.Board.SizeStep,
		TimeLimit:   cfg.Timer.TimeLimit,
	}
}

func (s Settings) normalized() Settings {
	if s.MinSize < 1 {
		s.MinSize = 1
	}
	if s.MaxSize < s.MinSize {
		s.MaxSize = s.MinSize
	}
	if s.SizeStep < 1 {
		s.SizeStep = 1
	}
	if s.TimeLimit < 1 {
		s.TimeLimit = 1
	}
	s.DefaultSize = core.Clamp(s.DefaultSize, s.MinSize, s.MaxSize)
	return s
}

// SelectResult describes what a tile selection did.
type SelectResult struct {
	Selected   bool // First tile of a pair recorded
	Deselected bool // Same tile clicked twice
	Matched    bool // Pair eliminated
	Won        bool // The match cleared the board
	Pair       [2]board.Coord
	Path       board.Path
	Kind       board.ConnectionKind
}

// TickResult reports the timer after a one-second tick.
type TickResult struct {
	TimeLeft int
	Over     bool
}

// Snapshot is a read-only copy of the session for rendering.
type Snapshot struct {
	Grid      *board.Grid // Clone; nil while configuring
	Score     int
	TimeLeft  int
	TimeLimit int
	Elapsed   int
	State     State
	Selection *board.Coord
	Won       bool
	Size      int
	Stuck     bool // Playing, tiles remain, and no pair can connect
}

// Session is the Link Up game state machine.
// It owns the authoritative grid and is not safe for concurrent use.
type Session struct {
	settings Settings
	rng      *rand.Rand

	state     State
	size      int
	grid      *board.Grid
	selection *board.Coord
	score     int
	timeLeft  int
	elapsed   int
	won       bool
}

// NewSession creates a session in the Configuring state.
// A nil rng is replaced by a time-seeded one.
func NewSession(settings Settings, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	settings = settings.normalized()
	return &Session{
		settings: settings,
		rng:      rng,
		state:    StateConfiguring,
		size:     settings.DefaultSize,
		timeLeft: settings.TimeLimit,
	}
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Size returns the board size chosen for the next game.
func (s *Session) Size() int {
	return s.size
}

// Settings returns the normalized settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// Configure sets the board size for the next game, clamped to the allowed range.
func (s *Session) Configure(size int) error {
	if s.state != StateConfiguring {
		return ErrIllegalTransition
	}
	s.size = core.Clamp(size, s.settings.MinSize, s.settings.MaxSize)
	return nil
}

// IncreaseSize steps the board size up.
func (s *Session) IncreaseSize() error {
	return s.Configure(s.size + s.settings.SizeStep)
}

// DecreaseSize steps the board size down.
func (s *Session) DecreaseSize() error {
	return s.Configure(s.size - s.settings.SizeStep)
}

// Start generates a size x size board and begins play.
// Returns a copy of the new grid.
func (s *Session) Start() (*board.Grid, error) {
	if s.state != StateConfiguring {
		return nil, ErrIllegalTransition
	}
	s.begin(board.Generate(s.size, s.size, s.rng))
	return s.grid.Clone(), nil
}

// StartWithGrid begins play on a prepared board, such as a loaded layout.
// The session keeps its own copy of g.
func (s *Session) StartWithGrid(g *board.Grid) error {
	if s.state != StateConfiguring {
		return ErrIllegalTransition
	}
	if g == nil {
		return errors.New("linkup: nil grid")
	}
	s.begin(g.Clone())
	return nil
}

// Restart stores newSize (ignored when <= 0) and starts a fresh game.
// Valid from Over or Configuring.
func (s *Session) Restart(newSize int) (*board.Grid, error) {
	if s.state == StatePlaying {
		return nil, ErrIllegalTransition
	}
	if newSize > 0 {
		s.size = core.Clamp(newSize, s.settings.MinSize, s.settings.MaxSize)
	}
	s.begin(board.Generate(s.size, s.size, s.rng))
	return s.grid.Clone(), nil
}

func (s *Session) begin(g *board.Grid) {
	s.grid = g
	s.state = StatePlaying
	s.selection = nil
	s.score = 0
	s.timeLeft = s.settings.TimeLimit
	s.elapsed = 0
	s.won = false

	// A board with nothing on it is already cleared.
	if s.grid.IsWin() {
		s.finish(true)
	}
}

func (s *Session) finish(won bool) {
	s.state = StateOver
	s.won = won
	s.selection = nil
}

// SelectTile handles a click on a grid cell.
//
// Clicks outside Playing, on out-of-range coordinates or on empty cells are
// ignored. The first click records a selection; clicking it again clears it.
// A second, different tile is matched against the first: if they connect,
// both are removed, the score goes up by one and a cleared board ends the
// game as a win before this call returns. The selection is cleared after
// every second click.
func (s *Session) SelectTile(c board.Coord) SelectResult {
	if s.state != StatePlaying {
		return SelectResult{}
	}
	if !s.grid.IsInterior(c) || !s.grid.Occupied(c) {
		return SelectResult{}
	}

	if s.selection == nil {
		sel := c
		s.selection = &sel
		return SelectResult{Selected: true}
	}

	first := *s.selection
	s.selection = nil
	if first == c {
		return SelectResult{Deselected: true}
	}

	result := SelectResult{Pair: [2]board.Coord{first, c}}

	conn, ok, err := board.Connect(s.grid, first, c)
	if err != nil || !ok {
		return result
	}

	s.grid.Remove(first)
	s.grid.Remove(c)
	s.score++

	result.Matched = true
	result.Path = conn.Path
	result.Kind = conn.Kind

	if s.grid.IsWin() {
		s.finish(true)
		result.Won = true
	}
	return result
}

// Tick advances the countdown by one second while playing.
// Reaching zero ends the game as a loss. The time left never goes negative.
func (s *Session) Tick() TickResult {
	switch s.state {
	case StatePlaying:
		if s.timeLeft > 0 {
			s.timeLeft--
		}
		s.elapsed++
		if s.timeLeft == 0 {
			s.finish(false)
		}
		return TickResult{TimeLeft: s.timeLeft, Over: s.state == StateOver}
	case StateOver:
		return TickResult{TimeLeft: s.timeLeft, Over: true}
	default:
		return TickResult{TimeLeft: s.timeLeft}
	}
}

// Forfeit abandons the current game.
func (s *Session) Forfeit() error {
	if s.state != StatePlaying {
		return ErrIllegalTransition
	}
	s.finish(false)
	return nil
}

// Back returns from the game-over screen to configuration.
// The board is discarded; the chosen size is kept.
func (s *Session) Back() error {
	if s.state != StateOver {
		return ErrIllegalTransition
	}
	s.state = StateConfiguring
	s.grid = nil
	s.selection = nil
	s.timeLeft = s.settings.TimeLimit
	return nil
}

// Stuck reports whether tiles remain but no pair can be connected.
func (s *Session) Stuck() bool {
	if s.state != StatePlaying || s.grid.IsWin() {
		return false
	}
	_, _, ok := board.FindMove(s.grid)
	return !ok
}

// Hint returns a connectable pair while playing.
func (s *Session) Hint() (a, b board.Coord, ok bool) {
	if s.state != StatePlaying {
		return board.Coord{}, board.Coord{}, false
	}
	return board.FindMove(s.grid)
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Score:     s.score,
		TimeLeft:  s.timeLeft,
		TimeLimit: s.settings.TimeLimit,
		Elapsed:   s.elapsed,
		State:     s.state,
		Won:       s.won,
		Size:      s.size,
		Stuck:     s.Stuck(),
	}
	if s.grid != nil {
		snap.Grid = s.grid.Clone()
	}
	if s.selection != nil {
		sel := *s.selection
		snap.Selection = &sel
	}
	return snap
}
