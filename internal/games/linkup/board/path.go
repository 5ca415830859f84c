package board

// MaxTurns is the maximum number of bends a connecting path may have.
const MaxTurns = 2

// Path is an ordered list of waypoints from one tile to another, inclusive.
type Path []Coord

// segmentDir returns the direction from a to b for aligned, distinct points.
func segmentDir(a, b Coord) (Dir, bool) {
	switch {
	case a.Row == b.Row && b.Col > a.Col:
		return DirRight, true
	case a.Row == b.Row && b.Col < a.Col:
		return DirLeft, true
	case a.Col == b.Col && b.Row > a.Row:
		return DirDown, true
	case a.Col == b.Col && b.Row < a.Row:
		return DirUp, true
	default:
		return 0, false
	}
}

// Turns returns the number of direction changes along the path.
func (p Path) Turns() int {
	turns := 0
	var prev Dir
	havePrev := false
	for i := 1; i < len(p); i++ {
		d, ok := segmentDir(p[i-1], p[i])
		if !ok {
			continue
		}
		if havePrev && d != prev {
			turns++
		}
		prev = d
		havePrev = true
	}
	return turns
}

// Corners collapses the path to its endpoints and bend points.
func (p Path) Corners() Path {
	if len(p) <= 2 {
		return append(Path(nil), p...)
	}
	out := Path{p[0]}
	for i := 1; i < len(p)-1; i++ {
		in, _ := segmentDir(p[i-1], p[i])
		next, _ := segmentDir(p[i], p[i+1])
		if in != next {
			out = append(out, p[i])
		}
	}
	return append(out, p[len(p)-1])
}

// Start returns the first waypoint.
func (p Path) Start() Coord {
	return p[0]
}

// End returns the last waypoint.
func (p Path) End() Coord {
	return p[len(p)-1]
}

// ConnectionKind describes how two tiles were joined.
type ConnectionKind uint8

const (
	KindNone   ConnectionKind = iota
	KindDirect                // Found by the bounded-turn search
	KindBorder                // Joined along a shared outer edge through the border ring
)

// String returns the string representation of a connection kind.
func (k ConnectionKind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindBorder:
		return "border"
	default:
		return "none"
	}
}

// Connection is a legal link between two tiles.
type Connection struct {
	Path Path
	Kind ConnectionKind
}

// checkEndpoints validates the solver preconditions.
// Returns ok=false (without error) when the pair simply cannot match.
func checkEndpoints(g *Grid, a, b Coord) (bool, error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false, ErrInvalidCoordinate
	}
	if a == b {
		return false, ErrSelfSelection
	}
	if !g.IsInterior(a) || !g.IsInterior(b) {
		return false, nil
	}
	ca, cb := g.Get(a), g.Get(b)
	if !ca.Occupied || !cb.Occupied {
		return false, nil
	}
	return ca.Color == cb.Color, nil
}

// searchState is a node of the bounded-turn search.
type searchState struct {
	at    Coord
	axis  Axis
	turns int
}

// FindPath searches for the shortest path from a to b with at most MaxTurns
// bends. Empty interior cells and the border ring are traversable; any other
// tile blocks. Returns nil when the tiles differ in color or no path exists.
func FindPath(g *Grid, a, b Coord) (Path, error) {
	ok, err := checkEndpoints(g, a, b)
	if err != nil || !ok {
		return nil, err
	}
	return search(g, a, b), nil
}

// search runs a breadth-first search over (cell, incoming axis) states.
// A state reached again with no fewer turns is dominated by the earlier,
// shorter visit and is not re-enqueued.
func search(g *Grid, a, b Coord) Path {
	const axes = 3
	key := func(c Coord, ax Axis) int {
		return g.index(c)*axes + int(ax)
	}

	size := len(g.Cells) * axes
	best := make([]int, size)
	pred := make([]int, size)
	for i := range best {
		best[i] = MaxTurns + 1
		pred[i] = -1
	}

	start := searchState{at: a, axis: AxisNone}
	best[key(a, AxisNone)] = 0
	queue := []searchState{start}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curKey := key(cur.at, cur.axis)

		for _, d := range allDirs {
			next := cur.at.Step(d)
			if !g.InBounds(next) {
				continue
			}

			ax := d.Axis()
			turns := cur.turns
			if cur.axis != AxisNone && cur.axis != ax {
				turns++
			}
			if turns > MaxTurns {
				continue
			}

			if next != b && g.Occupied(next) {
				continue
			}

			nextKey := key(next, ax)
			if turns >= best[nextKey] {
				continue
			}
			best[nextKey] = turns
			pred[nextKey] = curKey

			if next == b {
				return buildPath(g, pred, nextKey, axes)
			}
			queue = append(queue, searchState{at: next, axis: ax, turns: turns})
		}
	}

	return nil
}

// buildPath walks predecessor links back to the start and reverses them.
func buildPath(g *Grid, pred []int, endKey, axes int) Path {
	var path Path
	w := g.Width()
	for k := endKey; k >= 0; k = pred[k] {
		idx := k / axes
		path = append(path, C(idx/w, idx%w))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// edge describes one outer edge of the interior region.
type edge struct {
	on      func(g *Grid, c Coord) bool
	outward Dir
}

// edges are checked in this order: top, bottom, left, right.
var edges = []edge{
	{on: func(g *Grid, c Coord) bool { return c.Row == 1 }, outward: DirUp},
	{on: func(g *Grid, c Coord) bool { return c.Row == g.Rows }, outward: DirDown},
	{on: func(g *Grid, c Coord) bool { return c.Col == 1 }, outward: DirLeft},
	{on: func(g *Grid, c Coord) bool { return c.Col == g.Cols }, outward: DirRight},
}

// BorderPath joins two same-colored tiles lying on the same outer edge of the
// interior through the border ring. It succeeds only when no tile sits
// strictly between them along that edge. The returned path always has four
// points: a, the border cell beyond a, the border cell beyond b, b.
func BorderPath(g *Grid, a, b Coord) (Path, bool) {
	if ok, err := checkEndpoints(g, a, b); err != nil || !ok {
		return nil, false
	}

	for _, e := range edges {
		if !e.on(g, a) || !e.on(g, b) {
			continue
		}
		if !edgeClear(g, a, b, e.outward.Axis()) {
			continue
		}
		return Path{a, a.Step(e.outward), b.Step(e.outward), b}, true
	}
	return nil, false
}

// edgeClear scans the cells strictly between a and b along their shared edge.
// A vertical outward direction means the edge runs horizontally.
func edgeClear(g *Grid, a, b Coord, outwardAxis Axis) bool {
	if outwardAxis == AxisVertical {
		lo, hi := min(a.Col, b.Col), max(a.Col, b.Col)
		for col := lo + 1; col < hi; col++ {
			if g.Occupied(C(a.Row, col)) {
				return false
			}
		}
		return true
	}

	lo, hi := min(a.Row, b.Row), max(a.Row, b.Row)
	for row := lo + 1; row < hi; row++ {
		if g.Occupied(C(row, a.Col)) {
			return false
		}
	}
	return true
}

// Connect decides whether a and b can be eliminated together.
// The in-board search result is preferred; the border shortcut is the fallback.
func Connect(g *Grid, a, b Coord) (Connection, bool, error) {
	ok, err := checkEndpoints(g, a, b)
	if err != nil {
		return Connection{}, false, err
	}
	if !ok {
		return Connection{}, false, nil
	}

	if p := search(g, a, b); p != nil {
		return Connection{Path: p, Kind: KindDirect}, true, nil
	}
	if p, found := BorderPath(g, a, b); found {
		return Connection{Path: p, Kind: KindBorder}, true, nil
	}
	return Connection{}, false, nil
}

// CanConnect reports whether a and b can be eliminated together.
func CanConnect(g *Grid, a, b Coord) (bool, error) {
	_, ok, err := Connect(g, a, b)
	return ok, err
}

// FindMove returns any connectable pair left on the board, scanning tiles in
// order. ok is false when the board is cleared or stuck.
func FindMove(g *Grid) (a, b Coord, ok bool) {
	byColor := make(map[Color][]Coord)
	for _, c := range g.OccupiedCoords() {
		color := g.Get(c).Color
		byColor[color] = append(byColor[color], c)
	}

	for _, color := range AllColors() {
		tiles := byColor[color]
		for i := 0; i < len(tiles); i++ {
			for j := i + 1; j < len(tiles); j++ {
				if _, found, _ := Connect(g, tiles[i], tiles[j]); found {
					return tiles[i], tiles[j], true
				}
			}
		}
	}
	return Coord{}, Coord{}, false
}
