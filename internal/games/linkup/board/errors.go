package board

import "errors"

var (
	// ErrInvalidCoordinate is returned for coordinates outside the grid.
	ErrInvalidCoordinate = errors.New("board: coordinate out of bounds")

	// ErrSelfSelection is returned when a tile is asked to connect to itself.
	// Callers must never let this happen; it signals a broken invariant.
	ErrSelfSelection = errors.New("board: cannot connect a tile to itself")
)
