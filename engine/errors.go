package engine

import "errors"

var (
	// ErrEmptyGrid is returned when a grid has no rows or no columns.
	ErrEmptyGrid = errors.New("engine: empty grid")

	// ErrRaggedGrid is returned when the rows of a grid differ in length.
	ErrRaggedGrid = errors.New("engine: ragged grid")

	// ErrBlockSize is returned for a non-positive block size.
	ErrBlockSize = errors.New("engine: block size must be positive")

	// ErrNoGoal is returned when a grid holds no goal marker.
	ErrNoGoal = errors.New("engine: grid has no goal")

	// ErrUnboundedMarch is returned when a ray fails to reach a wall within
	// the grid's step ceiling. With the closed-world wall rule this means the
	// grid or its symbols are corrupt.
	ErrUnboundedMarch = errors.New("engine: unbounded march")
)
