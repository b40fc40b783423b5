package octree

import "errors"

// Sentinel errors for invariant violations. They are raised as panics whose
// value wraps the sentinel, so callers recovering may test with errors.Is.
var (
	// ErrUnorderedCoordinate indicates Insert found no ordered slot for a coordinate (NaN).
	ErrUnorderedCoordinate = errors.New("octree: coordinate has no total order")
	// ErrDoubleFree indicates a node was released more than once.
	ErrDoubleFree = errors.New("octree: node released twice")
)
