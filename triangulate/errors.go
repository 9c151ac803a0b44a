package triangulate

import "errors"

// ErrEmptyBoundary indicates the outer boundary polygon passed to Build
// has fewer than 3 points.
var ErrEmptyBoundary = errors.New("triangulate: outer boundary has fewer than 3 points")
