package cdt

import "errors"

// Sentinel errors returned by Triangulation's insertion operations.
var (
	// ErrNaN indicates a coordinate was NaN.
	ErrNaN = errors.New("cdt: coordinate is NaN")
	// ErrTooSmall indicates a coordinate magnitude underflows the
	// triangulation's working precision (effectively a duplicate of an
	// existing point once snapped to the predicate tolerance). Insert and
	// BulkLoad do not return it: validateCoord checks only for NaN and for
	// the working bounds.
	ErrTooSmall = errors.New("cdt: coordinate magnitude too small")
	// ErrTooLarge indicates a coordinate magnitude would overflow the
	// super-triangle bounds computed for this triangulation.
	ErrTooLarge = errors.New("cdt: coordinate magnitude too large")
	// ErrOverlappingConstraint indicates AddConstraint was asked to
	// create a constraint edge that crosses an existing constraint edge.
	// Use AddConstraintAndSplit if splitting at the intersection is
	// acceptable.
	ErrOverlappingConstraint = errors.New("cdt: new constraint crosses an existing constraint")

	// ErrDegenerateInput indicates BulkLoad was given fewer than 3
	// points, or points that are all collinear.
	ErrDegenerateInput = errors.New("cdt: degenerate input for bulk load")
)
