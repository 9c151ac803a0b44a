package navmesh

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Mesh construction and mutation.
var (
	// ErrInvalidMesh indicates a structural precondition of Mesh.New (or
	// an importer) failed. Use errors.As to recover the offending
	// *MeshError for details.
	ErrInvalidMesh = errors.New("navmesh: invalid mesh")

	// ErrNotBaked indicates an operation that requires bake caches
	// (Locate, island lookups) was called on an unbaked mesh.
	ErrNotBaked = errors.New("navmesh: mesh is not baked")

	// ErrOutOfMesh indicates a query point does not lie on any polygon.
	ErrOutOfMesh = errors.New("navmesh: point is outside the mesh")

	// ErrLayerIndex indicates a layer index is out of range.
	ErrLayerIndex = errors.New("navmesh: layer index out of range")
)

// MeshError describes a specific structural violation found while
// validating a Mesh. It wraps ErrInvalidMesh so callers can match on the
// sentinel with errors.Is while still inspecting Reason/Detail.
type MeshError struct {
	Reason string // short machine-checkable category, e.g. "degenerate_polygon"
	Detail string // human-readable detail, e.g. "polygon 4 has 2 vertices"
}

func (e *MeshError) Error() string {
	return fmt.Sprintf("navmesh: invalid mesh: %s: %s", e.Reason, e.Detail)
}

func (e *MeshError) Unwrap() error { return ErrInvalidMesh }

func invalidMesh(reason, format string, args ...interface{}) *MeshError {
	return &MeshError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
