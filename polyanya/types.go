package polyanya

import "github.com/katalvlaran/polynav/geom"

// Path is the result of a successful search: an ordered list of waypoints
// from the query's start (excluded) to its goal (included), and the total
// Euclidean length of the taut-string path connecting them.
type Path struct {
	Waypoints []geom.Point
	Length    float64
}

// interval is one node of the search: the doorway [Left, Right] on a mesh
// edge, the root the taut path currently bends around, and the polygon on
// the far side of the doorway (the one successors will be generated from
// next). rootVertex is the mesh vertex id Root coincides with, or -1 if
// Root is the query's own start point (not yet a mesh vertex).
type interval struct {
	Left, Right geom.Point
	Root        geom.Point
	Layer       int
	Poly        int32
	EdgeA, EdgeB int32
	RootVertex  int32

	G, F float64

	parent int32
	seq    int64
}

// rootKey identifies a (layer, vertex) pair for the root-history
// dominance cache: the per-vertex best-known g-to-root value is tracked
// here, not on the Mesh, so concurrent searches over the same baked mesh
// stay independent.
type rootKey struct {
	layer  int
	vertex int32
}

// StepResult is returned by SearchInstance.Step, reporting whether the
// search concluded this step and, if so, with what outcome.
type StepResult struct {
	Status StepStatus
	Path   Path
}

// StepStatus classifies a StepResult.
type StepStatus int

const (
	// StepContinue means the search has not concluded; call Step again.
	StepContinue StepStatus = iota
	// StepFound means a path was found; StepResult.Path is populated.
	StepFound
	// StepNotFound means the search exhausted its frontier (or iteration
	// budget) without reaching the goal.
	StepNotFound
)
