package cdt

import (
	"math"

	"github.com/katalvlaran/polynav/geom"
)

// VertexID indexes Triangulation.Points. Super-triangle vertices (the
// three synthetic points bounding the whole working area) occupy the
// first three slots and are never returned to callers.
type VertexID int32

// triangle is one CCW face, with the triangle across each edge i (the
// edge from Verts[i] to Verts[(i+1)%3]) cached as Nbr[i], or -1 if edge i
// borders the outside of the triangulated region. dead marks a
// tombstoned triangle that every scan skips; no code path in this package
// sets it, since splits and flips overwrite triangles in place, and there
// is no compaction step.
type triangle struct {
	Verts [3]VertexID
	Nbr   [3]int32
	dead  bool
}

func (t triangle) edge(i int) (VertexID, VertexID) { return t.Verts[i], t.Verts[(i+1)%3] }

// indexOfVertex returns the 0,1,2 slot of v within t, or -1.
func (t triangle) indexOfVertex(v VertexID) int {
	for i, tv := range t.Verts {
		if tv == v {
			return i
		}
	}
	return -1
}

// Triangulation is a mutable incremental constrained Delaunay
// triangulation. The zero value is not usable; construct with New.
type Triangulation struct {
	Points []geom.Point
	tris   []triangle

	// constrained marks edges (by canonical vertex-id pair) that must
	// never be flipped away by legalization.
	constrained map[edgeKey]bool

	// incidentTri[v] caches one triangle currently touching vertex v, the
	// hint used to start the next point-location walk from a vertex
	// near the query rather than from scratch.
	incidentTri []int32

	boundMin, boundMax geom.Point
}

type edgeKey struct{ a, b VertexID }

func makeEdgeKey(a, b VertexID) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// superTriangleSizeFactor is the half-width of the synthetic bounding
// triangle relative to the working area's own diameter; it must be large enough
// that no legitimate input point ever lies outside it.
const superTriangleSizeFactor = 50.0

// New creates a Triangulation whose synthetic super-triangle encloses the
// axis-aligned box [bboxMin, bboxMax] with margin; all points later
// Inserted or BulkLoaded must fall within that box, widened on every side
// by the box's diagonal length, or ErrTooLarge is returned.
func New(bboxMin, bboxMax geom.Point) *Triangulation {
	center := bboxMin.Add(bboxMax).Scale(0.5)
	diag := bboxMax.Sub(bboxMin).Length()
	if diag < geom.Epsilon {
		diag = 1
	}
	r := diag * superTriangleSizeFactor

	p0 := geom.Point{X: center.X - r, Y: center.Y - r}
	p1 := geom.Point{X: center.X + r, Y: center.Y - r}
	p2 := geom.Point{X: center.X, Y: center.Y + r}

	t := &Triangulation{
		Points:      []geom.Point{p0, p1, p2},
		tris:        []triangle{{Verts: [3]VertexID{0, 1, 2}, Nbr: [3]int32{-1, -1, -1}}},
		constrained: make(map[edgeKey]bool),
		incidentTri: []int32{0, 0, 0},
		boundMin:    bboxMin,
		boundMax:    bboxMax,
	}
	return t
}

// validateCoord rejects NaN/Inf and coordinates outside the
// super-triangle's working bounds.
func (t *Triangulation) validateCoord(p geom.Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return ErrNaN
	}
	margin := t.boundMax.Sub(t.boundMin).Length()
	if margin < geom.Epsilon {
		margin = 1
	}
	if p.X < t.boundMin.X-margin || p.X > t.boundMax.X+margin ||
		p.Y < t.boundMin.Y-margin || p.Y > t.boundMax.Y+margin {
		return ErrTooLarge
	}
	return nil
}

// isSuper reports whether v is one of the three synthetic super-triangle
// vertices.
func (t *Triangulation) isSuper(v VertexID) bool { return v < 3 }

// NumPoints returns the number of real (non-super-triangle) points
// inserted so far.
func (t *Triangulation) NumPoints() int { return len(t.Points) - 3 }

// Point returns the coordinates of real vertex id (0-based, excluding the
// super-triangle).
func (t *Triangulation) Point(id VertexID) geom.Point { return t.Points[id+3] }
