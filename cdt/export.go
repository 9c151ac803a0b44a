package cdt

import "github.com/katalvlaran/polynav/geom"

// ExportedTriangle is a live, non-super-triangle face as seen from
// outside the package: vertex indices are 0-based into Vertices(),
// independent of the internal super-triangle bookkeeping.
type ExportedTriangle struct {
	Verts [3]int32
}

// Triangles returns every live triangle that does not touch a
// super-triangle vertex, with vertex indices remapped to the 0-based
// space Vertices() uses (i.e. real-point id = internal VertexID - 3).
func (t *Triangulation) Triangles() []ExportedTriangle {
	out := make([]ExportedTriangle, 0, len(t.tris))
	for _, tri := range t.tris {
		if tri.dead || t.touchesSuper(tri) {
			continue
		}
		out = append(out, ExportedTriangle{Verts: [3]int32{
			int32(tri.Verts[0]) - 3,
			int32(tri.Verts[1]) - 3,
			int32(tri.Verts[2]) - 3,
		}})
	}
	return out
}

// Vertices returns the coordinates of every real (non-super-triangle)
// point inserted so far, in insertion order.
func (t *Triangulation) Vertices() []geom.Point {
	return append([]geom.Point(nil), t.Points[3:]...)
}

// IsConstrained reports whether the edge between two real vertex ids (as
// used by Triangles, 0-based; a VertexID returned by Insert is 3 higher)
// is a constraint edge.
func (t *Triangulation) IsConstrained(u, v int32) bool {
	return t.constrained[makeEdgeKey(VertexID(u)+3, VertexID(v)+3)]
}
