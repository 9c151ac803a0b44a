package triangulate

import (
	"github.com/katalvlaran/polynav/cdt"
	"github.com/katalvlaran/polynav/geom"
)

// traversableTriangles filters tris down to those whose centroid lies
// inside boundary and outside every obstacle, per spec.md §4.3 step 3.
func traversableTriangles(points []geom.Point, tris []cdt.ExportedTriangle, boundary []geom.Point, obstacles [][]geom.Point) [][3]int32 {
	out := make([][3]int32, 0, len(tris))
	for _, tri := range tris {
		a, b, c := points[tri.Verts[0]], points[tri.Verts[1]], points[tri.Verts[2]]
		centroid := geom.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
		if !pointInLoop(centroid, boundary) {
			continue
		}
		inObstacle := false
		for _, obs := range obstacles {
			if pointInLoop(centroid, obs) {
				inObstacle = true
				break
			}
		}
		if inObstacle {
			continue
		}
		out = append(out, tri.Verts)
	}
	return out
}
