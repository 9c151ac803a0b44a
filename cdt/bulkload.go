package cdt

import (
	"math"
	"sort"

	"github.com/katalvlaran/polynav/geom"
)

// BulkLoad inserts every point in pts into the triangulation and returns
// their VertexIDs in input order. Points are angle-sorted around their
// centroid before insertion so consecutive inserts tend to land in
// nearby triangles, keeping the hint-walk in locate short; this is a
// simplification of divide-and-conquer hull-merge bulk loaders (as used
// by e.g. Spade), traded for reuse of the same incremental Insert/legalize
// machinery everywhere else in the package. Returns ErrDegenerateInput if
// pts has fewer than 3 points or all points are collinear.
func (t *Triangulation) BulkLoad(pts []geom.Point) ([]VertexID, error) {
	if len(pts) < 3 {
		return nil, ErrDegenerateInput
	}
	if allCollinear(pts) {
		return nil, ErrDegenerateInput
	}

	order := angleSortOrder(pts)

	ids := make([]VertexID, len(pts))
	for _, idx := range order {
		id, err := t.Insert(pts[idx])
		if err != nil {
			return nil, err
		}
		ids[idx] = id
	}
	return ids, nil
}

func allCollinear(pts []geom.Point) bool {
	if len(pts) < 3 {
		return true
	}
	a, b := pts[0], pts[1]
	for _, c := range pts[2:] {
		if geom.OrientationOf(a, b, c) != geom.Collinear {
			return false
		}
	}
	return true
}

// angleSortOrder returns an index permutation of pts sorted by angle
// around their centroid, breaking ties by distance from it.
func angleSortOrder(pts []geom.Point) []int {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(pts))
	center := geom.Point{X: cx / n, Y: cy / n}

	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	angle := func(p geom.Point) float64 { return math.Atan2(p.Y-center.Y, p.X-center.X) }
	sort.Slice(order, func(i, j int) bool {
		pi, pj := pts[order[i]], pts[order[j]]
		ai, aj := angle(pi), angle(pj)
		if math.Abs(ai-aj) > geom.Epsilon {
			return ai < aj
		}
		return center.Dist(pi) < center.Dist(pj)
	})
	return order
}
