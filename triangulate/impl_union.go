package triangulate

import (
	"math"
	"sort"

	"github.com/katalvlaran/polynav/geom"
)

// unionOverlapping merges any obstacles whose bounding boxes overlap and
// which share at least one point inside the other into a single convex
// hull of their combined vertices. This is a simplification of true
// polygon-boolean union (tracked in DESIGN.md): the hull always covers
// both obstacles, equals their true union only when that union is itself
// convex, and otherwise also covers free space between them, so
// traversable space can shrink.
func unionOverlapping(obstacles [][]geom.Point) [][]geom.Point {
	groups := make([][]geom.Point, len(obstacles))
	copy(groups, obstacles)

	merged := true
	for merged {
		merged = false
		for i := 0; i < len(groups); i++ {
			for j := i + 1; j < len(groups); j++ {
				if !boundsOverlap(groups[i], groups[j]) {
					continue
				}
				if !polygonsOverlap(groups[i], groups[j]) {
					continue
				}
				combined := append(append([]geom.Point(nil), groups[i]...), groups[j]...)
				groups[i] = convexHull(combined)
				groups = append(groups[:j], groups[j+1:]...)
				merged = true
				break
			}
			if merged {
				break
			}
		}
	}
	return groups
}

func boundsOverlap(a, b []geom.Point) bool {
	aMin, aMax := bbox(a)
	bMin, bMax := bbox(b)
	return aMin.X <= bMax.X && bMin.X <= aMax.X && aMin.Y <= bMax.Y && bMin.Y <= aMax.Y
}

func bbox(loop []geom.Point) (geom.Point, geom.Point) {
	min, max := loop[0], loop[0]
	for _, p := range loop[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

func polygonsOverlap(a, b []geom.Point) bool {
	for _, p := range a {
		if pointInLoop(p, b) {
			return true
		}
	}
	for _, p := range b {
		if pointInLoop(p, a) {
			return true
		}
	}
	return false
}

// pointInLoop is a standard even-odd ray-cast point-in-polygon test.
func pointInLoop(p geom.Point, loop []geom.Point) bool {
	inside := false
	n := len(loop)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := loop[i], loop[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xint := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xint {
				inside = !inside
			}
		}
	}
	return inside
}

// convexHull returns the CCW convex hull of pts via the monotone chain
// algorithm.
func convexHull(pts []geom.Point) []geom.Point {
	uniq := dedupe(pts)
	if len(uniq) < 3 {
		return uniq
	}
	sort.Slice(uniq, func(i, j int) bool {
		if math.Abs(uniq[i].X-uniq[j].X) > geom.Epsilon {
			return uniq[i].X < uniq[j].X
		}
		return uniq[i].Y < uniq[j].Y
	})

	cross := func(o, a, b geom.Point) float64 {
		return geom.TriangleArea2(o, a, b)
	}

	lower := make([]geom.Point, 0, len(uniq))
	for _, p := range uniq {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	upper := make([]geom.Point, 0, len(uniq))
	for i := len(uniq) - 1; i >= 0; i-- {
		p := uniq[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func dedupe(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Dist(q) < geom.Epsilon {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
