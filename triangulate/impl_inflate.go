package triangulate

import (
	"math"

	"github.com/katalvlaran/polynav/geom"
)

// inflate offsets every edge of a CCW obstacle loop outward by radius and
// rounds each corner with segments arc vertices, per spec.md §4.3 step 1.
// A radius of zero (or fewer than 3 points) returns loop unchanged.
func inflate(loop []geom.Point, radius float64, segments int) []geom.Point {
	if radius <= 0 || len(loop) < 3 {
		return loop
	}
	if segments < 1 {
		segments = 1
	}
	n := len(loop)
	out := make([]geom.Point, 0, n*(segments+1))
	for i := 0; i < n; i++ {
		prev := loop[(i-1+n)%n]
		cur := loop[i]
		next := loop[(i+1)%n]

		inN := outwardNormal(prev, cur, radius)
		outN := outwardNormal(cur, next, radius)

		startAngle := math.Atan2(inN.Y, inN.X)
		endAngle := math.Atan2(outN.Y, outN.X)
		out = append(out, arcPoints(cur, radius, startAngle, endAngle, segments)...)
	}
	return out
}

// outwardNormal returns the outward-pointing unit normal (scaled by
// radius) of the directed edge a->b, assuming the loop is CCW so the
// outward side is to the edge's right.
func outwardNormal(a, b geom.Point, radius float64) geom.Point {
	edge := b.Sub(a)
	perp := edge.Perp().Normalize()
	return perp.Scale(-radius)
}

// arcPoints returns `segments+1` points tracing the arc of the circle at
// center with radius, from startAngle to endAngle (taking the shorter
// sweep), used to round an inflated obstacle's corner.
func arcPoints(center geom.Point, radius, startAngle, endAngle float64, segments int) []geom.Point {
	delta := endAngle - startAngle
	for delta > math.Pi {
		delta -= fullCircle
	}
	for delta < -math.Pi {
		delta += fullCircle
	}
	pts := make([]geom.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := startAngle + delta*float64(i)/float64(segments)
		pts = append(pts, geom.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return pts
}
