package polyanya

import "github.com/katalvlaran/polynav/geom"

// lowerBoundThroughDoorway returns an admissible lower bound on the
// remaining cost to goal for a taut path that must pass through some
// point of segment [left,right], bending at root: min over p in
// [left,right] of |root-p| + |p-goal|, plus the point p achieving it.
//
// This is solved exactly via the standard "unfold the reflection"
// technique rather than numeric search: if root and goal lie on the same
// side of the line through (left,right), reflect goal across that line to
// goal'; the straight segment root-goal' crosses the line at the taut
// bend point. If root and goal are on opposite sides, the straight
// segment root-goal already crosses the line directly. Either way, once
// the crossing parameter is clamped into [0,1] (the doorway may not span
// the whole line), the corresponding value is the exact minimum -- the
// sum-of-distances function is convex along the segment, so clamping to
// the nearer boundary when the unconstrained optimum falls outside it is
// correct.
func lowerBoundThroughDoorway(root, left, right, goal geom.Point) (float64, geom.Point) {
	edge := right.Sub(left)
	length := edge.Length()
	if length < geom.Epsilon {
		return root.Dist(left) + left.Dist(goal), left
	}
	normal := edge.Perp().Normalize()

	rootSide := normal.Dot(root.Sub(left))
	goalSide := normal.Dot(goal.Sub(left))

	var target geom.Point
	if (rootSide >= 0) == (goalSide >= 0) {
		// Same side: reflect goal across the doorway's line.
		d := normal.Scale(goalSide)
		target = goal.Sub(d.Scale(2))
	} else {
		target = goal
	}

	t := intersectParam(root, target, left, right)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	p := left.Lerp(right, t)
	return root.Dist(p) + p.Dist(goal), p
}

// intersectParam returns the parameter t such that the line through a,b
// crosses the line through left,right at left + t*(right-left). Returns
// a value outside [0,1] (or a large sentinel) if the lines are parallel.
func intersectParam(a, b, left, right geom.Point) float64 {
	d1 := b.Sub(a)
	d2 := right.Sub(left)
	denom := d1.Cross(d2)
	if denom > -geom.Epsilon && denom < geom.Epsilon {
		return -1
	}
	diff := left.Sub(a)
	t := diff.Cross(d1) / denom
	return t
}
