package geom

import "math"

// SegmentIntersect returns the intersection point of segments [p1,p2] and
// [p3,p4] and true, if the segments cross at a single point (touching at
// an endpoint counts). Returns ok=false for parallel, collinear, or
// non-crossing segments.
func SegmentIntersect(p1, p2, p3, p4 Point) (Point, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if math.Abs(denom) < Epsilon {
		return Point{}, false
	}
	diff := p3.Sub(p1)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom
	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return Point{}, false
	}
	return p1.Add(d1.Scale(t)), true
}

// SegmentsProperlyCross reports whether [p1,p2] and [p3,p4] cross at a
// point strictly interior to both segments (used by the CDT to find the
// conflict region a new constraint edge cuts through).
func SegmentsProperlyCross(p1, p2, p3, p4 Point) bool {
	o1 := OrientationOf(p1, p2, p3)
	o2 := OrientationOf(p1, p2, p4)
	o3 := OrientationOf(p3, p4, p1)
	o4 := OrientationOf(p3, p4, p2)
	return o1 != o2 && o3 != o4 && o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear
}

// ProjectPointOnSegment returns the closest point on segment [a,b] to p,
// and the parametric position t in [0,1] along the segment.
func ProjectPointOnSegment(p, a, b Point) (Point, float64) {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < Epsilon*Epsilon {
		return a, 0
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t)), t
}

// PointOnSegment reports whether p lies on segment [a,b] within Epsilon.
func PointOnSegment(p, a, b Point) bool {
	proj, _ := ProjectPointOnSegment(p, a, b)
	return proj.Almost(p)
}

// CircumCenter returns the circumcenter of triangle (a,b,c). Callers must
// ensure the triangle is non-degenerate.
func CircumCenter(a, b, c Point) Point {
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	cx, cy := c.X, c.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < Epsilon {
		return a
	}
	ux := ((ax*ax+ay*ay)*(by-cy) + (bx*bx+by*by)*(cy-ay) + (cx*cx+cy*cy)*(ay-by)) / d
	uy := ((ax*ax+ay*ay)*(cx-bx) + (bx*bx+by*by)*(ax-cx) + (cx*cx+cy*cy)*(bx-ax)) / d
	return Point{ux, uy}
}

// TriangleArea2 returns twice the signed area of triangle (a,b,c).
func TriangleArea2(a, b, c Point) float64 {
	return Orient2D(a, b, c)
}

// MinAngle returns the smallest interior angle of triangle (a,b,c), in
// radians.
func MinAngle(a, b, c Point) float64 {
	angle := func(p, q, r Point) float64 {
		v1 := q.Sub(p).Normalize()
		v2 := r.Sub(p).Normalize()
		cosT := v1.Dot(v2)
		if cosT > 1 {
			cosT = 1
		} else if cosT < -1 {
			cosT = -1
		}
		return math.Acos(cosT)
	}
	angA := angle(a, b, c)
	angB := angle(b, c, a)
	angC := math.Pi - angA - angB
	return math.Min(angA, math.Min(angB, angC))
}
