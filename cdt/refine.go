package cdt

import "github.com/katalvlaran/polynav/geom"

// RefineOptions bounds Refine's work (Ruppert 1995): it stops once every
// live triangle's minimum angle is at least AngleLimit, or once
// MaxAdditionalVertices Steiner points have been inserted, whichever
// comes first.
type RefineOptions struct {
	AngleLimit            float64
	MaxAdditionalVertices int
}

// DefaultRefineOptions mirrors spec.md's triangulate defaults: a
// 20-degree minimum angle is the standard Ruppert quality bound that
// guarantees termination, and a generous Steiner point budget so the
// bound in practice is almost always AngleLimit, not vertex count.
func DefaultRefineOptions() RefineOptions {
	return RefineOptions{AngleLimit: 20 * 3.141592653589793 / 180, MaxAdditionalVertices: 10000}
}

// Refine inserts Steiner points (circumcenters of poor-quality triangles,
// or encroached-constraint split points) until every triangle meets
// opts.AngleLimit or the vertex budget is exhausted. It never removes a
// constraint; an edge that would be encroached by a candidate circumcenter
// is split instead of the circumcenter being inserted, per Ruppert's
// algorithm.
func (t *Triangulation) Refine(opts RefineOptions) {
	added := 0
	skipped := make(map[[3]VertexID]bool)
	for added < opts.MaxAdditionalVertices {
		ti, ok := t.worstTriangle(opts.AngleLimit, skipped)
		if !ok {
			return
		}
		tri := t.tris[ti]
		a, b, c := t.Points[tri.Verts[0]], t.Points[tri.Verts[1]], t.Points[tri.Verts[2]]
		center := geom.CircumCenter(a, b, c)

		if edgeA, edgeB, ok := t.encroachedConstraintNear(center); ok {
			t.splitConstraintEdge(edgeA, edgeB)
			added++
			continue
		}
		if _, err := t.Insert(center); err != nil {
			// Degenerate circumcenter (e.g. outside working bounds): skip
			// this triangle rather than loop forever on it.
			t.skipBadTriangle(ti, skipped)
			continue
		}
		added++
	}
}

func (t *Triangulation) worstTriangle(limit float64, skipped map[[3]VertexID]bool) (int32, bool) {
	best := int32(-1)
	bestAngle := limit
	for i, tri := range t.tris {
		if tri.dead || t.touchesSuper(tri) || skipped[tri.Verts] {
			continue
		}
		a, b, c := t.Points[tri.Verts[0]], t.Points[tri.Verts[1]], t.Points[tri.Verts[2]]
		ang := geom.MinAngle(a, b, c)
		if ang < bestAngle {
			bestAngle = ang
			best = int32(i)
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func (t *Triangulation) touchesSuper(tri triangle) bool {
	for _, v := range tri.Verts {
		if t.isSuper(v) {
			return true
		}
	}
	return false
}

// encroachedConstraintNear reports a constrained edge whose diametral
// circle contains p, meaning inserting p there would violate the
// Delaunay empty-circle property across a segment that must stay straight.
func (t *Triangulation) encroachedConstraintNear(p geom.Point) (VertexID, VertexID, bool) {
	for key := range t.constrained {
		a, b := t.Points[key.a], t.Points[key.b]
		mid := a.Add(b).Scale(0.5)
		radius := a.Dist(b) / 2
		if mid.Dist(p) < radius-geom.Epsilon {
			return key.a, key.b, true
		}
	}
	return 0, 0, false
}

// splitConstraintEdge inserts a new vertex at the midpoint of constraint
// (a,b). The midpoint goes through snapToPowerOfTwoFraction, which rounds
// relative to (a,b) itself; a midpoint already sits at t=1/2, so it is
// kept as is. Split points are not aligned to a grid of the longer
// segment an already-split constraint originally came from.
func (t *Triangulation) splitConstraintEdge(a, b VertexID) {
	pa, pb := t.Points[a], t.Points[b]
	mid := pa.Add(pb).Scale(0.5)
	mid = snapToPowerOfTwoFraction(pa, pb, mid)
	// Insert splits the containing triangle(s); since (a,b) is an
	// existing triangulation edge, mid necessarily lands exactly on it,
	// taking the splitAcrossEdge path which re-derives the two new
	// constrained half-edges automatically.
	_, _ = t.Insert(mid)
}

// snapToPowerOfTwoFraction rounds mid's parametric position along a->b to
// the nearest k/2^n grid point, for the smallest n that keeps the
// rounding error below geom.Epsilon times the segment length.
func snapToPowerOfTwoFraction(a, b, mid geom.Point) geom.Point {
	length := a.Dist(b)
	if length < geom.Epsilon {
		return mid
	}
	_, tParam := geom.ProjectPointOnSegment(mid, a, b)
	n := 1
	for ; n < 24; n++ {
		denom := float64(int(1) << uint(n))
		snapped := roundToDenominator(tParam, denom)
		if length*absf(snapped-tParam) < geom.Epsilon {
			tParam = snapped
			break
		}
	}
	return a.Lerp(b, tParam)
}

func roundToDenominator(t, denom float64) float64 {
	return roundf(t*denom) / denom
}

func roundf(x float64) float64 {
	if x < 0 {
		return -roundf(-x)
	}
	f := float64(int64(x))
	if x-f >= 0.5 {
		f++
	}
	return f
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// skipBadTriangle is a defensive last resort for Refine: it records tri's
// vertex triple in skipped so the main loop's worstTriangle scan stops
// selecting it, without altering the mesh. Used only when Insert itself
// rejects the computed circumcenter (coordinates outside the
// triangulation's working bounds).
func (t *Triangulation) skipBadTriangle(ti int32, skipped map[[3]VertexID]bool) {
	skipped[t.tris[ti].Verts] = true
}
