package polyanya

import "github.com/katalvlaran/polynav/geom"

// expandOneWay generates idx's successors and pushes them to the heap. If
// expansion produces exactly one successor whose destination polygon is
// marked Polygon.OneWay (at most one traversable neighbor) and does not
// hold the goal, that successor is stored in the arena without a heap
// push and expanded in place, and the loop repeats on its successors.
// A successor into the goal's polygon is always pushed, so Step runs the
// goal test on it.
func (si *SearchInstance) expandOneWay(idx int32, cur interval) {
	parent := idx
	for {
		next := si.successors(cur)
		if len(next) != 1 {
			for _, n := range next {
				n.parent = parent
				si.pushInterval(n)
			}
			return
		}
		only := next[0]
		isGoalPoly := only.Layer == si.goalLayer && only.Poly == si.goalPoly
		if isGoalPoly || !si.mesh.Layers[only.Layer].Polygons[only.Poly].OneWay {
			only.parent = parent
			si.pushInterval(only)
			return
		}
		// Fold this polygon into the chain: store it in the arena (so
		// reconstruct can still walk through it) but skip the heap.
		only.seq = si.seq
		si.seq++
		only.parent = parent
		si.arena = append(si.arena, only)
		parent = int32(len(si.arena) - 1)
		cur = only
	}
}

// successors generates, for the popped interval cur (whose doorway lies on
// edge (cur.EdgeA,cur.EdgeB) of polygon (cur.Layer,cur.Poly)), one sub-
// interval per other edge of that polygon reachable from a traversable
// neighbor. Because every polygon in this module's meshes is convex (CDT
// faces, optionally merged by meshops.MergePolygons), the only possible
// turning points are cur's own doorway endpoints -- there is no interior
// reflex vertex to additionally fan out from, unlike general-polygon
// Polyanya.
func (si *SearchInstance) successors(cur interval) []interval {
	poly := si.mesh.Layers[cur.Layer].Polygons[cur.Poly]
	var out []interval

	for e := 0; e < poly.NumEdges(); e++ {
		u, v := poly.Edge(e)
		if isSameUndirectedEdge(u, v, cur.EdgeA, cur.EdgeB) {
			continue
		}
		nl, np, ok := si.mesh.NeighborAcrossEdge(cur.Layer, cur.Poly, u, v)
		if !ok {
			continue
		}
		if si.mesh.IslandsValid() && nl == si.goalLayer && !si.mesh.Layers[nl].SameIsland(int32(np), si.goalPoly) {
			continue
		}
		pu := si.mesh.VertexPoint(cur.Layer, u)
		pv := si.mesh.VertexPoint(cur.Layer, v)
		out = append(out, si.clipEdge(cur, nl, np, u, v, pu, pv)...)
	}
	return out
}

func isSameUndirectedEdge(x, y, a, b int32) bool {
	return (x == a && y == b) || (x == b && y == a)
}

// clipEdge splits segment (pu,pv) into up to three sub-intervals against
// the view cone from cur.Root through [cur.Left,cur.Right]: the part
// directly visible from Root keeps Root; the part occluded by the Left
// corner gets a new root at Left; the part occluded by the Right corner
// gets a new root at Right.
func (si *SearchInstance) clipEdge(cur interval, nl int, np int32, u, v int32, pu, pv geom.Point) []interval {
	// crossL(t) < 0 means point is beyond (occluded by) the Left corner,
	// as seen sweeping from Left to Right around Root; crossR(t) > 0 means
	// occluded by the Right corner. Both are affine in t since cross
	// product is bilinear.
	crossL := func(p geom.Point) float64 { return cur.Left.Sub(cur.Root).Cross(p.Sub(cur.Root)) }
	crossR := func(p geom.Point) float64 { return cur.Right.Sub(cur.Root).Cross(p.Sub(cur.Root)) }

	clA, clB := crossL(pu), crossL(pv)
	crA, crB := crossR(pu), crossR(pv)

	// Visible region: crossL <= 0 AND crossR >= 0.
	loVis, hiVis, visOK := intersectRanges(
		halfplaneLE(clA, clB),
		halfplaneGE(crA, crB),
	)

	var out []interval
	push := func(t0, t1 float64, root geom.Point, rootVertex int32, extraG float64) {
		if t1-t0 < geom.Epsilon {
			return
		}
		left := pu.Lerp(pv, t0)
		right := pu.Lerp(pv, t1)
		out = append(out, interval{
			Left: left, Right: right, Root: root,
			Layer: nl, Poly: np, EdgeA: u, EdgeB: v,
			RootVertex: rootVertex,
			G:          cur.G + extraG,
		})
	}

	if visOK && hiVis > loVis {
		push(loVis, hiVis, cur.Root, cur.RootVertex, 0)
	}

	// Occluded-by-left: crossL > 0 (the complement of the visible
	// constraint's lower half), clipped to [0, loVis] if a visible region
	// exists, else the whole edge may be occluded from this side.
	loL, hiL, okL := intersectRanges(halfplaneGE(-clA, -clB), fullRange())
	if okL {
		upper := hiL
		if visOK && loVis < upper {
			upper = loVis
		}
		if upper > loL {
			push(loL, upper, cur.Left, cur.EdgeA, cur.Root.Dist(cur.Left))
		}
	}

	// Occluded-by-right: crossR < 0.
	loR, hiR, okR := intersectRanges(halfplaneLE(crA, crB), fullRange())
	if okR {
		lower := loR
		if visOK && hiVis > lower {
			lower = hiVis
		}
		if hiR > lower {
			push(lower, hiR, cur.Right, cur.EdgeB, cur.Root.Dist(cur.Right))
		}
	}

	return out
}

// halfplaneLE returns the sub-range of [0,1] where the affine function
// f(t) = f0 + (f1-f0)*t is <= 0.
func halfplaneLE(f0, f1 float64) func() (float64, float64, bool) {
	return func() (float64, float64, bool) {
		if f0 <= geom.Epsilon && f1 <= geom.Epsilon {
			return 0, 1, true
		}
		if f0 > -geom.Epsilon && f1 > -geom.Epsilon {
			return 0, 0, false
		}
		t0 := f0 / (f0 - f1)
		if f0 <= 0 {
			return 0, t0, true
		}
		return t0, 1, true
	}
}

// halfplaneGE returns the sub-range of [0,1] where f(t) >= 0.
func halfplaneGE(f0, f1 float64) func() (float64, float64, bool) {
	return halfplaneLE(-f0, -f1)
}

func fullRange() func() (float64, float64, bool) {
	return func() (float64, float64, bool) { return 0, 1, true }
}

func intersectRanges(a, b func() (float64, float64, bool)) (float64, float64, bool) {
	lo1, hi1, ok1 := a()
	lo2, hi2, ok2 := b()
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	lo := lo1
	if lo2 > lo {
		lo = lo2
	}
	hi := hi1
	if hi2 < hi {
		hi = hi2
	}
	return lo, hi, hi > lo
}
