package cdt

import "github.com/katalvlaran/polynav/geom"

// AddConstraint forces the segment (u,v) to be an edge of the
// triangulation by repeatedly flipping triangulation edges that cross it
// (Anglada 1997): while the segment is not yet an edge, find a crossing
// edge whose surrounding quadrilateral is convex and flip it; a flip
// either makes the segment an edge outright or shrinks the set of edges
// still crossing it. Returns ErrOverlappingConstraint if (u,v) crosses an
// already-constrained edge -- use AddConstraintAndSplit to split at the
// intersection instead.
func (t *Triangulation) AddConstraint(u, v VertexID) error {
	if t.hasEdge(u, v) {
		t.constrained[makeEdgeKey(u, v)] = true
		return nil
	}
	up, vp := t.Points[u], t.Points[v]

	for guard := 0; guard < len(t.tris)*4+16; guard++ {
		if t.hasEdge(u, v) {
			t.constrained[makeEdgeKey(u, v)] = true
			return nil
		}
		ti, e, ok := t.findCrossingEdge(up, vp)
		if !ok {
			// No crossing edge found but (u,v) still isn't an edge: the
			// segment must pass exactly through an intervening vertex,
			// which AddConstraint alone cannot repair.
			return ErrOverlappingConstraint
		}
		a, b := t.tris[ti].edge(e)
		if t.constrained[makeEdgeKey(a, b)] {
			return ErrOverlappingConstraint
		}
		if !t.quadIsConvex(ti, e) {
			return ErrOverlappingConstraint
		}
		t.flipEdge(ti, e)
	}
	return ErrOverlappingConstraint
}

// MustAddConstraint behaves like AddConstraint but panics instead of
// returning an error, for callers that have already validated (u,v)
// cannot cross a constrained edge (e.g. boundary edges inserted before
// any hole or obstacle constraints exist).
func (t *Triangulation) MustAddConstraint(u, v VertexID) {
	if err := t.AddConstraint(u, v); err != nil {
		panic(err)
	}
}

// AddConstraintAndSplit behaves like AddConstraint, but when (u,v) would
// cross an existing constrained edge it instead computes the
// intersection point, inserts a new vertex there via newVertex (the
// caller decides how ids/coordinates propagate back to its own vertex
// list), and recurses on the two resulting half-segments.
func (t *Triangulation) AddConstraintAndSplit(u, v VertexID, newVertex func(p geom.Point) (VertexID, error)) error {
	up, vp := t.Points[u], t.Points[v]
	for guard := 0; guard < len(t.tris)*4+16; guard++ {
		if t.hasEdge(u, v) {
			t.constrained[makeEdgeKey(u, v)] = true
			return nil
		}
		ti, e, ok := t.findCrossingEdge(up, vp)
		if !ok {
			return ErrOverlappingConstraint
		}
		a, b := t.tris[ti].edge(e)
		if t.constrained[makeEdgeKey(a, b)] {
			ap, bp := t.Points[a], t.Points[b]
			ip, cross := geom.SegmentIntersect(up, vp, ap, bp)
			if !cross {
				return ErrOverlappingConstraint
			}
			mid, err := newVertex(ip)
			if err != nil {
				return err
			}
			if err := t.AddConstraintAndSplit(u, mid, newVertex); err != nil {
				return err
			}
			return t.AddConstraintAndSplit(mid, v, newVertex)
		}
		if !t.quadIsConvex(ti, e) {
			return ErrOverlappingConstraint
		}
		t.flipEdge(ti, e)
	}
	return ErrOverlappingConstraint
}

func (t *Triangulation) hasEdge(u, v VertexID) bool {
	for _, tri := range t.tris {
		if tri.dead {
			continue
		}
		for i := 0; i < 3; i++ {
			x, y := tri.edge(i)
			if (x == u && y == v) || (x == v && y == u) {
				return true
			}
		}
	}
	return false
}

// findCrossingEdge scans live triangles for an edge that properly
// crosses segment (up,vp).
func (t *Triangulation) findCrossingEdge(up, vp geom.Point) (ti int32, e int, ok bool) {
	for i, tri := range t.tris {
		if tri.dead {
			continue
		}
		for edge := 0; edge < 3; edge++ {
			a, b := tri.edge(edge)
			if geom.SegmentsProperlyCross(up, vp, t.Points[a], t.Points[b]) {
				return int32(i), edge, true
			}
		}
	}
	return 0, 0, false
}

// quadIsConvex reports whether the quadrilateral formed by triangle ti's
// edge e and its neighbor across that edge is convex, the precondition
// for the flip to produce two valid (non-self-intersecting) triangles.
func (t *Triangulation) quadIsConvex(ti int32, e int) bool {
	tri := t.tris[ti]
	nj := tri.Nbr[e]
	if nj < 0 {
		return false
	}
	a, b := tri.edge(e)
	c := tri.Verts[(e+2)%3]
	opp := t.tris[nj]
	var d VertexID
	found := false
	for i := 0; i < 3; i++ {
		x, y := opp.edge(i)
		if x == b && y == a {
			d = opp.Verts[(i+2)%3]
			found = true
			break
		}
	}
	if !found {
		return false
	}
	// Quad c, a, d, b (in order) is convex iff c and d lie on opposite
	// sides of (a,b) (guaranteed, since they're the apexes of adjacent
	// triangles sharing that edge) and a, b lie on opposite sides of (c,d).
	oa := geom.Orient2D(t.Points[c], t.Points[d], t.Points[a])
	ob := geom.Orient2D(t.Points[c], t.Points[d], t.Points[b])
	return (oa > 0) != (ob > 0)
}
