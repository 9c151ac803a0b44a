package cdt

import "github.com/katalvlaran/polynav/geom"

// locate walks from a hint triangle toward p, stepping across whichever
// edge p lies on the far side of, until p falls inside (or on the
// boundary of) the current triangle. Grounded on the standard
// "stepping-stone" hint-walk used by incremental Delaunay builders;
// falls back to a full scan if the walk stalls (can happen transiently
// on degenerate/collinear configurations).
func (t *Triangulation) locate(p geom.Point, hint int32) int32 {
	cur := hint
	if cur < 0 || int(cur) >= len(t.tris) || t.tris[cur].dead {
		cur = t.firstLiveTriangle()
	}
	visited := make(map[int32]bool)
	for steps := 0; steps < len(t.tris)+4; steps++ {
		if visited[cur] {
			break
		}
		visited[cur] = true
		tri := t.tris[cur]
		exited := int32(-1)
		outside := false
		for i := 0; i < 3; i++ {
			a, b := tri.edge(i)
			o := geom.Orient2D(t.Points[a], t.Points[b], p)
			if o < -geom.Epsilon {
				outside = true
				if tri.Nbr[i] >= 0 {
					exited = tri.Nbr[i]
				}
				break
			}
		}
		if !outside {
			return cur
		}
		if exited < 0 {
			break
		}
		cur = exited
	}
	return t.scanLocate(p)
}

func (t *Triangulation) firstLiveTriangle() int32 {
	for i, tri := range t.tris {
		if !tri.dead {
			return int32(i)
		}
	}
	return 0
}

func (t *Triangulation) scanLocate(p geom.Point) int32 {
	for i, tri := range t.tris {
		if tri.dead {
			continue
		}
		inside := true
		for e := 0; e < 3; e++ {
			a, b := tri.edge(e)
			if geom.Orient2D(t.Points[a], t.Points[b], p) < -geom.Epsilon {
				inside = false
				break
			}
		}
		if inside {
			return int32(i)
		}
	}
	return -1
}

// Insert adds p as a new vertex and returns its VertexID. Degenerate
// duplicates (within geom.Epsilon of an existing point) return the
// existing VertexID instead of creating a new one.
func (t *Triangulation) Insert(p geom.Point) (VertexID, error) {
	if err := t.validateCoord(p); err != nil {
		return 0, err
	}
	hint := t.anyHint()
	loc := t.locate(p, hint)
	if loc < 0 {
		loc = t.scanLocate(p)
		if loc < 0 {
			return 0, ErrDegenerateInput
		}
	}
	if existing, ok := t.findDuplicateInTriangle(loc, p); ok {
		return existing, nil
	}

	vid := VertexID(len(t.Points))
	t.Points = append(t.Points, p)
	t.incidentTri = append(t.incidentTri, loc)

	onEdge, edgeIdx := t.pointOnTriangleEdge(loc, p)
	var touched []int32
	if onEdge {
		touched = t.splitAcrossEdge(loc, edgeIdx, vid)
	} else {
		touched = t.splitInside(loc, vid)
	}
	t.legalize(touched)
	return vid, nil
}

func (t *Triangulation) anyHint() int32 {
	if len(t.incidentTri) == 0 {
		return 0
	}
	return t.incidentTri[len(t.incidentTri)-1]
}

func (t *Triangulation) findDuplicateInTriangle(loc int32, p geom.Point) (VertexID, bool) {
	if loc < 0 {
		return 0, false
	}
	for _, v := range t.tris[loc].Verts {
		if t.isSuper(v) {
			continue
		}
		if t.Points[v].Dist(p) < geom.Epsilon {
			return v, true
		}
	}
	return 0, false
}

func (t *Triangulation) pointOnTriangleEdge(loc int32, p geom.Point) (bool, int) {
	tri := t.tris[loc]
	for i := 0; i < 3; i++ {
		a, b := tri.edge(i)
		if geom.PointOnSegment(p, t.Points[a], t.Points[b]) {
			return true, i
		}
	}
	return false, -1
}

// splitInside replaces triangle loc (vertices A,B,C) with three
// triangles sharing the new vertex v, wiring neighbors on both sides.
// Returns the indices of all triangles touched, for legalization.
func (t *Triangulation) splitInside(loc int32, v VertexID) []int32 {
	old := t.tris[loc]
	a, b, c := old.Verts[0], old.Verts[1], old.Verts[2]
	na, nb, nc := old.Nbr[0], old.Nbr[1], old.Nbr[2]

	tAB := loc
	tBC := int32(len(t.tris))
	tCA := int32(len(t.tris) + 1)

	t.tris[tAB] = triangle{Verts: [3]VertexID{a, b, v}, Nbr: [3]int32{na, tBC, tCA}}
	t.tris = append(t.tris,
		triangle{Verts: [3]VertexID{b, c, v}, Nbr: [3]int32{nb, tCA, tAB}},
		triangle{Verts: [3]VertexID{c, a, v}, Nbr: [3]int32{nc, tAB, tBC}},
	)
	t.rewireNeighborBack(na, loc, tAB)
	t.rewireNeighborBack(nb, loc, tBC)
	t.rewireNeighborBack(nc, loc, tCA)

	t.incidentTri[v] = tAB
	t.touchVertexHint(a, tAB)
	t.touchVertexHint(b, tBC)
	t.touchVertexHint(c, tCA)
	return []int32{tAB, tBC, tCA}
}

// splitAcrossEdge handles p landing on edge edgeIdx of triangle loc: both
// loc and its neighbor across that edge (if any) are each split in two.
func (t *Triangulation) splitAcrossEdge(loc int32, edgeIdx int, v VertexID) []int32 {
	tri := t.tris[loc]
	a, b := tri.edge(edgeIdx)
	c := tri.Verts[(edgeIdx+2)%3]
	nOpp := tri.Nbr[edgeIdx]
	nCA := tri.Nbr[(edgeIdx+2)%3]
	nBC := tri.Nbr[(edgeIdx+1)%3]

	wasConstrained := t.constrained[makeEdgeKey(a, b)]
	if wasConstrained {
		delete(t.constrained, makeEdgeKey(a, b))
		t.constrained[makeEdgeKey(a, v)] = true
		t.constrained[makeEdgeKey(v, b)] = true
	}

	tACV := loc
	tVCB := int32(len(t.tris))
	t.tris[tACV] = triangle{Verts: [3]VertexID{a, v, c}, Nbr: [3]int32{-1, tVCB, nCA}}
	t.tris = append(t.tris, triangle{Verts: [3]VertexID{v, b, c}, Nbr: [3]int32{-1, nBC, tACV}})
	t.rewireNeighborBack(nCA, loc, tACV)
	t.rewireNeighborBack(nBC, loc, tVCB)
	touched := []int32{tACV, tVCB}

	if nOpp >= 0 {
		opp := t.tris[nOpp]
		// find d, the apex of the opposite triangle across edge (b,a).
		var d VertexID
		var oNBA, oNAD int32
		for i := 0; i < 3; i++ {
			x, y := opp.edge(i)
			if x == b && y == a {
				d = opp.Verts[(i+2)%3]
				oNBA = opp.Nbr[(i+2)%3]
				oNAD = opp.Nbr[(i+1)%3]
				break
			}
		}
		tBVD := nOpp
		tVAD := int32(len(t.tris))
		t.tris[tBVD] = triangle{Verts: [3]VertexID{b, v, d}, Nbr: [3]int32{tVCB, tVAD, oNBA}}
		t.tris = append(t.tris, triangle{Verts: [3]VertexID{v, a, d}, Nbr: [3]int32{tACV, oNAD, tBVD}})
		t.tris[tACV].Nbr[0] = tVAD
		t.tris[tVCB].Nbr[0] = tBVD
		t.rewireNeighborBack(oNBA, nOpp, tBVD)
		t.rewireNeighborBack(oNAD, nOpp, tVAD)
		touched = append(touched, tBVD, tVAD)
	}

	t.incidentTri[v] = tACV
	t.incidentTri[a] = tACV
	t.incidentTri[b] = tVCB
	return touched
}

// rewireNeighborBack updates the triangle at nbr so whichever edge used
// to point at oldIdx now points at newIdx. No-op if nbr is a boundary
// (-1).
func (t *Triangulation) rewireNeighborBack(nbr, oldIdx, newIdx int32) {
	if nbr < 0 {
		return
	}
	n := &t.tris[nbr]
	for i := 0; i < 3; i++ {
		if n.Nbr[i] == oldIdx {
			n.Nbr[i] = newIdx
			return
		}
	}
}

func (t *Triangulation) touchVertexHint(v VertexID, tri int32) {
	if int(v) < len(t.incidentTri) {
		t.incidentTri[v] = tri
	}
}

// legalize repeatedly Lawson-flips any edge of the seed triangles whose
// opposite vertex lies inside the neighbor's circumcircle, skipping
// constrained edges, until no illegal edge remains.
func (t *Triangulation) legalize(seed []int32) {
	stack := append([]int32(nil), seed...)
	for len(stack) > 0 {
		ti := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if ti < 0 || int(ti) >= len(t.tris) || t.tris[ti].dead {
			continue
		}
		for e := 0; e < 3; e++ {
			tri := t.tris[ti]
			a, b := tri.edge(e)
			if t.constrained[makeEdgeKey(a, b)] {
				continue
			}
			nj := tri.Nbr[e]
			if nj < 0 {
				continue
			}
			opp := t.tris[nj]
			oppVertIdx := -1
			for i := 0; i < 3; i++ {
				x, y := opp.edge(i)
				if x == b && y == a {
					oppVertIdx = (i + 2) % 3
					break
				}
			}
			if oppVertIdx < 0 {
				continue
			}
			d := opp.Verts[oppVertIdx]
			c := tri.Verts[(e+2)%3]
			if geom.InCircle(t.Points[a], t.Points[b], t.Points[c], t.Points[d]) > 0 {
				t.flipEdge(ti, e)
				stack = append(stack, ti, nj)
				break
			}
		}
	}
}

// flipEdge replaces the shared edge (a,b) between triangle ti (edge e)
// and its neighbor across it with the diagonal (c,d), where c is ti's
// apex and d is the neighbor's apex.
func (t *Triangulation) flipEdge(ti int32, e int) {
	tri := t.tris[ti]
	a, b := tri.edge(e)
	c := tri.Verts[(e+2)%3]
	nj := tri.Nbr[e]
	nCA := tri.Nbr[(e+2)%3]
	opp := t.tris[nj]

	var d VertexID
	var nBD, nDA int32
	for i := 0; i < 3; i++ {
		x, y := opp.edge(i)
		if x == b && y == a {
			d = opp.Verts[(i+2)%3]
			nBD = opp.Nbr[(i+2)%3]
			nDA = opp.Nbr[(i+1)%3]
			break
		}
	}

	nBC := tri.Nbr[(e+1)%3]
	t.tris[ti] = triangle{Verts: [3]VertexID{c, d, a}, Nbr: [3]int32{nj, nDA, nCA}}
	t.tris[nj] = triangle{Verts: [3]VertexID{d, c, b}, Nbr: [3]int32{ti, nBC, nBD}}
	// nCA already points back at ti (index unchanged); nBC/nBD/nDA used to
	// point at ti/nj's old contents but belonged to the triangle across
	// that edge, so only the cross-triangle ones need rewiring.
	t.rewireNeighborBack(nDA, nj, ti)
	t.rewireNeighborBack(nBC, ti, nj)

	t.touchVertexHint(a, ti)
	t.touchVertexHint(c, ti)
	t.touchVertexHint(d, ti)
	t.touchVertexHint(b, nj)
}
