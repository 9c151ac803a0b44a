package navmesh

// NeighborAcrossEdge returns the polygon on the far side of the edge
// (a,b) of polygon (layer, poly), using the fan of vertex a to find it:
// the fan entry on one side of (layer,poly) -- which side depends on
// whether b follows or precedes a in the polygon's loop -- is either the
// neighbor across this edge or the obstacle sentinel. This
// is the fan-based adjacency lookup both the triangulation front-end's
// classification step and the Polyanya search engine's successor
// generation rely on; it is also how cross-layer transitions surface,
// since a fan entry may pack a different layer index than the polygon we
// started from.
//
// ok is false if the edge was not found in a's fan (malformed mesh) or if
// the neighbor is the obstacle sentinel.
func (m *Mesh) NeighborAcrossEdge(layer int, poly int32, a, b int32) (neighborLayer int, neighborPoly int32, ok bool) {
	l := &m.Layers[layer]
	fan := l.Vertices[a].Fan
	here := PackRef(layer, int(poly))

	idx := -1
	for i, e := range fan {
		if e == here {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, 0, false
	}

	// The fan is ordered CCW around vertex a. Polygon `here` has two
	// edges incident to a: one to the vertex after a in its loop, one to
	// the vertex before a. Going CCW around a, `here` spans from the
	// first of those edges to the second, so the neighbor across (a,
	// next) is the previous fan entry and the neighbor across (a, prev)
	// is the next fan entry. The query may name the edge in either
	// direction, so which case applies is decided from here's loop.
	forward := fan[(idx+1)%len(fan)]
	backward := fan[(idx-1+len(fan))%len(fan)]

	if edgeMatches(l, poly, a, b) {
		if !backward.IsObstacle() {
			nl, np := backward.Unpack()
			return nl, int32(np), true
		}
		return 0, 0, false
	}
	if !forward.IsObstacle() {
		nl, np := forward.Unpack()
		return nl, int32(np), true
	}
	return 0, 0, false
}

// edgeMatches reports whether polygon poly (in the same layer as the fan
// being walked) has b as the CCW-next vertex after a -- i.e. (a,b) is
// traversed in the polygon's own winding order, as opposed to (b,a).
func edgeMatches(l *Layer, poly int32, a, b int32) bool {
	p := l.Polygons[poly]
	for e := 0; e < p.NumEdges(); e++ {
		x, y := p.Edge(e)
		if x == a && y == b {
			return true
		}
	}
	return false
}
