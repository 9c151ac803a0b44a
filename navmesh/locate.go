package navmesh

import "github.com/katalvlaran/polynav/geom"

// Locate returns the id of the first polygon in layer li containing p,
// and true. For points on a shared edge (or vertex), every polygon
// touching it contains p within tolerance and the one with the smallest
// id is returned; which side of the edge that polygon lies on is not
// considered. Returns ok=false if p lies outside every polygon of the
// layer, or if the layer hasn't been baked.
func (m *Mesh) Locate(li int, p geom.Point) (poly int32, ok bool) {
	if li < 0 || li >= len(m.Layers) {
		return 0, false
	}
	layer := &m.Layers[li]
	if !layer.baked {
		return 0, false
	}

	best := int32(-1)
	for _, pid := range layer.index.candidates(p) {
		if pointInPolygon(layer, layer.Polygons[pid], p) {
			// Prefer the polygon with the smaller id among ties so the
			// result is deterministic for points exactly on a shared
			// edge (both polygons report the point as "inside" within
			// tolerance; the lower-indexed one wins).
			if best == -1 || pid < best {
				best = pid
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// pointInPolygon reports whether p lies inside (or on the boundary,
// within geom.Epsilon, of) polygon p's CCW loop.
func pointInPolygon(l *Layer, poly Polygon, p geom.Point) bool {
	for e := 0; e < poly.NumEdges(); e++ {
		a, b := poly.Edge(e)
		pa, pb := l.localPoint(a), l.localPoint(b)
		side := geom.Orient2D(pa, pb, p)
		if side < -geom.Epsilon {
			return false
		}
	}
	return true
}

// PointInMesh reports whether p lies inside some traversable polygon of
// layer 0. Use Locate directly for multi-layer meshes.
func (m *Mesh) PointInMesh(p geom.Point) bool {
	_, ok := m.Locate(0, p)
	return ok
}

// GetPointLocation returns the polygon id containing p in layer 0.
func (m *Mesh) GetPointLocation(p geom.Point) (int32, bool) {
	return m.Locate(0, p)
}
