package navmesh

import "github.com/katalvlaran/polynav/geom"

// StitchTolerance bounds how far apart two vertex coordinates (after
// applying their respective layer offsets) may be while still being
// treated as "the same point" for cross-layer adjacency purposes.
const StitchTolerance = 1e-6

// AddLayer appends a new layer (with its own offset already applied to
// l.Offset) to the mesh and attempts to stitch it to every existing layer
// by matching vertex coordinates modulo offsets: wherever a vertex of the
// new layer coincides (within StitchTolerance) with a vertex of an
// existing layer, the two vertices' fans are merged so that a polygon on
// one layer can be reached, as a search successor, from a polygon on the
// other.
//
// AddLayer does not bake the mesh; callers must call Bake afterwards.
func (m *Mesh) AddLayer(l Layer) {
	newIdx := len(m.Layers)
	for existingIdx := range m.Layers {
		stitchLayers(&m.Layers[existingIdx], existingIdx, &l, newIdx)
	}
	m.Layers = append(m.Layers, l)
}

// stitchLayers merges fan entries for coincident vertices between a and
// b, in both directions, so each gains a reference into the other.
func stitchLayers(a *Layer, aIdx int, b *Layer, bIdx int) {
	// Build a coordinate index for b's vertices once, rather than an
	// O(|a|*|b|) nested scan, for meshes with many layers.
	type coordEntry struct {
		idx int32
	}
	bByCoord := make(map[[2]int64]coordEntry, len(b.Vertices))
	key := func(p geom.Point) [2]int64 {
		const scale = 1.0 / StitchTolerance
		return [2]int64{int64(p.X * scale), int64(p.Y * scale)}
	}
	for vi := range b.Vertices {
		bByCoord[key(b.localPoint(int32(vi)))] = coordEntry{idx: int32(vi)}
	}

	for ai := range a.Vertices {
		ap := a.localPoint(int32(ai))
		if match, ok := bByCoord[key(ap)]; ok {
			mergeFans(a, int32(ai), aIdx, b, match.idx, bIdx)
		}
	}
}

// mergeFans appends b's fan entries (repacked with bIdx) to the end of
// a's fan at vertex av, and a's original entries (repacked with aIdx) to
// the end of b's fan at bv. The merged fans are not re-sorted, so they
// are not in CCW order in general; reordering them is left to
// meshops.ReorderNeighborsCCWAndFixCorners, which callers should run
// after stitching multiple independently-authored layers.
func mergeFans(a *Layer, av int32, aIdx int, b *Layer, bv int32, bIdx int) {
	repack := func(fan []FanEntry, toLayer int) []FanEntry {
		out := make([]FanEntry, len(fan))
		for i, e := range fan {
			if e.IsObstacle() {
				out[i] = e
				continue
			}
			_, poly := e.Unpack()
			out[i] = PackRef(toLayer, poly)
		}
		return out
	}
	aFan := a.Vertices[av].Fan
	bFanRepacked := repack(b.Vertices[bv].Fan, bIdx)
	a.Vertices[av].Fan = append(append([]FanEntry{}, aFan...), bFanRepacked...)

	bFan := b.Vertices[bv].Fan
	aFanRepacked := repack(a.Vertices[av].Fan[:len(aFan)], aIdx)
	b.Vertices[bv].Fan = append(append([]FanEntry{}, bFan...), aFanRepacked...)
}
