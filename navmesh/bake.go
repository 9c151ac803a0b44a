package navmesh

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/polynav/geom"
)

// Bake builds, for every layer, the spatial index used for point
// location and the per-polygon island ids used to reject cross-island
// queries in O(1). It is idempotent: baking an already-baked mesh
// recomputes caches from scratch rather than erroring.
//
// Per spec.md §9's open question, island ids are computed per layer and
// never across layers, so IslandsValid() reports true only when the mesh
// has exactly one layer; for a stitched multi-layer mesh it reports
// false, and FindPath runs a full search rather than an O(1) island
// short-circuit.
func (m *Mesh) Bake() {
	for li := range m.Layers {
		bakeLayer(&m.Layers[li])
	}
	m.islandsValid = len(m.Layers) == 1
	m.ID = uuid.New()
}

// Unbake clears every cache built by Bake. Any structural mutation
// (meshops.MergePolygons, RemoveUselessVertices, ReorderNeighbors...)
// requires a subsequent Bake before the mesh can be searched again.
func (m *Mesh) Unbake() {
	for li := range m.Layers {
		l := &m.Layers[li]
		l.islands = nil
		l.index = nil
		l.centroids = nil
		l.baked = false
	}
	m.islandsValid = false
}

func bakeLayer(l *Layer) {
	l.index = buildSpatialIndex(l)
	l.centroids = make([]geom.Point, 0, len(l.Polygons))
	for _, p := range l.Polygons {
		l.centroids = append(l.centroids, centroidOfLayer(l, p))
	}
	l.islands = computeIslands(l)
	l.baked = true
}

// centroidOfLayer returns the centroid of polygon p, in the layer's
// offset-adjusted coordinate frame.
func centroidOfLayer(l *Layer, p Polygon) geom.Point {
	var c geom.Point
	for _, vi := range p.Vertices {
		c = c.Add(l.localPoint(vi))
	}
	return c.Scale(1 / float64(len(p.Vertices)))
}
