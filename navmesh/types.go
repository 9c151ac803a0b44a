package navmesh

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/polynav/geom"
)

// obstacleSentinel is the reserved all-ones FanEntry value marking a gap
// in a vertex's polygon fan where no traversable polygon exists -- the sum
// type spec.md's design notes recommend (Real(polygon_id) | Obstacle),
// packed into a uint32 for cache locality and exposed only through
// FanEntry's accessor methods.
const obstacleSentinel uint32 = 0xFFFFFFFF

// layerShift is the bit position at which a cross-layer polygon reference
// packs its layer index; the low layerShift bits hold the polygon's local
// index within that layer.
const layerShift = 24
const layerMask = (uint32(1) << layerShift) - 1

// FanEntry is one slot of a Vertex's ordered polygon fan: either a real
// cross-layer polygon reference, or the obstacle sentinel. Algorithmic
// code must never inspect the raw value; use Polygon/IsObstacle/PackRef.
type FanEntry uint32

// ObstacleEntry is the FanEntry value denoting a non-traversable gap.
const ObstacleEntry FanEntry = FanEntry(obstacleSentinel)

// PackRef packs a (layer, polygon-in-layer) pair into a cross-layer
// reference. Panics if layer or poly don't fit their reserved bit widths.
func PackRef(layer, poly int) FanEntry {
	if layer < 0 || layer > 0xFF || poly < 0 || uint32(poly) >= layerMask {
		panic("navmesh: layer/polygon index out of range for packed ref")
	}
	return FanEntry((uint32(layer) << layerShift) | uint32(poly))
}

// IsObstacle reports whether this fan slot is the obstacle sentinel.
func (f FanEntry) IsObstacle() bool { return uint32(f) == obstacleSentinel }

// Unpack returns the (layer, polygon-in-layer) pair this entry refers to.
// Calling Unpack on the obstacle sentinel returns (-1, -1).
func (f FanEntry) Unpack() (layer, poly int) {
	if f.IsObstacle() {
		return -1, -1
	}
	return int(uint32(f) >> layerShift), int(uint32(f) & layerMask)
}

// Vertex is a point of the mesh together with the ordered, CCW, minimal
// fan of polygons incident to it. Corners -- the only possible turning
// points of a shortest path -- are vertices whose fan contains at least
// one ObstacleEntry.
type Vertex struct {
	Point geom.Point
	Fan   []FanEntry
}

// IsCorner reports whether v's fan contains an obstacle sentinel.
func (v Vertex) IsCorner() bool {
	for _, e := range v.Fan {
		if e.IsObstacle() {
			return true
		}
	}
	return false
}

// Polygon is a CCW loop of vertex indices (local to one Layer) plus a
// OneWay hint: true iff the polygon has at most one traversable neighbor,
// letting the search skip enumerating its other edges (spec.md §4.1
// pruning rule 4).
type Polygon struct {
	Vertices []int32
	OneWay   bool
}

// NumEdges returns the number of edges of the polygon (equal to the
// number of vertices, since the loop is cyclic).
func (p Polygon) NumEdges() int { return len(p.Vertices) }

// Edge returns the i-th edge's two vertex indices, 0 <= i < NumEdges().
func (p Polygon) Edge(i int) (int32, int32) {
	n := len(p.Vertices)
	return p.Vertices[i], p.Vertices[(i+1)%n]
}

// Layer is one connected sheet of vertices and polygons, plus the bake
// caches built by Mesh.Bake: per-polygon island ids, a spatial index for
// point location, optional per-vertex heights (Recast detail meshes
// only), and an (x, y) translation applied when stitching multiple
// sheets into one Mesh.
type Layer struct {
	Vertices []Vertex
	Polygons []Polygon
	Offset   geom.Point
	Height   []float64 // len(Height) == len(Vertices) if present, else nil

	islands   []int32 // len == len(Polygons) once baked; nil until then
	index     *spatialIndex
	centroids []geom.Point
	baked     bool
}

// HasHeight reports whether this layer carries a per-vertex height
// channel (populated by a Recast detail-mesh importer).
func (l *Layer) HasHeight() bool { return l.Height != nil }

// localPoint returns vertex i's point with the layer offset applied --
// the coordinate frame cross-layer adjacency and search geometry operate
// in.
func (l *Layer) localPoint(i int32) geom.Point {
	return l.Vertices[i].Point.Add(l.Offset)
}

// Mesh is an ordered list of layers with optional cross-layer bake data.
// A Mesh is built once, optionally baked, then used for many concurrent
// read-only path queries: Mesh itself holds no mutex, callers are
// responsible for serializing any call to Bake/Unbake/structural mutators
// against concurrent Path calls (spec.md §5).
type Mesh struct {
	Layers []Layer

	// ID is a stable per-bake identifier, useful only for correlating log
	// lines/traces across repeated bakes of structurally-identical data;
	// it plays no role in path semantics.
	ID uuid.UUID

	// islandsValid reports whether the last bake's per-layer island ids
	// cover the whole mesh -- true only for single-layer meshes (spec.md
	// §9 open question: islands are not computed across stitched layers).
	islandsValid bool
}

// IslandsValid reports whether the last Bake computed island ids for
// cross-island rejection. It is false for any mesh with more than one
// layer: stitched multi-layer meshes don't get the O(1) cross-island
// short-circuit, and FindPath falls back to running the full search even for
// queries that turn out to have no path.
func (m *Mesh) IslandsValid() bool { return m.islandsValid }

// Baked reports whether every layer's caches are current.
func (m *Mesh) Baked() bool {
	for i := range m.Layers {
		if !m.Layers[i].baked {
			return false
		}
	}
	return len(m.Layers) > 0
}

// VertexPoint returns vertex v's coordinates in layer li, with that
// layer's offset applied -- the coordinate frame every cross-layer
// adjacency and search computation operates in. Exported for the search
// engine, which must resolve edge endpoints to world-space points without
// reaching into package-private layer state.
func (m *Mesh) VertexPoint(li int, v int32) geom.Point {
	return m.Layers[li].localPoint(v)
}
