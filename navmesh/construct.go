package navmesh

import "github.com/katalvlaran/polynav/geom"

// New builds a single-layer Mesh from vertices and polygons whose fans
// have already been computed by the caller (e.g. the triangulation
// front-end). It validates the structural preconditions spec.md §4.2
// requires:
//
//  1. every polygon has at least 3 vertices;
//  2. every vertex has at least one real (non-obstacle) polygon in its fan;
//  3. fans are minimal (no duplicate consecutive entries) and contain no
//     two adjacent obstacle sentinels.
//
// New does not itself verify CCW rotational order or cross-reference
// consistency between a vertex's fan and the polygons that claim to
// contain it -- callers that build fans by hand should additionally run
// meshops.ReorderNeighborsCCWAndFixCorners, which re-sorts every fan CCW
// and re-inserts its obstacle sentinels (it reports no errors).
func New(vertices []Vertex, polygons []Polygon) (*Mesh, error) {
	for pi, p := range polygons {
		if len(p.Vertices) < 3 {
			return nil, invalidMesh("degenerate_polygon", "polygon %d has %d vertices, need >= 3", pi, len(p.Vertices))
		}
		for _, vi := range p.Vertices {
			if int(vi) < 0 || int(vi) >= len(vertices) {
				return nil, invalidMesh("bad_vertex_ref", "polygon %d references out-of-range vertex %d", pi, vi)
			}
		}
	}
	for vi, v := range vertices {
		if len(v.Fan) == 0 {
			return nil, invalidMesh("empty_fan", "vertex %d has no polygons in its fan", vi)
		}
		hasReal := false
		for i, e := range v.Fan {
			if !e.IsObstacle() {
				hasReal = true
			}
			if i > 0 && e.IsObstacle() && v.Fan[i-1].IsObstacle() {
				return nil, invalidMesh("adjacent_obstacles", "vertex %d has two adjacent obstacle entries", vi)
			}
			if i > 0 && e == v.Fan[i-1] {
				return nil, invalidMesh("duplicate_fan_entry", "vertex %d has duplicate consecutive fan entry", vi)
			}
		}
		if !hasReal {
			return nil, invalidMesh("all_obstacle_fan", "vertex %d's fan has no real polygon", vi)
		}
	}

	layer := Layer{Vertices: vertices, Polygons: polygons}
	return &Mesh{Layers: []Layer{layer}}, nil
}

// NewFromTriangles builds a single-layer Mesh from a flat vertex list and
// CCW vertex-index triples, deriving per-vertex fans (with obstacle
// sentinels wherever two triangles sharing a vertex don't share an edge)
// automatically. This is the entry point spec.md §6 calls "(b) a triangle
// list ... from which fans are derived".
func NewFromTriangles(points []geom.Point, triangles [][3]int32) (*Mesh, error) {
	polygons := make([][]int32, len(triangles))
	for i, tri := range triangles {
		polygons[i] = []int32{tri[0], tri[1], tri[2]}
	}
	return NewFromPolygons(points, polygons)
}

// NewFromPolygons builds a single-layer Mesh from a flat vertex list and
// CCW vertex-index loops of arbitrary size, deriving per-vertex fans the
// same way NewFromTriangles does. This is the general entry point
// importers for formats with non-triangular faces (Recast polygon
// meshes allow up to 6 vertices per polygon) build on; NewFromTriangles
// is the triangle-only special case of this.
func NewFromPolygons(points []geom.Point, polys [][]int32) (*Mesh, error) {
	polygons := make([]Polygon, len(polys))
	for i, vs := range polys {
		polygons[i] = Polygon{Vertices: append([]int32(nil), vs...)}
	}

	// incident[v] lists the polygon ids touching vertex v, in no
	// particular order yet.
	incident := make([][]int32, len(points))
	for pi, p := range polygons {
		for _, vi := range p.Vertices {
			incident[vi] = append(incident[vi], int32(pi))
		}
	}

	vertices := make([]Vertex, len(points))
	for vi := range points {
		vertices[vi].Point = points[vi]
		if len(incident[vi]) == 0 {
			continue
		}
		vertices[vi].Fan = buildVertexFan(int32(vi), incident[vi], polygons)
	}

	return New(vertices, polygons)
}

// buildVertexFan orders the polygons incident to vertex v into a single
// CCW fan (splitting into multiple runs, each terminated by an obstacle
// sentinel, if v sits on more than one boundary) by chaining each
// polygon's "incoming" edge (previous-vertex-in-loop, v) to whichever
// other incident polygon has that same edge as its own "outgoing" edge
// (v, next-vertex-in-loop). Two polygons consecutive in the fan this
// way share an edge through v with opposite winding, which is exactly
// what a manifold triangulation guarantees for every interior edge.
func buildVertexFan(v int32, incident []int32, polygons []Polygon) []FanEntry {
	prevOf := make(map[int32]int32, len(incident)) // poly -> predecessor vertex before v
	nextOf := make(map[int32]int32, len(incident)) // poly -> successor vertex after v
	for _, pid := range incident {
		p := polygons[pid]
		n := len(p.Vertices)
		for i, vv := range p.Vertices {
			if vv != v {
				continue
			}
			prevOf[pid] = p.Vertices[(i-1+n)%n]
			nextOf[pid] = p.Vertices[(i+1)%n]
			break
		}
	}

	// byNext maps "the vertex following v in some polygon's loop" to that
	// polygon, so we can find, for polygon p's incoming edge (u,v), the
	// polygon q whose outgoing edge is (v,u): q is p's CCW successor.
	byNext := make(map[int32]int32, len(incident))
	for pid, u := range nextOf {
		byNext[u] = pid
	}
	chainNext := make(map[int32]int32, len(incident))
	for pid, u := range prevOf {
		if q, ok := byNext[u]; ok {
			chainNext[pid] = q
		}
	}

	reached := make(map[int32]bool, len(incident))
	for _, q := range chainNext {
		reached[q] = true
	}

	fan := make([]FanEntry, 0, len(incident)+1)
	visited := make(map[int32]bool, len(incident))

	emitChain := func(start int32, closeLoop bool) {
		cur := start
		for {
			if visited[cur] {
				break
			}
			visited[cur] = true
			fan = append(fan, PackRef(0, int(cur)))
			next, ok := chainNext[cur]
			if !ok {
				break
			}
			cur = next
		}
		if !closeLoop {
			fan = append(fan, ObstacleEntry)
		}
	}

	// Open chains first: polygons nothing else chains into are boundary
	// starts.
	for _, pid := range incident {
		if !reached[pid] {
			emitChain(pid, false)
		}
	}
	// Whatever remains unvisited forms one or more closed loops (v is a
	// fully interior vertex with no boundary on this run): no obstacle
	// needed, the fan wraps.
	for _, pid := range incident {
		if !visited[pid] {
			emitChain(pid, true)
		}
	}

	return fan
}

func edgeKeyOf(a, b int32) [2]int32 {
	if a > b {
		a, b = b, a
	}
	return [2]int32{a, b}
}
