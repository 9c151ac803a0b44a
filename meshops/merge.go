package meshops

import (
	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// MergePolygons iteratively merges pairs of edge-adjacent polygons in
// layer li whose union is still a convex, CCW polygon, using union-find
// over polygon ids (the same disjoint-set idiom navmesh's island baking
// and the teacher corpus's Kruskal implementation use). It repeats until
// a fixed point: no remaining pair of neighbors can be merged without
// losing convexity.
//
// Contract (spec.md §4.4): path lengths through the mesh are unchanged
// by merging, within a small tolerance, and the mesh must be re-baked
// (navmesh.Mesh.Bake) before further path queries; MergePolygons itself
// does not bake.
func MergePolygons(m *navmesh.Mesh, li int) {
	layer := &m.Layers[li]
	n := len(layer.Polygons)
	if n == 0 {
		return
	}

	parent := make([]int32, n)
	for i := range parent {
		parent[i] = int32(i)
	}
	var find func(x int32) int32
	find = func(x int32) int32 {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	active := make([]navmesh.Polygon, n)
	copy(active, layer.Polygons)
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	for {
		merged := false
		for pid := 0; pid < n; pid++ {
			root := find(int32(pid))
			if !alive[root] {
				continue
			}
			p := active[root]
			mergedThisPoly := false
			for e := 0; e < p.NumEdges() && !mergedThisPoly; e++ {
				a, b := p.Edge(e)
				qid, ok := findEdgeNeighbor(active, alive, root, a, b)
				if !ok || qid == root {
					continue
				}
				union, ok := mergeAcrossEdge(active[root], active[qid], a, b)
				if !ok || !isConvexCCW(layer, union) {
					continue
				}
				active[root] = navmesh.Polygon{Vertices: union, OneWay: p.OneWay && active[qid].OneWay}
				alive[qid] = false
				parent[qid] = int32(root)
				merged = true
				mergedThisPoly = true
			}
		}
		if !merged {
			break
		}
	}

	newPolygons := make([]navmesh.Polygon, 0, n)
	oldToNew := make(map[int32]int32, n)
	for pid := 0; pid < n; pid++ {
		root := find(int32(pid))
		if _, ok := oldToNew[root]; ok {
			continue
		}
		oldToNew[root] = int32(len(newPolygons))
		newPolygons = append(newPolygons, active[root])
	}

	layer.Polygons = newPolygons
	rebuildFansFromPolygons(layer, li)
	// The rebuilt fans are unordered and carry no obstacle sentinels;
	// restore CCW order and corners so NeighborAcrossEdge stays correct.
	ReorderNeighborsCCWAndFixCorners(m, li)
}

// findEdgeNeighbor scans every other alive polygon for one that owns the
// edge (b,a) -- the opposite winding of (a,b) -- making it root's
// neighbor across that edge.
func findEdgeNeighbor(active []navmesh.Polygon, alive []bool, root int, a, b int32) (int, bool) {
	for qid, q := range active {
		if qid == root || !alive[qid] {
			continue
		}
		for e := 0; e < q.NumEdges(); e++ {
			x, y := q.Edge(e)
			if x == b && y == a {
				return qid, true
			}
		}
	}
	return 0, false
}

// mergeAcrossEdge splices q's vertex loop into p's, removing the shared
// edge (a,b) in p / (b,a) in q, producing a single CCW loop: a, q's
// interior vertices, b, p's interior vertices, back to a.
func mergeAcrossEdge(p, q navmesh.Polygon, a, b int32) ([]int32, bool) {
	ia := indexOf(p.Vertices, a)
	ib := indexOf(q.Vertices, b)
	if ia < 0 || ib < 0 {
		return nil, false
	}
	n, m := len(p.Vertices), len(q.Vertices)
	if p.Vertices[(ia+1)%n] != b || q.Vertices[(ib+1)%m] != a {
		return nil, false
	}

	merged := make([]int32, 0, n+m-2)
	merged = append(merged, a)
	for j := (ib + 2) % m; q.Vertices[j] != b; j = (j + 1) % m {
		merged = append(merged, q.Vertices[j])
		if len(merged) > n+m { // defensive: malformed loop, avoid infinite loop
			return nil, false
		}
	}
	merged = append(merged, b)
	for k := (ia + 2) % n; p.Vertices[k] != a; k = (k + 1) % n {
		merged = append(merged, p.Vertices[k])
		if len(merged) > n+m {
			return nil, false
		}
	}
	return merged, true
}

func indexOf(s []int32, v int32) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// isConvexCCW reports whether loop is a simple, convex, CCW-oriented
// polygon: every vertex triple turns counter-clockwise (or is collinear),
// and no vertex repeats.
func isConvexCCW(layer *navmesh.Layer, loop []int32) bool {
	seen := make(map[int32]bool, len(loop))
	for _, v := range loop {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	n := len(loop)
	if n < 3 {
		return false
	}
	point := func(i int) geom.Point {
		return layer.Vertices[loop[i]].Point.Add(layer.Offset)
	}
	for i := 0; i < n; i++ {
		prev := point((i - 1 + n) % n)
		cur := point(i)
		next := point((i + 1) % n)
		if geom.OrientationOf(prev, cur, next) == geom.CW {
			return false
		}
	}
	return true
}

func rebuildFansFromPolygons(layer *navmesh.Layer, li int) {
	// Clear every vertex's fan; it will be rebuilt purely from which
	// polygons now reference it.
	for vi := range layer.Vertices {
		layer.Vertices[vi].Fan = nil
	}
	incident := make(map[int32][]int32, len(layer.Vertices))
	for pid, p := range layer.Polygons {
		for _, vi := range p.Vertices {
			incident[vi] = append(incident[vi], int32(pid))
		}
	}
	for vi, polys := range incident {
		fan := make([]navmesh.FanEntry, len(polys))
		for i, pid := range polys {
			fan[i] = navmesh.PackRef(li, int(pid))
		}
		layer.Vertices[vi].Fan = fan
	}
}
