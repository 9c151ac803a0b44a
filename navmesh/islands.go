package navmesh

// computeIslands flood-fills polygon adjacency (two polygons are adjacent
// iff they share an edge) via a disjoint-set union-find, the same
// iterative-find-with-path-compression idiom prim_kruskal/kruskal.go uses
// for Kruskal's MST, generalized here from an edge list over vertex ids
// to an edge list over polygon ids.
func computeIslands(l *Layer) []int32 {
	n := len(l.Polygons)
	parent := make([]int32, n)
	rank := make([]int32, n)
	for i := range parent {
		parent[i] = int32(i)
	}

	var find func(x int32) int32
	find = func(x int32) int32 {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // path compression
			x = parent[x]
		}
		return x
	}
	union := func(a, b int32) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			ra, rb = rb, ra
		}
		parent[rb] = ra
		if rank[ra] == rank[rb] {
			rank[ra]++
		}
	}

	edgeOwners := make(map[[2]int32]int32, n*3)
	for pi, p := range l.Polygons {
		for e := 0; e < p.NumEdges(); e++ {
			a, b := p.Edge(e)
			k := edgeKeyOf(a, b)
			if owner, ok := edgeOwners[k]; ok {
				union(owner, int32(pi))
			} else {
				edgeOwners[k] = int32(pi)
			}
		}
	}

	islands := make([]int32, n)
	for i := range islands {
		islands[i] = find(int32(i))
	}
	return islands
}

// SameIsland reports whether polygons a and b (local indices within this
// layer) belong to the same connected component. Requires the layer to
// have been baked.
func (l *Layer) SameIsland(a, b int32) bool {
	if !l.baked {
		return false
	}
	return l.islands[a] == l.islands[b]
}
