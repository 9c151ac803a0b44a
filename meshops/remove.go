package meshops

import "github.com/katalvlaran/polynav/navmesh"

// RemoveUselessVertices drops every vertex of layer li whose fan is empty
// or consists only of the obstacle sentinel, then remaps every polygon's
// vertex indices to match the compacted vertex list.
func RemoveUselessVertices(m *navmesh.Mesh, li int) {
	layer := &m.Layers[li]

	keep := make([]bool, len(layer.Vertices))
	for vi, v := range layer.Vertices {
		keep[vi] = len(realPolygons(v.Fan)) > 0
	}

	remap := make([]int32, len(layer.Vertices))
	newVertices := make([]navmesh.Vertex, 0, len(layer.Vertices))
	for vi, v := range layer.Vertices {
		if !keep[vi] {
			remap[vi] = -1
			continue
		}
		remap[vi] = int32(len(newVertices))
		newVertices = append(newVertices, v)
	}

	for pi := range layer.Polygons {
		verts := layer.Polygons[pi].Vertices
		for i, vi := range verts {
			verts[i] = remap[vi]
		}
	}

	layer.Vertices = newVertices
}
