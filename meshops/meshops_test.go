package meshops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/meshops"
	"github.com/katalvlaran/polynav/navmesh"
)

func squareMesh(t *testing.T) *navmesh.Mesh {
	t.Helper()
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	triangles := [][3]int32{{0, 1, 2}, {0, 2, 3}}
	mesh, err := navmesh.NewFromTriangles(points, triangles)
	require.NoError(t, err)
	return mesh
}

func TestRemoveUselessVertices_NoOpOnCleanMesh(t *testing.T) {
	mesh := squareMesh(t)
	before := len(mesh.Layers[0].Vertices)
	meshops.RemoveUselessVertices(mesh, 0)
	assert.Equal(t, before, len(mesh.Layers[0].Vertices))
}

func TestMergePolygons_UnitSquareBecomesOneConvexFace(t *testing.T) {
	mesh := squareMesh(t)
	meshops.MergePolygons(mesh, 0)
	require.Len(t, mesh.Layers[0].Polygons, 1)
	assert.Len(t, mesh.Layers[0].Polygons[0].Vertices, 4)

	mesh.Bake()
	require.True(t, mesh.Baked())
	_, ok := mesh.Locate(0, geom.Point{X: 0.5, Y: 0.5})
	assert.True(t, ok)
}

func TestReorderNeighborsCCWAndFixCorners_PreservesFanValidity(t *testing.T) {
	mesh := squareMesh(t)
	meshops.ReorderNeighborsCCWAndFixCorners(mesh, 0)
	mesh.Bake()
	require.True(t, mesh.Baked())
	for _, v := range mesh.Layers[0].Vertices {
		assert.NotEmpty(t, v.Fan)
	}
}
