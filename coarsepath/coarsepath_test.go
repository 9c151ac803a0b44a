package coarsepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// squareMesh is the same two-triangle unit square used by the polyanya
// package's own tests: (0,0)-(4,0)-(4,4)-(0,4) split along the diagonal.
func squareMesh(t *testing.T) *navmesh.Mesh {
	t.Helper()
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	tris := [][3]int32{{0, 1, 2}, {0, 2, 3}}
	mesh, err := navmesh.NewFromTriangles(points, tris)
	require.NoError(t, err)
	mesh.Bake()
	return mesh
}

func TestBuild_RejectsUnbakedMesh(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	mesh, err := navmesh.NewFromTriangles(points, [][3]int32{{0, 1, 2}, {0, 2, 3}})
	require.NoError(t, err)

	_, err = Build(mesh)
	assert.ErrorIs(t, err, ErrNotBaked)
}

func TestDistance_SamePolygon_IsZero(t *testing.T) {
	mesh := squareMesh(t)
	g, err := Build(mesh)
	require.NoError(t, err)

	dist, ok, err := g.Distance(geom.Point{X: 1, Y: 0.5}, geom.Point{X: 3, Y: 0.5})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.0, dist)
}

func TestDistance_AcrossDiagonal_IsPositiveCentroidHop(t *testing.T) {
	mesh := squareMesh(t)
	g, err := Build(mesh)
	require.NoError(t, err)

	// (3,0.5) sits in triangle {0,1,2}; (0.5,3) sits in triangle {0,2,3}.
	dist, ok, err := g.Distance(geom.Point{X: 3, Y: 0.5}, geom.Point{X: 0.5, Y: 3})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Greater(t, dist, 0.0)
}

func TestDistance_OutOfMesh_ReturnsErrOutOfMesh(t *testing.T) {
	mesh := squareMesh(t)
	g, err := Build(mesh)
	require.NoError(t, err)

	_, _, err = g.Distance(geom.Point{X: 100, Y: 100}, geom.Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrOutOfMesh)
}

func TestPath_AcrossDiagonal_VisitsBothCentroids(t *testing.T) {
	mesh := squareMesh(t)
	g, err := Build(mesh)
	require.NoError(t, err)

	points, dist, ok, err := g.Path(geom.Point{X: 3, Y: 0.5}, geom.Point{X: 0.5, Y: 3})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Greater(t, dist, 0.0)
	assert.Len(t, points, 2)
}

func TestDistance_DisjointIslands_NotOK(t *testing.T) {
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11},
	}
	tris := [][3]int32{{0, 1, 2}, {3, 4, 5}}
	mesh, err := navmesh.NewFromTriangles(points, tris)
	require.NoError(t, err)
	mesh.Bake()

	g, err := Build(mesh)
	require.NoError(t, err)

	_, ok, err := g.Distance(geom.Point{X: 0.3, Y: 0.3}, geom.Point{X: 10.3, Y: 10.3})
	require.NoError(t, err)
	assert.False(t, ok)
}
