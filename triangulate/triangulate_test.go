package triangulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/triangulate"
)

func TestBuild_RejectsTinyBoundary(t *testing.T) {
	_, err := triangulate.Build([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, nil, triangulate.DefaultOptions())
	assert.ErrorIs(t, err, triangulate.ErrEmptyBoundary)
}

func TestBuild_OpenSquareHasTraversableFaces(t *testing.T) {
	boundary := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	layer, err := triangulate.Build(boundary, nil, triangulate.DefaultOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, layer.Polygons)
	assert.NotEmpty(t, layer.Vertices)
}

func TestBuild_WithObstacleExcludesItsFaces(t *testing.T) {
	boundary := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	obstacle := []geom.Point{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}}
	layer, err := triangulate.Build(boundary, [][]geom.Point{obstacle}, triangulate.DefaultOptions())
	require.NoError(t, err)
	for _, p := range layer.Polygons {
		var cx, cy float64
		for _, vi := range p.Vertices {
			cx += layer.Vertices[vi].Point.X
			cy += layer.Vertices[vi].Point.Y
		}
		n := float64(len(p.Vertices))
		cx /= n
		cy /= n
		inObstacle := cx > 4 && cx < 6 && cy > 4 && cy < 6
		assert.False(t, inObstacle, "face centroid (%f,%f) should not be inside the obstacle", cx, cy)
	}
}

func TestSimplify_RemovesNearCollinearPoints(t *testing.T) {
	loop := []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 0.001}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	simplified := triangulate.Simplify(loop, 0.1)
	assert.Less(t, len(simplified), len(loop))
}
