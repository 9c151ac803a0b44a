package polyanya

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// unitSquareMesh builds a single quad (0,0)-(4,0)-(4,4)-(0,4), split into
// two triangles along the (0,0)-(4,4) diagonal, baked and ready to search.
func unitSquareMesh(t *testing.T) *navmesh.Mesh {
	t.Helper()
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	}
	tris := [][3]int32{{0, 1, 2}, {0, 2, 3}}
	mesh, err := navmesh.NewFromTriangles(points, tris)
	require.NoError(t, err)
	mesh.Bake()
	return mesh
}

func TestFindPath_SameTriangle_ReturnsStraightLine(t *testing.T) {
	mesh := unitSquareMesh(t)
	from := geom.Point{X: 1, Y: 0.5}
	to := geom.Point{X: 3, Y: 0.5}

	path, ok := FindPath(mesh, from, to)
	require.True(t, ok)
	assert.InDelta(t, from.Dist(to), path.Length, 1e-6)
	// Waypoints run from the query's start (excluded) to its goal
	// (included); a straight line within one polygon has no bends.
	require.Len(t, path.Waypoints, 1)
	assert.True(t, path.Waypoints[0].Almost(to))
}

func TestFindPath_AcrossDiagonal_ReturnsStraightLine(t *testing.T) {
	mesh := unitSquareMesh(t)
	from := geom.Point{X: 3, Y: 0.5}
	to := geom.Point{X: 0.5, Y: 3}

	path, ok := FindPath(mesh, from, to)
	require.True(t, ok)
	assert.InDelta(t, from.Dist(to), path.Length, 1e-6)
}

// lChannelMesh builds a 3-wide corridor that bends 90 degrees around an
// obstacle corner at (3,3), forcing the taut path to touch that corner
// rather than run straight from start to goal.
func lChannelMesh(t *testing.T) *navmesh.Mesh {
	t.Helper()
	// Outer boundary plus the reflex corner at (3,3):
	//   0:(0,0) 1:(6,0) 2:(6,3) 3:(3,3) 4:(3,6) 5:(0,6)
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 3},
		{X: 3, Y: 3}, {X: 3, Y: 6}, {X: 0, Y: 6},
	}
	tris := [][3]int32{
		{0, 1, 3}, {1, 2, 3}, {0, 3, 4}, {0, 4, 5},
	}
	mesh, err := navmesh.NewFromTriangles(points, tris)
	require.NoError(t, err)
	mesh.Bake()
	return mesh
}

func TestFindPath_BendsAroundCorner(t *testing.T) {
	mesh := lChannelMesh(t)
	from := geom.Point{X: 5, Y: 2.9}
	to := geom.Point{X: 0.5, Y: 5}

	path, ok := FindPath(mesh, from, to)
	require.True(t, ok)

	corner := geom.Point{X: 3, Y: 3}
	want := from.Dist(corner) + corner.Dist(to)
	assert.InDelta(t, want, path.Length, 1e-6)

	// straight line would cut through the obstacle corner's far side, so
	// the taut path must be strictly longer than the straight distance.
	assert.Greater(t, path.Length, from.Dist(to))

	foundBend := false
	for _, w := range path.Waypoints {
		if w.Almost(corner) {
			foundBend = true
		}
	}
	assert.True(t, foundBend, "path should bend at the obstacle corner, got %v", path.Waypoints)
}

func TestFindPath_TriangleInequalityHolds(t *testing.T) {
	mesh := lChannelMesh(t)
	from := geom.Point{X: 5, Y: 0.5}
	to := geom.Point{X: 0.5, Y: 5}

	path, ok := FindPath(mesh, from, to)
	require.True(t, ok)
	assert.GreaterOrEqual(t, path.Length, from.Dist(to)-1e-9)

	// path.Waypoints excludes the query's own start point, so the first leg
	// (from -> first waypoint) has to be added back in by hand.
	require.NotEmpty(t, path.Waypoints)
	sum := from.Dist(path.Waypoints[0])
	for i := 1; i < len(path.Waypoints); i++ {
		sum += path.Waypoints[i-1].Dist(path.Waypoints[i])
	}
	assert.InDelta(t, path.Length, sum, 1e-6)
}

func TestFindPath_OutOfMeshStart_ReturnsNotFound(t *testing.T) {
	mesh := unitSquareMesh(t)
	from := geom.Point{X: -50, Y: -50}
	to := geom.Point{X: 1, Y: 1}

	_, ok := FindPath(mesh, from, to)
	assert.False(t, ok)
}

func TestFindPath_OutOfMeshGoal_ReturnsNotFound(t *testing.T) {
	mesh := unitSquareMesh(t)
	from := geom.Point{X: 1, Y: 1}
	to := geom.Point{X: 1000, Y: 1000}

	_, ok := FindPath(mesh, from, to)
	assert.False(t, ok)
}

// twoIslandMesh builds two disjoint triangles sharing no edge or vertex,
// so the mesh has two islands once baked.
func twoIslandMesh(t *testing.T) *navmesh.Mesh {
	t.Helper()
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
		{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 11},
	}
	tris := [][3]int32{{0, 1, 2}, {3, 4, 5}}
	mesh, err := navmesh.NewFromTriangles(points, tris)
	require.NoError(t, err)
	mesh.Bake()
	return mesh
}

func TestFindPath_CrossIsland_ReturnsNotFound(t *testing.T) {
	mesh := twoIslandMesh(t)
	require.True(t, mesh.IslandsValid())

	from := geom.Point{X: 0.25, Y: 0.25}
	to := geom.Point{X: 10.25, Y: 10.25}

	_, ok := FindPath(mesh, from, to)
	assert.False(t, ok)
}

func TestFindPath_SameStartAndGoal_ReturnsZeroLength(t *testing.T) {
	mesh := unitSquareMesh(t)
	p := geom.Point{X: 1, Y: 1}

	path, ok := FindPath(mesh, p, p)
	require.True(t, ok)
	assert.Equal(t, 0.0, path.Length)
}

func TestFindPath_RespectsMaxIterations(t *testing.T) {
	mesh := lChannelMesh(t)
	from := geom.Point{X: 5, Y: 0.5}
	to := geom.Point{X: 0.5, Y: 5}

	_, ok := FindPath(mesh, from, to, WithMaxIterations(1))
	assert.False(t, ok)
}

func TestLowerBoundThroughDoorway_IsAdmissible(t *testing.T) {
	root := geom.Point{X: 0, Y: 0}
	left := geom.Point{X: 2, Y: 1}
	right := geom.Point{X: 2, Y: -1}
	goal := geom.Point{X: 5, Y: 3}

	bound, p := lowerBoundThroughDoorway(root, left, right, goal)
	assert.GreaterOrEqual(t, p.X, left.X-1e-9)
	assert.LessOrEqual(t, bound, root.Dist(left)+left.Dist(goal)+1e-9)
	assert.LessOrEqual(t, bound, root.Dist(right)+right.Dist(goal)+1e-9)

	direct := root.Dist(goal)
	assert.True(t, bound >= direct-1e-9 || math.Abs(bound-direct) < 1e-6)
}
