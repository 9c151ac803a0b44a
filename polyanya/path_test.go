package polyanya

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polynav/formats"
	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
	"github.com/katalvlaran/polynav/triangulate"
)

// arenaMeshASCII is the 48x48 arena fixture from the Polyanya reference
// implementation's own test suite (a 112-vertex, 55-polygon mesh with
// several interior obstacles), transcribed here in the project's own
// line-oriented ASCII format so the concrete scenario lengths below
// reproduce the reference implementation's own expected values exactly.
const arenaMeshASCII = `mesh
2
112 55
2 2 2 -1 1
1 3 2 6 -1
2 3 5 5 6 -1 1 0
3 2 4 2 0 1 -1
3 1 2 2 -1
15 1 2 -1 2
15 3 4 -1 5 0 2
18 3 4 4 16 5 -1
18 2 2 -1 4
19 1 2 3 -1
20 1 2 -1 3
20 2 3 16 3 -1
19 2 4 3 16 4 -1
23 2 3 16 -1 28
23 1 2 28 -1
23 8 4 5 16 39 -1
24 7 4 39 16 41 -1
24 8 2 -1 39
23 10 3 5 -1 54
15 15 4 5 -1 46 51
18 18 2 -1 53
19 15 3 5 54 -1
19 18 4 -1 54 52 53
18 19 4 52 38 -1 53
15 19 3 46 -1 38
3 15 4 5 51 -1 6
1 15 2 6 -1
3 18 4 51 46 7 -1
2 18 2 7 -1
2 23 4 46 17 -1 7
1 23 2 -1 17
3 48 2 -1 8
15 48 2 8 -1
19 48 2 -1 9
20 48 2 9 -1
24 48 2 22 -1
24 47 4 21 22 -1 10
23 46 6 42 47 21 10 -1 27
23 47 2 -1 10
19 47 3 45 9 -1
20 46 4 27 -1 9 45
15 47 3 45 -1 8
3 47 4 11 45 8 -1
1 47 2 11 -1
1 35 2 -1 11
2 35 4 45 11 -1 12
2 34 2 -1 12
3 34 4 -1 13 45 12
1 31 2 14 -1
3 31 3 14 13 -1
3 30 3 -1 13 14
1 30 2 -1 14
3 27 4 18 46 13 -1
2 27 2 -1 18
1 26 2 -1 17
2 26 4 17 46 18 -1
15 31 4 38 -1 13 46
15 35 4 27 45 13 -1
18 35 4 42 27 -1 48
18 34 2 -1 48
19 31 6 52 54 31 47 -1 38
19 34 4 -1 47 42 48
31 31 3 47 31 -1
31 35 3 19 47 -1
34 34 2 -1 15
34 35 4 19 -1 15 49
35 34 4 50 49 15 -1
35 31 3 -1 31 50
47 31 4 -1 50 31 26
47 35 5 19 49 50 -1 25
47 47 4 19 25 -1 24
35 47 3 -1 19 24
31 47 3 23 19 -1
29 46 4 19 20 -1 47
29 47 2 -1 20
30 47 4 19 23 -1 20
26 46 4 47 -1 22 21
26 48 2 22 -1
30 48 2 23 -1
31 48 2 23 -1
35 48 2 24 -1
47 48 2 24 -1
48 47 2 25 -1
48 35 2 25 -1
48 31 2 -1 26
48 3 2 -1 36
48 15 2 -1 36
48 19 2 -1 26
47 19 5 31 43 44 -1 26
47 15 4 -1 44 37 36
34 19 4 31 -1 40 43
31 19 3 54 -1 31
31 15 3 54 37 -1
34 18 2 -1 40
35 18 4 44 43 40 -1
35 15 3 -1 37 44
26 10 3 54 -1 37
26 7 3 41 37 -1
26 3 5 37 41 16 28 -1
26 1 2 -1 28
29 3 4 37 -1 29 32
30 2 4 30 32 29 -1
29 2 2 -1 29
30 1 2 30 -1
31 1 2 -1 30
31 3 4 37 32 30 -1
34 3 4 37 -1 35 33
34 2 2 -1 35
35 1 2 34 -1
35 2 4 34 33 35 -1
47 3 5 37 33 34 -1 36
47 1 2 -1 34
3 6 2 3 2 5 1
3 3 2 0 -1 0 -1
4 5 6 3 4 -1 -1 0 -1
4 10 11 12 9 -1 -1 16 -1
3 12 7 8 -1 16 -1
8 7 15 18 21 19 25 2 6 -1 16 -1 54 -1 51 6 0
4 2 25 26 1 -1 5 -1 -1
3 29 28 27 46 -1 -1
4 42 41 32 31 -1 45 -1 -1
4 39 40 34 33 -1 45 -1 -1
3 38 37 36 -1 -1 21
4 45 42 43 44 -1 45 -1 -1
3 47 45 46 -1 45 -1
6 50 52 56 57 47 49 14 -1 46 -1 45 -1
4 50 49 48 51 -1 13 -1 -1
3 66 65 64 -1 49 -1
7 7 12 11 13 98 16 15 5 4 3 -1 28 41 39
4 30 29 55 54 -1 -1 46 -1
3 55 52 53 -1 46 -1
8 72 75 73 63 65 69 70 71 -1 23 20 47 -1 49 25 24
3 75 74 73 19 -1 -1
3 76 36 37 47 22 10
4 36 76 77 35 -1 21 -1 -1
4 75 72 79 78 -1 19 -1 -1
4 71 70 81 80 -1 19 -1 -1
4 70 69 83 82 -1 19 -1 -1
4 84 68 88 87 -1 -1 31 -1
4 58 37 40 57 -1 42 -1 45
4 99 98 13 14 -1 -1 16 -1
3 101 100 102 -1 32 -1
4 104 105 101 103 -1 -1 32 -1
7 62 60 91 90 88 68 67 -1 47 54 -1 43 26 50
3 105 100 101 30 37 29
3 110 106 109 34 37 35
4 111 110 109 108 -1 -1 33 -1
3 109 106 107 -1 33 -1
4 86 89 110 85 -1 -1 37 -1
10 97 98 100 105 106 110 89 95 92 96 -1 41 -1 32 -1 33 36 44 -1 54
4 23 60 56 24 -1 52 -1 46
3 17 15 16 -1 -1 16
3 94 90 93 -1 43 -1
3 97 16 98 37 -1 16
3 61 37 58 48 47 27
3 94 88 90 40 44 31
4 89 88 94 95 37 -1 43 -1
7 40 39 41 42 45 47 57 27 9 -1 8 11 12 13
7 52 55 29 27 19 24 56 13 18 17 7 51 -1 38
7 63 73 76 37 61 60 62 -1 19 -1 21 42 -1 31
3 61 58 59 -1 42 -1
3 66 69 65 15 50 19
4 68 69 66 67 31 -1 49 -1
3 19 27 25 5 46 -1
3 23 22 60 38 53 54
3 23 20 22 52 -1 -1
7 21 18 96 92 91 60 22 -1 5 -1 37 -1 31 52
`

func arenaMesh(t *testing.T) *navmesh.Mesh {
	t.Helper()
	mesh, err := formats.ParsePolyanyaMesh(strings.NewReader(arenaMeshASCII))
	require.NoError(t, err)
	mesh.Bake()
	return mesh
}

func TestFindPath_ArenaScenarios(t *testing.T) {
	mesh := arenaMesh(t)

	cases := []struct {
		name       string
		from, to   geom.Point
		wantLength float64
	}{
		{"narrow_gap", geom.Point{X: 1, Y: 11}, geom.Point{X: 1, Y: 12}, 1.0},
		{"around_obstacle_corner", geom.Point{X: 1, Y: 3}, geom.Point{X: 3, Y: 1}, 3.41421},
		{"straight_vertical", geom.Point{X: 1, Y: 12}, geom.Point{X: 1, Y: 10}, 2.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, ok := FindPath(mesh, tc.from, tc.to)
			require.True(t, ok)
			assert.InDelta(t, tc.wantLength, path.Length, 1e-4)
		})
	}
}

// TestFindPath_UnitSquareWithCornerObstacles builds a 10x10 square with
// two quarter-size obstacles set into opposite corners, clear of the
// query's own diagonal, so the taut path runs straight between the two
// query points: the corner obstacles narrow the room without blocking
// the direct line of sight between (0.5,0.5) and (9.5,9.5).
func TestFindPath_UnitSquareWithCornerObstacles(t *testing.T) {
	boundary := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	obstacles := [][]geom.Point{
		{{X: 0, Y: 7.5}, {X: 2.5, Y: 7.5}, {X: 2.5, Y: 10}, {X: 0, Y: 10}},
		{{X: 7.5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 2.5}, {X: 7.5, Y: 2.5}},
	}

	layer, err := triangulate.Build(boundary, obstacles, triangulate.DefaultOptions())
	require.NoError(t, err)

	mesh := &navmesh.Mesh{Layers: []navmesh.Layer{*layer}}
	mesh.Bake()

	from := geom.Point{X: 0.5, Y: 0.5}
	to := geom.Point{X: 9.5, Y: 9.5}
	path, ok := FindPath(mesh, from, to)
	require.True(t, ok)

	want := 9 * math.Sqrt2 // unobstructed diagonal, matching spec's documented ~12.72
	assert.InDelta(t, want, path.Length, 1e-6)
}
