package cdt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polynav/cdt"
	"github.com/katalvlaran/polynav/geom"
)

func TestInsert_SquareProducesTwoTriangles(t *testing.T) {
	tr := cdt.New(geom.Point{X: -1, Y: -1}, geom.Point{X: 2, Y: 2})
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for _, p := range pts {
		_, err := tr.Insert(p)
		require.NoError(t, err)
	}
	tris := tr.Triangles()
	assert.Len(t, tris, 2)
	for _, tri := range tris {
		for _, v := range tri.Verts {
			assert.GreaterOrEqual(t, v, int32(0))
			assert.Less(t, v, int32(4))
		}
	}
}

func TestInsert_DuplicatePointReturnsSameID(t *testing.T) {
	tr := cdt.New(geom.Point{X: -1, Y: -1}, geom.Point{X: 2, Y: 2})
	id1, err := tr.Insert(geom.Point{X: 0.5, Y: 0.5})
	require.NoError(t, err)
	id2, err := tr.Insert(geom.Point{X: 0.5, Y: 0.5})
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestInsert_RejectsNaN(t *testing.T) {
	tr := cdt.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1})
	nan := geom.Point{X: 0, Y: 0}
	nan.X = nan.X / 0 * 0 // produce NaN without importing math
	_, err := tr.Insert(nan)
	assert.ErrorIs(t, err, cdt.ErrNaN)
}

func TestAddConstraint_MakesDiagonalAnEdge(t *testing.T) {
	tr := cdt.New(geom.Point{X: -1, Y: -1}, geom.Point{X: 2, Y: 2})
	ids := make([]cdt.VertexID, 4)
	for i, p := range []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}} {
		id, err := tr.Insert(p)
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, tr.AddConstraint(ids[0], ids[2]))
	found := false
	for _, tri := range tr.Triangles() {
		hasA, hasC := false, false
		for _, v := range tri.Verts {
			if tr.Vertices()[v] == tr.Points[ids[0]] {
				hasA = true
			}
			if tr.Vertices()[v] == tr.Points[ids[2]] {
				hasC = true
			}
		}
		if hasA && hasC {
			found = true
		}
	}
	assert.True(t, found)
}

func TestMustAddConstraint_MakesDiagonalAnEdge(t *testing.T) {
	tr := cdt.New(geom.Point{X: -1, Y: -1}, geom.Point{X: 2, Y: 2})
	ids := make([]cdt.VertexID, 4)
	for i, p := range []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}} {
		id, err := tr.Insert(p)
		require.NoError(t, err)
		ids[i] = id
	}
	assert.NotPanics(t, func() { tr.MustAddConstraint(ids[0], ids[2]) })
}

func TestMustAddConstraint_PanicsOnOverlap(t *testing.T) {
	tr := cdt.New(geom.Point{X: -1, Y: -1}, geom.Point{X: 2, Y: 2})
	ids := make([]cdt.VertexID, 5)
	pts := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 1, Y: 1}}
	for i, p := range pts {
		id, err := tr.Insert(p)
		require.NoError(t, err)
		ids[i] = id
	}
	tr.MustAddConstraint(ids[0], ids[4])
	assert.Panics(t, func() { tr.MustAddConstraint(ids[1], ids[3]) })
}

func TestBulkLoad_RejectsTooFewPoints(t *testing.T) {
	tr := cdt.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1})
	_, err := tr.BulkLoad([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, cdt.ErrDegenerateInput)
}

func TestBulkLoad_RejectsCollinearPoints(t *testing.T) {
	tr := cdt.New(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})
	_, err := tr.BulkLoad([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	assert.ErrorIs(t, err, cdt.ErrDegenerateInput)
}

func TestBulkLoad_SquareGridProducesDelaunayFaces(t *testing.T) {
	tr := cdt.New(geom.Point{X: -1, Y: -1}, geom.Point{X: 4, Y: 4})
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2},
	}
	ids, err := tr.BulkLoad(pts)
	require.NoError(t, err)
	assert.Len(t, ids, len(pts))
	assert.NotEmpty(t, tr.Triangles())
}

func TestRefine_ImprovesMinAngle(t *testing.T) {
	tr := cdt.New(geom.Point{X: -1, Y: -1}, geom.Point{X: 12, Y: 12})
	// A thin sliver triangle: refinement should add Steiner points rather
	// than leave a near-degenerate face.
	pts := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0.2}}
	for _, p := range pts {
		_, err := tr.Insert(p)
		require.NoError(t, err)
	}
	before := len(tr.Triangles())
	tr.Refine(cdt.RefineOptions{AngleLimit: 0.2, MaxAdditionalVertices: 50})
	after := len(tr.Triangles())
	assert.GreaterOrEqual(t, after, before)
}
