// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polynav/core"
	"github.com/katalvlaran/polynav/dijkstra"
)

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrEmptySource takes priority over ErrNilGraph.
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_UnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", -5)
	require.NoError(t, err)

	_, _, dErr := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, dErr, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_Triangle_NoPath(t *testing.T) {
	// A-B(1), B-C(2), A-C(5)
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 2)
	mustEdge(t, g, "A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["C"]) // A-B-C
	assert.Nil(t, prev)
}

func TestDijkstra_Triangle_WithPath(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 2)
	mustEdge(t, g, "A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["A"])
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, int64(3), dist["C"])
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, "B", prev["C"])
}

func TestDijkstra_ChainWithBranch(t *testing.T) {
	// A-B-C-D-E, with D-F-G branching off.
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	mustEdge(t, g, "B", "C", 1)
	mustEdge(t, g, "C", "D", 1)
	mustEdge(t, g, "D", "E", 1)
	mustEdge(t, g, "D", "F", 1)
	mustEdge(t, g, "F", "G", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	want := map[string]int64{"A": 0, "B": 1, "C": 2, "D": 3, "E": 4, "F": 4, "G": 5}
	for v, d := range want {
		assert.Equal(t, d, dist[v], "dist[%s]", v)
	}
	assert.Equal(t, "A", prev["B"])
	assert.Equal(t, "B", prev["C"])
	assert.Equal(t, "C", prev["D"])
}

func TestDijkstra_Disconnected_ReturnsMaxInt64(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	mustEdge(t, g, "A", "B", 1)
	require.NoError(t, g.AddVertex("Island"))

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["Island"])
}

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("Solo"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Solo"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["Solo"])
	assert.Equal(t, "", prev["Solo"])
}

func TestDijkstra_EmptyGraph_ReturnsVertexNotFound(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Any"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func mustEdge(t *testing.T, g *core.Graph, from, to string, weight int64) {
	t.Helper()
	_, err := g.AddEdge(from, to, weight)
	require.NoError(t, err)
}
