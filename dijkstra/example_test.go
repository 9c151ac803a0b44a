// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt" // fmt is used to print results in examples
	"math"
	// Import core to build Graphs
	"github.com/katalvlaran/polynav/core"

	"github.com/katalvlaran/polynav/dijkstra"
)

// ExampleDijkstra_Triangle demonstrates computing shortest paths on a simple triangle graph.
// Complexity: O((V+E) log V) because we push/pop up to E entries and extract each vertex once.
func ExampleDijkstra_Triangle() {
	// 1) Create a new weighted graph. By passing core.WithWeighted(), we enable non-negative weights.
	g := core.NewGraph(core.WithWeighted())
	// 2) Add an undirected edge A—B with weight=1.
	g.AddEdge("A", "B", 1)
	// 3) Add an undirected edge B—C with weight=2.
	g.AddEdge("B", "C", 2)
	// 4) Add an undirected edge A—C with weight=5.
	g.AddEdge("A", "C", 5)

	// 5) Compute Dijkstra from source "A" without requesting the predecessor map.
	//    We call dijkstra.Source("A") to set the Source field; no WithReturnPath() means prev==nil.
	dist, _, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
	)
	// 6) Handle any potential error (e.g., empty source or unweighted graph).
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 7) Print distances to A, B, and C.
	//    dist["A"] should be 0, dist["B"] should be 1, dist["C"] should be 3 (via A→B→C).
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleDijkstra_MediumGraph demonstrates path reconstruction on a slightly larger graph.
// We show how to use WithReturnPath() to obtain the predecessor (prev) map.
// Complexity: O((V+E) log V).
func ExampleDijkstra_MediumGraph() {
	// 1) Create a new weighted graph (always undirected).
	g := core.NewGraph(core.WithWeighted())
	// 2) Add edge A-B weight=2.
	g.AddEdge("A", "B", 2)
	// 3) Add edge A-C weight=1.
	g.AddEdge("A", "C", 1)
	// 4) Add edge C-B weight=1.
	g.AddEdge("C", "B", 1)
	// 5) Add edge B-D weight=3.
	g.AddEdge("B", "D", 3)
	// 6) Add edge C-D weight=5.
	g.AddEdge("C", "D", 5)

	// 7) Run Dijkstra from source "A", requesting the predecessor map via WithReturnPath().
	dist, prev, err := dijkstra.Dijkstra(
		g,
		dijkstra.Source("A"),
		dijkstra.WithReturnPath(),
	)
	// 8) Handle potential errors.
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 9) Print the distance to "D" and its immediate predecessor.
	//    The shortest path to D is A-C-B-D (or A-B-D) with total cost 5.
	fmt.Printf("dist[D]=%d, prev[D]=%s\n", dist["D"], prev["D"])
	// Output: dist[D]=5, prev[D]=B
}

// ExampleDijkstra_Disconnected demonstrates that unreachable vertices are
// reported with distance math.MaxInt64 rather than as errors.
// Complexity: O((V+E) log V).
func ExampleDijkstra_Disconnected() {
	g0 := core.NewGraph(core.WithWeighted())
	g0.AddEdge("A", "B", 5)
	g0.AddEdge("X", "Y", 7) // disjoint component

	dist, _, err := dijkstra.Dijkstra(g0, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	reached := dist["Y"] != math.MaxInt64
	fmt.Printf("dist[B]=%d, Y reached=%v\n", dist["B"], reached)
	// Output: dist[B]=5, Y reached=false
}

// ExampleDijkstra_HouseGraph shows Dijkstra on a small weighted graph.
// Expected: the shortest costs to D and E from A.
func ExampleDijkstra_HouseGraph() {
	// Source graph g:
	//	    (E)
	//	  3/   \4
	//	  /     \
	//	(C)──10─(D)
	//	 |       |
	//	2|       |5
	//	 |       |
	//	(A)──4──(B)
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		U, V string
		W    int64
	}{
		{"A", "B", 4},
		{"A", "C", 2},
		{"B", "D", 5},
		{"C", "D", 10},
		{"C", "E", 3},
		{"E", "D", 4},
	} {
		g.AddEdge(e.U, e.V, e.W)
	}
	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	fmt.Printf("dist[D]=%d dist[E]=%d\n", dist["D"], dist["E"])
	// Output: dist[D]=9 dist[E]=5
}
