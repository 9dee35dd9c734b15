package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/matrix"
)

// ExampleAllPairs computes every shortest distance of a small undirected graph.
func ExampleAllPairs() {
	g := core.NewGraph(false)
	for _, id := range []string{"A", "B", "C"} {
		g.AddVertex(id)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 4)

	dist, err := matrix.AllPairs(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, from := range []string{"A", "B", "C"} {
		fmt.Println(from, dist[from]["A"], dist[from]["B"], dist[from]["C"])
	}
	// Output:
	// A 0 1 3
	// B 1 0 2
	// C 3 2 0
}

// ExampleFloydWarshall closes a hand-built distance table in place.
func ExampleFloydWarshall() {
	g := core.NewGraph(true)
	for _, id := range []string{"X", "Y", "Z"} {
		g.AddVertex(id)
	}
	g.AddEdge("X", "Y", 2)
	g.AddEdge("Y", "Z", 3)

	d, _, _ := matrix.DistanceMatrix(g)
	_ = matrix.FloydWarshall(d)
	fmt.Print(d)
	// Output:
	// [0, 2, 5]
	// [+Inf, 0, 3]
	// [+Inf, +Inf, 0]
}
