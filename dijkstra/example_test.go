package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// ExampleShortestPath finds the cheapest route across a small road network.
//
//	A --1-- B --2-- C
//	 \_______4_____/
func ExampleShortestPath() {
	g := core.NewGraph(false)
	for _, id := range []string{"A", "B", "C", "D"} {
		g.AddVertex(id)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 4)

	w, ok, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(w, ok)

	_, ok, _ = dijkstra.ShortestPath(g, "A", "D") // D is isolated
	fmt.Println(ok)
	// Output:
	// 3 true
	// false
}

// ExampleDistances lists the distance to every vertex of a directed graph.
func ExampleDistances() {
	g := core.NewGraph(true)
	for _, id := range []string{"S", "X", "Y"} {
		g.AddVertex(id)
	}
	g.AddEdge("S", "X", 2.5)
	g.AddEdge("X", "Y", 1)
	g.AddEdge("S", "Y", 5)

	dist, _ := dijkstra.Distances(g, "S")
	for _, id := range []string{"S", "X", "Y"} {
		fmt.Printf("%s=%g\n", id, dist[id])
	}
	// Output:
	// S=0
	// X=2.5
	// Y=3.5
}
