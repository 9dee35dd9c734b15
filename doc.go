// Package wgraph is an in-memory weighted graph with the classic
// minimum-spanning-tree and shortest-path algorithms on top of it.
//
// What is inside:
//
//	core/         — Graph and Vertex: insertion-ordered registry, weighted adjacency, RW locks
//	unionfind/    — disjoint-set forest used by Kruskal
//	prim_kruskal/ — minimum spanning trees: Kruskal (edge list + total) and Prim (total)
//	dijkstra/     — single-pair and single-source shortest path weights (non-negative weights)
//	matrix/       — dense float64 matrix and Floyd–Warshall all-pairs distances
//
// Graphs are append-only: vertices and edges can be added, never removed, and
// directedness is fixed at construction. Adding an edge between the same pair
// twice keeps the first weight.
//
// Quick example:
//
//	    A──1──B
//	     \    │
//	      4   2
//	       \  │
//	        C─┘
//
//	g := core.NewGraph(false)
//	g.AddVertex("A"); g.AddVertex("B"); g.AddVertex("C")
//	g.AddEdge("A", "B", 1); g.AddEdge("B", "C", 2); g.AddEdge("A", "C", 4)
//
//	edges, total, _ := prim_kruskal.Kruskal(g) // [(A,B,1) (B,C,2)], 3
//	w, ok, _ := dijkstra.ShortestPath(g, "A", "C") // 3, true
//	dist, _ := matrix.AllPairs(g)                   // dist["A"]["C"] == 3
//
// Every package logs its decisions at Debug level through the graph's
// *zap.Logger (core.WithLogger); the default logger discards everything.
//
//	go get github.com/katalvlaran/wgraph
package wgraph
