// Package prim_kruskal provides two algorithms for the Minimum Spanning Tree (MST)
// of a weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given a connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V without cycles and has the smallest total weight.
//
//   - Why MST matters: cheapest network backbones, clustering by cutting the
//     heaviest tree edges, and as a subroutine of approximation algorithms.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: enumerate every stored adjacency entry, stable-sort by weight, and
//     accept an edge when a disjoint set (package unionfind) shows its endpoints
//     are still apart. Undirected edges are enumerated once per direction; the
//     mirror copy is always rejected as a cycle, so the result is unaffected.
//
//   - Output: accepted edges in acceptance order, and their total weight.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, opts ...Option) (float64, error)
//
//   - Strategy: grow one tree from a root (first vertex added, or WithRoot).
//     A min-priority queue (gods priorityqueue) holds the best connecting weight
//     of every frontier vertex; ties go to the vertex added to the graph first.
//
//   - Output: total weight only.
//
//   - Complexity: O(E log V) time, O(V + E) space.
//
// Both algorithms agree on the total weight of any connected graph.
//
// Error Conditions
//
//   - ErrNilGraph      – graph is nil.
//   - ErrEmptyGraph    – graph has no vertices.
//   - ErrDisconnected  – no spanning tree covers all vertices. For Prim on a
//     directed graph this means some vertex is not reachable from the root.
//   - core.ErrVertexNotFound (Prim only) – WithRoot names an unknown vertex.
//   - ErrUnknownMethod (Compute only) – MSTOptions.Method is not prim or kruskal.
//
// Decisions are logged at debug level on the graph's logger (core.WithLogger).
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
