// Package core provides a thread-safe in-memory weighted graph with a minimal,
// append-only API surface.
//
// The Graph G = (V,E) is an owning registry of vertices keyed by string ID.
// Each Vertex owns an ordered adjacency of (neighbor, weight) entries; the
// neighbor is a plain reference into the same registry.
//
//   - Directed vs. undirected edges, fixed at construction (NewGraph(directed)).
//     Undirected graphs mirror each edge, so AddEdge("A","B",w) stores A→B and B→A.
//   - First write wins: a second AddEdge between the same endpoints is rejected
//     and the stored weight is kept.
//   - No dangling edges: AddEdge requires both endpoints to be registered.
//   - Deterministic iteration: Vertices() follows AddVertex order and
//     NeighborsWithWeights() follows first-insertion order.
//   - No removal: vertices and edges are append-only.
//
// Core Methods:
//
//	// Construction (boolean facade)
//	AddVertex(id string) bool                          // O(1)
//	AddEdge(from, to string, weight float64) bool      // O(1)
//
//	// Construction (error-returning)
//	InsertVertex(id string) error                      // ErrEmptyVertexID, ErrVertexExists
//	InsertEdge(from, to string, weight float64) error  // ErrVertexNotFound, ErrEdgeExists, ErrBadWeight
//
//	// Query
//	Vertex(id string) (*Vertex, bool)                  // O(1)
//	Vertices() []*Vertex                               // O(V)
//	Each(fn func(*Vertex) bool)                        // O(V)
//	Edges() []Edge                                     // O(V+E), undirected edges appear twice
//	HasVertex, HasEdge, VertexCount, EdgeCount, Directed
//
// Failed boolean calls are logged at debug level on the logger passed with
// WithLogger, which also serves the algorithm packages.
//
// Concurrency: construction and algorithm runs may overlap; the registry and
// every adjacency are guarded by their own RWMutex. Algorithms see whatever
// edges were stored when they read each vertex.
package core
