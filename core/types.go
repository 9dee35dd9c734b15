// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex, Neighbor and Edge types,
// and provides thread-safe primitives for building and querying weighted graphs.
//
// The Graph guards its vertex registry with muVert; every Vertex guards its own
// adjacency with mu. Both registries are insertion ordered (gods linkedhashmap),
// so every enumeration in this package is deterministic.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexExists   - vertex ID is already registered.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeExists     - from→to adjacency entry already stored (first write wins).
//	ErrBadWeight      - weight is NaN or ±Inf.
package core

import (
	"errors"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexExists indicates that AddVertex was called with a registered ID.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeExists indicates the from→to adjacency entry is already stored.
	// The first edge between two vertices wins; later weights are ignored.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Neighbor is one adjacency entry of a Vertex: a non-owning reference to
// another vertex of the same Graph plus the weight of the edge leading to it.
type Neighbor struct {
	// Vertex is the neighbor. It is owned by the Graph registry.
	Vertex *Vertex

	// Weight is the cost of the edge from the owning vertex to Vertex.
	Weight float64
}

// Edge is a weighted directed link between two vertex IDs.
// An undirected edge is stored as two Edges, one per direction.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of the edge.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLogger attaches a structured logger. Rejected insertions and algorithm
// decisions are reported at debug level. A nil logger is ignored.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// Graph is the weighted graph: an owning registry of vertices keyed by ID.
//
// directed is fixed at construction and decides whether AddEdge installs one
// or two adjacency entries. Vertices and edges are append-only.
type Graph struct {
	muVert sync.RWMutex // guards vertices

	directed bool        // one adjacency entry per edge when true
	logger   *zap.Logger // never nil

	// vertices maps ID → *Vertex in AddVertex order.
	vertices *linkedhashmap.Map
}

// NewGraph creates an empty Graph. directed selects whether edges are one-way.
// Complexity: O(1)
func NewGraph(directed bool, opts ...GraphOption) *Graph {
	g := &Graph{
		directed: directed,
		logger:   zap.NewNop(),
		vertices: linkedhashmap.New(),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
