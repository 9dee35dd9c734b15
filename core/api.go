// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade: boolean construction calls and
// read-only getters on top of methods.go.
// Policy:
//   - No algorithms here.
//   - Failures are reported as false and logged at debug level; nothing is mutated.

package core

import (
	"go.uber.org/zap"
)

// AddVertex registers a new vertex with an empty adjacency.
// It returns false, without mutating anything, when id is empty or already present.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) bool {
	if err := g.InsertVertex(id); err != nil {
		g.debugReject("add vertex", err, zap.String("id", id))
		return false
	}

	return true
}

// AddEdge installs the weighted edge from→to, and the mirror to→from when the
// graph is undirected. It returns false, without mutating anything, when
// either endpoint is unregistered or the weight is not finite. A duplicate
// edge also returns false and keeps the first weight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) bool {
	if err := g.InsertEdge(from, to, weight); err != nil {
		g.debugReject("add edge", err,
			zap.String("from", from),
			zap.String("to", to),
			zap.Float64("weight", weight),
		)
		return false
	}

	return true
}

// Vertex returns the vertex registered under id.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.lookup(id)
}

// Vertices returns all vertices in AddVertex order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, 0, g.vertices.Size())
	g.vertices.Each(func(_ interface{}, value interface{}) {
		out = append(out, value.(*Vertex))
	})

	return out
}

// Each calls fn for every vertex in AddVertex order until fn returns false.
// fn runs on a snapshot, so it may call back into the graph.
func (g *Graph) Each(fn func(v *Vertex) bool) {
	for _, v := range g.Vertices() {
		if !fn(v) {
			return
		}
	}
}

// Directed reports whether edges are one-way. Fixed at construction.
func (g *Graph) Directed() bool { return g.directed }

// Logger returns the logger configured with WithLogger (a no-op logger by default).
// Algorithm packages report through it.
func (g *Graph) Logger() *zap.Logger { return g.logger }
