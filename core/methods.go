// SPDX-License-Identifier: MIT

// Package core: Graph method implementations.
//
// This file provides the error-returning primitives for vertex and edge
// management. The boolean facade in api.go delegates here.
// muVert is held only while the registry is read or extended; adjacency writes
// happen under the owning vertex's lock.

package core

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// InsertVertex registers a new vertex with an empty adjacency.
// Returns ErrEmptyVertexID if id is empty and ErrVertexExists if the ID is taken;
// in both cases nothing is mutated.
// Complexity: O(1) amortized.
func (g *Graph) InsertVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices.Get(id); exists {
		return errors.Wrapf(ErrVertexExists, "insert %q", id)
	}
	g.vertices.Put(id, newVertex(id))

	return nil
}

// InsertEdge installs the weighted edge from→to, and to→from when the graph is
// undirected. Both endpoints must already be registered.
//
// Errors:
//   - ErrBadWeight      : weight is NaN or ±Inf.
//   - ErrVertexNotFound : from or to is not registered (nothing is mutated).
//   - ErrEdgeExists     : no adjacency entry was new. Stored weights are kept
//     (first write wins).
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(from, to string, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return errors.Wrapf(ErrBadWeight, "edge %s→%s weight=%v", from, to, weight)
	}

	// Resolve both endpoints under a single read lock so the check is atomic.
	g.muVert.RLock()
	src, okFrom := g.lookup(from)
	dst, okTo := g.lookup(to)
	g.muVert.RUnlock()

	if !okFrom {
		return errors.Wrapf(ErrVertexNotFound, "edge %s→%s: missing %q", from, to, from)
	}
	if !okTo {
		return errors.Wrapf(ErrVertexNotFound, "edge %s→%s: missing %q", from, to, to)
	}

	inserted := src.AddNeighbor(dst, weight)
	if !g.directed {
		inserted = dst.AddNeighbor(src, weight) || inserted
	}
	if !inserted {
		return errors.Wrapf(ErrEdgeExists, "edge %s→%s", from, to)
	}

	return nil
}

// lookup resolves id in the registry. Caller must hold muVert.
func (g *Graph) lookup(id string) (*Vertex, bool) {
	value, ok := g.vertices.Get(id)
	if !ok {
		return nil, false
	}

	return value.(*Vertex), true
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices.Get(id)

	return ok
}

// HasEdge reports whether the from→to adjacency entry is stored.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	v, ok := g.Vertex(from)
	if !ok {
		return false
	}
	_, ok = v.Weight(to)

	return ok
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.vertices.Size()
}

// EdgeCount returns the number of stored adjacency entries. An undirected
// edge between two distinct vertices counts twice.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, v := range g.Vertices() {
		n += v.Degree()
	}

	return n
}

// Edges returns every stored adjacency entry as an Edge, enumerated vertex by
// vertex in AddVertex order and, within a vertex, in neighbor insertion order.
// Undirected edges therefore appear once per direction.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	vertices := g.Vertices()
	out := make([]Edge, 0, len(vertices))
	for _, v := range vertices {
		for _, n := range v.NeighborsWithWeights() {
			out = append(out, Edge{From: v.id, To: n.Vertex.id, Weight: n.Weight})
		}
	}

	return out
}

// debugReject reports a rejected mutation on the graph logger.
func (g *Graph) debugReject(op string, err error, fields ...zap.Field) {
	g.logger.Debug("core: "+op+" rejected", append(fields, zap.Error(err))...)
}
