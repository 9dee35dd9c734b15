// SPDX-License-Identifier: MIT

// Package dijkstra defines sentinel errors and queue types for Dijkstra's
// shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// nodeItem is a queued (vertex, tentative distance) pair. order is the
// vertex's insertion index and breaks distance ties deterministically.
type nodeItem struct {
	v     *core.Vertex
	dist  float64
	order int
}

// byDistance orders items by ascending distance, then by insertion index.
func byDistance(a, b interface{}) int {
	x, y := a.(*nodeItem), b.(*nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.order < y.order:
		return -1
	case x.order > y.order:
		return 1
	default:
		return 0
	}
}
