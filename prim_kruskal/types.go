// SPDX-License-Identifier: MIT

// Package prim_kruskal: sentinel errors, options and the Compute dispatcher.
package prim_kruskal

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("prim_kruskal: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices; there is nothing to span.
	ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

	// ErrDisconnected is returned when no single tree can cover every vertex.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod is returned by Compute for a Method it cannot dispatch.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")
)

// Method names an MST algorithm.
type Method string

const (
	// MethodKruskal sorts every edge and joins components with a disjoint set.
	MethodKruskal Method = "kruskal"
	// MethodPrim grows a single tree from a root through a min-priority queue.
	MethodPrim Method = "prim"
)

// MSTOptions selects the algorithm run by Compute and, for Prim, its root.
// An empty Root means the first vertex added to the graph. Kruskal ignores Root.
type MSTOptions struct {
	Method Method
	Root   string
}

// Option mutates MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets MSTOptions.Method.
func WithMethod(m Method) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the vertex Prim grows from.
func WithRoot(id string) Option {
	return func(o *MSTOptions) { o.Root = id }
}

// DefaultOptions selects Kruskal with no explicit root.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute runs the algorithm chosen by opts.Method and returns the tree edges
// in acceptance order together with the total weight. Prim reports only the
// total, so its edge slice is nil.
//
// Errors are those of the selected algorithm, or ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	if graph != nil {
		graph.Logger().Debug("prim_kruskal: compute", zap.String("method", string(opts.Method)))
	}

	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		total, err := Prim(graph, WithRoot(opts.Root))
		return nil, total, err
	default:
		return nil, 0, pkgerrors.Wrapf(ErrUnknownMethod, "method %q", opts.Method)
	}
}
