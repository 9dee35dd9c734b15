// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex using a min-priority queue and reports the total weight.
package prim_kruskal

import (
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
)

// Prim computes the total weight of a Minimum Spanning Tree by growing outwards
// from a root vertex. The root defaults to the first vertex added to the graph;
// WithRoot overrides it.
//
// Every unsettled vertex carries a best-known connecting weight (+Inf until an
// edge reaches it, 0 for the root). Each round settles the frontier vertex with
// the smallest weight, adds that weight to the total, and lowers the weights of
// its unsettled neighbors. In a directed graph only outgoing arcs are followed.
//
// Error Conditions:
//   - ErrNilGraph           : graph is nil.
//   - ErrEmptyGraph         : |V| == 0.
//   - core.ErrVertexNotFound: the root given with WithRoot does not exist.
//   - ErrDisconnected       : some vertex is never reached from the root.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) (float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1. Validate input.
	if graph == nil {
		return 0, ErrNilGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return 0, ErrEmptyGraph
	}

	// 2. Resolve the root.
	root := vertices[0]
	if cfg.Root != "" {
		v, ok := graph.Vertex(cfg.Root)
		if !ok {
			return 0, errors.Wrapf(core.ErrVertexNotFound, "prim_kruskal: root %q", cfg.Root)
		}
		root = v
	}
	log := graph.Logger()

	// 3. Initialize frontier weights: +Inf everywhere, 0 at the root.
	order := make(map[string]int, len(vertices)) // insertion index, used for tie-breaks
	best := make(map[string]float64, len(vertices))
	for i, v := range vertices {
		order[v.ID()] = i
		best[v.ID()] = math.Inf(1)
	}
	best[root.ID()] = 0
	settled := make(map[string]bool, len(vertices))

	pq := priorityqueue.NewWith(byKey)
	pq.Enqueue(&frontierItem{v: root, key: 0, order: order[root.ID()]})

	// 4. Settle vertices in order of their connecting weight.
	var total float64
	for !pq.Empty() {
		raw, _ := pq.Dequeue()
		it := raw.(*frontierItem)
		id := it.v.ID()
		if settled[id] || it.key > best[id] {
			continue // stale entry (lazy decrease-key)
		}
		settled[id] = true
		total += it.key
		log.Debug("prim_kruskal: prim settled vertex", zap.String("id", id), zap.Float64("weight", it.key))

		for _, n := range it.v.NeighborsWithWeights() {
			nid := n.Vertex.ID()
			if settled[nid] {
				continue
			}
			cur, known := best[nid]
			if known && n.Weight >= cur {
				continue
			}
			best[nid] = n.Weight
			pq.Enqueue(&frontierItem{v: n.Vertex, key: n.Weight, order: order[nid]})
		}
	}

	// 5. Every vertex of the snapshot must have been reached.
	for _, v := range vertices {
		if !settled[v.ID()] {
			return 0, errors.Wrapf(ErrDisconnected, "vertex %q unreachable from %q", v.ID(), root.ID())
		}
	}

	return total, nil
}

// frontierItem is a queued (vertex, key) pair. order is the vertex's insertion
// index and breaks ties between equal keys deterministically.
type frontierItem struct {
	v     *core.Vertex
	key   float64
	order int
}

// byKey orders frontier items by ascending key, then by insertion index.
func byKey(a, b interface{}) int {
	x, y := a.(*frontierItem), b.(*frontierItem)
	switch {
	case x.key < y.key:
		return -1
	case x.key > y.key:
		return 1
	case x.order < y.order:
		return -1
	case x.order > y.order:
		return 1
	default:
		return 0
	}
}
