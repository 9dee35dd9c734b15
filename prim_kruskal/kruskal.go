// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It produces the slice of accepted edges, in acceptance order, plus their total weight.
package prim_kruskal

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/unionfind"
)

// Kruskal computes the Minimum Spanning Tree (MST) of a weighted graph.
//
// Every stored adjacency entry is a candidate, so each undirected edge is
// considered once per direction; the second copy is always rejected as a
// cycle. In a directed graph arcs are treated as undirected connections.
//
// Error Conditions:
//   - ErrNilGraph     : graph is nil.
//   - ErrEmptyGraph   : |V| == 0.
//   - ErrDisconnected : fewer than |V|-1 edges could be accepted.
//
// Steps:
//  1. Validate graph != nil and |V| > 0. |V| == 1 yields an empty tree.
//  2. Collect all adjacency entries via graph.Edges() (vertex order, then neighbor order).
//  3. Stable sort by ascending Weight, so ties keep enumeration order.
//  4. Seed a disjoint set with every vertex ID.
//  5. Scan edges: accept (u,v) when Union(u,v) joins two sets; self-loops never do.
//  6. Stop once |V|-1 edges are accepted or the candidates run out.
//
// Complexity: O(E log E + E·α) time, O(V + E) memory.
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, 0, ErrNilGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrEmptyGraph
	}
	log := graph.Logger()

	// 2-3. Collect candidates and sort them by weight; equal weights keep their order.
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Every vertex starts in its own set, including isolated ones.
	ds := unionfind.New()
	for _, v := range vertices {
		ds.Add(v.ID())
	}

	// 5-6. Greedy scan.
	var (
		need  = len(vertices) - 1
		mst   = make([]core.Edge, 0, need)
		total float64
	)
	for _, e := range edges {
		if len(mst) == need {
			break
		}
		if !ds.Union(e.From, e.To) {
			// Endpoints already connected: this edge would close a cycle.
			log.Debug("prim_kruskal: kruskal rejected edge",
				zap.String("from", e.From), zap.String("to", e.To), zap.Float64("weight", e.Weight))
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		log.Debug("prim_kruskal: kruskal accepted edge",
			zap.String("from", e.From), zap.String("to", e.To), zap.Float64("weight", e.Weight))
	}

	if len(mst) < need {
		log.Debug("prim_kruskal: kruskal found a forest",
			zap.Int("accepted", len(mst)), zap.Int("components", ds.Count()))
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
