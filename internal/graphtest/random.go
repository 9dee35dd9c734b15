// SPDX-License-Identifier: MIT

package graphtest

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wgraph/core"
)

// RandomConnected creates an undirected graph with n vertices "V0".."V(n-1)".
// A chain V0—V1—…—V(n-1) guarantees connectivity; extra random edges follow.
// Weights are integral in [1,100] so float sums stay exact. The generator is
// seeded, so the same arguments always yield the same graph.
func RandomConnected(n, extra int, seed int64, opts ...core.GraphOption) *core.Graph {
	g := core.NewGraph(false, opts...)
	for i := 0; i < n; i++ {
		g.AddVertex(fmt.Sprintf("V%d", i))
	}

	r := rand.New(rand.NewSource(seed))
	for i := 1; i < n; i++ {
		g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), float64(1+r.Intn(100)))
	}
	// Duplicates are rejected by AddEdge (first write wins), so count only successes.
	for added, tries := 0, 0; added < extra && tries < extra*10; tries++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // skip loops
		}
		if g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), float64(1+r.Intn(100))) {
			added++
		}
	}

	return g
}

// RandomDirected creates a directed graph with n vertices and about density·n²
// random arcs with integral weights in [1,50]. It need not be strongly connected.
func RandomDirected(n int, density float64, seed int64, opts ...core.GraphOption) *core.Graph {
	g := core.NewGraph(true, opts...)
	for i := 0; i < n; i++ {
		g.AddVertex(fmt.Sprintf("V%d", i))
	}

	r := rand.New(rand.NewSource(seed))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < density {
				g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), float64(1+r.Intn(50)))
			}
		}
	}

	return g
}
