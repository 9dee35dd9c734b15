// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Adapt a *core.Graph into a dense distance matrix and back into an
//     ID-keyed all-pairs result.
//
// Determinism:
//   - Row/column i is the i-th vertex in AddVertex order.

package matrix

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
)

const opDistanceMatrix = "DistanceMatrix"

// DistanceMatrix builds the initial Floyd–Warshall table of g: 0 on the
// diagonal, +Inf elsewhere, then every stored adjacency entry i→j written
// over it (last write wins). A self-loop only lowers the diagonal, which
// happens when its weight is negative.
//
// Returns the matrix and the vertex IDs indexing its rows and columns.
//
// Errors:
//   - ErrGraphNil          : g is nil.
//   - ErrInvalidDimensions : g has no vertices.
//
// Complexity: O(V² + E).
func DistanceMatrix(g *core.Graph) (*Dense, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	vertices := g.Vertices()
	n := len(vertices)

	d, err := NewDense(n, n)
	if err != nil {
		return nil, nil, errors.Wrap(err, opDistanceMatrix)
	}

	ids := make([]string, n)
	index := make(map[string]int, n)
	for i, v := range vertices {
		ids[i] = v.ID()
		index[v.ID()] = i
	}

	inf := math.Inf(1)
	for i := range d.data {
		d.data[i] = inf
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
	}

	for i, v := range vertices {
		for _, nb := range v.NeighborsWithWeights() {
			j, ok := index[nb.Vertex.ID()]
			if !ok {
				continue // added after the vertex snapshot
			}
			if i == j {
				d.data[i*n+i] = math.Min(d.data[i*n+i], nb.Weight)
				continue
			}
			d.data[i*n+j] = nb.Weight
		}
	}

	return d, ids, nil
}

// AllPairs returns the shortest total weight between every ordered pair of
// vertices: result[from][to], +Inf when to is unreachable from from, and 0 on
// the diagonal unless a negative cycle passes through the vertex.
// An empty graph yields an empty map.
//
// Negative weights are accepted; negative cycles are not detected and
// produce non-converged values (see HasNegativeCycle).
//
// Complexity: O(V³) time, O(V²) space.
func AllPairs(g *core.Graph) (map[string]map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return map[string]map[string]float64{}, nil
	}

	d, ids, err := DistanceMatrix(g)
	if err != nil {
		return nil, err
	}
	g.Logger().Debug("matrix: floyd-warshall", zap.Int("vertices", len(ids)))
	if err = FloydWarshall(d); err != nil {
		return nil, err
	}

	n := len(ids)
	out := make(map[string]map[string]float64, n)
	for i, from := range ids {
		row := make(map[string]float64, n)
		for j, to := range ids {
			row[to] = d.data[i*n+j]
		}
		out[from] = row
	}

	return out, nil
}
