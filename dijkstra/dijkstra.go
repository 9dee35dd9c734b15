// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"math"

	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/core"
)

// ShortestPath returns the total weight of the shortest path from start to
// target. ok is false when target cannot be reached from start.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must be non-empty (ErrEmptySource).
//  3. g must contain start and target (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, start, target string) (float64, bool, error) {
	if err := validate(g, start); err != nil {
		return 0, false, err
	}
	if !g.HasVertex(target) {
		return 0, false, errors.Wrapf(ErrVertexNotFound, "target %q", target)
	}

	r, err := newRunner(g, start)
	if err != nil {
		return 0, false, err
	}
	if !r.run(target) {
		return 0, false, nil
	}

	return r.dist[target], true, nil
}

// Distances returns the shortest-path weight from source to every vertex.
// Unreachable vertices map to +Inf. Validation matches ShortestPath.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *core.Graph, source string) (map[string]float64, error) {
	if err := validate(g, source); err != nil {
		return nil, err
	}

	r, err := newRunner(g, source)
	if err != nil {
		return nil, err
	}
	r.run("")

	return r.dist, nil
}

// validate checks graph and source in the documented order.
func validate(g *core.Graph, source string) error {
	if g == nil {
		return ErrNilGraph
	}
	if source == "" {
		return ErrEmptySource
	}
	if !g.HasVertex(source) {
		return errors.Wrapf(ErrVertexNotFound, "source %q", source)
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	log     *zap.Logger
	dist    map[string]float64 // vertex ID → best known distance from source
	order   map[string]int     // vertex ID → insertion index (tie-break)
	visited map[string]bool    // finalized vertices
	pq      *priorityqueue.Queue
}

// newRunner snapshots the vertex set, rejects negative weights, sets every
// distance to +Inf except the source and queues the source.
func newRunner(g *core.Graph, source string) (*runner, error) {
	vertices := g.Vertices()
	r := &runner{
		log:     g.Logger(),
		dist:    make(map[string]float64, len(vertices)),
		order:   make(map[string]int, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      priorityqueue.NewWith(byDistance),
	}

	var src *core.Vertex
	for i, v := range vertices {
		for _, n := range v.NeighborsWithWeights() {
			if n.Weight < 0 {
				return nil, errors.Wrapf(ErrNegativeWeight, "edge %s→%s weight=%g", v.ID(), n.Vertex.ID(), n.Weight)
			}
		}
		r.dist[v.ID()] = math.Inf(1)
		r.order[v.ID()] = i
		if v.ID() == source {
			src = v
		}
	}
	if src == nil {
		// Source vanished between validation and snapshot; cannot happen on append-only graphs.
		return nil, errors.Wrapf(ErrVertexNotFound, "source %q", source)
	}

	r.dist[source] = 0
	r.pq.Enqueue(&nodeItem{v: src, dist: 0, order: r.order[source]})

	return r, nil
}

// run settles vertices in order of distance. It returns true as soon as target
// is settled; with an empty target it drains the queue and returns false.
func (r *runner) run(target string) bool {
	for !r.pq.Empty() {
		raw, _ := r.pq.Dequeue()
		item := raw.(*nodeItem)
		u := item.v.ID()

		// Skip stale heap entries.
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		r.visited[u] = true
		r.log.Debug("dijkstra: settled vertex", zap.String("id", u), zap.Float64("dist", item.dist))

		if u == target {
			return true
		}
		r.relax(item)
	}

	return false
}

// relax lowers the distance of every unsettled neighbor reachable through u.
func (r *runner) relax(u *nodeItem) {
	for _, n := range u.v.NeighborsWithWeights() {
		v := n.Vertex.ID()
		if r.visited[v] {
			continue
		}
		newDist := u.dist + n.Weight
		if cur, known := r.dist[v]; known && newDist >= cur {
			continue
		}
		r.dist[v] = newDist
		r.pq.Enqueue(&nodeItem{v: n.Vertex, dist: newDist, order: r.order[v]})
	}
}
