// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Vertex is a named node owning its weighted adjacency.
//
// neighbors maps neighbor ID → Neighbor in first-insertion order. A vertex never
// stores two entries for the same neighbor ID.
type Vertex struct {
	mu sync.RWMutex // guards neighbors

	id        string
	neighbors *linkedhashmap.Map
}

// newVertex returns a vertex with an empty adjacency.
func newVertex(id string) *Vertex {
	return &Vertex{id: id, neighbors: linkedhashmap.New()}
}

// ID returns the identifier, immutable for the vertex lifetime.
func (v *Vertex) ID() string { return v.id }

// AddNeighbor stores (other, weight) keyed by other.ID() unless an entry for
// that ID already exists. It reports whether the entry was inserted.
// Complexity: O(1).
func (v *Vertex) AddNeighbor(other *Vertex, weight float64) bool {
	if other == nil {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.neighbors.Get(other.id); exists {
		return false // first edge wins
	}
	v.neighbors.Put(other.id, Neighbor{Vertex: other, Weight: weight})

	return true
}

// Neighbors returns the neighbor vertices in first-insertion order.
// Complexity: O(d).
func (v *Vertex) Neighbors() []*Vertex {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]*Vertex, 0, v.neighbors.Size())
	v.neighbors.Each(func(_ interface{}, value interface{}) {
		out = append(out, value.(Neighbor).Vertex)
	})

	return out
}

// NeighborsWithWeights returns (neighbor, weight) pairs in first-insertion order.
// The slice is a copy; mutating it does not affect the vertex.
// Complexity: O(d).
func (v *Vertex) NeighborsWithWeights() []Neighbor {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]Neighbor, 0, v.neighbors.Size())
	v.neighbors.Each(func(_ interface{}, value interface{}) {
		out = append(out, value.(Neighbor))
	})

	return out
}

// Weight returns the weight of the edge to neighbor id, if present.
func (v *Vertex) Weight(id string) (float64, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	value, ok := v.neighbors.Get(id)
	if !ok {
		return 0, false
	}

	return value.(Neighbor).Weight, true
}

// Degree returns the number of stored adjacency entries.
func (v *Vertex) Degree() int {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.neighbors.Size()
}

// String renders "A adjacent to [B C]".
func (v *Vertex) String() string {
	ids := make([]string, 0, v.Degree())
	for _, n := range v.Neighbors() {
		ids = append(ids, n.id)
	}

	return fmt.Sprintf("%s adjacent to %v", v.id, ids)
}
