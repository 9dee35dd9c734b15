// SPDX-License-Identifier: MIT

package unionfind

// DisjointSet maps each ID to its parent ID; a root is its own parent.
// The zero value is not usable; call New.
type DisjointSet struct {
	parent map[string]string
	sets   int // number of disjoint sets
}

// New returns a DisjointSet with every id in its own singleton set.
// Repeated ids are registered once.
func New(ids ...string) *DisjointSet {
	ds := &DisjointSet{parent: make(map[string]string, len(ids))}
	for _, id := range ids {
		ds.Add(id)
	}

	return ds
}

// Add registers id as a singleton set. It reports false if id was already known.
func (ds *DisjointSet) Add(id string) bool {
	if _, ok := ds.parent[id]; ok {
		return false
	}
	ds.parent[id] = id
	ds.sets++

	return true
}

// Find returns the root (group label) of id. Unknown ids are registered as
// singletons first, so Find never fails.
// Path halving: every visited node is re-pointed at its grandparent.
func (ds *DisjointSet) Find(id string) string {
	ds.Add(id)
	for ds.parent[id] != id {
		ds.parent[id] = ds.parent[ds.parent[id]]
		id = ds.parent[id]
	}

	return id
}

// Union merges the sets holding a and b by attaching a's root under b's root.
// It reports whether the sets were distinct before the call.
func (ds *DisjointSet) Union(a, b string) bool {
	rootA, rootB := ds.Find(a), ds.Find(b)
	if rootA == rootB {
		return false
	}
	ds.parent[rootA] = rootB
	ds.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (ds *DisjointSet) Connected(a, b string) bool {
	return ds.Find(a) == ds.Find(b)
}

// Count returns the number of disjoint sets.
func (ds *DisjointSet) Count() int { return ds.sets }

// Len returns the number of registered ids.
func (ds *DisjointSet) Len() int { return len(ds.parent) }
