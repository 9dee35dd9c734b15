// Package unionfind provides a disjoint-set (union-find) structure over string IDs.
//
// Kruskal's algorithm uses it to reject edges whose endpoints are already
// connected. Find walks parent links iteratively with path halving, so chain
// length never grows the call stack.
//
//	ds := unionfind.New("A", "B", "C")
//	ds.Union("A", "B")          // true: two sets merged
//	ds.Union("B", "A")          // false: already joined
//	ds.Connected("A", "C")      // false
//
// Complexity: Find and Union run in amortized O(log n) time; memory O(n).
package unionfind
