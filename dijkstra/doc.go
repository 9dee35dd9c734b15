// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on a weighted *core.Graph, reporting path weights only.
//
// ShortestPath(g, start, target) returns the total weight of the cheapest
// start→target path and ok=false when target is unreachable. Distances(g, src)
// returns the weight to every vertex (+Inf when unreachable).
//
// The frontier is a min-priority queue (gods priorityqueue) ordered by
// tentative distance, then by vertex insertion order, with lazy decrease-key:
// an improved distance pushes a new entry and stale entries are skipped.
// ShortestPath stops as soon as the target is settled.
//
// Negative weights are not supported. Instead of returning undefined results,
// both functions pre-scan the edges and fail with ErrNegativeWeight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the provided graph pointer is nil.
//   - ErrEmptySource     if the provided start ID is empty.
//   - ErrVertexNotFound  if the start or target vertex does not exist.
//   - ErrNegativeWeight  if a negative edge weight is detected.
//
// Example usage:
//
//	w, ok, err := dijkstra.ShortestPath(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok {
//	    fmt.Printf("A→C costs %g\n", w)
//	}
package dijkstra
