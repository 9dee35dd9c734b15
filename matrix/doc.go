// Package matrix provides a dense row-major float64 matrix and the
// Floyd–Warshall all-pairs shortest-path closure over it.
//
// Graph adapter:
//
//	AllPairs(g)       – map[from][to] shortest total weight for every pair.
//	DistanceMatrix(g) – the initial table (0 diagonal, +Inf off-diagonal,
//	                    direct edge weights) plus the row/column vertex IDs.
//
// Kernel:
//
//	FloydWarshall(m)    – in-place k→i→j relaxation on any square Matrix;
//	                      *Dense takes an allocation-free fast path.
//	HasNegativeCycle(m) – negative diagonal check on a closed table.
//
// Contract:
//
//   - +Inf means “no path”. NaN is rejected by Set.
//   - Rows and columns follow AddVertex order, so results are deterministic.
//   - No negative-cycle detection inside the closure: a negative cycle yields
//     non-converged distances, which is an accepted limitation.
//
// Errors (sentinel, matched with errors.Is):
//
//	ErrGraphNil, ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch,
//	ErrOutOfRange, ErrNaN.
package matrix
