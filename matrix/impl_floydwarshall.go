// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal should be 0 before calling.
//   - No negative-cycle detection inside the kernel; see HasNegativeCycle.

package matrix

import (
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFloydWarshall    = "FloydWarshall"
	opHasNegativeCycle = "HasNegativeCycle"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, kj       float64 // distances d[i,k], d[k,j]
		cand         float64 // candidate path length via k: d[i,k] + d[k,j]
	)
	data := d.data

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k: no path via k can improve i→j
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m:
// m[i][j] = min(m[i][j], m[i][k] + m[k][j]) for every k, then i, then j.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes “no edge” off-diagonal; the diagonal should be 0.
//
// A negative cycle leaves non-converged values; no error is reported.
//
// Complexity: Time O(n^3), Extra space O(1).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	// Fast-path: direct dense traversal.
	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)
		return nil
	}

	// Generic interface fallback.
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}

// HasNegativeCycle reports whether a closed distance matrix has a negative
// diagonal entry, i.e. some vertex lies on a negative cycle.
// Call it after FloydWarshall. Complexity: O(n).
func HasNegativeCycle(m Matrix) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opHasNegativeCycle, err)
	}
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return false, matrixErrorf(opHasNegativeCycle, err)
		}
		if v < 0 {
			return true, nil
		}
	}

	return false, nil
}
