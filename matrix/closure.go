// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Cumulative route distances: the shortest chain of observed legs
//     between every pair of entities (Floyd–Warshall, k → i → j order).
//
// Contract:
//   - Off-diagonal 0 means "no direct leg"; it is treated as +Inf while
//     relaxing and written back as 0 when no chain exists.
//   - The result keeps the input's entity axis and zero diagonal.

package matrix

import (
	"cmp"
	"fmt"
	"math"
)

// Closure returns a new Pairwise where each cell holds the shortest
// cumulative distance along observed legs, or 0 when b is unreachable
// from a. The receiver is untouched.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: Time O(V³), Space O(V²).
func Closure[K cmp.Ordered](p *Pairwise[K]) (*Pairwise[K], error) {
	if err := ValidateAxis(p); err != nil {
		return nil, fmt.Errorf("Closure: %w", err)
	}
	out := p.Clone()
	n := out.mat.r
	data := out.mat.data
	inf := math.Inf(1)

	// Stage 1: missing legs → +Inf.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				data[i*n+j] = 0
			} else if data[i*n+j] == 0 {
				data[i*n+j] = inf
			}
		}
	}

	// Stage 2: relax through every intermediate k.
	relaxInPlace(data, n)

	// Stage 3: unreachable → 0 so the result never stores ±Inf.
	for i = range data {
		if math.IsInf(data[i], 1) {
			data[i] = 0
		}
	}

	return out, nil
}

// relaxInPlace is the dense Floyd–Warshall core over a row-major n×n buffer.
// +Inf denotes "no path"; strict improvement only, so ties keep the first value.
func relaxInPlace(data []float64, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
