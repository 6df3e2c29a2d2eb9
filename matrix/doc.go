// SPDX-License-Identifier: MIT

// Package matrix builds dense, entity-indexed pairwise matrices from sparse
// long-form observations and unrolls them back into long form.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with bounds-checked At/Set that
//     never stores NaN or ±Inf.
//   - Pairwise[K]: a square Dense indexed by a sorted universe of entity
//     keys (any cmp.Ordered type), symmetric and zero-diagonal by contract.
//   - Build / BuildFromTable: sparse (a, b, value) triples → Pairwise, with a
//     named reconciliation policy for pairs observed in both directions.
//   - Unroll / UnrollTable: Pairwise → ordered (id_start, id_end, distance)
//     rows, diagonal excluded.
//   - Validators: square, symmetric and zero-diagonal checks returning
//     sentinel errors (see errors.go).
//   - Closure: cumulative distances through intermediate entities
//     (Floyd–Warshall), zero cells read as "no direct route".
//
// Round trip: for any valid Pairwise M with at least two entities,
// Build(Unroll(M)) reproduces M exactly under every reconciliation policy
// except ReconcileSum, which doubles mirrored pairs by definition.
//
// Matrices are O(V²) in memory; they fit route networks of a few thousand
// stops, not continental graphs.
package matrix
