// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by builders, unroller and validators.
package matrix

import "cmp"

// Long-form column names produced by UnrollTable and consumed downstream.
const (
	ColIDStart  = "id_start"
	ColIDEnd    = "id_end"
	ColDistance = "distance"
)

// Observation is one sparse pairwise measurement (A → B = Value).
// Direction only matters for reconciliation; see Reconcile.
type Observation[K cmp.Ordered] struct {
	A, B  K
	Value float64
}

// pairKey is an ordered pair (u,v) of matrix indexes used to detect
// duplicate directed observations. Ints keep the key compact and hash-friendly.
type pairKey struct {
	u int // row index
	v int // column index
}

// Matrix represents a two-dimensional array of float64 values.
// Dense is the only implementation shipped; validators accept the interface.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf for non-finite v.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
