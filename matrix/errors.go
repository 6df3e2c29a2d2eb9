// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with call-site
// context via %w); tests match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR FAMILIES
// --------------
// ErrInvalidValue roots every "bad measurement" failure (NaN, ±Inf, negative,
// non-numeric column). ErrShape roots every "bad matrix geometry" failure
// (non-square, axis/index disagreement). Match the root to handle a family.

var (
	// ErrInvalidValue is returned when a measurement is non-numeric, NaN, ±Inf
	// or otherwise outside the domain of distances.
	ErrInvalidValue = errors.New("matrix: invalid value")

	// ErrNegativeValue is returned for negative distances.
	ErrNegativeValue = fmt.Errorf("matrix: negative value: %w", ErrInvalidValue)

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", ErrInvalidValue)

	// ErrShape is returned when a matrix is not square or its axes disagree
	// with its entity index.
	ErrShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrShape)

	// ErrDimensionMismatch indicates that the entity index and matrix
	// dimensions (or two operands) disagree.
	ErrDimensionMismatch = fmt.Errorf("matrix: dimension mismatch: %w", ErrShape)

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAsymmetry signals that M[a,b] != M[b,a] beyond epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a non-zero self-distance.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrUnknownEntity indicates a key that is not part of the matrix universe.
	ErrUnknownEntity = errors.New("matrix: unknown entity")

	// ErrDuplicatePair indicates the same directed pair (a,b) was observed twice.
	ErrDuplicatePair = errors.New("matrix: duplicate observation for pair")

	// ErrConflictingPair indicates (a,b) and (b,a) carry different values under
	// the ReconcileMirror policy.
	ErrConflictingPair = errors.New("matrix: conflicting values for mirrored pair")

	// ErrUnknownReconcile indicates a reconcile policy name ParseReconcile
	// does not recognise.
	ErrUnknownReconcile = errors.New("matrix: unknown reconcile policy")
)
