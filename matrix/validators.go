// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and structure checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"cmp"
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Also catches typed-nil *Dense hidden in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |M[i,j] − M[j,i]| ≤ eps on the upper triangle.
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.Rows()
	var aij, aji float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // bounds are guaranteed by the square check
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > eps {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |M[i,i]| ≤ eps for every i.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	for i := 0; i < m.Rows(); i++ {
		v, _ := m.At(i, i)
		if math.Abs(v) > eps {
			return validatorErrorf("ValidateZeroDiagonal", fmt.Errorf("(%d,%d): %w", i, i, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateAxis checks that a Pairwise's entity axis agrees with its storage.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func ValidateAxis[K cmp.Ordered](p *Pairwise[K]) error {
	if p == nil || p.mat == nil {
		return validatorErrorf("ValidateAxis", ErrNilMatrix)
	}
	if err := ValidateSquare(p.mat); err != nil {
		return validatorErrorf("ValidateAxis", err)
	}
	if len(p.ids) != p.mat.Rows() || len(p.index) != len(p.ids) {
		return validatorErrorf("ValidateAxis", ErrDimensionMismatch)
	}

	return nil
}

// Validate is the composite DenseMatrix contract: consistent axis, then
// symmetric, then zero diagonal (all within opts' epsilon).
func Validate[K cmp.Ordered](p *Pairwise[K], opts ...Option) error {
	o := gatherOptions(opts...)
	if err := ValidateAxis(p); err != nil {
		return validatorErrorf("Validate", err)
	}
	if err := ValidateSymmetric(p.mat, o.eps); err != nil {
		return validatorErrorf("Validate", err)
	}
	if err := ValidateZeroDiagonal(p.mat, o.eps); err != nil {
		return validatorErrorf("Validate", err)
	}

	return nil
}
