// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrDimensionMismatch if not square. Assumes non-nil input.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil with a.Cols == b.Rows.
// Composite: NotNil(a) → NotNil(b) → inner-dimension check.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks m is non-nil, square and symmetric within eps:
// |m[i,j] − m[j,i]| ≤ eps over the upper triangle.
// Use before spectral methods (Jacobi) to fail fast on asymmetric input.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry.
// Complexity: O(n²), upper triangle only.
func ValidateSymmetric(m Matrix, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	n := m.Rows()
	var i, j int
	var aij, aji float64
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			aji, err = m.At(j, i)
			if err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateFinite ensures every element of m is a finite float64.
// The statistics layer assumes complete data; NaN/Inf must be rejected at
// the boundary rather than propagated into correlations.
//
// Errors: ErrNilMatrix, ErrNaNInf (wrapped with the first offending cell).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	r, c := m.Rows(), m.Cols()
	// Dense fast-path: scan the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(
					fmt.Sprintf("ValidateFinite: cell (%d,%d)", idx/c, idx%c), ErrNaNInf)
			}
		}

		return nil
	}

	// Generic fallback via At.
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(
					fmt.Sprintf("ValidateFinite: cell (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}
