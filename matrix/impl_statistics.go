// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms behind the PCA pipeline (centering,
//     z-scoring, covariance, Pearson correlation) as deterministic
//     compositions over the canonical kernels and ew* micro-kernels.
//
// Exposed API (see api.go):
//   - CenterColumns(X) -> (Xc, means)         // subtract per-column mean
//   - Standardize(X)   -> (Z, means, stds)    // z-score, sample std (n-1)
//   - Covariance(X)    -> (Cov, means)        // sample covariance: (Xcᵀ Xc)/(r-1)
//   - Correlation(X)   -> (Corr, means, stds) // Pearson; upper triangle mirrored
//   - CorrelationFromStandardized(Z) -> Corr  // same Gram step, Z pre-scored
//
// Determinism & Numeric policy:
//   - Fixed i→j traversal for all explicit loops; Dense fast-paths operate on
//     row-major flat buffers.
//   - Zero-variance columns are an ERROR (ErrZeroVariance with the column
//     index), never silently zeroed: the survey variables live on wildly
//     different scales and a constant column cannot be standardized.
//   - Correlation fills the upper triangle once and mirrors it, so the output
//     is symmetric by construction with an exact unit diagonal — the property
//     the Jacobi eigensolver relies on.

package matrix

import (
	"fmt"
	"math"
)

// centerColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute column means in a deterministic pass (Dense fast-path;
//     At fallback).
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns the centered copy (r×c) and the column means (len=c).
// Complexity: Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterCols, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	// Stage 2 (Execute): accumulate sums into means, then convert to averages.
	var i, j int
	var v float64

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ { // deterministic row order
			base := i * c
			for j = 0; j < c; j++ { // deterministic column order
				means[j] += d.data[base+j] // accumulate sum for column j
			}
		}
	} else {
		// Fallback: use At(i,j) with full error propagation.
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = X.At(i, j)
				if err != nil {
					return nil, nil, matrixErrorf(opCenterCols, err)
				}
				means[j] += v
			}
		}
	}

	// Stage 3 (Finalize means): divide sums by r to obtain means.
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3 (Apply): broadcast-subtract the means over rows.
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterCols, err)
	}

	return Xc, means, nil
}

// columnStds computes the sample standard deviation of each column of a
// CENTERED matrix: std[j] = sqrt( Σ_i Xc[i,j]² / (r-1) ).
// Internal helper shared by standardize and covariance-derived stats.
// Complexity: Time O(r*c), Space O(c).
func columnStds(Xc Matrix) ([]float64, error) {
	r, c := Xc.Rows(), Xc.Cols()
	sumsq := make([]float64, c) // accumulate squared sums deterministically

	var i, j int
	var v float64

	if d, ok := Xc.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				sumsq[j] += v * v
			}
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = Xc.At(i, j)
				if err != nil {
					return nil, err
				}
				sumsq[j] += v * v
			}
		}
	}

	stds := make([]float64, c)
	inv := 1.0 / float64(r-1)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	return stds, nil
}

// standardize z-scores every column: Z[i,j] = (X[i,j] − mean_j) / std_j with
// the sample standard deviation (denominator r−1).
// Implementation:
//   - Stage 1: Validate X (non-nil) and require r ≥ 2 (sample denominator).
//   - Stage 2: Center columns; compute sample stds per column.
//   - Stage 3: Fail on any zero-variance column (named by index); otherwise
//     Z = Xc · diag(1/std) via ewScaleCols.
//
// Standardization is required because the survey variables mix percentages,
// counts and density sums; without it the high-variance variables dominate
// the component structure.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2),
//   - ErrZeroVariance (wrapped with the offending column index).
//
// Complexity: Time O(r*c), Space O(r*c).
func standardize(X Matrix) (Matrix, []float64, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}
	// Sample statistics require at least two observations.
	if X.Rows() < 2 {
		return nil, nil, nil, matrixErrorf(opStandardize, ErrDimensionMismatch)
	}

	// Stage 2 (Center): subtract column means.
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}

	// Stage 2 (Spread): sample standard deviation per column.
	stds, err := columnStds(Xc)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}

	// Stage 3 (Guard + scale): a constant column cannot be standardized.
	c := X.Cols()
	invStd := make([]float64, c)
	for j := 0; j < c; j++ {
		if stds[j] == 0 {
			return nil, nil, nil, matrixErrorf(opStandardize,
				fmt.Errorf("column %d: %w", j, ErrZeroVariance))
		}
		invStd[j] = 1.0 / stds[j]
	}

	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opStandardize, err)
	}

	return Z, means, stds, nil
}

// covariance computes sample covariance of columns: Cov = (Xcᵀ Xc)/(r−1).
// Implementation:
//   - Stage 1: Validate X, require r ≥ 2.
//   - Stage 2: Center columns once, then compose Transpose → Mul → Scale.
//
// Symmetric output; diagonal equals per-column sample variances.
// Complexity: Time O(r*c + r*c²), Space O(c²).
func covariance(X Matrix) (Matrix, []float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	// Sample covariance requires at least two observations.
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	// Stage 2 (Center): reuse the canonical centering implementation.
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 3 (Compute): Cov = (Xcᵀ Xc)/(r-1) via canonical kernels.
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}

// correlation computes the Pearson correlation of columns via z-scoring:
// Corr[j,k] = Σ_i Z[i,j]·Z[i,k] / (r−1).
// Implementation:
//   - Stage 1: Standardize (validates shape and zero variance).
//   - Stage 2: Delegate to corrFromStandardized for the mirrored Gram matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2), ErrZeroVariance (via standardize).
//
// Complexity: Time O(r*c²), Space O(c²).
func correlation(X Matrix) (Matrix, []float64, []float64, error) {
	// Stage 1 (Standardize): all validation happens there.
	Z, means, stds, err := standardize(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	// Stage 2 (Gram): correlation of z-scores with exact symmetry.
	Corr, err := corrFromStandardized(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return Corr, means, stds, nil
}

// corrFromStandardized builds Corr[j,k] = Σ_i Z[i,j]·Z[i,k] / (r−1) from an
// ALREADY z-scored matrix Z.
// Implementation:
//   - Stage 1: Validate Z (non-nil, r ≥ 2).
//   - Stage 2: Accumulate the UPPER triangle only with a fixed j→k→i order.
//   - Stage 3: Mirror the triangle and pin the diagonal to exactly 1.0, so
//     the result is numerically symmetric by construction — floating-point
//     rounding can never produce Corr[j,k] ≠ Corr[k,j].
//
// Complexity: Time O(r*c²), Space O(c²).
func corrFromStandardized(Z Matrix) (Matrix, error) {
	if err := ValidateNotNil(Z); err != nil {
		return nil, err
	}
	if Z.Rows() < 2 {
		return nil, ErrDimensionMismatch
	}

	var err error
	r, c := Z.Rows(), Z.Cols()
	Corr, err := NewDense(c, c)
	if err != nil {
		return nil, err
	}

	inv := 1.0 / float64(r-1)
	var i, j, k int
	var acc float64

	// Stage 2 (Upper triangle): deterministic j→k→i accumulation.
	if d, ok := Z.(*Dense); ok {
		for j = 0; j < c; j++ {
			for k = j + 1; k < c; k++ {
				acc = ZeroSum
				for i = 0; i < r; i++ {
					base := i * c
					acc += d.data[base+j] * d.data[base+k]
				}
				Corr.data[j*c+k] = acc * inv
			}
		}
	} else {
		var zj, zk float64
		for j = 0; j < c; j++ {
			for k = j + 1; k < c; k++ {
				acc = ZeroSum
				for i = 0; i < r; i++ {
					zj, err = Z.At(i, j)
					if err != nil {
						return nil, err
					}
					zk, err = Z.At(i, k)
					if err != nil {
						return nil, err
					}
					acc += zj * zk
				}
				Corr.data[j*c+k] = acc * inv
			}
		}
	}

	// Stage 3 (Mirror + diagonal): exact symmetry, exact unit diagonal.
	for j = 0; j < c; j++ {
		Corr.data[j*c+j] = 1.0
		for k = j + 1; k < c; k++ {
			Corr.data[k*c+j] = Corr.data[j*c+k]
		}
	}

	return Corr, nil
}
