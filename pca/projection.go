// SPDX-License-Identifier: MIT
// Package pca: score projection and loading tables.

package pca

import (
	"fmt"
	"math"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

// Scores projects standardized observations onto the first k components:
// S = Z · V[:, :k], one row of component coordinates per observation.
// Implementation:
//   - Stage 1 (Validate): non-nil operands; k must lie in [1, Cols(vectors)]
//     — checked BEFORE any numeric work.
//   - Stage 2 (Slice): copy the leading k eigenvector columns.
//   - Stage 3 (Multiply): canonical matrix.Mul kernel; a Z/vectors shape
//     mismatch surfaces as matrix.ErrDimensionMismatch from the kernel.
//
// Errors: ErrComponentCount, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: Time O(n·p·k), Space O(n·k).
func Scores(Z matrix.Matrix, vectors *matrix.Dense, k int) (*matrix.Dense, error) {
	// Stage 1 (Validate).
	if err := matrix.ValidateNotNil(Z); err != nil {
		return nil, pcaErrorf(opScores, err)
	}
	if vectors == nil {
		return nil, pcaErrorf(opScores, matrix.ErrNilMatrix)
	}
	if k < 1 || k > vectors.Cols() {
		return nil, pcaErrorf(opScores,
			fmt.Errorf("k=%d with %d components: %w", k, vectors.Cols(), ErrComponentCount))
	}

	// Stage 2 (Slice).
	Vk, err := sliceColumns(vectors, k)
	if err != nil {
		return nil, pcaErrorf(opScores, err)
	}

	// Stage 3 (Multiply).
	S, err := matrix.Mul(Z, Vk)
	if err != nil {
		return nil, pcaErrorf(opScores, err)
	}

	return asDense(S)
}

// Loadings builds the p×k loading table for the first k components under the
// chosen convention:
//   - LoadingsCorrelation: entry (j,c) = V[j,c] · √λ_c — the correlation
//     between variable j and component c on standardized data.
//   - LoadingsRaw: entry (j,c) = V[j,c], the unit-norm coefficients.
//
// Eigenvalues already clamped at 0 by Decompose keep √λ well-defined; a
// stray negative is treated as 0 here as well.
//
// Errors: ErrComponentCount (k outside [1, p]),
// matrix.ErrDimensionMismatch (len(eigenvalues) ≠ Cols(vectors)),
// matrix.ErrNilMatrix.
// Complexity: Time O(p·k), Space O(p·k).
func Loadings(vectors *matrix.Dense, eigenvalues []float64, k int, mode LoadingMode) (*matrix.Dense, error) {
	if vectors == nil {
		return nil, pcaErrorf(opLoadings, matrix.ErrNilMatrix)
	}
	if vectors.Cols() != len(eigenvalues) {
		return nil, pcaErrorf(opLoadings,
			fmt.Errorf("%d eigenvalues for %d eigenvectors: %w",
				len(eigenvalues), vectors.Cols(), matrix.ErrDimensionMismatch))
	}
	if k < 1 || k > vectors.Cols() {
		return nil, pcaErrorf(opLoadings,
			fmt.Errorf("k=%d with %d components: %w", k, vectors.Cols(), ErrComponentCount))
	}

	p := vectors.Rows()
	L, err := matrix.NewDense(p, k)
	if err != nil {
		return nil, pcaErrorf(opLoadings, err)
	}

	var j, c int
	var v, scale float64
	for c = 0; c < k; c++ {
		scale = 1.0
		if mode == LoadingsCorrelation {
			lambda := eigenvalues[c]
			if lambda < 0 {
				lambda = 0
			}
			scale = math.Sqrt(lambda)
		}
		for j = 0; j < p; j++ {
			if v, err = vectors.At(j, c); err != nil {
				return nil, pcaErrorf(opLoadings, err)
			}
			if err = L.Set(j, c, v*scale); err != nil {
				return nil, pcaErrorf(opLoadings, err)
			}
		}
	}

	return L, nil
}

// Project standardizes new observations with the FITTED means/stds and maps
// them onto the retained components: S = z(rows) · Components. Rows must
// carry exactly one value per fitted variable, finite values only.
//
// Errors: matrix.ErrDimensionMismatch (ragged/short rows, no rows),
// matrix.ErrNaNInf, matrix.ErrNilMatrix (unfitted receiver).
// Complexity: Time O(n·p·k), Space O(n·k).
func (r *Result) Project(rows [][]float64) (*matrix.Dense, error) {
	if r == nil || r.Components == nil {
		return nil, pcaErrorf(opProject, matrix.ErrNilMatrix)
	}
	if len(rows) == 0 {
		return nil, pcaErrorf(opProject, matrix.ErrDimensionMismatch)
	}

	p := len(r.Means)
	z := make([][]float64, len(rows))
	var i, j int
	for i = range rows {
		if len(rows[i]) != p {
			return nil, pcaErrorf(opProject,
				fmt.Errorf("row %d has %d values, want %d: %w",
					i, len(rows[i]), p, matrix.ErrDimensionMismatch))
		}
		z[i] = make([]float64, p)
		for j = 0; j < p; j++ {
			// Stds are nonzero: a zero-variance column fails the fit itself.
			z[i][j] = (rows[i][j] - r.Means[j]) / r.Stds[j]
		}
	}

	Z, err := matrix.NewDenseFromRows(z) // validates finiteness
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}
	S, err := matrix.Mul(Z, r.Components)
	if err != nil {
		return nil, pcaErrorf(opProject, err)
	}

	return asDense(S)
}

// sliceColumns copies the leading k columns of V into a fresh Rows(V)×k Dense.
func sliceColumns(V *matrix.Dense, k int) (*matrix.Dense, error) {
	p := V.Rows()
	out, err := matrix.NewDense(p, k)
	if err != nil {
		return nil, err
	}
	var i, c int
	var v float64
	for i = 0; i < p; i++ {
		for c = 0; c < k; c++ {
			if v, err = V.At(i, c); err != nil {
				return nil, err
			}
			if err = out.Set(i, c, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// asDense narrows a kernel result to *matrix.Dense, copying only if a
// non-Dense implementation ever flows through.
func asDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
