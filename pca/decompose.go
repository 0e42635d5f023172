// SPDX-License-Identifier: MIT
// Package pca: ordered, sign-fixed eigendecomposition of the correlation matrix.

package pca

import (
	"math"
	"sort"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

// negEigClamp bounds how negative an eigenvalue may be and still count as a
// rounding artifact of an exactly-PSD correlation matrix. Anything within
// [-negEigClamp, 0) is clamped to exactly 0; values below it pass through
// untouched (the caller supplied a genuinely indefinite matrix).
const negEigClamp = 1e-9

// Decompose runs the symmetric Jacobi eigendecomposition on corr and applies
// the deterministic ordering policy on top of it.
// Implementation:
//   - Stage 1 (Solve): matrix.Eigen under opts.Tol / opts.MaxIter.
//   - Stage 2 (Order): eigenpairs sorted by eigenvalue DESCENDING; the sort
//     is stable, so equal eigenvalues keep the solver's column order.
//   - Stage 3 (Clamp): tiny negative eigenvalues (≥ −negEigClamp) become 0.
//   - Stage 4 (Normalize): each eigenvector is rescaled to exact unit norm,
//     absorbing the rotation rounding accumulated over the sweeps.
//   - Stage 5 (Sign): each eigenvector is flipped, if needed, so that its
//     coefficient of largest absolute magnitude is positive; when two
//     coefficients tie on magnitude the one with the lower index decides.
//
// The combination makes the output a pure function of the input: rerunning
// on the same matrix reproduces every value AND every sign bitwise.
//
// Returns eigenvalues (descending, len=p) and the p×p eigenvector matrix
// whose column c pairs with eigenvalue c.
//
// Errors:
//   - matrix.ErrAsymmetry, matrix.ErrNilMatrix (invalid input),
//   - ErrNotConverged when the sweep budget runs out.
//
// Complexity: Time O(p³·sweeps), Space O(p²).
func Decompose(corr matrix.Matrix, opts *Options) ([]float64, *matrix.Dense, error) {
	o := opts.normalized()

	// Stage 1 (Solve): validation (square, symmetric) happens in the solver.
	eigs, Q, err := matrix.Eigen(corr, o.Tol, o.MaxIter)
	if err != nil {
		return nil, nil, pcaErrorf(opDecompose, err)
	}

	p := len(eigs)
	cols := make([][]float64, p)
	for j := 0; j < p; j++ {
		cols[j], err = Q.Col(j)
		if err != nil {
			return nil, nil, pcaErrorf(opDecompose, err)
		}
	}

	// Stage 2 (Order): stable index sort, eigenvalues descending.
	idx := make([]int, p)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return eigs[idx[a]] > eigs[idx[b]] })

	vals := make([]float64, p)
	ordered := make([][]float64, p)
	for dst, src := range idx {
		vals[dst] = eigs[src]
		ordered[dst] = cols[src]
	}

	// Stage 3 (Clamp): rounding can leave a −1e-16 where PSD theory says 0.
	for i, v := range vals {
		if v < 0 && v >= -negEigClamp {
			vals[i] = 0
		}
	}

	// Stage 4 + 5 (Normalize, Sign): column-local, order-independent fixes.
	for _, col := range ordered {
		normalizeVec(col)
		orientVec(col)
	}

	// Assemble V with V[i][c] = ordered[c][i] (eigenvectors as columns).
	rows := make([][]float64, p)
	var i, c int
	for i = 0; i < p; i++ {
		rows[i] = make([]float64, p)
		for c = 0; c < p; c++ {
			rows[i][c] = ordered[c][i]
		}
	}
	V, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, nil, pcaErrorf(opDecompose, err)
	}

	return vals, V, nil
}

// normalizeVec rescales v to unit Euclidean norm in place. A zero vector is
// left untouched (cannot occur for columns of an orthogonal Q, but the guard
// keeps the helper total).
func normalizeVec(v []float64) {
	var sumsq float64
	for _, x := range v {
		sumsq += x * x
	}
	if sumsq == 0 {
		return
	}
	inv := 1.0 / math.Sqrt(sumsq)
	for i := range v {
		v[i] *= inv
	}
}

// orientVec flips the sign of v, in place, so the coefficient of largest
// absolute magnitude is positive. Strict '>' in the scan means the FIRST
// index wins magnitude ties, keeping the convention deterministic.
func orientVec(v []float64) {
	if len(v) == 0 {
		return
	}
	lead := 0
	maxAbs := math.Abs(v[0])
	for i := 1; i < len(v); i++ {
		if a := math.Abs(v[i]); a > maxAbs {
			maxAbs = a
			lead = i
		}
	}
	if v[lead] < 0 {
		for i := range v {
			v[i] = -v[i]
		}
	}
}
