// SPDX-License-Identifier: MIT
// Package pca: options and result types.

package pca

import "github.com/ybarnatan/seeds-PCA/matrix"

// Numeric policy defaults for the Jacobi eigensolver driving Decompose.
const (
	// DefaultTol is the off-diagonal convergence tolerance.
	DefaultTol = 1e-10

	// DefaultMaxIter caps the number of Jacobi sweeps.
	DefaultMaxIter = 200
)

// LoadingMode selects the convention for the loading table.
//
//   - LoadingsCorrelation — coefficient × √eigenvalue. Entry (j, c) is then
//     the Pearson correlation between variable j and component c, the form
//     ecological ordination tables usually report.
//   - LoadingsRaw — plain unit-norm eigenvector coefficients.
//
// One convention applies to every component identically; the chosen mode is
// recorded in Result.LoadingMode so downstream tables are unambiguous.
type LoadingMode int

const (
	// LoadingsCorrelation mode: scale coefficients by √eigenvalue.
	LoadingsCorrelation LoadingMode = iota

	// LoadingsRaw mode: report eigenvector coefficients as-is.
	LoadingsRaw
)

// Options configures a PCA fit.
//
// Fields:
//   - Tol         — Jacobi off-diagonal tolerance. Non-positive values fall
//     back to DefaultTol.
//   - MaxIter     — Jacobi sweep cap. Non-positive values fall back to
//     DefaultMaxIter.
//   - LoadingMode — loading table convention (LoadingsCorrelation default).
//
// Example:
//
//	opts := pca.DefaultOptions()
//	opts.LoadingMode = pca.LoadingsRaw
//	res, err := pca.Fit(X, 2, &opts)
type Options struct {
	Tol         float64
	MaxIter     int
	LoadingMode LoadingMode
}

// DefaultOptions returns the canonical numeric policy.
func DefaultOptions() Options {
	return Options{
		Tol:         DefaultTol,
		MaxIter:     DefaultMaxIter,
		LoadingMode: LoadingsCorrelation,
	}
}

// normalized returns a value copy of opts with defaults filled in.
// A nil opts means "all defaults".
func (o *Options) normalized() Options {
	out := DefaultOptions()
	if o == nil {
		return out
	}
	out.LoadingMode = o.LoadingMode
	if o.Tol > 0 {
		out.Tol = o.Tol
	}
	if o.MaxIter > 0 {
		out.MaxIter = o.MaxIter
	}

	return out
}

// Result holds a completed fit. Treat every field as read-only: slices and
// matrices are owned by the Result and shared with nobody else.
//
// Shapes (n observations × p variables, k retained components):
//   - Eigenvalues, Proportion, Cumulative — length p (ALL components, not
//     just the retained ones; the variance table covers the full spectrum).
//   - Components — p×k eigenvector matrix (columns = retained components).
//   - Scores     — n×k projections of the fitted rows.
//   - Loadings   — p×k table under LoadingMode.
//   - Means, Stds — length p, the standardization fitted on the input;
//     Project reuses them for new observations.
type Result struct {
	Eigenvalues []float64
	Proportion  []float64
	Cumulative  []float64
	Components  *matrix.Dense
	Scores      *matrix.Dense
	Loadings    *matrix.Dense
	Means       []float64
	Stds        []float64
	LoadingMode LoadingMode
}
