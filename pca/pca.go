// SPDX-License-Identifier: MIT
// Package pca: the full fit pipeline.

package pca

import (
	"fmt"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

// Fit runs the complete correlation-based PCA on a raw observation matrix X
// (rows = observations, columns = variables) and retains k components.
// Implementation:
//   - Stage 1 (Validate): non-nil X; k must lie in [1, Cols(X)] — rejected
//     with ErrComponentCount before any numeric work.
//   - Stage 2 (Standardize): z-score every column with the sample standard
//     deviation; constant columns fail with ErrDegenerateInput naming the
//     column index. The fitted means/stds are kept for Project.
//   - Stage 3 (Correlate): Pearson correlation from the z-scores — symmetric
//     by construction with an exact unit diagonal.
//   - Stage 4 (Decompose): Jacobi eigendecomposition, eigenvalues descending,
//     deterministic sign convention (see Decompose).
//   - Stage 5 (Account): per-component proportion and cumulative variance
//     over the FULL spectrum.
//   - Stage 6 (Project): scores S = Z·V[:, :k] for the fitted rows.
//   - Stage 7 (Load): p×k loading table under opts.LoadingMode.
//
// Every stage receives and returns explicit values; nothing is cached or
// shared, so identical inputs produce bitwise-identical Results.
//
// Errors:
//   - ErrComponentCount — k outside [1, variables].
//   - ErrDegenerateInput — zero-variance column (wrap names the index).
//   - ErrTooFewRows — fewer than two observations.
//   - ErrNotConverged — Jacobi sweep budget exhausted (wrap carries counts).
//   - matrix.ErrNaNInf — via constructors, when X was built with NewDenseFromRows.
//
// Complexity: Time O(n·p² + p³·sweeps), Space O(n·p + p²).
func Fit(X matrix.Matrix, k int, opts *Options) (*Result, error) {
	// Stage 1 (Validate).
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	p := X.Cols()
	if k < 1 || k > p {
		return nil, pcaErrorf(opFit,
			fmt.Errorf("k=%d with %d variables: %w", k, p, ErrComponentCount))
	}
	o := opts.normalized()

	// Stage 2 (Standardize).
	Z, means, stds, err := matrix.Standardize(X)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 3 (Correlate): reuse Z, standardizing exactly once.
	corr, err := matrix.CorrelationFromStandardized(Z)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 4 (Decompose).
	eigs, V, err := Decompose(corr, &o)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 5 (Account).
	proportion, cumulative, err := VarianceExplained(eigs)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 6 (Project).
	scores, err := Scores(Z, V, k)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 7 (Load).
	loadings, err := Loadings(V, eigs, k, o.LoadingMode)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	components, err := sliceColumns(V, k)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	return &Result{
		Eigenvalues: eigs,
		Proportion:  proportion,
		Cumulative:  cumulative,
		Components:  components,
		Scores:      scores,
		Loadings:    loadings,
		Means:       means,
		Stds:        stds,
		LoadingMode: o.LoadingMode,
	}, nil
}
