// SPDX-License-Identifier: MIT
// Package pca: sentinel error set.
// Cross-layer conditions are ALIASED to the matrix sentinels they originate
// from, so errors.Is matches through the whole chain no matter which layer
// produced the failure.

package pca

import (
	"errors"
	"fmt"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

var (
	// ErrComponentCount is returned when the requested number of retained
	// components falls outside [1, variables]. Checked before any numeric
	// work starts.
	ErrComponentCount = errors.New("pca: component count out of range")

	// ErrDegenerateInput aliases matrix.ErrZeroVariance: a constant column
	// (cannot be standardized) or a zero eigenvalue total (nothing to
	// apportion). The wrap names the failing column or the zero total.
	ErrDegenerateInput = matrix.ErrZeroVariance

	// ErrNotConverged aliases matrix.ErrEigenFailed: the Jacobi sweeps ran
	// out of iteration budget before reaching the off-diagonal tolerance.
	// The wrap carries the rotation count and residual magnitude.
	ErrNotConverged = matrix.ErrEigenFailed

	// ErrTooFewRows aliases matrix.ErrDimensionMismatch: sample statistics
	// need at least two observations.
	ErrTooFewRows = matrix.ErrDimensionMismatch
)

// Canonical operation tags used when wrapping sentinels.
const (
	opFit       = "Fit"
	opDecompose = "Decompose"
	opVariance  = "VarianceExplained"
	opScores    = "Scores"
	opLoadings  = "Loadings"
	opProject   = "Project"
)

// pcaErrorf wraps err with the canonical operation tag. Callers unwrap with
// errors.Is against the sentinels above.
func pcaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
