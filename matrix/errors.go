// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned wrapped with an operation
// tag via matrixErrorf("Op", ErrX); callers match with errors.Is.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows<=0 or cols<=0). Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or statistics over fewer than two rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (complete-data ingestion, Standardize, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrZeroVariance is returned when input carries no variance to work
	// with: a constant column under Standardize/Correlation (the wrap names
	// the offending column index), or a zero variance total downstream.
	// Division by zero is never silently tolerated.
	ErrZeroVariance = errors.New("matrix: zero variance")

	// ErrEigenFailed indicates that the Jacobi routine failed to converge
	// under the given tolerance/iteration cap. The wrap carries the sweep
	// count and the residual off-diagonal magnitude.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
