// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for the statistics layer.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation in impl_statistics.go.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the
// column means (length = Cols(X)).
// Determinism: fixed loops and pure compositions.
// Time: O(r*c). Space: O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// Standardize z-scores every column with the SAMPLE standard deviation
// (denominator r−1): Z = (X − mean) / std. Returns Z, means and stds.
//
// A zero-variance column fails with ErrZeroVariance naming the column index;
// the constant column must be dropped by the caller before re-running.
// Time: O(r*c). Space: O(r*c).
func Standardize(X Matrix) (Matrix, []float64, []float64, error) { return standardize(X) }

// Covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r−1).
// Returns Cov and the column means. Requires r ≥ 2 (else ErrDimensionMismatch).
// Time: O(r*c + r*c²). Space: O(c²).
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }

// Correlation computes the Pearson correlation of columns via z-scoring.
// The upper triangle is computed once and mirrored, so the result is
// symmetric by construction with an exact unit diagonal — the form the
// symmetric eigensolver requires. Returns Corr, means, stds.
//
// A zero-variance column fails with ErrZeroVariance (wrapped with the
// column index) rather than producing a degenerate row of zeros.
// Time: O(r*c²). Space: O(c²).
func Correlation(X Matrix) (Matrix, []float64, []float64, error) { return correlation(X) }

// CorrelationFromStandardized computes the Pearson correlation from a matrix
// whose columns are ALREADY z-scored: Corr = (Zᵀ Z)/(r−1), built triangle-first
// and mirrored like Correlation. Callers that standardize once and need both
// Z and Corr (the PCA pipeline) use this to avoid a second standardization.
// The caller is responsible for Z actually being standardized.
// Time: O(r*c²). Space: O(c²).
func CorrelationFromStandardized(Z Matrix) (Matrix, error) { return corrFromStandardized(Z) }
