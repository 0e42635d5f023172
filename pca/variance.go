// SPDX-License-Identifier: MIT
// Package pca: variance accounting over the eigenvalue spectrum.

package pca

import "fmt"

// VarianceExplained converts an eigenvalue spectrum into the variance table:
// per-component proportion λ_c / Σλ and the running cumulative sum.
// Implementation:
//   - Stage 1 (Total): sum the spectrum once; a total of zero (or below) is
//     a degenerate input and fails — this function never divides by zero.
//   - Stage 2 (Proportions): each ratio is clipped into [0,1], so rounding
//     noise on a near-zero eigenvalue can never produce −1e-17 or 1+ε.
//   - Stage 3 (Cumulative): running sum, clipped into [0,1]; monotone
//     non-decreasing with the last element equal to 1 within rounding.
//
// Errors:
//   - ErrDegenerateInput when Σλ ≤ 0 (wrapped with the offending total).
//
// Complexity: Time O(p), Space O(p).
func VarianceExplained(eigenvalues []float64) ([]float64, []float64, error) {
	// Stage 1 (Total).
	var total float64
	for _, v := range eigenvalues {
		total += v
	}
	if total <= 0 {
		return nil, nil, pcaErrorf(opVariance,
			fmt.Errorf("eigenvalue total %g: %w", total, ErrDegenerateInput))
	}

	p := len(eigenvalues)
	proportion := make([]float64, p)
	cumulative := make([]float64, p)

	// Stage 2 + 3 (Proportions, Cumulative): one deterministic pass.
	inv := 1.0 / total
	var run float64
	for c, v := range eigenvalues {
		proportion[c] = clip01(v * inv)
		run += proportion[c]
		cumulative[c] = clip01(run)
	}

	return proportion, cumulative, nil
}

// clip01 clamps x into the closed interval [0, 1].
func clip01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
