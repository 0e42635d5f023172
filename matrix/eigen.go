// SPDX-License-Identifier: MIT
// Package matrix: Jacobi eigendecomposition for real symmetric matrices.

package matrix

import (
	"fmt"
	"math"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol (not nil, square,
//     |A[i,j]−A[j,i]| ≤ tol).
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply a Jacobi rotation until every off-diagonal is below tol.
//
// Behavior highlights:
//   - Stable, deterministic pivot scan; fast path for *Dense updates.
//   - Eigenvalues come back in DIAGONAL order (unsorted); ordering and the
//     sign convention are the caller's policy (see the pca package).
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations; substitutes for a timeout since the
//     computation is deterministic and CPU-bound.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix).
//   - *Dense: Q whose columns are unit-norm eigenvectors.
//
// Errors:
//   - ErrDimensionMismatch (non-square), ErrAsymmetry (not symmetric within
//     tol), ErrEigenFailed wrapped with the sweep count and residual
//     off-diagonal when maxIter is exhausted.
//
// Determinism:
//   - Fixed i→j pivot search and fixed update order produce stable results.
//
// Complexity:
//   - Time O(maxIter · n³) worst case, Space O(n²).
//
// Notes:
//   - If |A[p,q]| ≤ tol at the pivot, the rotation is skipped to avoid a
//     division blow-up; the pivot scan then terminates on the next sweep.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Validate: notNil; square; symmetric within tol.
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Prepare working copy A and orthogonal accumulator Q.
	n := m.Rows()
	aRaw := m.Clone()        // working copy; the input is never mutated
	Q, err := NewDense(n, n) // rotation accumulator
	var i, j int
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	// Initialize Q as identity: Q[i,i] = 1.
	for i = 0; i < n; i++ {
		Q.data[i*n+i] = 1.0
	}

	// Detect if we can use the fast-path on *Dense.
	A, useFast := aRaw.(*Dense)

	// Jacobi rotations.
	var (
		iter               int     // iteration counter
		base               int     // helper offset into the flat data slice
		p, q               int     // current pivot indices
		maxOff, off        float64 // current max |A[p,q]| and a temporary
		app, aqq, apq      float64 // pivot-block entries
		aip, aiq, qip, qiq float64 // temporaries for A and Q updates
		newIP, newIQ       float64 // updated values for A[i,p] and A[i,q]
		theta, t, c, s     float64 // rotation parameters
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,q) maximizing |A[p,q]|.
		maxOff = 0.0
		if useFast {
			for i = 0; i < n; i++ {
				base = i * n
				for j = i + 1; j < n; j++ {
					off = math.Abs(A.data[base+j])
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
		} else {
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					off, err = aRaw.At(i, j)
					if err != nil {
						return nil, nil, matrixErrorf(opEigen, fmt.Errorf("At(%d,%d): %w", i, j, err))
					}
					off = math.Abs(off)
					if off > maxOff {
						maxOff, p, q = off, i, j
					}
				}
			}
		}

		// J.2: Converged once every off-diagonal is below tol.
		if maxOff < tol {
			break
		}

		// J.3: Compute rotation parameters from A[p,p], A[q,q], A[p,q].
		if useFast {
			app = A.data[p*n+p]
			aqq = A.data[q*n+q]
			apq = A.data[p*n+q]
		} else {
			if app, err = aRaw.At(p, p); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
			if aqq, err = aRaw.At(q, q); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
			if apq, err = aRaw.At(p, q); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
		}
		// Guard: avoid division by a ~zero off-diagonal.
		if math.Abs(apq) <= tol {
			continue
		}
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c=1/√(1+t²); s=t·c.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply rotation to A (symmetric updates).
		if useFast {
			for i = 0; i < n; i++ {
				if i == p || i == q {
					continue
				}
				aip = A.data[i*n+p]
				aiq = A.data[i*n+q]
				newIP = c*aip - s*aiq
				newIQ = s*aip + c*aiq
				A.data[i*n+p], A.data[p*n+i] = newIP, newIP
				A.data[i*n+q], A.data[q*n+i] = newIQ, newIQ
			}
			A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
			A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
			A.data[p*n+q], A.data[q*n+p] = 0, 0
		} else {
			for i = 0; i < n; i++ {
				if i == p || i == q {
					continue
				}
				if aip, err = aRaw.At(i, p); err != nil {
					return nil, nil, matrixErrorf(opEigen, err)
				}
				if aiq, err = aRaw.At(i, q); err != nil {
					return nil, nil, matrixErrorf(opEigen, err)
				}
				newIP = c*aip - s*aiq
				newIQ = s*aip + c*aiq
				if err = aRaw.Set(i, p, newIP); err != nil {
					return nil, nil, matrixErrorf(opEigen, err)
				}
				if err = aRaw.Set(p, i, newIP); err != nil {
					return nil, nil, matrixErrorf(opEigen, err)
				}
				if err = aRaw.Set(i, q, newIQ); err != nil {
					return nil, nil, matrixErrorf(opEigen, err)
				}
				if err = aRaw.Set(q, i, newIQ); err != nil {
					return nil, nil, matrixErrorf(opEigen, err)
				}
			}
			if err = aRaw.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
			if err = aRaw.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
			if err = aRaw.Set(p, q, 0.0); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
			if err = aRaw.Set(q, p, 0.0); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
		}

		// J.5: Accumulate the rotation into Q (always *Dense).
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Surface non-convergence with diagnostics; never fall back to a
	// partial decomposition.
	if iter == maxIter {
		return nil, nil, matrixErrorf(opEigen,
			fmt.Errorf("no convergence after %d rotations (max off-diagonal %g ≥ tol %g): %w",
				iter, maxOff, tol, ErrEigenFailed))
	}

	// Finalize eigenvalues from the rotated diagonal.
	eigs := make([]float64, n)
	if useFast {
		for i = 0; i < n; i++ {
			eigs[i] = A.data[i*n+i]
		}
	} else {
		for i = 0; i < n; i++ {
			if eigs[i], err = aRaw.At(i, i); err != nil {
				return nil, nil, matrixErrorf(opEigen, err)
			}
		}
	}

	return eigs, Q, nil
}
