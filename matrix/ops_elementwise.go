// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* broadcast kernels (ew*) to avoid duplicating
//     tight loops across the statistics layer.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED by design (internal micro-kernels).
//   - Public API uses these via the statistics implementations.

package matrix

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	// Validate matrix presence using centralized validator.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	// Read shape once (O(1)).
	r, c := X.Rows(), X.Cols()
	// Check broadcast vector length.
	if len(colMeans) != c {
		return nil, matrixErrorf("broadcastSubCols", ErrDimensionMismatch)
	}
	// Allocate result dense.
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c // cache the base offset for row i
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - colMeans[j]
			}
		}

		return out, nil
	}

	// Generic fallback via At/Set (still deterministic).
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("broadcastSubCols", e)
			}
			_ = out.Set(i, j, v-colMeans[j]) // bounds-safe write
		}
	}

	return out, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
// Used with factors 1/std for z-scoring; the caller guarantees std > 0.
func ewScaleCols(X Matrix, scale []float64) (Matrix, error) {
	// Validate matrix presence.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	// Read shape once.
	r, c := X.Rows(), X.Cols()
	// Validate scale length.
	if len(scale) != c {
		return nil, matrixErrorf("scaleCols", ErrDimensionMismatch)
	}
	// Allocate result dense.
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}

	// Dense fast-path: flat row-major pass.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * scale[j]
			}
		}

		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("scaleCols", e)
			}
			_ = out.Set(i, j, v*scale[j])
		}
	}

	return out, nil
}
