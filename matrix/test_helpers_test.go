// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths, so fast-path
// and fallback can be asserted equal.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from row-major values (len must be r*c).
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: got %d values, want %d", len(vals), r*c)
	}
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RandFilledDense builds an r×c *Dense with seeded pseudo-random values in
// (-1, 1), so tests stay deterministic across runs.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, 2*rng.Float64()-1)
		}
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose asserts a and b share a shape and agree element-wise within
// atol + rtol*|b|.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, bv := MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				t.Fatalf("mismatch at (%d,%d): %g vs %g", i, j, av, bv)
			}
		}
	}
}

// sliceClose asserts two float slices agree element-wise within atol + rtol*|want|.
func sliceClose(t *testing.T, got, want []float64, rtol, atol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > atol+rtol*math.Abs(want[i]) {
			t.Fatalf("mismatch at %d: got=%g want=%g", i, got[i], want[i])
		}
	}
}
