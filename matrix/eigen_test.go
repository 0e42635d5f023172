// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

const (
	eigTol     = 1e-10
	eigMaxIter = 200
)

func TestEigen_DiagonalInput(t *testing.T) {
	t.Parallel()

	// A diagonal matrix is its own eigendecomposition (Q = I).
	m := NewFilledDense(t, 3, 3, []float64{
		5, 0, 0,
		0, 2, 0,
		0, 0, -1,
	})
	eigs, Q, err := matrix.Eigen(m, eigTol, eigMaxIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}
	sliceClose(t, eigs, []float64{5, 2, -1}, 0, epsTight)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(MustAt(t, Q, i, j)-want) > epsTight {
				t.Fatalf("Q(%d,%d)=%g, want %g", i, j, MustAt(t, Q, i, j), want)
			}
		}
	}
}

func TestEigen_Known2x2(t *testing.T) {
	t.Parallel()

	// [[2,1],[1,2]] has eigenvalues 3 and 1.
	m := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	eigs, _, err := matrix.Eigen(m, eigTol, eigMaxIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}
	lo, hi := math.Min(eigs[0], eigs[1]), math.Max(eigs[0], eigs[1])
	if math.Abs(hi-3) > 1e-10 || math.Abs(lo-1) > 1e-10 {
		t.Fatalf("eigenvalues {%g,%g}, want {3,1}", hi, lo)
	}
}

func TestEigen_Residual_AndOrthonormalQ(t *testing.T) {
	t.Parallel()

	// Build a random symmetric matrix S = (B + Bᵀ)/2.
	B := RandFilledDense(t, 5, 5, 31)
	Bt, err := matrix.Transpose(B)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	var S matrix.Matrix
	S = MustDense(t, 5, 5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			_ = S.Set(i, j, (MustAt(t, B, i, j)+MustAt(t, Bt, i, j))/2)
		}
	}

	eigs, Q, err := matrix.Eigen(S, eigTol, eigMaxIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}

	// Residual: S·q_k ≈ λ_k·q_k for every eigenpair.
	var col []float64
	for k := 0; k < 5; k++ {
		col, err = Q.Col(k)
		if err != nil {
			t.Fatalf("Col(%d): %v", k, err)
		}
		Sq, e := matrix.MatVec(S, col)
		if e != nil {
			t.Fatalf("MatVec: %v", e)
		}
		for i := 0; i < 5; i++ {
			if math.Abs(Sq[i]-eigs[k]*col[i]) > 1e-8 {
				t.Fatalf("residual (%d,%d): S·q=%g, λ·q=%g", k, i, Sq[i], eigs[k]*col[i])
			}
		}
	}

	// QᵀQ == I: columns are orthonormal.
	Qt, err := matrix.Transpose(Q)
	if err != nil {
		t.Fatalf("Transpose(Q): %v", err)
	}
	I, err := matrix.Mul(Qt, Q)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(MustAt(t, I, i, j)-want) > 1e-9 {
				t.Fatalf("QᵀQ(%d,%d)=%g, want %g", i, j, MustAt(t, I, i, j), want)
			}
		}
	}
}

func TestEigen_Deterministic(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		4, 1, 0.5,
		1, 3, 0.25,
		0.5, 0.25, 2,
	})
	e1, q1, err := matrix.Eigen(m, eigTol, eigMaxIter)
	if err != nil {
		t.Fatalf("run 1: %v", err)
	}
	e2, q2, err := matrix.Eigen(m, eigTol, eigMaxIter)
	if err != nil {
		t.Fatalf("run 2: %v", err)
	}
	// Bitwise identical across runs, signs included.
	sliceClose(t, e1, e2, 0, 0)
	CompareClose(t, q1, q2, 0, 0)
}

func TestEigen_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		2, -1, 0,
		-1, 2, -1,
		0, -1, 2,
	})
	ef, qf, err := matrix.Eigen(m, eigTol, eigMaxIter)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	es, qs, err := matrix.Eigen(hide{m}, eigTol, eigMaxIter)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	sliceClose(t, ef, es, epsTight, epsTight)
	CompareClose(t, qf, qs, epsTight, epsTight)
}

func TestEigen_Asymmetric_Error(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	_, _, err := matrix.Eigen(m, eigTol, eigMaxIter)
	if !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("want ErrAsymmetry, got %v", err)
	}
}

func TestEigen_IterationBudgetExhausted(t *testing.T) {
	t.Parallel()

	// A non-diagonal symmetric matrix cannot converge in zero sweeps.
	m := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	_, _, err := matrix.Eigen(m, eigTol, 0)
	if !errors.Is(err, matrix.ErrEigenFailed) {
		t.Fatalf("want ErrEigenFailed, got %v", err)
	}
}
