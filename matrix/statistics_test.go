// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

// ------------------------------
// CenterColumns
// ------------------------------

func TestCenterColumns_MeansAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	Yf, meansF, err := matrix.CenterColumns(X)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}

	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0, 0)
	sliceClose(t, meansS, want, 0, 0)
	CompareClose(t, Yf, Ys, 0, 0)

	// Column averages of the centered copy ≈ 0.
	var i, j int
	var sum float64
	for j = 0; j < 3; j++ {
		sum = 0.0
		for i = 0; i < 2; i++ {
			sum += MustAt(t, Yf, i, j)
		}
		if math.Abs(sum/2) > epsTight {
			t.Fatalf("col %d not centered: avg=%g", j, sum/2)
		}
	}
}

// ------------------------------
// Standardize
// ------------------------------

func TestStandardize_UnitVarianceColumns(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 12, 4, 99)
	Z, means, stds, err := matrix.Standardize(X)
	if err != nil {
		t.Fatalf("Standardize: %v", err)
	}
	if len(means) != 4 || len(stds) != 4 {
		t.Fatalf("means/stds length mismatch")
	}

	// Each column of Z: mean ≈ 0, sample std ≈ 1.
	r := Z.Rows()
	var i, j int
	var sum, sq, v float64
	for j = 0; j < 4; j++ {
		sum, sq = 0, 0
		for i = 0; i < r; i++ {
			v = MustAt(t, Z, i, j)
			sum += v
			sq += v * v
		}
		if math.Abs(sum/float64(r)) > 1e-10 {
			t.Fatalf("col %d mean=%g, want ~0", j, sum/float64(r))
		}
		if math.Abs(math.Sqrt(sq/float64(r-1))-1) > 1e-10 {
			t.Fatalf("col %d std=%g, want ~1", j, math.Sqrt(sq/float64(r-1)))
		}
	}

	// Fallback parity.
	Zs, _, _, err := matrix.Standardize(hide{X})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}
	CompareClose(t, Z, Zs, epsTight, epsTight)
}

func TestStandardize_ZeroVarianceColumn_Errors(t *testing.T) {
	t.Parallel()

	// Column 1 is constant: standardization must fail, naming the column.
	X := NewFilledDense(t, 4, 3, []float64{
		1, 7, 2,
		2, 7, 4,
		3, 7, 8,
		4, 7, 16,
	})
	_, _, _, err := matrix.Standardize(X)
	if !errors.Is(err, matrix.ErrZeroVariance) {
		t.Fatalf("want ErrZeroVariance, got %v", err)
	}
	if !strings.Contains(err.Error(), "column 1") {
		t.Fatalf("error must name the offending column, got: %v", err)
	}
}

func TestStandardize_RowsLessThan2_Error(t *testing.T) {
	t.Parallel()

	X := MustDense(t, 1, 3)
	_, _, _, err := matrix.Standardize(X)
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("want ErrDimensionMismatch, got %v", err)
	}
}

// ------------------------------
// Covariance
// ------------------------------

func TestCovariance_Symmetric_DiagMatchesVariance(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 4, 3, []float64{
		1, 2, 3,
		2, 3, 4,
		3, 5, 7,
		-1, 0, 1,
	})

	Cov, means, err := matrix.Covariance(X)
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}
	if len(means) != 3 {
		t.Fatalf("means len=%d want 3", len(means))
	}

	// Symmetry.
	var j, k int
	for j = 0; j < 3; j++ {
		for k = 0; k < 3; k++ {
			if MustAt(t, Cov, j, k) != MustAt(t, Cov, k, j) {
				t.Fatalf("not symmetric at (%d,%d)", j, k)
			}
		}
	}

	// Diagonal equals the sample variance of each column.
	var i int
	var sum, d float64
	for j = 0; j < 3; j++ {
		sum = 0.0
		for i = 0; i < 4; i++ {
			d = MustAt(t, X, i, j) - means[j]
			sum += d * d
		}
		wantVar := sum / 3
		if math.Abs(MustAt(t, Cov, j, j)-wantVar) > epsTight {
			t.Fatalf("var[%d]: got=%g want=%g", j, MustAt(t, Cov, j, j), wantVar)
		}
	}
}

// ------------------------------
// Correlation
// ------------------------------

func TestCorrelation_ExactSymmetry_UnitDiagonal(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 20, 6, 123)
	Corr, means, stds, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if len(means) != 6 || len(stds) != 6 {
		t.Fatalf("means/stds len mismatch")
	}

	// Mirrored construction: symmetry must be EXACT, not just within eps.
	var j, k int
	for j = 0; j < 6; j++ {
		if MustAt(t, Corr, j, j) != 1.0 {
			t.Fatalf("diag[%d]=%g, want exactly 1", j, MustAt(t, Corr, j, j))
		}
		for k = j + 1; k < 6; k++ {
			if MustAt(t, Corr, j, k) != MustAt(t, Corr, k, j) {
				t.Fatalf("asymmetry at (%d,%d)", j, k)
			}
		}
	}

	// Entries are correlations: |ρ| ≤ 1 (+ tiny numeric headroom).
	for j = 0; j < 6; j++ {
		for k = 0; k < 6; k++ {
			if math.Abs(MustAt(t, Corr, j, k)) > 1+1e-12 {
				t.Fatalf("|corr(%d,%d)|=%g > 1", j, k, MustAt(t, Corr, j, k))
			}
		}
	}
}

func TestCorrelation_PerfectlyCorrelatedColumns(t *testing.T) {
	t.Parallel()

	// B = 2·A for every row: off-diagonal must be exactly ρ=1 within tolerance.
	X := NewFilledDense(t, 5, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
		4, 8,
		5, 10,
	})
	Corr, _, _, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if math.Abs(MustAt(t, Corr, 0, 1)-1) > 1e-12 {
		t.Fatalf("corr(A, 2A)=%g, want 1", MustAt(t, Corr, 0, 1))
	}
}

func TestCorrelation_ScaleInvariance_AndFallback(t *testing.T) {
	t.Parallel()

	X := RandFilledDense(t, 15, 4, 7)
	X7, err := matrix.Scale(X, 7)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}

	C1, _, _, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Corr(X): %v", err)
	}
	C2, _, _, err := matrix.Correlation(X7)
	if err != nil {
		t.Fatalf("Corr(7X): %v", err)
	}
	CompareClose(t, C1, C2, epsTight, epsTight)

	Cs, _, _, err := matrix.Correlation(hide{X})
	if err != nil {
		t.Fatalf("Corr slow: %v", err)
	}
	CompareClose(t, C1, Cs, epsTight, epsTight)
}

func TestCorrelation_ZeroVariance_Error(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
	})
	_, _, _, err := matrix.Correlation(X)
	if !errors.Is(err, matrix.ErrZeroVariance) {
		t.Fatalf("want ErrZeroVariance, got %v", err)
	}
}
