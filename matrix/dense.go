// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows builds a Dense from row slices, copying every value.
// Stage 1 (Validate): non-empty, rectangular, all values finite.
// Stage 2 (Execute): copy rows into the flat buffer in i→j order.
//
// Errors:
//   - ErrInvalidDimensions on an empty row set or empty first row.
//   - ErrDimensionMismatch on ragged rows (wrapped with the row index).
//   - ErrNaNInf on NaN/±Inf values (wrapped with the cell position) —
//     the statistics layer assumes complete, finite data.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape before touching any row.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("NewDenseFromRows: %w", err)
	}

	// Copy with per-row width and per-cell finiteness checks.
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
		base := i * c
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewDenseFromRows: value at (%d,%d): %w", i, j, ErrNaNInf)
			}
			out.data[base+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Row returns a copy of row i. The copy keeps the Dense immutable for
// callers that need a plain slice (score tables, group splits).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
