// SPDX-License-Identifier: MIT
// Package dataset: the immutable observation table.

package dataset

import (
	"fmt"
	"math"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

// Observation is one surveyed row: the measured values in variable order
// plus an optional group label (site type, treatment, ...). An empty Group
// means ungrouped.
type Observation struct {
	Values []float64
	Group  string
}

// Table is an immutable, validated observation table. Construction copies
// every input slice and checks shape and finiteness once; accessors return
// fresh copies, so a Table can be shared freely across goroutines.
type Table struct {
	vars   []string
	data   []float64 // row-major, rows×len(vars)
	groups []string  // parallel to rows
	rows   int
}

// NewTable builds a Table from per-row observations.
// Implementation:
//   - Stage 1 (Validate names): ≥1 variable, no duplicates.
//   - Stage 2 (Validate rows): ≥1 observation; every row exactly one value
//     per variable; finite values only.
//   - Stage 3 (Copy): values and group labels are copied row by row.
//
// Errors: ErrNoVariables, ErrDuplicateVariable, ErrNoObservations,
// ErrRaggedRow (wrap names the row), ErrNonFinite (wrap names row and
// variable).
func NewTable(vars []string, obs []Observation) (*Table, error) {
	if err := validateVars(vars); err != nil {
		return nil, datasetErrorf(opNewTable, err)
	}
	if len(obs) == 0 {
		return nil, datasetErrorf(opNewTable, ErrNoObservations)
	}

	p := len(vars)
	t := &Table{
		vars:   append([]string(nil), vars...),
		data:   make([]float64, 0, len(obs)*p),
		groups: make([]string, 0, len(obs)),
		rows:   len(obs),
	}
	for i, o := range obs {
		if len(o.Values) != p {
			return nil, datasetErrorf(opNewTable,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(o.Values), p, ErrRaggedRow))
		}
		for j, v := range o.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, datasetErrorf(opNewTable,
					fmt.Errorf("row %d, variable %q: %w", i, vars[j], ErrNonFinite))
			}
		}
		t.data = append(t.data, o.Values...)
		t.groups = append(t.groups, o.Group)
	}

	return t, nil
}

// NewTableFromColumns builds a Table from named columns. The explicit vars
// slice fixes the variable ORDER — map iteration order never leaks into the
// table. groups may be nil (every row ungrouped) or one label per row.
//
// Errors: ErrNoVariables, ErrDuplicateVariable, ErrUnknownVariable (a name
// missing from cols), ErrNoObservations, ErrRaggedRow (column length
// disagreement), ErrNonFinite, ErrGroupCount.
func NewTableFromColumns(vars []string, cols map[string][]float64, groups []string) (*Table, error) {
	if err := validateVars(vars); err != nil {
		return nil, datasetErrorf(opFromColumns, err)
	}

	// Resolve columns in declared order, fixing row count from the first.
	ordered := make([][]float64, len(vars))
	n := -1
	for j, name := range vars {
		col, ok := cols[name]
		if !ok {
			return nil, datasetErrorf(opFromColumns,
				fmt.Errorf("variable %q: %w", name, ErrUnknownVariable))
		}
		if n == -1 {
			n = len(col)
		} else if len(col) != n {
			return nil, datasetErrorf(opFromColumns,
				fmt.Errorf("column %q has %d values, want %d: %w", name, len(col), n, ErrRaggedRow))
		}
		ordered[j] = col
	}
	if n == 0 {
		return nil, datasetErrorf(opFromColumns, ErrNoObservations)
	}
	if groups != nil && len(groups) != n {
		return nil, datasetErrorf(opFromColumns,
			fmt.Errorf("%d labels for %d rows: %w", len(groups), n, ErrGroupCount))
	}

	p := len(vars)
	t := &Table{
		vars:   append([]string(nil), vars...),
		data:   make([]float64, n*p),
		groups: make([]string, n),
		rows:   n,
	}
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			v := ordered[j][i]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, datasetErrorf(opFromColumns,
					fmt.Errorf("row %d, variable %q: %w", i, vars[j], ErrNonFinite))
			}
			t.data[i*p+j] = v
		}
	}
	if groups != nil {
		copy(t.groups, groups)
	}

	return t, nil
}

// validateVars checks the variable name list shared by both constructors.
func validateVars(vars []string) error {
	if len(vars) == 0 {
		return ErrNoVariables
	}
	seen := make(map[string]struct{}, len(vars))
	for _, name := range vars {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("variable %q: %w", name, ErrDuplicateVariable)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Rows returns the observation count.
func (t *Table) Rows() int { return t.rows }

// Vars returns the variable count.
func (t *Table) Vars() int { return len(t.vars) }

// Variables returns a copy of the ordered variable names.
func (t *Table) Variables() []string { return append([]string(nil), t.vars...) }

// Groups returns a copy of the per-row group labels.
func (t *Table) Groups() []string { return append([]string(nil), t.groups...) }

// Column returns a copy of the named variable's values in row order.
// Errors: ErrUnknownVariable.
func (t *Table) Column(name string) ([]float64, error) {
	p := len(t.vars)
	for j, v := range t.vars {
		if v != name {
			continue
		}
		out := make([]float64, t.rows)
		for i := 0; i < t.rows; i++ {
			out[i] = t.data[i*p+j]
		}

		return out, nil
	}

	return nil, datasetErrorf(opColumn, fmt.Errorf("variable %q: %w", name, ErrUnknownVariable))
}

// Matrix returns the table as a fresh rows×vars Dense. Each call allocates
// an independent copy; mutating the result never touches the table.
func (t *Table) Matrix() *matrix.Dense {
	p := len(t.vars)
	d, err := matrix.NewDense(t.rows, p)
	if err != nil {
		// Unreachable: rows ≥ 1 and vars ≥ 1 are construction invariants.
		return nil
	}
	for i := 0; i < t.rows; i++ {
		for j := 0; j < p; j++ {
			_ = d.Set(i, j, t.data[i*p+j]) // indices in range by construction
		}
	}

	return d
}
