// SPDX-License-Identifier: MIT

package dataset_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybarnatan/seeds-PCA/dataset"
)

// surveyVars and surveyObs form a small grouped fixture: three variables,
// four microsites across two site types.
var (
	surveyVars = []string{"litter_pct", "bare_soil_pct", "seed_density"}
	surveyObs  = []dataset.Observation{
		{Values: []float64{40, 10, 120.5}, Group: "forest"},
		{Values: []float64{55, 5, 180.0}, Group: "forest"},
		{Values: []float64{10, 60, 22.3}, Group: "grassland"},
		{Values: []float64{15, 52, 31.8}, Group: "grassland"},
	}
)

// TestNewTable_Valid verifies construction and the basic accessors.
func TestNewTable_Valid(t *testing.T) {
	tbl, err := dataset.NewTable(surveyVars, surveyObs)
	require.NoError(t, err)

	assert.Equal(t, 4, tbl.Rows())
	assert.Equal(t, 3, tbl.Vars())
	assert.Equal(t, surveyVars, tbl.Variables())
	assert.Equal(t, []string{"forest", "forest", "grassland", "grassland"}, tbl.Groups())

	col, err := tbl.Column("seed_density")
	require.NoError(t, err)
	assert.Equal(t, []float64{120.5, 180.0, 22.3, 31.8}, col)
}

// TestNewTable_Validation walks the constructor error cases.
func TestNewTable_Validation(t *testing.T) {
	_, err := dataset.NewTable(nil, surveyObs)
	assert.ErrorIs(t, err, dataset.ErrNoVariables)

	_, err = dataset.NewTable([]string{"a", "b", "a"}, surveyObs)
	assert.ErrorIs(t, err, dataset.ErrDuplicateVariable)

	_, err = dataset.NewTable(surveyVars, nil)
	assert.ErrorIs(t, err, dataset.ErrNoObservations)

	_, err = dataset.NewTable(surveyVars, []dataset.Observation{
		{Values: []float64{1, 2}},
	})
	assert.ErrorIs(t, err, dataset.ErrRaggedRow)
	assert.True(t, strings.Contains(err.Error(), "row 0"), "got: %v", err)

	_, err = dataset.NewTable(surveyVars, []dataset.Observation{
		{Values: []float64{1, math.NaN(), 3}},
	})
	assert.ErrorIs(t, err, dataset.ErrNonFinite)
	assert.True(t, strings.Contains(err.Error(), "bare_soil_pct"), "got: %v", err)
}

// TestNewTableFromColumns_OrderAndValidation verifies that the declared
// variable order rules the layout and that the error cases fire.
func TestNewTableFromColumns_OrderAndValidation(t *testing.T) {
	cols := map[string][]float64{
		"litter_pct":    {40, 55},
		"bare_soil_pct": {10, 5},
		"seed_density":  {120.5, 180.0},
	}

	tbl, err := dataset.NewTableFromColumns(surveyVars, cols, []string{"forest", "forest"})
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())

	m := tbl.Matrix()
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 180.0, v, "column order must follow the declared names")

	_, err = dataset.NewTableFromColumns(surveyVars, map[string][]float64{
		"litter_pct": {1}, "bare_soil_pct": {2},
	}, nil)
	assert.ErrorIs(t, err, dataset.ErrUnknownVariable)

	_, err = dataset.NewTableFromColumns(surveyVars, map[string][]float64{
		"litter_pct": {1, 2}, "bare_soil_pct": {3}, "seed_density": {4, 5},
	}, nil)
	assert.ErrorIs(t, err, dataset.ErrRaggedRow)

	_, err = dataset.NewTableFromColumns(surveyVars, cols, []string{"forest"})
	assert.ErrorIs(t, err, dataset.ErrGroupCount)

	_, err = dataset.NewTableFromColumns(surveyVars, map[string][]float64{
		"litter_pct": {}, "bare_soil_pct": {}, "seed_density": {},
	}, nil)
	assert.ErrorIs(t, err, dataset.ErrNoObservations)
}

// TestTable_Immutability verifies that accessors return independent copies.
func TestTable_Immutability(t *testing.T) {
	tbl, err := dataset.NewTable(surveyVars, surveyObs)
	require.NoError(t, err)

	m1 := tbl.Matrix()
	require.NoError(t, m1.Set(0, 0, -999))

	m2 := tbl.Matrix()
	v, err := m2.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 40.0, v, "mutating one Matrix() copy must not leak into the table")

	names := tbl.Variables()
	names[0] = "tampered"
	assert.Equal(t, "litter_pct", tbl.Variables()[0])

	col, err := tbl.Column("litter_pct")
	require.NoError(t, err)
	col[0] = -1
	again, err := tbl.Column("litter_pct")
	require.NoError(t, err)
	assert.Equal(t, 40.0, again[0])

	_, err = tbl.Column("elevation")
	assert.ErrorIs(t, err, dataset.ErrUnknownVariable)
}
