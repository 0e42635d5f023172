// SPDX-License-Identifier: MIT
// Package dataset: sentinel error set. All construction and lookup failures
// are reported through these sentinels, wrapped with an operation tag and
// matched by callers via errors.Is.

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVariables indicates a table with an empty variable list.
	ErrNoVariables = errors.New("dataset: no variables")

	// ErrNoObservations indicates a table with no observation rows.
	ErrNoObservations = errors.New("dataset: no observations")

	// ErrRaggedRow indicates an observation whose value count differs from
	// the variable count. The wrap names the row index and both lengths.
	ErrRaggedRow = errors.New("dataset: ragged observation row")

	// ErrNonFinite indicates a NaN or ±Inf value in an observation. The
	// wrap names the row and variable position.
	ErrNonFinite = errors.New("dataset: non-finite value")

	// ErrDuplicateVariable indicates the same variable name appearing twice.
	ErrDuplicateVariable = errors.New("dataset: duplicate variable name")

	// ErrUnknownVariable indicates a lookup or column map missing a declared
	// variable name.
	ErrUnknownVariable = errors.New("dataset: unknown variable")

	// ErrGroupCount indicates a group-label slice whose length differs from
	// the observation count.
	ErrGroupCount = errors.New("dataset: group label count mismatch")
)

// Canonical operation tags used when wrapping sentinels.
const (
	opNewTable    = "NewTable"
	opFromColumns = "NewTableFromColumns"
	opColumn      = "Column"
	opSplit       = "SplitScoresByGroup"
	opCentroids   = "Centroids"
)

// datasetErrorf wraps err with the canonical operation tag.
func datasetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
