// SPDX-License-Identifier: MIT
// Package dataset: group-wise views over fitted score matrices.

package dataset

import (
	"fmt"

	"github.com/ybarnatan/seeds-PCA/matrix"
)

// GroupScores is the block of score rows belonging to one group, in the
// original row order.
type GroupScores struct {
	Group  string
	Scores *matrix.Dense
}

// Centroid is the per-group mean score vector (component-wise average of
// the group's rows).
type Centroid struct {
	Group string
	Mean  []float64
}

// SplitScoresByGroup partitions a score matrix by the parallel group labels.
// Groups appear in FIRST-APPEARANCE order of their labels and every row is
// kept (multiplicity preserved), so the split is a pure reordering of the
// input rows.
//
// Errors: ErrGroupCount (len(groups) ≠ Rows(scores)), matrix.ErrNilMatrix.
// Complexity: Time O(n·k), Space O(n·k).
func SplitScoresByGroup(groups []string, scores matrix.Matrix) ([]GroupScores, error) {
	order, byGroup, err := groupRows(opSplit, groups, scores)
	if err != nil {
		return nil, err
	}

	k := scores.Cols()
	out := make([]GroupScores, 0, len(order))
	for _, g := range order {
		rows := byGroup[g]
		block, err := matrix.NewDense(len(rows), k)
		if err != nil {
			return nil, datasetErrorf(opSplit, err)
		}
		for bi, src := range rows {
			for j := 0; j < k; j++ {
				v, e := scores.At(src, j)
				if e != nil {
					return nil, datasetErrorf(opSplit, e)
				}
				if e = block.Set(bi, j, v); e != nil {
					return nil, datasetErrorf(opSplit, e)
				}
			}
		}
		out = append(out, GroupScores{Group: g, Scores: block})
	}

	return out, nil
}

// Centroids computes the mean score vector of every group, in
// first-appearance order. Feeds the presentation layer (group markers,
// ellipse centers) without this package doing any plotting itself.
//
// Errors: ErrGroupCount, matrix.ErrNilMatrix.
// Complexity: Time O(n·k), Space O(g·k).
func Centroids(groups []string, scores matrix.Matrix) ([]Centroid, error) {
	order, byGroup, err := groupRows(opCentroids, groups, scores)
	if err != nil {
		return nil, err
	}

	k := scores.Cols()
	out := make([]Centroid, 0, len(order))
	for _, g := range order {
		rows := byGroup[g]
		mean := make([]float64, k)
		for _, src := range rows {
			for j := 0; j < k; j++ {
				v, e := scores.At(src, j)
				if e != nil {
					return nil, datasetErrorf(opCentroids, e)
				}
				mean[j] += v
			}
		}
		inv := 1.0 / float64(len(rows))
		for j := 0; j < k; j++ {
			mean[j] *= inv
		}
		out = append(out, Centroid{Group: g, Mean: mean})
	}

	return out, nil
}

// groupRows validates the label/matrix pairing and indexes row positions per
// group, recording first-appearance order.
func groupRows(op string, groups []string, scores matrix.Matrix) ([]string, map[string][]int, error) {
	if err := matrix.ValidateNotNil(scores); err != nil {
		return nil, nil, datasetErrorf(op, err)
	}
	if len(groups) != scores.Rows() {
		return nil, nil, datasetErrorf(op,
			fmt.Errorf("%d labels for %d rows: %w", len(groups), scores.Rows(), ErrGroupCount))
	}

	order := make([]string, 0)
	byGroup := make(map[string][]int)
	for i, g := range groups {
		if _, seen := byGroup[g]; !seen {
			order = append(order, g)
		}
		byGroup[g] = append(byGroup[g], i)
	}

	return order, byGroup, nil
}
