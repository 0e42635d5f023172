// Package dataset holds the boundary between survey data and the numeric
// pipeline: an immutable observation table with named variables and group
// labels, conversion to a dense matrix, and group-wise splitting of fitted
// scores for downstream summaries.
//
// The table validates once, at construction (rectangular rows, finite
// values, consistent group labels); everything downstream can then assume a
// clean matrix. Accessors hand out copies, never internal slices.
package dataset
