// Package matrix provides the dense numeric core used by the PCA engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with O(1) element access, plus the
//     Matrix interface for alternative storages.
//   - Deterministic linear-algebra kernels: Transpose, Mul, Scale, MatVec.
//   - Statistical transforms for column-variable data: CenterColumns,
//     Standardize (z-scoring with sample std), Covariance and Correlation.
//   - Eigen, a Jacobi eigensolver for real symmetric matrices.
//
// All kernels validate first, never mutate their inputs, and traverse in a
// fixed order, so identical inputs always produce identical outputs. Errors
// are package sentinels matched with errors.Is; nothing panics on bad input.
//
// Matrices here are small (observations × measured variables), so every
// kernel favors clarity and determinism over blocking or parallelism.
package matrix
