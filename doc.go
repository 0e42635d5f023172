// Package seedspca analyzes ecological microsite surveys with Principal
// Component Analysis — from raw vegetation-cover measurements to component
// scores and variable loadings.
//
// 🚀 What is seeds-PCA?
//
//	A small, dependency-light numeric library that reduces a table of
//	microsite measurements (grass, subshrub, shrub and tree cover, density,
//	height variability, bare soil, mulch) to a handful of latent axes that
//	separate bird-feeding sites from random sites:
//		• dataset/ — immutable observation tables with named variables & group labels
//		• matrix/  — dense kernels, standardization, correlation, Jacobi eigensolver
//		• pca/     — the engine: eigenvalues, variance explained, scores, loadings
//
// ✨ Why this layout?
//
//   - Strictly layered — presentation code depends only on pca outputs
//   - Pure functions — every stage takes a matrix, returns a new immutable result
//   - Deterministic — fixed loop orders, stable sorting, fixed sign convention
//   - Explicit errors — sentinel values, errors.Is-friendly, no silent defaults
//
// Typical flow:
//
//	table → table.Matrix() → pca.Fit(X, k, &opts) → Result{Eigenvalues,
//	Proportion, Cumulative, Scores, Loadings} → plots & tables elsewhere.
//
// Ingestion (delimited files), plotting and report generation are deliberate
// non-goals; see each subpackage's doc.go for contracts and examples.
package seedspca
