// Package pca performs Principal Component Analysis on standardized survey
// data: correlation-based decomposition, variance accounting, score
// projection and loading tables.
//
// 🚀 What is PCA here?
//
//	The package rotates a cloud of observations (rows) measured on many
//	correlated variables (columns) onto a new orthogonal basis ordered by
//	explained variance. It is the numeric core behind microsite ordination:
//	  • Which environmental axes structure the seed-bank samples?
//	  • How much variance do the first two components capture?
//	  • Where does each microsite land in component space?
//
// ✨ Key features:
//   - correlation-matrix PCA (variables on incomparable scales)
//   - explicit symmetric Jacobi eigendecomposition (matrix.Eigen)
//   - eigenvalues sorted descending with a deterministic sign convention,
//     so repeated runs are bitwise identical
//   - variance table (per-component proportion + cumulative)
//   - scores for the fitted rows and projection of new observations
//   - loadings in two conventions (raw coefficients or √eigenvalue-scaled)
//
// ⚙️ Usage:
//
//	import "github.com/ybarnatan/seeds-PCA/pca"
//
//	opts := pca.DefaultOptions()
//	res, err := pca.Fit(X, 2, &opts) // keep the first two components
//	if err != nil {
//	  // handle ErrDegenerateInput, ErrComponentCount, ErrNotConverged
//	}
//	fmt.Println("PC1+PC2 variance:", res.Cumulative[1])
//
// Performance:
//
//   - Time:   O(n·p² + p³·sweeps) for n observations × p variables
//   - Memory: O(n·p + p²)
//
// See examples in example_test.go.
package pca
