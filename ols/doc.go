// Package ols fits linear models exactly, via the normal equations.
//
// 🚀 What is OLS?
//
//	Ordinary Least Squares picks the coefficient vector β minimizing the
//	sum of squared residuals ‖y − Aβ‖², where A is the design matrix with
//	a leading intercept column. The minimizer solves the normal equations
//
//	  AᵗA β = Aᵗ y
//
//	exactly — no iteration, no learning rate, no convergence question.
//
// ✨ Key features:
//   - closed-form fit: one pivoted-LU solve, deterministic output
//   - intercept handled for you: pass raw features, get [intercept, w₁, …]
//   - ridge mode (WithRidge): explicit L2 penalty on the non-intercept
//     coefficients — a named mode, never a silent fallback
//   - honest failure: collinear features surface ErrSingular, not garbage
//
// ⚙️ Usage:
//
//	X, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {2}, {3}})
//	y := []float64{5, 7, 9, 11}
//
//	beta, err := ols.Fit(X, y)           // → [5, 2]
//	beta, err = ols.Fit(X, y,
//	  ols.WithRidge(0.1))                // shrunk slope, same shape
//
// Performance:
//
//   - Time:   O(n·p² + p³) for n rows, p+1 coefficients
//   - Memory: O(p²)
//
// See example_test.go for walkthroughs.
package ols
