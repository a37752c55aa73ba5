// Package linfit is a small numeric toolkit for fitting linear models and
// inspecting how the fit was reached — from the exact normal equations to a
// step-by-step gradient-descent trace.
//
// 🚀 What is linfit?
//
//	A pure-Go regression library that brings together:
//		• Dense matrices: row-major containers, pivoted LU, Solve & Inverse
//		• Closed-form OLS: exact least squares via the normal equations
//		• Ridge: the same solver with an explicitly named L2 penalty mode
//		• Gradient descent: fixed-step batch optimizer with full loss history
//		• Lasso: cyclic coordinate descent with soft-thresholding
//		• Diagnostics: MSE, RMSE, R² and variance inflation factors
//
// ✨ Why choose linfit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest numerics – singularity is an error, never a silent fallback
//   - Pure Go core – no cgo; charts live only in the demo binary
//   - Inspectable – gradient descent returns every (β, loss) step it took
//
// Everything is organized under small single-purpose packages:
//
//	matrix/  — Dense containers, Transpose/Mul/MatVec, pivoted LU, Solve
//	ols/     — closed-form ordinary least squares (+ ridge option)
//	descent/ — batch gradient descent with per-iteration loss history
//	lasso/   — coordinate-descent lasso
//	metrics/ — model-quality diagnostics (MSE, RMSE, R², VIF)
//	cmd/     — the linfit demo binary (simulate → fit → plot)
//
// Quick example:
//
//	X, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {2}, {3}})
//	y := []float64{5, 7, 9, 11}
//	beta, _ := ols.Fit(X, y) // → [5, 2]: intercept 5, slope 2
//
// See each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/linfit
package linfit
