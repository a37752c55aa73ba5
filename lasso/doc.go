// Package lasso fits L1-penalized linear models by cyclic coordinate
// descent with soft-thresholding.
//
// 🚀 What is the lasso?
//
//	Minimize  (1/2n)·‖y − Aβ‖² + λ·Σ|βⱼ|  over the non-intercept
//	coefficients. The L1 penalty drives small coefficients to exactly
//	zero, so the fit doubles as feature selection: the stronger λ, the
//	sparser the model.
//
// ✨ Key features:
//   - cyclic coordinate descent: one exact scalar update per coefficient
//   - soft-thresholding S(ρ, λ) = sign(ρ)·max(|ρ|−λ, 0) for sparsity
//   - unpenalized intercept, updated by exact minimization each sweep
//   - residual maintained incrementally: O(n·p) per sweep, no re-predict
//   - converges when the largest coefficient change in a sweep ≤ Tolerance
//
// ⚙️ Usage:
//
//	opts := lasso.DefaultOptions() // Lambda 1.0, MaxIter 1000, Tol 1e-6
//	opts.Lambda = 0.1
//	beta, sweeps, err := lasso.Fit(X, y, opts)
//
// Performance:
//
//   - Time:   O(sweeps·n·p)
//   - Memory: O(n + p)
//
// See example_test.go for a sparse-recovery walkthrough.
package lasso
