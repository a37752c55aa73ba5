// Package metrics scores fitted linear models and diagnoses their inputs.
//
// The metrics package provides:
//
//   - MSE / RMSE — mean squared error and its root, the loss most callers
//     report after a fit.
//   - R2 — coefficient of determination: the fraction of target variance
//     the model explains (1 is perfect, 0 is the mean baseline, negative
//     is worse than the baseline).
//   - VIF / VIFs — variance inflation factors: each feature regressed on
//     the remaining ones (via ols.Fit) to quantify multicollinearity.
//     A VIF near 1 means an independent feature; +Inf means an exactly
//     collinear one.
//
// All functions are pure, never mutate inputs, and surface sentinel errors
// via errors.Is.
package metrics
