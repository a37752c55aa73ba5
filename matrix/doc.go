// Package matrix provides the dense linear-algebra primitives the rest of
// linfit is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container backed by a flat slice, with
//     strict bounds-checked At/Set and deep Clone.
//   - Builders (NewDense, NewDenseFromRows, NewIdentity) that validate
//     shape and reject NaN/Inf on ingestion.
//   - Kernels: Transpose, Mul, MatVec and Augment (the leading constant-1
//     intercept column used by every regression solver in linfit).
//   - Pivoted LU decomposition with Solve and Inverse on top, guarded by a
//     relative pivot tolerance so near-singular systems fail loudly
//     (ErrSingular) instead of returning garbage coefficients.
//
// All operations are pure: operands are never mutated, results are freshly
// allocated. All error conditions are package-level sentinels matched via
// errors.Is; no function panics on user input.
//
// See the examples in this package and in ols/descent for usage patterns.
package matrix
