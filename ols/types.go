// SPDX-License-Identifier: MIT

// Package ols: sentinel errors and functional options for the closed-form
// solver. Options only record values; Fit validates them and returns the
// sentinels below — no option constructor panics.
package ols

import (
	"errors"

	"github.com/katalvlaran/linfit/matrix"
)

var (
	// ErrShapeMismatch is returned when the design matrix is nil/empty or
	// when len(y) differs from the design matrix row count. Surfaced before
	// any arithmetic; no partial result is ever produced.
	ErrShapeMismatch = errors.New("ols: design matrix and target shapes disagree")

	// ErrNegativeLambda is returned when WithRidge received λ < 0.
	ErrNegativeLambda = errors.New("ols: ridge lambda must be >= 0")

	// ErrNonPositiveTolerance is returned when WithPivotTolerance received
	// tol <= 0.
	ErrNonPositiveTolerance = errors.New("ols: pivot tolerance must be > 0")
)

// ErrSingular aliases matrix.ErrSingular: the normal-equations matrix AᵗA is
// singular or near-singular under the pivot tolerance (exactly collinear
// features, or fewer independent rows than coefficients). errors.Is matches
// either name.
var ErrSingular = matrix.ErrSingular

// options carries the validated-in-Fit solver configuration.
// Fields are unexported; public APIs consume ...Option.
type options struct {
	lambda float64 // ridge penalty, 0 ⇒ plain OLS
	tol    float64 // relative pivot tolerance for the LU solve
}

// Option mutates solver options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// defaultOptions reflects the documented zero-configuration behavior:
// plain OLS, matrix.DefaultPivotTol singularity threshold.
func defaultOptions() options {
	return options{lambda: 0, tol: matrix.DefaultPivotTol}
}

// WithRidge enables ridge regression with penalty strength lambda: λ is
// added to every diagonal entry of AᵗA except the intercept's, shrinking
// the non-intercept coefficients. λ = 0 is identical to plain OLS.
// Fit returns ErrNegativeLambda for λ < 0.
func WithRidge(lambda float64) Option {
	return func(o *options) { o.lambda = lambda }
}

// WithPivotTolerance overrides the relative pivot tolerance used to judge
// near-singularity of AᵗA (see matrix.LU for the exact policy).
// Fit returns ErrNonPositiveTolerance for tol <= 0.
func WithPivotTolerance(tol float64) Option {
	return func(o *options) { o.tol = tol }
}
