// SPDX-License-Identifier: MIT

// Package lasso: options and sentinel errors for the coordinate-descent fit.
package lasso

import "errors"

// Default fit parameters.
const (
	DefaultLambda    = 1.0
	DefaultMaxIter   = 1000
	DefaultTolerance = 1e-6
)

var (
	// ErrShapeMismatch is returned when the design matrix is nil/empty or
	// when len(y) differs from the design matrix row count.
	ErrShapeMismatch = errors.New("lasso: design matrix and target shapes disagree")

	// ErrNegativeLambda is returned when Options.Lambda < 0.
	ErrNegativeLambda = errors.New("lasso: lambda must be >= 0")

	// ErrNegativeIterations is returned when Options.MaxIter < 0.
	ErrNegativeIterations = errors.New("lasso: max iterations must be >= 0")

	// ErrNonPositiveTolerance is returned when Options.Tolerance <= 0.
	ErrNonPositiveTolerance = errors.New("lasso: tolerance must be > 0")

	// ErrZeroColumn is returned when a feature column has zero sum of
	// squares: its coordinate update is undefined (division by zero), so the
	// caller must drop or replace the degenerate column.
	ErrZeroColumn = errors.New("lasso: feature column has zero variance")
)

// Options configures one Fit invocation.
//
// Fields:
//   - Lambda    — L1 penalty strength; 0 reduces to unregularized least
//     squares by coordinate descent. Must be >= 0.
//   - MaxIter   — upper bound on full coordinate sweeps. Must be >= 0.
//   - Tolerance — convergence threshold on the max absolute coefficient
//     change within one sweep. Must be > 0.
type Options struct {
	Lambda    float64
	MaxIter   int
	Tolerance float64
}

// DefaultOptions returns the documented defaults (1.0, 1000, 1e-6).
func DefaultOptions() Options {
	return Options{Lambda: DefaultLambda, MaxIter: DefaultMaxIter, Tolerance: DefaultTolerance}
}
