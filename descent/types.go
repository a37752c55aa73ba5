// SPDX-License-Identifier: MIT

// Package descent: options, the Loss History entry type, and sentinel errors.
package descent

import "errors"

// Default optimizer parameters: a step size known to be stable on small,
// well-conditioned teaching problems, and enough iterations to converge on
// them.
const (
	DefaultLearnRate  = 0.05
	DefaultIterations = 1000
)

var (
	// ErrShapeMismatch is returned when the design matrix is nil/empty or
	// when len(y) differs from the design matrix row count. Surfaced before
	// any iteration; no partial history is ever produced.
	ErrShapeMismatch = errors.New("descent: design matrix and target shapes disagree")

	// ErrNonPositiveLearnRate is returned when Options.LearnRate <= 0.
	ErrNonPositiveLearnRate = errors.New("descent: learning rate must be > 0")

	// ErrNegativeIterations is returned when Options.Iterations < 0.
	// Zero is valid: Run returns the zero vector and an empty history.
	ErrNegativeIterations = errors.New("descent: iteration count must be >= 0")
)

// Options configures one Run invocation.
//
// Fields:
//   - LearnRate  — step size multiplying the negative gradient. Must be > 0.
//     Too large a value diverges; that shows up in the Loss History, not as
//     an error.
//   - Iterations — exact number of gradient steps to take. Must be >= 0.
//     The loop always runs this many times; there is no early stopping.
type Options struct {
	LearnRate  float64
	Iterations int
}

// DefaultOptions returns the documented defaults (0.05, 1000).
func DefaultOptions() Options {
	return Options{LearnRate: DefaultLearnRate, Iterations: DefaultIterations}
}

// Step is one Loss History entry: the coefficient vector after the
// iteration's update (a fresh copy, safe for the caller to mutate) and the
// half-mean-squared-error loss of the residual that produced the update.
type Step struct {
	Coefficients []float64
	Loss         float64
}
