// SPDX-License-Identifier: MIT

// Package ols: the closed-form solver itself.
package ols

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linfit/matrix"
)

// Fit computes the least-squares Coefficient Vector for the design matrix X
// and target y, intercept first, length X.Cols()+1.
//
// Blueprint:
//
//	Stage 1 (Validate): X non-nil with rows ≥ 1, len(y) == rows, options
//	  sane (λ ≥ 0, tol > 0).
//	Stage 2 (Prepare): A = Augment(X); form AᵗA and Aᵗy; in ridge mode add
//	  λ to the non-intercept diagonal of AᵗA.
//	Stage 3 (Execute): solve AᵗA β = Aᵗy by pivoted LU.
//	Stage 4 (Finalize): return β, or ErrSingular when AᵗA fails the pivot
//	  tolerance.
//
// Solving the system is algebraically identical to the textbook
// β = (AᵗA)⁻¹Aᵗy and skips forming the explicit inverse.
//
// Pure function: X and y are never mutated; identical inputs yield
// identical output.
// Complexity: O(n·p²) to form the normal equations + O(p³) to solve,
// for n rows and p = X.Cols()+1 coefficients.
func Fit(X matrix.Matrix, y []float64, opts ...Option) ([]float64, error) {
	// Stage 1: Validate inputs and options
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.lambda < 0 {
		return nil, ErrNegativeLambda
	}
	if o.tol <= 0 {
		return nil, ErrNonPositiveTolerance
	}
	if X == nil || X.Rows() == 0 {
		return nil, fmt.Errorf("Fit: empty design matrix: %w", ErrShapeMismatch)
	}
	if len(y) != X.Rows() {
		return nil, fmt.Errorf("Fit: %d rows vs %d targets: %w", X.Rows(), len(y), ErrShapeMismatch)
	}

	// Stage 2: Build the normal equations
	A, err := matrix.Augment(X)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	At, err := matrix.Transpose(A)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	AtA, err := matrix.Mul(At, A)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	Aty, err := matrix.MatVec(At, y)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	// Ridge mode: shift the diagonal, skipping the intercept entry (0,0).
	if o.lambda > 0 {
		var d float64
		for i := 1; i < AtA.Rows(); i++ {
			d, _ = AtA.At(i, i)
			_ = AtA.Set(i, i, d+o.lambda)
		}
	}

	// Stage 3: Solve AᵗA β = Aᵗy
	beta, err := matrix.Solve(AtA, Aty, o.tol)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("Fit: normal equations: %w", ErrSingular)
		}

		return nil, fmt.Errorf("Fit: %w", err)
	}

	// Stage 4: Finalize
	return beta, nil
}

// Predict evaluates the fitted model on X: ŷ = Augment(X)·beta.
// beta must have length X.Cols()+1 (intercept first), as returned by Fit.
// Complexity: O(n·p).
func Predict(X matrix.Matrix, beta []float64) ([]float64, error) {
	// Validate shape agreement between features and coefficients.
	if X == nil || X.Rows() == 0 {
		return nil, fmt.Errorf("Predict: empty design matrix: %w", ErrShapeMismatch)
	}
	if len(beta) != X.Cols()+1 {
		return nil, fmt.Errorf("Predict: %d coefficients for %d feature columns: %w",
			len(beta), X.Cols(), ErrShapeMismatch)
	}

	A, err := matrix.Augment(X)
	if err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	return matrix.MatVec(A, beta)
}
