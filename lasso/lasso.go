// SPDX-License-Identifier: MIT

// Package lasso: the cyclic coordinate-descent loop.
package lasso

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linfit/matrix"
)

// softThreshold is the proximal operator of λ|·|:
// S(ρ, λ) = sign(ρ)·max(|ρ|−λ, 0).
func softThreshold(rho, lambda float64) float64 {
	switch {
	case rho > lambda:
		return rho - lambda
	case rho < -lambda:
		return rho + lambda
	default:
		return 0
	}
}

// Fit minimizes (1/2n)·‖y − Aβ‖² + λ·Σⱼ≥₁|βⱼ| by cyclic coordinate descent
// on the intercept-augmented design matrix A, starting from β = 0.
//
// Blueprint:
//
//	Stage 1 (Validate): options sane, shapes agree.
//	Stage 2 (Prepare): A = Augment(X); per-column mean sums of squares
//	  (ErrZeroColumn on a degenerate feature); residual r = y.
//	Stage 3 (Execute): per sweep, for each coordinate j compute the partial
//	  correlation ρⱼ = Aⱼᵗ(r + Aⱼβⱼ)/n, then
//	    β₀ ← ρ₀/z₀                (intercept, unpenalized exact minimizer)
//	    βⱼ ← S(ρⱼ, λ)/zⱼ, j ≥ 1  (soft-thresholded)
//	  and fold the change back into r incrementally. Stop when the largest
//	  |Δβ| of the sweep ≤ Tolerance or after MaxIter sweeps.
//	Stage 4 (Finalize): return β (intercept first) and the sweep count.
//
// Pure function: X and y are never mutated.
// Complexity: O(sweeps·n·p) time, O(n + p) memory.
func Fit(X matrix.Matrix, y []float64, opts Options) ([]float64, int, error) {
	// Stage 1: Validate parameters, then shapes
	if opts.Lambda < 0 {
		return nil, 0, ErrNegativeLambda
	}
	if opts.MaxIter < 0 {
		return nil, 0, ErrNegativeIterations
	}
	if opts.Tolerance <= 0 {
		return nil, 0, ErrNonPositiveTolerance
	}
	if X == nil || X.Rows() == 0 {
		return nil, 0, fmt.Errorf("Fit: empty design matrix: %w", ErrShapeMismatch)
	}
	if len(y) != X.Rows() {
		return nil, 0, fmt.Errorf("Fit: %d rows vs %d targets: %w", X.Rows(), len(y), ErrShapeMismatch)
	}

	// Stage 2: Prepare augmented matrix, column scales and residual
	A, err := matrix.Augment(X)
	if err != nil {
		return nil, 0, fmt.Errorf("Fit: %w", err)
	}
	n := float64(X.Rows())
	rows := X.Rows()
	p := X.Cols() + 1 // coefficient count, intercept first
	// zⱼ = Σᵢ A[i][j]² / n; the intercept column of ones gives z₀ = 1.
	z := make([]float64, p)
	var i, j int
	var v float64
	for j = 0; j < p; j++ {
		for i = 0; i < rows; i++ {
			v, _ = A.At(i, j)
			z[j] += v * v
		}
		z[j] /= n
		if z[j] == 0 {
			return nil, 0, fmt.Errorf("Fit: column %d: %w", j-1, ErrZeroColumn)
		}
	}
	beta := make([]float64, p)
	resid := append([]float64(nil), y...) // r = y − Aβ, and β = 0 here

	// Stage 3: Execute coordinate sweeps
	var (
		sweep, sweeps   int     // sweep counter and completed total
		rho, updated    float64 // partial correlation and new coefficient
		delta, maxDelta float64 // per-coordinate and per-sweep change
		aij             float64 // fetched design value
	)
	for sweep = 0; sweep < opts.MaxIter; sweep++ {
		maxDelta = 0
		for j = 0; j < p; j++ {
			// ρⱼ = Aⱼᵗ(r + Aⱼβⱼ)/n — correlation against the partial
			// residual that excludes coordinate j's own contribution.
			rho = 0
			for i = 0; i < rows; i++ {
				aij, _ = A.At(i, j)
				rho += aij * (resid[i] + aij*beta[j])
			}
			rho /= n
			// The intercept is unpenalized; features pass the threshold.
			if j == 0 {
				updated = rho / z[j]
			} else {
				updated = softThreshold(rho, opts.Lambda) / z[j]
			}
			// Fold the change back into the residual incrementally.
			if delta = updated - beta[j]; delta != 0 {
				for i = 0; i < rows; i++ {
					aij, _ = A.At(i, j)
					resid[i] -= aij * delta
				}
				beta[j] = updated
			}
			if d := math.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}
		sweeps++
		if maxDelta <= opts.Tolerance {
			break
		}
	}

	// Stage 4: Finalize
	return beta, sweeps, nil
}
