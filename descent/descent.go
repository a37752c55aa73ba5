// SPDX-License-Identifier: MIT

// Package descent: the batch gradient-descent loop.
package descent

import (
	"fmt"

	"github.com/katalvlaran/linfit/matrix"
)

// Run minimizes L(β) = ½·mean((y − Aβ)²) by fixed-step batch gradient
// descent on the intercept-augmented design matrix A, starting from β = 0.
//
// Algorithm outline (per iteration, exactly opts.Iterations times):
//  1. ŷ = A·β
//  2. e = y − ŷ
//  3. g = −Aᵗ·e / n          (exact analytic gradient of L)
//  4. β ← β − LearnRate·g
//  5. L = ½·mean(e²)          (residual from step 2)
//  6. append (copy of β, L) to the Loss History
//
// Returns the final Coefficient Vector (intercept first, length X.Cols()+1)
// and the complete Loss History, chronologically ordered and owned by the
// caller. There is no convergence check: a growing loss sequence means the
// step size is too large for the problem, and the caller reads that straight
// off the history.
//
// Pure function: X and y are never mutated.
//
// Errors:
//   - ErrShapeMismatch        — empty X, or len(y) != X.Rows().
//   - ErrNonPositiveLearnRate — LearnRate <= 0.
//   - ErrNegativeIterations   — Iterations < 0.
//
// Complexity: O(Iterations·n·p) time, O(Iterations·p) memory for the
// history, where n = rows and p = X.Cols()+1.
func Run(X matrix.Matrix, y []float64, opts Options) ([]float64, []Step, error) {
	// Stage 1: Validate parameters, then shapes
	if opts.LearnRate <= 0 {
		return nil, nil, ErrNonPositiveLearnRate
	}
	if opts.Iterations < 0 {
		return nil, nil, ErrNegativeIterations
	}
	if X == nil || X.Rows() == 0 {
		return nil, nil, fmt.Errorf("Run: empty design matrix: %w", ErrShapeMismatch)
	}
	if len(y) != X.Rows() {
		return nil, nil, fmt.Errorf("Run: %d rows vs %d targets: %w", X.Rows(), len(y), ErrShapeMismatch)
	}

	// Stage 2: Prepare the augmented matrix, its transpose and the state
	A, err := matrix.Augment(X)
	if err != nil {
		return nil, nil, fmt.Errorf("Run: %w", err)
	}
	At, err := matrix.Transpose(A)
	if err != nil {
		return nil, nil, fmt.Errorf("Run: %w", err)
	}
	n := float64(X.Rows())
	p := X.Cols() + 1
	beta := make([]float64, p) // zero start
	history := make([]Step, 0, opts.Iterations)
	resid := make([]float64, X.Rows()) // e = y − ŷ scratch

	// Stage 3: Execute exactly opts.Iterations gradient steps
	var (
		it, i, j int       // loop indices
		yhat     []float64 // predictions for the current β
		grad     []float64 // Aᵗe, scaled below
		loss     float64   // ½·mean(e²)
		snapshot []float64 // per-iteration β copy for the history
	)
	for it = 0; it < opts.Iterations; it++ {
		// 3.1: Predictions ŷ = A·β
		yhat, _ = matrix.MatVec(A, beta) // shapes fixed at Stage 2
		// 3.2: Residual and its loss contribution
		loss = matrix.NormZero
		for i = range resid {
			resid[i] = y[i] - yhat[i]
			loss += resid[i] * resid[i]
		}
		loss = 0.5 * loss / n
		// 3.3: Gradient g = −Aᵗe/n, applied as β ← β + lr·Aᵗe/n
		grad, _ = matrix.MatVec(At, resid)
		for j = 0; j < p; j++ {
			beta[j] += opts.LearnRate * grad[j] / n
		}
		// 3.4: Record the post-update snapshot with the step's loss
		snapshot = make([]float64, p)
		copy(snapshot, beta)
		history = append(history, Step{Coefficients: snapshot, Loss: loss})
	}

	// Stage 4: Finalize
	return beta, history, nil
}
