// SPDX-License-Identifier: MIT

// Package metrics: variance inflation factors.
// VIF quantifies how much a coefficient's variance is inflated by linear
// dependence among the features: regress feature j on the remaining
// features, then VIFⱼ = 1 / (1 − R²ⱼ).
package metrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linfit/matrix"
	"github.com/katalvlaran/linfit/ols"
)

// ErrTooFewColumns is returned when VIF is asked about a design matrix with
// fewer than two feature columns: there is nothing to regress against.
var ErrTooFewColumns = errors.New("metrics: VIF needs at least two feature columns")

// dropColumn returns a fresh (rows × cols−1) matrix without column j and the
// extracted column itself. Bounds on j are the caller's responsibility.
// Complexity: O(r*c).
func dropColumn(X matrix.Matrix, j int) (*matrix.Dense, []float64, error) {
	rows, cols := X.Rows(), X.Cols()
	rest, err := matrix.NewDense(rows, cols-1)
	if err != nil {
		return nil, nil, err
	}
	target := make([]float64, rows)

	var r, c, out int
	var v float64
	for r = 0; r < rows; r++ {
		out = 0
		for c = 0; c < cols; c++ {
			v, _ = X.At(r, c)
			if c == j {
				target[r] = v

				continue
			}
			_ = rest.Set(r, out, v)
			out++
		}
	}

	return rest, target, nil
}

// VIF returns the variance inflation factor of feature column j of X.
//
// Blueprint:
//
//	Stage 1 (Validate): X non-nil with ≥ 2 columns, j in range.
//	Stage 2 (Execute): split X into column j (target) and the rest; fit
//	  ols on the rest; score R² of the auxiliary regression.
//	Stage 3 (Finalize): VIF = 1/(1−R²); exactly collinear columns give
//	  R² = 1 and therefore +Inf, which is the standard reading.
//
// Errors: ErrTooFewColumns, ErrShapeMismatch via the auxiliary fit,
// ols.ErrSingular when the remaining columns are themselves collinear,
// ErrZeroVariance when column j is constant.
// Complexity: O(n·p² + p³) per call.
func VIF(X matrix.Matrix, j int) (float64, error) {
	// Stage 1: Validate
	if X == nil || X.Cols() < 2 {
		return 0, ErrTooFewColumns
	}
	if j < 0 || j >= X.Cols() {
		return 0, fmt.Errorf("VIF: column %d of %d: %w", j, X.Cols(), matrix.ErrIndexOutOfBounds)
	}

	// Stage 2: Auxiliary regression of column j on the others
	rest, target, err := dropColumn(X, j)
	if err != nil {
		return 0, fmt.Errorf("VIF: %w", err)
	}
	beta, err := ols.Fit(rest, target)
	if err != nil {
		return 0, fmt.Errorf("VIF: auxiliary fit: %w", err)
	}
	yhat, err := ols.Predict(rest, beta)
	if err != nil {
		return 0, fmt.Errorf("VIF: %w", err)
	}
	r2, err := R2(target, yhat)
	if err != nil {
		return 0, fmt.Errorf("VIF: %w", err)
	}

	// Stage 3: Finalize; a fully explained column reads as +Inf.
	if r2 >= 1 {
		return math.Inf(1), nil
	}

	return 1 / (1 - r2), nil
}

// VIFs returns one variance inflation factor per feature column of X.
// Complexity: O(p·(n·p² + p³)).
func VIFs(X matrix.Matrix) ([]float64, error) {
	if X == nil || X.Cols() < 2 {
		return nil, ErrTooFewColumns
	}

	out := make([]float64, X.Cols())
	var err error
	for j := range out {
		if out[j], err = VIF(X, j); err != nil {
			return nil, err
		}
	}

	return out, nil
}
