// SPDX-License-Identifier: MIT

// Package metrics: scalar model-quality scores.
package metrics

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShapeMismatch is returned when y and yhat lengths differ or both
	// are empty.
	ErrShapeMismatch = errors.New("metrics: target and prediction shapes disagree")

	// ErrZeroVariance is returned by R2 when the target is constant: the
	// explained-variance ratio is undefined.
	ErrZeroVariance = errors.New("metrics: target has zero variance")
)

// MSE returns the mean squared error between y and yhat.
// Complexity: O(n).
func MSE(y, yhat []float64) (float64, error) {
	if len(y) == 0 || len(y) != len(yhat) {
		return 0, fmt.Errorf("MSE: %d vs %d values: %w", len(y), len(yhat), ErrShapeMismatch)
	}

	var sum, d float64
	for i := range y {
		d = y[i] - yhat[i]
		sum += d * d
	}

	return sum / float64(len(y)), nil
}

// RMSE returns the root mean squared error, in the target's own units.
// Complexity: O(n).
func RMSE(y, yhat []float64) (float64, error) {
	mse, err := MSE(y, yhat)
	if err != nil {
		return 0, fmt.Errorf("RMSE: %w", err)
	}

	return math.Sqrt(mse), nil
}

// R2 returns the coefficient of determination 1 − SSres/SStot.
// A constant target has no variance to explain: ErrZeroVariance.
// Complexity: O(n).
func R2(y, yhat []float64) (float64, error) {
	if len(y) == 0 || len(y) != len(yhat) {
		return 0, fmt.Errorf("R2: %d vs %d values: %w", len(y), len(yhat), ErrShapeMismatch)
	}

	// Target mean for the baseline model.
	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	// Residual and total sums of squares.
	var ssRes, ssTot, d float64
	for i := range y {
		d = y[i] - yhat[i]
		ssRes += d * d
		d = y[i] - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0, fmt.Errorf("R2: %w", ErrZeroVariance)
	}

	return 1 - ssRes/ssTot, nil
}
