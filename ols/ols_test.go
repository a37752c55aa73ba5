// ols/ols_test.go
// SPDX-License-Identifier: MIT
// Package ols_test contains unit tests for the closed-form solver: exact
// recovery, determinism, shape/singularity policy, and the ridge mode.
package ols_test

import (
	"testing"

	"github.com/katalvlaran/linfit/matrix"
	"github.com/katalvlaran/linfit/ols"
	"github.com/stretchr/testify/require"
)

const fitTol = 1e-9

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestFit_ExactLine(t *testing.T) {
	// y = 2x + 5, no noise → coefficients recovered exactly.
	X := mustDense(t, [][]float64{{0}, {1}, {2}, {3}})
	y := []float64{5, 7, 9, 11}

	beta, err := ols.Fit(X, y)
	require.NoError(t, err)
	require.Len(t, beta, 2)
	require.InDelta(t, 5.0, beta[0], fitTol) // intercept
	require.InDelta(t, 2.0, beta[1], fitTol) // slope
}

func TestFit_ExactPlane(t *testing.T) {
	// y = 1 + 2x₁ − 3x₂ on four independent points.
	X := mustDense(t, [][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{2, 3},
	})
	y := []float64{1, 3, -2, -4}

	beta, err := ols.Fit(X, y)
	require.NoError(t, err)
	require.Len(t, beta, X.Cols()+1)
	require.InDelta(t, 1.0, beta[0], fitTol)
	require.InDelta(t, 2.0, beta[1], fitTol)
	require.InDelta(t, -3.0, beta[2], fitTol)
}

func TestFit_Deterministic(t *testing.T) {
	X := mustDense(t, [][]float64{{1, 4}, {2, 1}, {3, 7}, {5, 2}})
	y := []float64{3.5, -1.25, 8, 0.5}

	first, err := ols.Fit(X, y)
	require.NoError(t, err)
	second, err := ols.Fit(X, y)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFit_ShapeMismatch(t *testing.T) {
	// 3 rows of features vs 4 targets: fail before any arithmetic.
	X := mustDense(t, [][]float64{{1}, {2}, {3}})
	y := []float64{1, 2, 3, 4}

	beta, err := ols.Fit(X, y)
	require.ErrorIs(t, err, ols.ErrShapeMismatch)
	require.Nil(t, beta)
}

func TestFit_NilDesignMatrix(t *testing.T) {
	_, err := ols.Fit(nil, []float64{1})
	require.ErrorIs(t, err, ols.ErrShapeMismatch)
}

func TestFit_DuplicateColumnsAreSingular(t *testing.T) {
	// Two identical feature columns: AᵗA cannot be inverted; the solver must
	// refuse rather than return arbitrary coefficients.
	X := mustDense(t, [][]float64{
		{1, 1},
		{2, 2},
		{3, 3},
	})
	y := []float64{1, 2, 3}

	beta, err := ols.Fit(X, y)
	require.ErrorIs(t, err, ols.ErrSingular)
	require.ErrorIs(t, err, matrix.ErrSingular) // alias matches either name
	require.Nil(t, beta)
}

func TestFit_FewerRowsThanCoefficients(t *testing.T) {
	// One observation, two features → underdetermined normal equations.
	X := mustDense(t, [][]float64{{1, 2}})
	y := []float64{3}

	_, err := ols.Fit(X, y)
	require.ErrorIs(t, err, ols.ErrSingular)
}

func TestFit_RidgeShrinksSlope(t *testing.T) {
	X := mustDense(t, [][]float64{{0}, {1}, {2}, {3}})
	y := []float64{5, 7, 9, 11}

	plain, err := ols.Fit(X, y)
	require.NoError(t, err)
	shrunk, err := ols.Fit(X, y, ols.WithRidge(10))
	require.NoError(t, err)

	// The penalty pulls the slope toward zero but never flips its sign.
	require.Less(t, shrunk[1], plain[1])
	require.Greater(t, shrunk[1], 0.0)
}

func TestFit_RidgeZeroLambdaEqualsOLS(t *testing.T) {
	X := mustDense(t, [][]float64{{0}, {1}, {2}, {3}})
	y := []float64{5, 7, 9, 11}

	plain, err := ols.Fit(X, y)
	require.NoError(t, err)
	ridge, err := ols.Fit(X, y, ols.WithRidge(0))
	require.NoError(t, err)
	require.Equal(t, plain, ridge)
}

func TestFit_RidgeResolvesCollinearity(t *testing.T) {
	// The same duplicate-column problem that is singular for plain OLS
	// becomes solvable once the diagonal is shifted.
	X := mustDense(t, [][]float64{
		{1, 1},
		{2, 2},
		{3, 3},
	})
	y := []float64{1, 2, 3}

	beta, err := ols.Fit(X, y, ols.WithRidge(1))
	require.NoError(t, err)
	require.Len(t, beta, 3)
}

func TestFit_InvalidOptions(t *testing.T) {
	X := mustDense(t, [][]float64{{0}, {1}})
	y := []float64{0, 1}

	_, err := ols.Fit(X, y, ols.WithRidge(-0.5))
	require.ErrorIs(t, err, ols.ErrNegativeLambda)

	_, err = ols.Fit(X, y, ols.WithPivotTolerance(0))
	require.ErrorIs(t, err, ols.ErrNonPositiveTolerance)
}

func TestPredict_RoundTrip(t *testing.T) {
	X := mustDense(t, [][]float64{{0}, {1}, {2}, {3}})
	y := []float64{5, 7, 9, 11}

	beta, err := ols.Fit(X, y)
	require.NoError(t, err)

	yhat, err := ols.Predict(X, beta)
	require.NoError(t, err)
	require.Len(t, yhat, len(y))
	for i := range y {
		require.InDelta(t, y[i], yhat[i], fitTol)
	}
}

func TestPredict_CoefficientLengthMismatch(t *testing.T) {
	X := mustDense(t, [][]float64{{0}, {1}})
	_, err := ols.Predict(X, []float64{1, 2, 3})
	require.ErrorIs(t, err, ols.ErrShapeMismatch)
}
