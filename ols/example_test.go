// ols/example_test.go
// SPDX-License-Identifier: MIT
package ols_test

import (
	"fmt"

	"github.com/katalvlaran/linfit/matrix"
	"github.com/katalvlaran/linfit/ols"
)

// Scenario:
//
//	Four observations lying exactly on y = 2x + 5. The closed-form solver
//	recovers intercept and slope with no iteration.
//
// Complexity: O(n·p² + p³).
func ExampleFit() {
	X, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {2}, {3}})
	y := []float64{5, 7, 9, 11}

	beta, err := ols.Fit(X, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("intercept=%.0f slope=%.0f\n", beta[0], beta[1])
	// Output: intercept=5 slope=2
}

// Scenario:
//
//	Two perfectly collinear feature columns. Plain OLS refuses (ErrSingular);
//	the explicitly named ridge mode regularizes the problem into solvability.
func ExampleWithRidge() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 1},
		{2, 2},
		{3, 3},
	})
	y := []float64{1, 2, 3}

	if _, err := ols.Fit(X, y); err != nil {
		fmt.Println("plain OLS:", err)
	}
	beta, _ := ols.Fit(X, y, ols.WithRidge(1))
	fmt.Printf("ridge coefficients: %d\n", len(beta))
	// Output:
	// plain OLS: Fit: normal equations: matrix: singular or near-singular matrix
	// ridge coefficients: 3
}
