// lasso/example_test.go
// SPDX-License-Identifier: MIT
package lasso_test

import (
	"fmt"

	"github.com/katalvlaran/linfit/lasso"
	"github.com/katalvlaran/linfit/matrix"
)

// Scenario:
//
//	A penalty larger than any feature's partial correlation zeroes every
//	slope; only the unpenalized intercept survives, at mean(y). This is
//	the lasso's feature-selection behavior in its purest form.
func ExampleFit() {
	X, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {2}, {3}})
	y := []float64{5, 7, 9, 11}

	opts := lasso.DefaultOptions()
	opts.Lambda = 5
	beta, sweeps, err := lasso.Fit(X, y, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("intercept=%.0f slope=%.0f sweeps=%d\n", beta[0], beta[1], sweeps)
	// Output: intercept=8 slope=0 sweeps=2
}
