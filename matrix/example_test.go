// matrix/example_test.go
// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linfit/matrix"
)

// Scenario:
//
//	Solve the 2×2 system
//	  2x +  y = 5
//	   x + 3y = 10
//	via pivoted LU (tol = 0 → DefaultPivotTol).
//
// Complexity: O(n³) factorization + O(n²) substitution.
func ExampleSolve() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 3},
	})

	x, err := matrix.Solve(a, []float64{5, 10}, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=%.0f y=%.0f\n", x[0], x[1])
	// Output: x=1 y=3
}

// Scenario:
//
//	Prepend the intercept column to a single-feature design matrix, the
//	first step of every regression solver in linfit.
func ExampleAugment() {
	x, _ := matrix.NewDenseFromRows([][]float64{{0}, {1}, {2}})

	a, _ := matrix.Augment(x)
	fmt.Print(a)
	// Output:
	// [1, 0]
	// [1, 1]
	// [1, 2]
}
