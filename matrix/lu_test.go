// matrix/lu_test.go
// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for pivoted LU, Solve and Inverse:
// known systems, pivoting on a zero leading entry, and singularity policy.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linfit/matrix"
	"github.com/stretchr/testify/require"
)

const solveTol = 1e-9

func TestSolve_KnownSystem(t *testing.T) {
	// 2x + y = 5 ;  x + 3y = 10  →  x = 1, y = 3
	a := mustDense(t, [][]float64{
		{2, 1},
		{1, 3},
	})

	x, err := matrix.Solve(a, []float64{5, 10}, 0)
	require.NoError(t, err)
	require.Len(t, x, 2)
	require.InDelta(t, 1.0, x[0], solveTol)
	require.InDelta(t, 3.0, x[1], solveTol)
}

func TestSolve_PivotsOnZeroLeadingEntry(t *testing.T) {
	// Non-pivoting Doolittle would divide by zero here; the matrix itself is
	// perfectly well-conditioned (a row swap away from identity).
	a := mustDense(t, [][]float64{
		{0, 1},
		{1, 0},
	})

	x, err := matrix.Solve(a, []float64{7, 4}, 0)
	require.NoError(t, err)
	require.InDelta(t, 4.0, x[0], solveTol)
	require.InDelta(t, 7.0, x[1], solveTol)
}

func TestSolve_RightHandSideLengthMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 3}})
	_, err := matrix.Solve(a, []float64{5, 10, 15}, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU_NonSquare(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.LU(a, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestLU_SingularMatrix(t *testing.T) {
	// Second row is an exact multiple of the first.
	a := mustDense(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	_, err := matrix.LU(a, 0)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLU_ZeroMatrixIsSingular(t *testing.T) {
	a, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	_, err = matrix.LU(a, 0)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLUDecomposition_ReusableAcrossRightHandSides(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 3},
		{6, 3},
	})
	dec, err := matrix.LU(a, 0)
	require.NoError(t, err)

	// A·x = b1 with b1 = [10, 12] → x = [1, 2]
	x, err := dec.SolveVec([]float64{10, 12})
	require.NoError(t, err)
	require.InDelta(t, 1.0, x[0], solveTol)
	require.InDelta(t, 2.0, x[1], solveTol)

	// Same factors, second right-hand side: b2 = [4, 6] → x = [1, 0]
	x, err = dec.SolveVec([]float64{4, 6})
	require.NoError(t, err)
	require.InDelta(t, 1.0, x[0], solveTol)
	require.InDelta(t, 0.0, x[1], solveTol)
}

func TestInverse_Known2x2(t *testing.T) {
	// [[4,7],[2,6]]⁻¹ = [[0.6,-0.7],[-0.2,0.4]]
	a := mustDense(t, [][]float64{
		{4, 7},
		{2, 6},
	})

	inv, err := matrix.Inverse(a, 0)
	require.NoError(t, err)

	want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := inv.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, solveTol)
		}
	}
}

func TestInverse_SingularSurfacesSentinel(t *testing.T) {
	a := mustDense(t, [][]float64{
		{1, 1},
		{1, 1},
	})
	_, err := matrix.Inverse(a, 0)
	require.ErrorIs(t, err, matrix.ErrSingular)
}
