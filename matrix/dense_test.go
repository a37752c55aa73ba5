// matrix/dense_test.go
// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense container and its
// builders: shape validation, finite-value policy, bounds checks, cloning.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linfit/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromRows_Succeeds(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

func TestNewDenseFromRows_DoesNotAliasInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	// Mutating the caller's slices must not leak into the Dense.
	rows[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestNewDenseFromRows_RejectsEmptyAndRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
}

func TestNewDenseFromRows_RejectsNaNInf(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(1)}, {2}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSet_BoundsAndPolicy(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	// Out-of-range access must surface the sentinel, not panic.
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrIndexOutOfBounds)

	// Non-finite writes are rejected by the numeric policy.
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	// A valid write round-trips.
	require.NoError(t, m.Set(1, 1, 2.5))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

func TestDense_Clone_IsIndependent(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))

	// The original must be untouched.
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestDense_Row_ReturnsCopy(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	// Mutating the returned slice must not write through.
	row[0] = 99
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	var want float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want = 0
			if i == j {
				want = 1
			}
			v, err := I.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want, v)
		}
	}
}
