// SPDX-License-Identifier: MIT

// Package matrix: pivoted LU decomposition and the linear solves built on it.
// Doolittle factorization with partial (row) pivoting; a pivot is accepted
// only when its magnitude clears a relative tolerance, so exactly-collinear
// and near-collinear systems surface ErrSingular instead of producing
// silently unstable results.
package matrix

import "math"

// LUDecomposition holds the packed factors of P·A = L·U for a square A.
// lu stores L strictly below the diagonal (unit diagonal implied) and U on
// and above it; perm maps factored row i to the original row perm[i].
// Obtain one via LU, then reuse it for any number of SolveVec calls.
type LUDecomposition struct {
	lu   *Dense // packed L\U factors, n×n
	perm []int  // row permutation, length n
	n    int    // common dimension
}

// cloneToDense copies any Matrix into fresh Dense storage.
// Fast path: *Dense is cloned flat; otherwise copy via At.
// Complexity: O(r*c).
func cloneToDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense)
	}
	rows, cols := m.Rows(), m.Cols()
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out.data[i*cols+j] = v
		}
	}

	return out
}

// LU factors the square matrix m as P·A = L·U using Doolittle elimination
// with partial pivoting.
//
// Blueprint:
//
//	Stage 1 (Validate): m not nil and square.
//	Stage 2 (Prepare): clone m into working storage; fix the pivot
//	  threshold = tol × maxAbs(m), with tol <= 0 meaning DefaultPivotTol.
//	Stage 3 (Execute): for each column k, select the largest remaining
//	  pivot, reject it below the threshold (ErrSingular), swap rows, then
//	  eliminate below the diagonal storing multipliers in place.
//	Stage 4 (Finalize): return the packed decomposition.
//
// The relative threshold is the documented near-singularity policy: a pivot
// p is usable only when |p| > tol × maxAbs(m). The all-zero matrix therefore
// fails immediately.
// Complexity: O(n³) time, O(n²) memory.
func LU(m Matrix, tol float64) (*LUDecomposition, error) {
	// Stage 1: Validate input shape
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := m.Rows()

	// Stage 2: Prepare working copy, permutation and threshold
	a := cloneToDense(m)
	if tol <= 0 {
		tol = DefaultPivotTol
	}
	threshold := tol * a.maxAbs()
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = i
	}

	// Stage 3: Execute pivoted elimination
	var (
		k, i, j, pivotRow int     // loop indices and selected pivot row
		best, cand        float64 // pivot magnitudes
		pivot, factor     float64 // pivot value and elimination multiplier
	)
	for k = 0; k < n; k++ {
		// 3.1: Select the largest pivot candidate in column k, rows k..n-1
		pivotRow, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if cand = math.Abs(a.data[i*n+k]); cand > best {
				pivotRow, best = i, cand
			}
		}
		// 3.2: Reject pivots below the relative tolerance
		if best <= threshold {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		// 3.3: Swap rows k and pivotRow (flat storage, whole rows)
		if pivotRow != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[pivotRow*n+j] = a.data[pivotRow*n+j], a.data[k*n+j]
			}
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
		}
		// 3.4: Eliminate below the diagonal, storing multipliers in place
		pivot = a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = a.data[i*n+k] / pivot
			a.data[i*n+k] = factor // L entry
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= factor * a.data[k*n+j] // update U block
			}
		}
	}

	// Stage 4: Finalize
	return &LUDecomposition{lu: a, perm: perm, n: n}, nil
}

// SolveVec solves A·x = b for the factored A, returning a fresh x.
// Stage 1 (Validate): len(b) == n.
// Stage 2 (Execute): permute b, forward-substitute against unit L, then
// back-substitute against U. Pivots were validated at factorization time.
// Complexity: O(n²) time, O(n) memory.
func (d *LUDecomposition) SolveVec(b []float64) ([]float64, error) {
	// Stage 1: Validate input length
	if err := ValidateVecLen(b, d.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := d.n

	// Stage 2a: Apply the row permutation to b
	x := make([]float64, n)
	var i, k int
	for i = 0; i < n; i++ {
		x[i] = b[d.perm[i]]
	}

	// Stage 2b: Forward substitution L·y = P·b (unit diagonal)
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += d.lu.data[i*n+k] * x[k]
		}
		x[i] -= sum
	}

	// Stage 2c: Backward substitution U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += d.lu.data[i*n+k] * x[k]
		}
		x[i] = (x[i] - sum) / d.lu.data[i*n+i]
	}

	return x, nil
}

// Solve is the one-shot facade: factor a with the given tolerance and solve
// a·x = b. Use LU + SolveVec directly to amortize factorization across many
// right-hand sides.
// Errors: ErrNonSquare, ErrSingular, ErrDimensionMismatch — all errors.Is
// matchable. Complexity: O(n³).
func Solve(a Matrix, b []float64, tol float64) ([]float64, error) {
	dec, err := LU(a, tol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return dec.SolveVec(b)
}
