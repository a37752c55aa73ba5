// SPDX-License-Identifier: MIT

// Package matrix: Inverse computes the inverse of a square matrix by reusing
// one pivoted LU factorization across all identity columns.
package matrix

// Inverse returns the inverse of the square matrix m, or an error if m is
// not square or singular under the relative pivot tolerance (tol <= 0 means
// DefaultPivotTol).
//
// Blueprint:
//
//	Stage 1 (Decompose): P·A = L·U via pivoted Doolittle (validates shape).
//	Stage 2 (Prepare): allocate the result matrix and a basis-vector scratch.
//	Stage 3 (Execute): for each identity column eᵢ, solve A·x = eᵢ and
//	  write x into column i of the result.
//	Stage 4 (Finalize): return the assembled inverse.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse(m Matrix, tol float64) (*Dense, error) {
	// Stage 1: Factor once; shape and singularity validated here
	dec, err := LU(m, tol)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := dec.n

	// Stage 2: Prepare result container and basis scratch
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n) // reusable basis vector

	// Stage 3: Solve one column per basis vector
	var (
		col, i int       // loop indices
		x      []float64 // per-column solution
	)
	for col = 0; col < n; col++ {
		e[col] = 1.0
		x, err = dec.SolveVec(e)
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
		e[col] = NormZero // restore scratch for the next column
	}

	// Stage 4: Return computed inverse
	return inv, nil
}
