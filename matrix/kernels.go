// SPDX-License-Identifier: MIT

// Package matrix: universal kernels on any Matrix implementation —
// transpose, matrix·matrix, matrix·vector and intercept augmentation.
// All kernels perform strict fail-fast validation via the central
// validators, never mutate their operands, and return fresh results.
package matrix

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opAugment   = "Augment"
	opLU        = "LU"
	opSolve     = "Solve"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is/As. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a fresh c×r matrix with out[j][i] = m[i][j].
// Stage 1 (Validate): m not nil.
// Stage 2 (Prepare): allocate Dense(c, r).
// Stage 3 (Execute): fixed (i, j) loop order for determinism.
// Complexity: O(r*c) time and memory.
func Transpose(m Matrix) (*Dense, error) {
	// Stage 1: Validate input
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()

	// Stage 2: Prepare result container
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 3: Execute element copy
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // bounds are valid by construction
			out.data[j*rows+i] = v
		}
	}

	return out, nil
}

// Mul returns the matrix product a×b as a fresh Dense.
// Stage 1 (Validate): operands not nil, a.Cols == b.Rows.
// Stage 2 (Prepare): allocate Dense(a.Rows, b.Cols).
// Stage 3 (Execute): classic i-k-j triple loop with a scalar accumulator.
// Complexity: O(r·n·c) time, O(r·c) memory.
func Mul(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShapes(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()

	// Stage 2: Prepare result container
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: Execute triple loop
	var (
		i, j, k    int     // loop indices
		aVal, bVal float64 // fetched operand values
	)
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			aVal, _ = a.At(i, k)
			if aVal == 0 { // zero row entry contributes nothing
				continue
			}
			for j = 0; j < cols; j++ {
				bVal, _ = b.At(k, j)
				out.data[i*cols+j] += aVal * bVal
			}
		}
	}

	return out, nil
}

// MatVec returns the product m·v as a fresh slice of length m.Rows().
// Stage 1 (Validate): m not nil, len(v) == m.Cols.
// Stage 2 (Execute): per-row dot product with a reset accumulator.
// Complexity: O(r*c) time, O(r) memory.
func MatVec(m Matrix, v []float64) ([]float64, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()

	// Stage 2: Execute row dot products
	out := make([]float64, rows)
	var (
		i, j int
		sum  float64
		mVal float64
	)
	for i = 0; i < rows; i++ {
		sum = NormZero // reset accumulator
		for j = 0; j < cols; j++ {
			mVal, _ = m.At(i, j)
			sum += mVal * v[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Augment returns a fresh Dense with a leading constant-1 column prepended
// to m — the bias/intercept column of a design matrix. The input is never
// mutated; callers keep full ownership of m.
// Complexity: O(r*(c+1)) time and memory.
func Augment(m Matrix) (*Dense, error) {
	// Stage 1: Validate input
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	rows, cols := m.Rows(), m.Cols()

	// Stage 2: Prepare result with one extra column
	out, err := NewDense(rows, cols+1)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	// Stage 3: Execute — ones in column 0, then copy features
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		out.data[i*(cols+1)] = 1.0 // intercept column
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out.data[i*(cols+1)+j+1] = v
		}
	}

	return out, nil
}
