// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the facade — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// valid range. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or MatVec with a short vector.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (LU, Solve, Inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that NewDenseFromRows received rows of unequal
	// length, or no rows / no columns at all.
	ErrRaggedRows = errors.New("matrix: ragged or empty row data")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (ingestion via builders and Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when every pivot candidate in a column falls
	// below the configured relative tolerance during LU factorization.
	// The caller decides whether to re-pose the problem; no pseudo-inverse
	// fallback is ever applied here.
	ErrSingular = errors.New("matrix: singular or near-singular matrix")

	// ErrNilMatrix indicates that a nil Matrix argument was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
