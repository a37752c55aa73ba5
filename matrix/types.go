// SPDX-License-Identifier: MIT

// Package matrix: public interface and numeric policy shared by all kernels.
// Errors live in errors.go; the concrete row-major implementation lives in
// dense.go, per the package-wide file-role conventions.
package matrix

// Numeric policy (single source of truth).
const (
	// DefaultPivotTol is the relative pivot tolerance used by LU, Solve and
	// Inverse when the caller passes tol <= 0. A pivot p is rejected when
	// |p| < DefaultPivotTol × maxAbs(A), where maxAbs(A) is the largest
	// absolute entry of the matrix being factored; for maxAbs(A) == 0 the
	// matrix is all zeros and trivially singular. This converts "silently
	// unstable on collinear inputs" into an explicit ErrSingular.
	DefaultPivotTol = 1e-12

	// NormZero is the additive identity for norms and accumulators.
	NormZero = 0.0

	// ZeroSum is the initial sum value for forward/backward substitution.
	ZeroSum = 0.0
)

// Matrix represents a two-dimensional mutable array of float64 values.
// All methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds on invalid indices and ErrNaNInf on
	// non-finite v. Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
