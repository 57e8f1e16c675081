// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of int64 values.
//
// Values are plain integers; kernels that work over Z/mZ take the modulus
// explicitly and normalize their results. Implementations must be
// bounds-checked: At/Set return ErrOutOfRange rather than panicking.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	At(i, j int) (int64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v int64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Vector is a column of ring elements, e.g. one block of encoded symbols.
type Vector []int64
