// SPDX-License-Identifier: MIT
// Package matrix provides modular linear-algebra kernels on any Matrix
// implementation: reduction, equality, transpose, product and
// matrix-vector product over Z/mZ. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels take a fast path when operands are *Dense (flat-slice loops)
//     and fall back to At/Set with a fixed i→j(→k) order otherwise.
//   - Every arithmetic step goes through package ring, so no intermediate
//     value leaves [0, m) and no product overflows int64.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/cipherlab/ring"
)

// Operation name constants for unified error wrapping.
const (
	opReduce    = "Reduce"
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opIdentity  = "Identity"
	opMinor     = "Minor"
	opDet       = "Determinant"
	opCofactor  = "Cofactor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// readRows materializes m as normalized row slices (fresh allocation).
// It is the single entry point through which kernels read foreign
// Matrix implementations.
func readRows(m Matrix, mod int64) ([][]int64, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([][]int64, rows)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			out[i] = make([]int64, cols)
			for j := 0; j < cols; j++ {
				out[i][j] = ring.Normalize(d.data[i*cols+j], mod)
			}
		}

		return out, nil
	}

	var v int64
	var err error
	for i := 0; i < rows; i++ {
		out[i] = make([]int64, cols)
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i][j] = ring.Normalize(v, mod)
		}
	}

	return out, nil
}

// fromRows packs rectangular row slices into a fresh Dense.
// Callers guarantee len(rows) > 0 and equal row lengths.
func fromRows(rows [][]int64) *Dense {
	r, c := len(rows), len(rows[0])
	d := &Dense{r: r, c: c, data: make([]int64, r*c)}
	for i, row := range rows {
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d
}

// Reduce returns a copy of m with every cell normalized into [0, mod).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Reduce(m Matrix, mod int64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	rows, err := readRows(m, mod)
	if err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	return fromRows(rows), nil
}

// Equal reports whether a and b have the same shape and identical cells.
// Nil operands are never equal.
func Equal(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var av, bv int64
	var errA, errB error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, errA = a.At(i, j)
			bv, errB = b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// Transpose returns mᵀ as a new Dense (cols × rows).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := &Dense{r: cols, c: rows, data: make([]int64, rows*cols)}

	// Fast path: direct index swap on the flat buffer.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v int64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul performs the modular matrix product C = (A × B) mod m.
//
// Implementation:
//   - Stage 1: validate A,B (not nil), inner dimensions and modulus.
//   - Stage 2: normalize both operands once, then run i→k→j with
//     zero-skip on A[i,k]; every accumulation stays in [0, m).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidModulus.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix, mod int64) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ar, err := readRows(a, mod)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	br, err := readRows(b, mod)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := &Dense{r: aRows, c: bCols, data: make([]int64, aRows*bCols)}
	var i, j, k int
	var av int64
	for i = 0; i < aRows; i++ {
		for k = 0; k < aCols; k++ {
			av = ar[i][k]
			if av == 0 {
				continue // skip zero for performance
			}
			for j = 0; j < bCols; j++ {
				res.data[i*bCols+j] = ring.Add(res.data[i*bCols+j], ring.Mul(av, br[k][j], mod), mod)
			}
		}
	}

	return res, nil
}

// MatVec computes y[row] = Σ_col m[row][col]·x[col] (mod `mod`).
// This is the per-block step of the cipher: x is one symbol vector.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus, ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x Vector, mod int64) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateModulus(mod); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make(Vector, rows)
	var acc, v int64
	var err error
	for i := 0; i < rows; i++ {
		acc = 0
		for j := 0; j < cols; j++ {
			if d, ok := m.(*Dense); ok {
				v = d.data[i*cols+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc = ring.Add(acc, ring.Mul(v, x[j], mod), mod)
		}
		y[i] = acc
	}

	return y, nil
}
