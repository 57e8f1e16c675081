// SPDX-License-Identifier: MIT
// Package matrix: cofactor toolkit over Z/mZ.
//
// Purpose:
//   - Minor, Determinant, Cofactor, Adjugate and Inverse for square matrices.
//   - Inverse is built as adj(M)·det(M)⁻¹ so that it works for any modulus,
//     prime or composite, without division.
//
// Determinism & memory:
//   - Determinant is a pure recursion over immutable row slices; every level
//     allocates its own minors and never writes into a shared buffer, so
//     concurrent calls cannot alias each other's scratch space.
//   - Cost is O(n!) (reference cofactor expansion); keys are small (n ≤ 6).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/cipherlab/ring"
)

// minorRows returns a fresh (n-1)×(n-1) copy of a without row `row` and
// column `col`. a is not modified.
func minorRows(a [][]int64, row, col int) [][]int64 {
	n := len(a)
	out := make([][]int64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		r := make([]int64, 0, n-1)
		r = append(r, a[i][:col]...)
		r = append(r, a[i][col+1:]...)
		out = append(out, r)
	}

	return out
}

// det is the recursive cofactor expansion along row 0. a is square, n ≥ 1,
// and every cell is already normalized into [0, mod).
func det(a [][]int64, mod int64) int64 {
	switch n := len(a); n {
	case 1:
		return ring.Normalize(a[0][0], mod)
	case 2:
		return ring.Sub(ring.Mul(a[0][0], a[1][1], mod), ring.Mul(a[0][1], a[1][0], mod), mod)
	default:
		var acc, term int64
		for i := 0; i < n; i++ {
			if a[0][i] == 0 {
				continue // the whole term vanishes
			}
			term = ring.Mul(a[0][i], det(minorRows(a, 0, i), mod), mod)
			acc = ring.Add(acc, ring.Mul(ring.Sign(i, mod), term, mod), mod)
		}

		return acc
	}
}

// Minor returns the (n-1)×(n-1) matrix obtained by deleting row `row` and
// column `col` of the square matrix m. m is not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrBadShape when m is 1×1 (the minor would be empty).
//   - ErrOutOfRange for invalid indices.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if n < 2 {
		return nil, matrixErrorf(opMinor, ErrBadShape)
	}
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	keep := func(skip int) []int {
		idx := make([]int, 0, n-1)
		for i := 0; i < n; i++ {
			if i != skip {
				idx = append(idx, i)
			}
		}
		return idx
	}

	if d, ok := m.(*Dense); ok {
		out, err := d.Induced(keep(row), keep(col))
		if err != nil {
			return nil, matrixErrorf(opMinor, err)
		}

		return out, nil
	}
	// Minor is modulus-free: raw cells are copied as-is.
	out := &Dense{r: n - 1, c: n - 1, data: make([]int64, (n-1)*(n-1))}
	var v int64
	var err error
	var k int
	for _, i := range keep(row) {
		for _, j := range keep(col) {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMinor, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[k] = v
			k++
		}
	}

	return out, nil
}

// Determinant returns det(m) mod `mod`, normalized into [0, mod).
//
// Implementation:
//   - Stage 1: validate NotNil → Modulus → Square.
//   - Stage 2: normalize cells, then expand along row 0:
//     det = Σ_i (−1)^i · m[0][i] · det(minor(m, 0, i)), each term reduced.
//   - Base cases: n=1 ⇒ m00; n=2 ⇒ m00·m11 − m01·m10.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level (depth n).
func Determinant(m Matrix, mod int64) (int64, error) {
	if err := validateSquareMod(m, mod); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	rows, err := readRows(m, mod)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(rows, mod), nil
}

// cofactorRows computes C[i][j] = (−1)^(i+j)·det(minor(a,i,j)) mod `mod`.
// A 1×1 input yields [[1]] (the empty minor has determinant 1).
func cofactorRows(a [][]int64, mod int64) [][]int64 {
	n := len(a)
	out := make([][]int64, n)
	if n == 1 {
		out[0] = []int64{ring.Normalize(1, mod)}
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			out[i][j] = ring.Mul(ring.Sign(i+j, mod), det(minorRows(a, i, j), mod), mod)
		}
	}

	return out
}

// Cofactor returns the cofactor matrix of m over Z/mZ.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus, ErrNonSquare.
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func Cofactor(m Matrix, mod int64) (*Dense, error) {
	if err := validateSquareMod(m, mod); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	rows, err := readRows(m, mod)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return fromRows(cofactorRows(rows, mod)), nil
}

// Adjugate returns adj(m) = Cofactor(m)ᵀ, i.e. A[j][i] = C[i][j].
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus, ErrNonSquare.
//
// Complexity:
//   - Same as Cofactor plus O(n²) for the transpose.
func Adjugate(m Matrix, mod int64) (*Dense, error) {
	c, err := Cofactor(m, mod)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns M⁻¹ over Z/mZ such that (M·M⁻¹) mod m == I.
//
// Implementation:
//   - Stage 1: d = Determinant(M, mod).
//   - Stage 2: dInv = ring.ModInverse(d, mod); fails when gcd(d, mod) != 1.
//   - Stage 3: M⁻¹[i][j] = adj(M)[i][j]·dInv mod `mod`.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidModulus, ErrNonSquare.
//   - ErrNotInvertible (message names the determinant and modulus).
//
// Complexity:
//   - Dominated by the adjugate: O(n²·(n−1)!).
func Inverse(m Matrix, mod int64) (*Dense, error) {
	d, err := Determinant(m, mod)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dInv, err := ring.ModInverse(d, mod)
	if err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%d mod %d: %w", d, mod, err))
	}
	adj, err := Adjugate(m, mod)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for idx, v := range adj.data {
		adj.data[idx] = ring.Mul(v, dInv, mod)
	}

	return adj, nil
}
