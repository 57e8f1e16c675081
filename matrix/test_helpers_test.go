// SPDX-License-Identifier: MIT

// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernel tests.

package matrix_test

import (
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/cipherlab/matrix"
)

// mod26 is the Latin alphabet modulus used across fixtures.
const mod26 = 26

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their interface (non-*Dense) path.
type hide struct{ matrix.Matrix }

// MustSquare builds a square Dense from rows or fails the test.
// It accepts require.TestingT so that rapid property bodies can use it too.
func MustSquare(t require.TestingT, rows [][]int64) *matrix.Dense {
	m, err := matrix.NewSquare(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t require.TestingT, m matrix.Matrix, i, j int) int64 {
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// swapRows returns a copy of rows with rows i and j exchanged.
func swapRows(rows [][]int64, i, j int) [][]int64 {
	out := make([][]int64, len(rows))
	for k := range rows {
		out[k] = append([]int64(nil), rows[k]...)
	}
	out[i], out[j] = out[j], out[i]

	return out
}

// squareRowsGen draws an n×n matrix with cells in [-3·mod, 3·mod] so that
// normalization of negatives and overflows past the modulus is exercised.
func squareRowsGen(n int, mod int64) *rapid.Generator[[][]int64] {
	cell := rapid.Int64Range(-3*mod, 3*mod)
	row := rapid.SliceOfN(cell, n, n)

	return rapid.SliceOfN(row, n, n)
}
