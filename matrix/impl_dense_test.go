// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cipherlab/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "%dx%d", tc.r, tc.c)
	}
}

func TestNewSquare(t *testing.T) {
	src := [][]int64{{6, 24}, {13, 16}}
	m := MustSquare(t, src)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	assert.Equal(t, int64(24), MustAt(t, m, 0, 1))

	// The constructor copies; later edits to src must not leak in.
	src[0][1] = 99
	assert.Equal(t, int64(24), MustAt(t, m, 0, 1))
	assert.Equal(t, [][]int64{{6, 24}, {13, 16}}, m.ToRows())
}

func TestNewSquare_Errors(t *testing.T) {
	_, err := matrix.NewSquare(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare([][]int64{{1, 2, 3}, {4, 5, 6}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.NewSquare([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(-1, 0, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 2, 7))
	assert.Equal(t, int64(7), MustAt(t, m, 1, 2))
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := MustSquare(t, [][]int64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	assert.Equal(t, int64(1), MustAt(t, m, 0, 0))
	assert.Equal(t, int64(42), MustAt(t, c, 0, 0))
}

func TestDense_RowAndInduced(t *testing.T) {
	m := MustSquare(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, matrix.Vector{4, 5, 6}, row)
	_, err = m.Row(3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	sub, err := m.Induced([]int{0, 2}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{2, 3}, {8, 9}}, sub.ToRows())

	_, err = m.Induced(nil, []int{0})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.Induced([]int{0}, []int{5})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String(t *testing.T) {
	m := MustSquare(t, [][]int64{{6, 24}, {13, 16}})
	assert.Equal(t, "[6, 24]\n[13, 16]\n", m.String())
}
