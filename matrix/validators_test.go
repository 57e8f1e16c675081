// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cipherlab/matrix"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateNotNil(MustSquare(t, [][]int64{{1}})))
}

func TestValidateSquare(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	assert.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateSquare(MustSquare(t, [][]int64{{1, 0}, {0, 1}})))
}

func TestValidateModulusAndVecLen(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateModulus(1), matrix.ErrInvalidModulus)
	assert.NoError(t, matrix.ValidateModulus(2))

	assert.ErrorIs(t, matrix.ValidateVecLen(matrix.Vector{1}, 2), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateVecLen(matrix.Vector{1, 2}, 2))
}
