// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cipherlab/matrix"
)

// ExampleInverse inverts a 2×2 Hill key modulo 26 and checks M·M⁻¹ = I.
func ExampleInverse() {
	key, _ := matrix.NewSquare([][]int64{{3, 3}, {2, 5}})

	det, _ := matrix.Determinant(key, 26)
	inv, _ := matrix.Inverse(key, 26)
	id, _ := matrix.Mul(key, inv, 26)

	fmt.Println("det:", det)
	fmt.Print(inv)
	fmt.Print(id)
	// Output:
	// det: 9
	// [15, 17]
	// [20, 9]
	// [1, 0]
	// [0, 1]
}

// ExampleInverse_notInvertible shows the failure for a determinant that
// shares a factor with the modulus.
func ExampleInverse_notInvertible() {
	key, _ := matrix.NewSquare([][]int64{{6, 24}, {13, 16}})

	_, err := matrix.Inverse(key, 26)
	fmt.Println(errors.Is(err, matrix.ErrNotInvertible))
	// Output:
	// true
}
