// SPDX-License-Identifier: MIT

package hill

import (
	"errors"

	"github.com/katalvlaran/cipherlab/matrix"
	"github.com/katalvlaran/cipherlab/ring"
)

var (
	// ErrNonSquare is returned when the key matrix is not n×n.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNotInvertible is returned on decryption when gcd(det(K), m) != 1.
	ErrNotInvertible = ring.ErrNotInvertible

	// ErrInvalidModulus is returned when the modulus is below 2.
	ErrInvalidModulus = ring.ErrInvalidModulus

	// ErrEmptyKey is returned for a key with no rows.
	ErrEmptyKey = errors.New("hill: empty key matrix")

	// ErrUnknownMode is returned for a Mode other than Encrypt or Decrypt.
	ErrUnknownMode = errors.New("hill: unknown mode")
)
