// SPDX-License-Identifier: MIT

package ring

import "errors"

var (
	// ErrInvalidModulus is returned when a modulus is smaller than 2.
	ErrInvalidModulus = errors.New("ring: modulus must be >= 2")

	// ErrNotInvertible signals that a value shares a non-trivial factor
	// with the modulus and therefore has no multiplicative inverse.
	ErrNotInvertible = errors.New("ring: value is not invertible modulo m")

	// ErrUndefinedGCD is returned for gcd(0, 0).
	ErrUndefinedGCD = errors.New("ring: gcd(0, 0) is undefined")

	// ErrGCDOverflow is returned when gcd(a, b) = 2^63 does not fit in int64.
	ErrGCDOverflow = errors.New("ring: gcd does not fit in int64")
)
