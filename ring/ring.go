// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"math"
	"math/bits"
)

// MinModulus is the smallest modulus that yields a non-trivial ring.
const MinModulus = 2

// ValidateModulus returns ErrInvalidModulus when m < MinModulus.
// Complexity: O(1).
func ValidateModulus(m int64) error {
	if m < MinModulus {
		return fmt.Errorf("ValidateModulus(%d): %w", m, ErrInvalidModulus)
	}

	return nil
}

// Normalize reduces x into [0, m) as ((x % m) + m) % m.
// m must have passed ValidateModulus; a zero modulus panics like any
// integer division by zero.
// Complexity: O(1).
func Normalize(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m // Go's % keeps the sign of the dividend
	}

	return r
}

// Add returns (a + b) mod m without intermediate overflow.
func Add(a, b, m int64) int64 {
	a, b = Normalize(a, m), Normalize(b, m)
	// a + b could overflow when m is close to MaxInt64; compare against
	// the distance to m instead.
	if a >= m-b {
		return a - (m - b)
	}

	return a + b
}

// Sub returns (a - b) mod m.
func Sub(a, b, m int64) int64 {
	a, b = Normalize(a, m), Normalize(b, m)

	return Normalize(a-b, m) // both in [0,m): difference fits in int64
}

// Neg returns the additive inverse of a mod m.
func Neg(a, m int64) int64 {
	return Sub(0, a, m)
}

// Mul returns (a * b) mod m using a 128-bit intermediate product.
// Complexity: O(1).
func Mul(a, b, m int64) int64 {
	a, b = Normalize(a, m), Normalize(b, m)
	hi, lo := bits.Mul64(uint64(a), uint64(b))

	return int64(bits.Rem64(hi, lo, uint64(m)))
}

// Sign returns (-1)^k mod m, i.e. 1 for even k and m-1 for odd k.
// Used by cofactor expansion to avoid floating-point powers.
func Sign(k int, m int64) int64 {
	if k%2 == 0 {
		return Normalize(1, m)
	}

	return Normalize(-1, m)
}

// GCD returns the greatest common divisor of |a| and |b| using the
// Euclidean algorithm. Magnitudes are taken as uint64, so math.MinInt64
// is accepted.
//
// Errors:
//   - ErrUndefinedGCD when a == 0 && b == 0.
//   - ErrGCDOverflow when the gcd is 2^63, i.e. both inputs are 0 or
//     math.MinInt64.
//
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int64) (int64, error) {
	if a == 0 && b == 0 {
		return 0, ErrUndefinedGCD
	}
	x, y := magnitude(a), magnitude(b)
	for y != 0 {
		x, y = y, x%y
	}
	if x > math.MaxInt64 {
		return 0, ErrGCDOverflow
	}

	return int64(x), nil
}

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients
// x, y such that a*x + b*y == g. For a == b == 0 it returns (0, 0, 0).
//
// Implementation:
//   - Iterative form of the extended Euclidean algorithm; the running
//     pairs (oldR, r), (oldX, x), (oldY, y) are updated with the same
//     quotient at each step.
//   - The sign of g is fixed to be non-negative at the end.
//
// Complexity: O(log min(|a|,|b|)).
func ExtendedGCD(a, b int64) (g, x, y int64) {
	oldR, r := a, b
	oldX, curX := int64(1), int64(0)
	oldY, curY := int64(0), int64(1)
	var q int64
	for r != 0 {
		q = oldR / r
		oldR, r = r, oldR-q*r
		oldX, curX = curX, oldX-q*curX
		oldY, curY = curY, oldY-q*curY
	}
	if oldR < 0 {
		oldR, oldX, oldY = -oldR, -oldX, -oldY
	}

	return oldR, oldX, oldY
}

// ModInverse returns x in [0, m) with (a*x) mod m == 1.
//
// Implementation:
//   - Stage 1: validate m.
//   - Stage 2: reduce a into [0, m) and run ExtendedGCD(a, m).
//   - Stage 3: gcd != 1 ⇒ ErrNotInvertible; otherwise normalize x.
//
// Errors:
//   - ErrInvalidModulus (m < 2).
//   - ErrNotInvertible  (gcd(a, m) != 1, including a ≡ 0).
//
// Complexity: O(log m).
func ModInverse(a, m int64) (int64, error) {
	if err := ValidateModulus(m); err != nil {
		return 0, err
	}
	a = Normalize(a, m)
	g, x, _ := ExtendedGCD(a, m)
	if g != 1 {
		return 0, fmt.Errorf("ModInverse(%d, %d): gcd=%d: %w", a, m, g, ErrNotInvertible)
	}

	return Normalize(x, m), nil
}

// IsUnit reports whether a has a multiplicative inverse mod m.
func IsUnit(a, m int64) bool {
	if m < MinModulus {
		return false
	}
	g, _, _ := ExtendedGCD(Normalize(a, m), m)

	return g == 1
}

// magnitude returns |x| as uint64; |math.MinInt64| = 2^63 fits.
func magnitude(x int64) uint64 {
	u := uint64(x)
	if x < 0 {
		u = -u
	}

	return u
}
