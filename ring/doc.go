// SPDX-License-Identifier: MIT

// Package ring implements scalar arithmetic in the finite ring Z/mZ.
//
// 🚀 What is it for?
//
//	Every cell of a cipher key, every symbol of a text block and every
//	intermediate product of the matrix kernels lives in Z/mZ, where m is
//	the size of the symbol alphabet (26 for A–Z). This package is the
//	single source of truth for reducing, adding, multiplying and inverting
//	those values.
//
// ✨ Guarantees:
//   - Normalize always lands in [0, m), also for negative inputs.
//   - Add/Sub/Mul never overflow for any modulus that fits in int64
//     (Mul goes through a 128-bit intermediate).
//   - ModInverse uses the extended Euclidean algorithm, so it is O(log m)
//     for any modulus, prime or not.
//
// ⚙️ Usage:
//
//	inv, err := ring.ModInverse(9, 26) // inv == 3
//	if errors.Is(err, ring.ErrNotInvertible) {
//		// 9 shares a factor with the modulus
//	}
//
// All functions are pure and safe for concurrent use.
package ring
