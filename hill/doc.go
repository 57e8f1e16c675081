// SPDX-License-Identifier: MIT

// Package hill implements the generalized Hill cipher: a modular-matrix
// transform of text blocks over Z/mZ.
//
// 🚀 How it works
//
//	Text is cleaned to the alphabet, split into blocks of n symbols (the
//	key size), and every block v becomes K·v mod m. Decryption uses the
//	modular inverse K⁻¹ = adj(K)·det(K)⁻¹, which exists iff
//	gcd(det(K), m) = 1.
//
// ⚙️ Usage:
//
//	ct, err := hill.Encrypt("HELP", [][]int64{{3, 3}, {2, 5}}) // "HIAT"
//	pt, err := hill.Decrypt(ct, [][]int64{{3, 3}, {2, 5}})     // "HELP"
//
// Padding:
//
//	A text whose cleaned length is not a multiple of n is padded with the
//	fill symbol ('X' by default). Decrypt returns the padded text: the
//	engine cannot tell filler from data, so trimming is the caller's call.
//
// Failure modes (typed, never silently recovered):
//   - ErrNonSquare      — key rows do not all match the key size.
//   - ErrNotInvertible  — decrypting with det(K) not coprime to m.
//   - ErrInvalidModulus — alphabet smaller than 2 symbols.
//
// An Engine is immutable; every call is independent and may run
// concurrently with any other.
package hill
