// SPDX-License-Identifier: MIT

// Package cipherlab is a small toolkit for the Hill cipher and the modular
// linear algebra underneath it.
//
// What is inside?
//
//	ring/     — arithmetic in Z/mZ: normalize, add, multiply, gcd, inverse
//	matrix/   — dense int64 matrices mod m: product, determinant, adjugate, inverse
//	codec/    — alphabets, text cleaning, padding and block <-> symbol mapping
//	hill/     — the cipher engine: Process, Encrypt, Decrypt, Inspect
//	cmd/hillcipher — command-line front end (config file, HILL_* env, flags)
//
// Quick start:
//
//	key := [][]int64{{3, 3}, {2, 5}}
//	ct, _ := hill.Encrypt("help", key) // "HIAT"
//	pt, _ := hill.Decrypt(ct, key)     // "HELP"
//
// A key decrypts only when gcd(det(K), m) == 1; hill.Inspect reports the
// determinant, the gcd and the inverse before any text is touched.
package cipherlab
