// SPDX-License-Identifier: MIT

// Package matrix provides square-matrix algebra over the finite ring Z/mZ.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix behind the Matrix interface, with
//     bounds-checked At/Set that return errors instead of panicking.
//   - Modular kernels: Mul, MatVec, Transpose, Reduce, Equal.
//   - The cofactor toolkit used to invert cipher keys without division:
//     Minor, Determinant (recursive cofactor expansion along row 0),
//     Cofactor, Adjugate and Inverse.
//
// Every kernel is pure: inputs are never mutated and each call allocates its
// own result (and, for the recursive kernels, its own minors). The package
// holds no global mutable state, so all functions are safe for concurrent use.
//
// Determinant cost is O(n!) by design of cofactor expansion; it is intended
// for cipher-sized keys (n ≤ 6). Callers with larger matrices should bound n.
//
// Errors are package sentinels (see errors.go) matched via errors.Is.
package matrix
