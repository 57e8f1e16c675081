// SPDX-License-Identifier: MIT

// Package codec converts text to and from fixed-size blocks of ring
// elements (symbol vectors) for the matrix cipher engine.
//
// What it does:
//
//	An Alphabet assigns each symbol its index in Z/mZ, where m is the
//	alphabet size. A Codec cleans raw text down to that alphabet, splits it
//	into blocks of n symbols, right-pads the final block with a fill symbol
//	and maps blocks back to text.
//
// Cleaning policy:
//  1. The text is NFC-composed, so "N" + U+0303 becomes "Ñ".
//  2. A rune that is in the alphabet is kept unchanged. Alphabet symbols
//     such as Ñ or é therefore survive, which keeps ciphertext decryptable.
//  3. Any other rune is replaced by the first of these that consists only
//     of alphabet symbols: its upper case, its lower case (both only with
//     case folding, see WithCaseFold), the rune without combining marks
//     ("é" → "e"), or that base rune's upper or lower case.
//  4. Runes with no such spelling are dropped.
//
// Padding policy:
//
//	Only the final block is padded, and nothing records how many fill
//	symbols were appended. DecodeBlocks never strips trailing fill symbols:
//	it cannot tell filler from genuine data, so that decision belongs to
//	the caller. Padding reports the count for callers that track lengths.
//
// A Codec is immutable after construction and safe for concurrent use.
package codec
