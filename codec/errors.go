// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrDuplicateSymbol is returned when an alphabet lists a rune twice.
	ErrDuplicateSymbol = errors.New("codec: duplicate alphabet symbol")

	// ErrFillNotInAlphabet is returned when the fill symbol cannot be encoded.
	ErrFillNotInAlphabet = errors.New("codec: fill symbol not in alphabet")

	// ErrInvalidBlockSize is returned for block sizes below 1.
	ErrInvalidBlockSize = errors.New("codec: block size must be >= 1")

	// ErrUnknownSymbol is returned when text passed to EncodeBlocks holds a
	// rune outside the alphabet (i.e. it was not cleaned).
	ErrUnknownSymbol = errors.New("codec: symbol not in alphabet")

	// ErrSymbolOutOfRange is returned when a vector value is outside [0, m).
	ErrSymbolOutOfRange = errors.New("codec: symbol value out of range")
)
