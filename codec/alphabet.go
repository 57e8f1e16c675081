// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/cipherlab/ring"
)

// LatinSymbols is the classical 26-letter alphabet, A=0 … Z=25.
const LatinSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Latin is the default alphabet (modulus 26).
var Latin = MustAlphabet(LatinSymbols)

// Alphabet is an ordered set of distinct runes; a rune's position is its
// value in Z/mZ with m = Size(). Alphabets are immutable.
type Alphabet struct {
	symbols []rune
	index   map[rune]int64
}

// NewAlphabet builds an Alphabet from the runes of s, in order.
//
// Errors:
//   - ring.ErrInvalidModulus (wrapped) when s has fewer than 2 runes:
//     the alphabet size is the modulus of every computation downstream.
//   - ErrDuplicateSymbol when a rune repeats.
func NewAlphabet(s string) (*Alphabet, error) {
	n := utf8.RuneCountInString(s)
	if err := ring.ValidateModulus(int64(n)); err != nil {
		return nil, fmt.Errorf("codec: alphabet of %d symbols: %w", n, err)
	}
	a := &Alphabet{
		symbols: make([]rune, 0, n),
		index:   make(map[rune]int64, n),
	}
	for _, r := range s {
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("codec: %q: %w", r, ErrDuplicateSymbol)
		}
		a.index[r] = int64(len(a.symbols))
		a.symbols = append(a.symbols, r)
	}

	return a, nil
}

// MustAlphabet is NewAlphabet for package-level literals; it panics on error.
func MustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}

	return a
}

// Size returns the number of symbols, i.e. the ring modulus.
func (a *Alphabet) Size() int64 { return int64(len(a.symbols)) }

// Index returns the value of r and whether r belongs to the alphabet.
func (a *Alphabet) Index(r rune) (int64, bool) {
	v, ok := a.index[r]
	return v, ok
}

// Contains reports whether r belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Symbol returns the rune for value v in [0, Size()).
func (a *Alphabet) Symbol(v int64) (rune, error) {
	if v < 0 || v >= a.Size() {
		return 0, fmt.Errorf("codec: value %d for modulus %d: %w", v, a.Size(), ErrSymbolOutOfRange)
	}

	return a.symbols[v], nil
}

// String returns the symbols in order.
func (a *Alphabet) String() string { return string(a.symbols) }
