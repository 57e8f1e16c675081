// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/cipherlab/matrix"
)

// Codec maps text to symbol vectors and back for one alphabet.
type Codec struct {
	alphabet *Alphabet
	fill     rune
	fillVal  int64
	caseFold bool
}

// New builds a Codec. Defaults: Latin alphabet, fill 'X', case folding on.
//
// Errors:
//   - ErrFillNotInAlphabet when the fill symbol is not an alphabet member.
func New(opts ...Option) (*Codec, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fv, ok := o.alphabet.Index(o.fill)
	if !ok {
		return nil, fmt.Errorf("codec: fill %q: %w", o.fill, ErrFillNotInAlphabet)
	}

	return &Codec{
		alphabet: o.alphabet,
		fill:     o.fill,
		fillVal:  fv,
		caseFold: o.caseFold,
	}, nil
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *Alphabet { return c.alphabet }

// Modulus returns the alphabet size.
func (c *Codec) Modulus() int64 { return c.alphabet.Size() }

// Fill returns the padding symbol.
func (c *Codec) Fill() rune { return c.fill }

// Clean applies the package cleaning policy (see package doc).
// Fresh transformers are built per call; x/text transformers carry state
// and must not be shared between goroutines.
func (c *Codec) Clean(text string) string {
	f := c.newFolder()
	composed := norm.NFC.String(text)

	var sb strings.Builder
	sb.Grow(len(composed))
	for _, r := range composed {
		if c.alphabet.Contains(r) {
			sb.WriteRune(r)
			continue
		}
		if sub, ok := f.substitute(r); ok {
			sb.WriteString(sub)
		}
	}

	return sb.String()
}

// folder holds the per-call transformers used for runes outside the alphabet.
type folder struct {
	alphabet *Alphabet
	caseFold bool
	upper    cases.Caser
	lower    cases.Caser
	strip    transform.Transformer
}

func (c *Codec) newFolder() *folder {
	return &folder{
		alphabet: c.alphabet,
		caseFold: c.caseFold,
		upper:    cases.Upper(language.Und),
		lower:    cases.Lower(language.Und),
		strip:    transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// substitute finds an alphabet spelling for r, which is not a member.
// Candidates, first match wins: upper case, lower case (case folding
// only), then the same three for r with its combining marks removed.
func (f *folder) substitute(r rune) (string, bool) {
	s := string(r)
	if sub, ok := f.fold(s); ok {
		return sub, true
	}
	base, _, err := transform.String(f.strip, s)
	if err != nil || base == s || base == "" {
		return "", false
	}
	if f.members(base) {
		return base, true
	}

	return f.fold(base)
}

func (f *folder) fold(s string) (string, bool) {
	if !f.caseFold {
		return "", false
	}
	for _, sub := range []string{f.upper.String(s), f.lower.String(s)} {
		if sub != s && f.members(sub) {
			return sub, true
		}
	}

	return "", false
}

// members reports whether every rune of s is in the alphabet.
func (f *folder) members(s string) bool {
	for _, r := range s {
		if !f.alphabet.Contains(r) {
			return false
		}
	}

	return s != ""
}

// Padding returns how many fill symbols EncodeBlocks appends to a text of
// `length` symbols split into blocks of n. n must be >= 1.
func Padding(length, n int) int {
	if n < 1 || length%n == 0 {
		return 0
	}

	return n - length%n
}

// EncodeBlocks splits clean text into ceil(len/n) vectors of n symbols,
// right-padding the final vector with the fill symbol.
//
// Errors:
//   - ErrInvalidBlockSize (n < 1).
//   - ErrUnknownSymbol for runes outside the alphabet.
//
// Complexity:
//   - Time O(len), Space O(len + n).
func (c *Codec) EncodeBlocks(clean string, n int) ([]matrix.Vector, error) {
	if n < 1 {
		return nil, fmt.Errorf("codec: n=%d: %w", n, ErrInvalidBlockSize)
	}
	vals := make([]int64, 0, len(clean))
	for pos, r := range clean {
		v, ok := c.alphabet.Index(r)
		if !ok {
			return nil, fmt.Errorf("codec: %q at byte %d: %w", r, pos, ErrUnknownSymbol)
		}
		vals = append(vals, v)
	}
	for pad := Padding(len(vals), n); pad > 0; pad-- {
		vals = append(vals, c.fillVal)
	}

	blocks := make([]matrix.Vector, 0, len(vals)/n)
	for i := 0; i < len(vals); i += n {
		blocks = append(blocks, matrix.Vector(vals[i:i+n:i+n]))
	}

	return blocks, nil
}

// DecodeBlocks concatenates the symbols of every vector. Trailing fill
// symbols are kept.
//
// Errors:
//   - ErrSymbolOutOfRange when a value is outside [0, m).
func (c *Codec) DecodeBlocks(blocks []matrix.Vector) (string, error) {
	var sb strings.Builder
	for bi, b := range blocks {
		for _, v := range b {
			r, err := c.alphabet.Symbol(v)
			if err != nil {
				return "", fmt.Errorf("block %d: %w", bi, err)
			}
			sb.WriteRune(r)
		}
	}

	return sb.String(), nil
}
