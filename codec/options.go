// SPDX-License-Identifier: MIT

package codec

// DefaultFill is the padding symbol used when none is configured.
const DefaultFill = 'X'

// DefaultCaseFold enables case folding during Clean.
const DefaultCaseFold = true

// Option configures a Codec.
type Option func(*Options)

// Options holds Codec configuration; build it with the WithX constructors.
type Options struct {
	alphabet *Alphabet
	fill     rune
	caseFold bool
}

// defaultOptions returns the documented defaults: Latin, 'X', case folding on.
func defaultOptions() Options {
	return Options{
		alphabet: Latin,
		fill:     DefaultFill,
		caseFold: DefaultCaseFold,
	}
}

// WithAlphabet selects the symbol alphabet (and therefore the modulus).
// A nil alphabet keeps the current value.
func WithAlphabet(a *Alphabet) Option {
	return func(o *Options) {
		if a != nil {
			o.alphabet = a
		}
	}
}

// WithFill sets the padding symbol; it must belong to the alphabet.
func WithFill(r rune) Option {
	return func(o *Options) { o.fill = r }
}

// WithCaseFold toggles case folding in Clean: a rune outside the alphabet
// may be replaced by its upper- or lower-case form when that is a member.
// Members are never folded.
func WithCaseFold(on bool) Option {
	return func(o *Options) { o.caseFold = on }
}
