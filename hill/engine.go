// SPDX-License-Identifier: MIT

package hill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cipherlab/codec"
	"github.com/katalvlaran/cipherlab/matrix"
	"github.com/katalvlaran/cipherlab/ring"
)

// Engine runs the Hill pipeline for one alphabet. It holds only its
// immutable codec; inverse keys are derived per call and never cached.
type Engine struct {
	codec *codec.Codec
}

// NewEngine builds an Engine; options configure the underlying codec
// (alphabet, fill symbol, case folding).
func NewEngine(opts ...codec.Option) (*Engine, error) {
	c, err := codec.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("hill: %w", err)
	}

	return &Engine{codec: c}, nil
}

// Modulus returns the alphabet size m.
func (e *Engine) Modulus() int64 { return e.codec.Modulus() }

// Codec returns the engine's codec.
func (e *Engine) Codec() *codec.Codec { return e.codec }

// newKey validates and reduces a key: non-empty, square, cells in [0, m).
func (e *Engine) newKey(key [][]int64) (*matrix.Dense, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	k, err := matrix.NewSquare(key)
	if err != nil {
		return nil, err
	}

	return matrix.Reduce(k, e.Modulus())
}

// workingMatrix returns the key itself for ModeEncrypt and its inverse for ModeDecrypt.
func (e *Engine) workingMatrix(key *matrix.Dense, mode Mode) (*matrix.Dense, error) {
	switch mode {
	case ModeEncrypt:
		return key, nil
	case ModeDecrypt:
		return matrix.Inverse(key, e.Modulus())
	default:
		return nil, fmt.Errorf("%v: %w", mode, ErrUnknownMode)
	}
}

// Process encrypts or decrypts text with key.
//
// Implementation:
//   - Stage 1: validate the modulus and that key is square (n = len(key)).
//   - Stage 2: pick the working matrix (key, or key⁻¹ for ModeDecrypt).
//   - Stage 3: clean text and split it into n-blocks, padding the last.
//   - Stage 4: replace each block v by W·v mod m.
//   - Stage 5: decode the blocks back to text.
//
// Errors:
//   - ErrInvalidModulus, ErrEmptyKey, ErrNonSquare, ErrNotInvertible
//     (ModeDecrypt only), ErrUnknownMode.
//
// Complexity:
//   - O(len·n) for the products plus O(n²·(n−1)!) to invert on ModeDecrypt.
func (e *Engine) Process(text string, key [][]int64, mode Mode) (string, error) {
	if err := ring.ValidateModulus(e.Modulus()); err != nil {
		return "", fmt.Errorf("hill: %w", err)
	}
	k, err := e.newKey(key)
	if err != nil {
		return "", fmt.Errorf("hill: key: %w", err)
	}
	w, err := e.workingMatrix(k, mode)
	if err != nil {
		return "", fmt.Errorf("hill: %s: %w", mode, err)
	}

	blocks, err := e.codec.EncodeBlocks(e.codec.Clean(text), k.Rows())
	if err != nil {
		return "", fmt.Errorf("hill: %w", err)
	}
	out := make([]matrix.Vector, len(blocks))
	for i, v := range blocks {
		if out[i], err = matrix.MatVec(w, v, e.Modulus()); err != nil {
			return "", fmt.Errorf("hill: block %d: %w", i, err)
		}
	}

	res, err := e.codec.DecodeBlocks(out)
	if err != nil {
		return "", fmt.Errorf("hill: %w", err)
	}

	return res, nil
}

// Encrypt is Process(text, key, ModeEncrypt).
func (e *Engine) Encrypt(text string, key [][]int64) (string, error) {
	return e.Process(text, key, ModeEncrypt)
}

// Decrypt is Process(text, key, ModeDecrypt).
func (e *Engine) Decrypt(text string, key [][]int64) (string, error) {
	return e.Process(text, key, ModeDecrypt)
}

// Inspect reports the determinant, invertibility and inverse of key under
// the engine's modulus. A non-invertible key is not an error here; only
// malformed keys are.
func (e *Engine) Inspect(key [][]int64) (KeyReport, error) {
	k, err := e.newKey(key)
	if err != nil {
		return KeyReport{}, fmt.Errorf("hill: key: %w", err)
	}
	mod := e.Modulus()
	d, err := matrix.Determinant(k, mod)
	if err != nil {
		return KeyReport{}, fmt.Errorf("hill: %w", err)
	}
	g, err := ring.GCD(d, mod)
	if err != nil {
		return KeyReport{}, fmt.Errorf("hill: %w", err)
	}

	rep := KeyReport{
		Size:        k.Rows(),
		Modulus:     mod,
		Key:         k.ToRows(),
		Determinant: d,
		GCD:         g,
		Invertible:  g == 1,
	}
	inv, err := matrix.Inverse(k, mod)
	switch {
	case err == nil:
		rep.Inverse = inv.ToRows()
	case errors.Is(err, ErrNotInvertible):
		// reported via Invertible=false; Inverse stays nil
	default:
		return KeyReport{}, fmt.Errorf("hill: %w", err)
	}

	return rep, nil
}
