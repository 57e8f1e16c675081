// SPDX-License-Identifier: MIT

package hill

// std is the Latin/'X' engine behind the package-level helpers.
// Engines are immutable, so sharing one is safe.
var std = mustEngine()

func mustEngine() *Engine {
	e, err := NewEngine()
	if err != nil {
		panic(err)
	}

	return e
}

// Process runs the default A–Z engine (modulus 26, fill 'X').
func Process(text string, key [][]int64, mode Mode) (string, error) {
	return std.Process(text, key, mode)
}

// Encrypt encrypts with the default A–Z engine.
func Encrypt(text string, key [][]int64) (string, error) {
	return std.Encrypt(text, key)
}

// Decrypt decrypts with the default A–Z engine.
func Decrypt(text string, key [][]int64) (string, error) {
	return std.Decrypt(text, key)
}

// Inspect reports on key with the default A–Z engine.
func Inspect(key [][]int64) (KeyReport, error) {
	return std.Inspect(key)
}
