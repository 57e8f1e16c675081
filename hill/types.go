// SPDX-License-Identifier: MIT

package hill

import "fmt"

// Mode selects the direction of Process.
type Mode int

const (
	// ModeEncrypt multiplies each block by the key matrix.
	ModeEncrypt Mode = iota

	// ModeDecrypt multiplies each block by the modular inverse of the key.
	ModeDecrypt
)

// String returns "encrypt" or "decrypt".
func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "encrypt"
	case ModeDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// KeyReport describes a key matrix relative to an engine's modulus.
//
// Fields:
//   - Size        — n, the block length.
//   - Modulus     — m, the alphabet size.
//   - Key         — the key with every cell reduced into [0, m).
//   - Determinant — det(Key) mod m.
//   - GCD         — gcd(Determinant, m); the key decrypts iff GCD == 1.
//   - Invertible  — GCD == 1.
//   - Inverse     — Key⁻¹ mod m, nil when not invertible.
type KeyReport struct {
	Size        int       `json:"size" yaml:"size"`
	Modulus     int64     `json:"modulus" yaml:"modulus"`
	Key         [][]int64 `json:"key" yaml:"key"`
	Determinant int64     `json:"determinant" yaml:"determinant"`
	GCD         int64     `json:"gcd" yaml:"gcd"`
	Invertible  bool      `json:"invertible" yaml:"invertible"`
	Inverse     [][]int64 `json:"inverse,omitempty" yaml:"inverse,omitempty"`
}
