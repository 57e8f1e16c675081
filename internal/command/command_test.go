// SPDX-License-Identifier: MIT

package command_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cipherlab/hill"
	"github.com/katalvlaran/cipherlab/internal/command"
	"github.com/katalvlaran/cipherlab/internal/config"
)

const (
	sampleKey = "6 24; 13 16"
	unitKey   = "3,3;2,5"
)

// run executes the app with args and returns stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	// Keep the caller's environment out of the config.
	t.Setenv("HILL_KEY", "")
	t.Setenv("HILL_CONFIG", "")

	var out, errOut bytes.Buffer
	app := command.App()
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"hillcipher"}, args...))

	return out.String(), errOut.String(), err
}

func TestEncrypt_Args(t *testing.T) {
	out, _, err := run(t, "", "--key", sampleKey, "encrypt", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "IZSHME\n", out)
}

func TestEncrypt_Stdin(t *testing.T) {
	out, _, err := run(t, "help\n", "-k", unitKey, "enc")
	require.NoError(t, err)
	assert.Equal(t, "HIAT\n", out)
}

func TestDecrypt_RoundTrip(t *testing.T) {
	out, _, err := run(t, "", "-k", unitKey, "decrypt", "HI", "AT")
	require.NoError(t, err)
	assert.Equal(t, "HELP\n", out)
}

func TestDecrypt_NotInvertible(t *testing.T) {
	_, _, err := run(t, "", "--key", sampleKey, "decrypt", "IZSHME")
	require.Error(t, err)
	assert.ErrorIs(t, err, hill.ErrNotInvertible)
}

func TestMissingKey(t *testing.T) {
	_, _, err := run(t, "", "encrypt", "HELLO")
	assert.ErrorIs(t, err, command.ErrMissingKey)
}

func TestInvalidOutputFlag(t *testing.T) {
	_, _, err := run(t, "", "-k", unitKey, "-o", "xml", "encrypt", "HELLO")
	assert.ErrorIs(t, err, config.ErrInvalidOutput)
}

func TestEncrypt_JSON(t *testing.T) {
	out, _, err := run(t, "", "-k", sampleKey, "-o", "json", "encrypt", "hello")
	require.NoError(t, err)

	var res command.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, command.Result{
		Mode:    "encrypt",
		Input:   "hello",
		Output:  "IZSHME",
		Modulus: 26,
		Size:    2,
		Blocks:  3,
		Padding: 1,
	}, res)
}

func TestInspect_Text(t *testing.T) {
	out, _, err := run(t, "", "-k", unitKey, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "determinant: 9\n")
	assert.Contains(t, out, "invertible:  true\n")
	assert.Contains(t, out, "[15 17]")
	assert.Contains(t, out, "[20 9]")
}

func TestInspect_YAML(t *testing.T) {
	out, _, err := run(t, "", "-k", sampleKey, "-o", "yaml", "inspect")
	require.NoError(t, err)

	var rep hill.KeyReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, int64(18), rep.Determinant)
	assert.Equal(t, int64(2), rep.GCD)
	assert.False(t, rep.Invertible)
	assert.Nil(t, rep.Inverse)
}

func TestDemo_DefaultKey(t *testing.T) {
	out, _, err := run(t, "", "demo")
	require.NoError(t, err)
	assert.Equal(t, "Plaintext: HELLO\nEncrypted: HIOZHN\nDecrypted: HELLOX\n", out)
}

func TestDemo_NotInvertibleKey(t *testing.T) {
	out, _, err := run(t, "", "-k", sampleKey, "-o", "json", "demo")
	require.NoError(t, err)

	var d command.Demo
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "IZSHME", d.Encrypted)
	assert.Empty(t, d.Decrypted)
	assert.Contains(t, d.Error, "not invertible")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hill.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key: \"3 3; 2 5\"\nfill: Q\n"), 0o600))

	out, _, err := run(t, "", "--config", path, "encrypt", "HEL")
	require.NoError(t, err)
	// HE -> HI, LQ -> 11,16: (81, 102) mod 26 = (3, 24) -> DY
	assert.Equal(t, "HIDY\n", out)

	// Flags win over the file.
	out, _, err = run(t, "", "--config", path, "--fill", "X", "encrypt", "HEL")
	require.NoError(t, err)
	// LX -> 11,23: (102, 137) mod 26 = (24, 7) -> YH
	assert.Equal(t, "HIYH\n", out)
}

func TestCustomAlphabet(t *testing.T) {
	// Modulus 5: det(2 1; 1 1) = 1.
	out, _, err := run(t, "", "--alphabet", "ABCDE", "--fill", "A", "-k", "2 1; 1 1", "encrypt", "BE")
	require.NoError(t, err)
	// B=1, E=4: (2+4, 1+4) mod 5 = (1, 0) -> BA
	assert.Equal(t, "BA\n", out)
}

func TestDebugLogging(t *testing.T) {
	_, logs, err := run(t, "", "-k", unitKey, "--log-level", "debug", "encrypt", "HELP")
	require.NoError(t, err)
	assert.Contains(t, logs, "config loaded")
	assert.Contains(t, logs, "processed")
}
