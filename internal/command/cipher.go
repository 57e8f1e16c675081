// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/cipherlab/codec"
	"github.com/katalvlaran/cipherlab/hill"
)

// Result is the outcome of one encrypt/decrypt call.
type Result struct {
	Mode    string `json:"mode" yaml:"mode"`
	Input   string `json:"input" yaml:"input"`
	Output  string `json:"output" yaml:"output"`
	Modulus int64  `json:"modulus" yaml:"modulus"`
	Size    int    `json:"block_size" yaml:"block_size"`
	Blocks  int    `json:"blocks" yaml:"blocks"`
	Padding int    `json:"padding" yaml:"padding"`
}

// EncryptCommand returns the encrypt command.
func EncryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "encrypt",
		Aliases:   []string{"enc"},
		Usage:     "Encrypt text (arguments, or stdin when none)",
		ArgsUsage: "[TEXT...]",
		Action:    func(c *cli.Context) error { return runCipher(c, hill.ModeEncrypt) },
	}
}

// DecryptCommand returns the decrypt command.
func DecryptCommand() *cli.Command {
	return &cli.Command{
		Name:      "decrypt",
		Aliases:   []string{"dec"},
		Usage:     "Decrypt text (arguments, or stdin when none); fill symbols are kept",
		ArgsUsage: "[TEXT...]",
		Action:    func(c *cli.Context) error { return runCipher(c, hill.ModeDecrypt) },
	}
}

// readInput joins the positional arguments or, without any, reads stdin.
func readInput(c *cli.Context) (string, error) {
	if c.Args().Present() {
		return strings.Join(c.Args().Slice(), " "), nil
	}
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return string(data), nil
}

func runCipher(c *cli.Context, mode hill.Mode) error {
	st, err := getState(c)
	if err != nil {
		return err
	}
	key, err := st.key()
	if err != nil {
		return err
	}
	input, err := readInput(c)
	if err != nil {
		return err
	}

	out, err := st.engine.Process(input, key, mode)
	if err != nil {
		st.log.Debug("process failed", "mode", mode, "err", err)
		return err
	}

	n := len(key)
	clean := st.engine.Codec().Clean(input)
	res := Result{
		Mode:    mode.String(),
		Input:   input,
		Output:  out,
		Modulus: st.engine.Modulus(),
		Size:    n,
		Blocks:  len([]rune(out)) / n,
		Padding: codec.Padding(len([]rune(clean)), n),
	}
	st.log.Debug("processed", "mode", mode, "blocks", res.Blocks, "padding", res.Padding, "modulus", res.Modulus)

	return write(c.App.Writer, st.cfg.Output, res, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, out)
		return err
	})
}
