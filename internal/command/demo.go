// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

// DemoPlaintext is the message the demo command encrypts.
const DemoPlaintext = "HELLO"

// demoKey is used when no key is configured; det 9 is a unit mod 26.
var demoKey = [][]int64{{3, 3}, {2, 5}}

// Demo is the plaintext / ciphertext / recovered triple.
type Demo struct {
	Key       [][]int64 `json:"key" yaml:"key"`
	Plaintext string    `json:"plaintext" yaml:"plaintext"`
	Encrypted string    `json:"encrypted" yaml:"encrypted"`
	Decrypted string    `json:"decrypted,omitempty" yaml:"decrypted,omitempty"`
	Error     string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// DemoCommand returns the demo command.
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Encrypt and decrypt " + DemoPlaintext + " with the configured (or a built-in) key",
		Action: func(c *cli.Context) error {
			st, err := getState(c)
			if err != nil {
				return err
			}
			key := demoKey
			if st.cfg.Key != "" {
				if key, err = st.key(); err != nil {
					return err
				}
			}

			d := Demo{Key: key, Plaintext: DemoPlaintext}
			if d.Encrypted, err = st.engine.Encrypt(d.Plaintext, key); err != nil {
				return err
			}
			// A key that encrypts may still lack an inverse; report it
			// alongside the ciphertext instead of failing the command.
			if d.Decrypted, err = st.engine.Decrypt(d.Encrypted, key); err != nil {
				st.log.Debug("demo decrypt failed", "err", err)
				d.Error = err.Error()
			}

			return write(c.App.Writer, st.cfg.Output, d, func(w io.Writer) error {
				fmt.Fprintf(w, "Plaintext: %s\n", d.Plaintext)
				fmt.Fprintf(w, "Encrypted: %s\n", d.Encrypted)
				if d.Error != "" {
					fmt.Fprintf(w, "Decrypted: (failed) %s\n", d.Error)
					return nil
				}
				fmt.Fprintf(w, "Decrypted: %s\n", d.Decrypted)
				return nil
			})
		},
	}
}
