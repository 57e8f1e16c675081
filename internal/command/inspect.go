// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Show determinant, invertibility and inverse of the key",
		Action: func(c *cli.Context) error {
			st, err := getState(c)
			if err != nil {
				return err
			}
			key, err := st.key()
			if err != nil {
				return err
			}
			rep, err := st.engine.Inspect(key)
			if err != nil {
				return err
			}

			return write(c.App.Writer, st.cfg.Output, rep, func(w io.Writer) error {
				fmt.Fprintf(w, "size:        %d\n", rep.Size)
				fmt.Fprintf(w, "modulus:     %d\n", rep.Modulus)
				fmt.Fprintf(w, "determinant: %d\n", rep.Determinant)
				fmt.Fprintf(w, "gcd:         %d\n", rep.GCD)
				fmt.Fprintf(w, "invertible:  %t\n", rep.Invertible)
				if rep.Invertible {
					fmt.Fprintln(w, "inverse:")
					for _, row := range rep.Inverse {
						fmt.Fprintf(w, "  %v\n", row)
					}
				}
				return nil
			})
		},
	}
}
