// SPDX-License-Identifier: MIT

// Package main provides the entry point for hillcipher.
//
// hillcipher encrypts and decrypts text with a Hill cipher whose key is
// an n×n matrix over Z/mZ, m being the size of the configured alphabet.
//
// Usage:
//
//	hillcipher -k "3 3; 2 5" encrypt help        # HIAT
//	echo HIAT | hillcipher -k "3 3; 2 5" decrypt # HELP
//	hillcipher -k "6 24; 13 16" -o yaml inspect
//	hillcipher demo
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cipherlab/internal/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
