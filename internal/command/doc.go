// SPDX-License-Identifier: MIT

// Package command provides CLI command definitions for hillcipher.
//
// It uses urfave/cli/v2 for command parsing. Global flags are resolved
// together with the config file and HILL_* environment variables in the
// app's Before hook; every command then reads the shared state.
package command
