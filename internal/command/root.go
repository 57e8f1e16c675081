// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/cipherlab/hill"
	"github.com/katalvlaran/cipherlab/internal/config"
	"github.com/katalvlaran/cipherlab/internal/logger"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const stateKey = "state"

// ErrMissingKey is returned when a command needs a key and none was configured.
var ErrMissingKey = errors.New("no key matrix configured (use --key, HILL_KEY or the config file)")

// state is what Before resolves for every command.
type state struct {
	cfg    *config.Config
	log    *slog.Logger
	engine *hill.Engine
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "hillcipher",
		Usage:   "Hill (modular-matrix) cipher over an arbitrary alphabet",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			EncryptCommand(),
			DecryptCommand(),
			InspectCommand(),
			DemoCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
			EnvVars: []string{"HILL_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   `key matrix, e.g. "3 3; 2 5"`,
		},
		&cli.StringFlag{
			Name:  "alphabet",
			Usage: "symbol alphabet; its length is the modulus",
		},
		&cli.StringFlag{
			Name:  "fill",
			Usage: "padding symbol for the last block",
		},
		&cli.BoolFlag{
			Name:  "no-fold",
			Usage: "keep letter case (for case-sensitive alphabets)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "text, json",
		},
	}
}

// flagOverrides maps explicitly set flags onto dotted config keys.
func flagOverrides(c *cli.Context) map[string]any {
	out := make(map[string]any)
	for flag, key := range map[string]string{
		"key":        "key",
		"alphabet":   "alphabet",
		"fill":       "fill",
		"output":     "output",
		"log-level":  "log.level",
		"log-format": "log.format",
	} {
		if c.IsSet(flag) {
			out[key] = c.String(flag)
		}
	}
	if c.IsSet("no-fold") {
		out["fold"] = !c.Bool("no-fold")
	}

	return out
}

// setup loads configuration, builds the logger and the engine.
func setup(c *cli.Context) error {
	loader := config.NewLoader(config.WithConfigFile(c.String("config")))
	cfg, err := loader.Load(flagOverrides(c))
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	log.Debug("config loaded", "file", c.String("config"), "keys", loader.Keys())

	opts, err := cfg.CodecOptions()
	if err != nil {
		return err
	}
	engine, err := hill.NewEngine(opts...)
	if err != nil {
		return err
	}

	c.App.Metadata[stateKey] = &state{cfg: cfg, log: log, engine: engine}

	return nil
}

// getState retrieves the state stored by setup.
func getState(c *cli.Context) (*state, error) {
	if st, ok := c.App.Metadata[stateKey].(*state); ok {
		return st, nil
	}

	return nil, errors.New("command: app not initialized")
}

// key parses the configured key matrix.
func (s *state) key() ([][]int64, error) {
	if s.cfg.Key == "" {
		return nil, ErrMissingKey
	}

	return config.ParseKey(s.cfg.Key)
}
