// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/cipherlab/codec"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	// ErrInvalidKey is returned when a key string cannot be parsed.
	ErrInvalidKey = errors.New("config: invalid key matrix")

	// ErrInvalidOutput is returned for an unknown output format.
	ErrInvalidOutput = errors.New("config: invalid output format")

	// ErrInvalidFill is returned when fill is not exactly one symbol.
	ErrInvalidFill = errors.New("config: fill must be a single symbol")
)

// Config is the complete CLI configuration.
type Config struct {
	// Alphabet lists the symbols in value order; its length is the modulus.
	Alphabet string `koanf:"alphabet"`
	// Fill is the single padding symbol.
	Fill string `koanf:"fill"`
	// Fold maps non-member runes to a member upper- or lower-case form.
	Fold bool `koanf:"fold"`
	// Key is the key matrix, rows separated by ';', cells by ',' or spaces.
	Key string `koanf:"key"`
	// Output is one of text, json, yaml.
	Output string    `koanf:"output"`
	Log    LogConfig `koanf:"log"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in configuration: A–Z, fill X, no key.
func Default() *Config {
	return &Config{
		Alphabet: codec.LatinSymbols,
		Fill:     string(codec.DefaultFill),
		Fold:     codec.DefaultCaseFold,
		Output:   OutputText,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Validate checks the fields that can be verified without a key.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%q: %w", c.Output, ErrInvalidOutput)
	}
	if utf8.RuneCountInString(c.Fill) != 1 {
		return fmt.Errorf("%q: %w", c.Fill, ErrInvalidFill)
	}
	if _, err := codec.NewAlphabet(c.Alphabet); err != nil {
		return fmt.Errorf("config: alphabet: %w", err)
	}

	return nil
}

// CodecOptions translates the alphabet/fill/fold settings for codec.New.
func (c *Config) CodecOptions() ([]codec.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	a, err := codec.NewAlphabet(c.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("config: alphabet: %w", err)
	}
	fill, _ := utf8.DecodeRuneInString(c.Fill)

	return []codec.Option{
		codec.WithAlphabet(a),
		codec.WithFill(fill),
		codec.WithCaseFold(c.Fold),
	}, nil
}

// ParseKey parses "6 24; 13 16" (or "6,24;13,16", or newline-separated
// rows) into row slices. Shape is not checked here; the engine reports
// non-square keys.
func ParseKey(s string) ([][]int64, error) {
	rowSep := func(r rune) bool { return r == ';' || r == '\n' }
	cellSep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	var rows [][]int64
	for _, line := range strings.FieldsFunc(s, rowSep) {
		fields := strings.FieldsFunc(line, cellSep)
		if len(fields) == 0 {
			continue
		}
		row := make([]int64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d %q: %w", len(rows), j, f, ErrInvalidKey)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty: %w", ErrInvalidKey)
	}

	return rows, nil
}
