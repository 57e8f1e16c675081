// SPDX-License-Identifier: MIT

// Package config defines the hillcipher CLI configuration and its loader.
//
// Sources, later overriding earlier:
//  1. Defaults (Default()).
//  2. YAML file (--config).
//  3. Environment variables with the HILL_ prefix
//     (HILL_LOG_LEVEL -> log.level, HILL_KEY -> key).
//  4. Command-line flags (LoadMap).
//
// Example file:
//
//	alphabet: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	fill: X
//	key: "3 3; 2 5"
//	output: text
//	log:
//	  level: debug
//	  format: json
package config
