// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "AUTH_"

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from command-line
// flags, environment variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//
// Every name is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// Storage holds the location of the vault and key files.
	Storage Storage

	// Browser holds file browser settings.
	Browser Browser

	// Log holds log file settings.
	Log Log `envPrefix:"LOG_"`

	// Clipboard holds clipboard copy settings.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_"`

	// Checks holds switches that disable startup environment checks.
	Checks Checks

	// Mouse enables hover selection and click-to-copy.
	// Env: AUTH_MOUSE
	Mouse bool `env:"MOUSE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from flags and environment variables.
	// Populated via AUTH_CONFIG or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the settings of the auth directory.
type Storage struct {
	// Dir is the directory holding entries.toml and key.
	// Env: AUTH_DIR
	Dir string `env:"DIR"`
}

// Browser groups the file browser settings.
type Browser struct {
	// StartDir is the directory the file browser opens in.
	// Env: AUTH_FILE_BROWSER_DIR
	StartDir string `env:"FILE_BROWSER_DIR"`
}

// Log groups the logging settings.
type Log struct {
	// File is the path of the log file.
	// Env: AUTH_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: AUTH_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Clipboard groups the clipboard settings.
type Clipboard struct {
	// Timeout is how long a copy may take before it is reported as failed
	// (e.g. "100ms", "1s").
	// Env: AUTH_CLIPBOARD_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Checks holds switches that skip startup checks. Zero values keep every
// check enabled.
type Checks struct {
	// NoRootCheck allows running as root.
	// Env: AUTH_NO_ROOT_CHECK
	NoRootCheck bool `env:"NO_ROOT_CHECK"`

	// NoLinuxCheck allows running on platforms other than Linux.
	// Env: AUTH_NO_LINUX_CHECK
	NoLinuxCheck bool `env:"NO_LINUX_CHECK"`

	// NoSizeCheck disables the small terminal warning.
	// Env: AUTH_NO_SIZE_CHECK
	NoSizeCheck bool `env:"NO_SIZE_CHECK"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (earlier sources win for non-zero
// fields):
//  1. Command-line flags from args
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		build()
}
