// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-r/--no-root-check        allow running as root
//	-l/--no-linux-check       allow running on non-Linux platforms
//	-s/--no-size-check        disable the small terminal warning
//	-m/--mouse                enable mouse support
//	-d/--dir                  auth directory holding entries.toml and key
//	-c/--config               JSON config file path
//	--browser-dir             file browser start directory
//	--log-file                log file path
//	--log-level               log level (debug, info, warn, error)
//	--clipboard-timeout       clipboard copy timeout (e.g. 100ms, 1s)
//
// Returns [pflag.ErrHelp] when -h/--help is given.
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var clipboardTimeout time.Duration

	fs := pflag.NewFlagSet("auth", pflag.ContinueOnError)
	fs.BoolVarP(&cfg.Checks.NoRootCheck, "no-root-check", "r", false, "Allow running as root")
	fs.BoolVarP(&cfg.Checks.NoLinuxCheck, "no-linux-check", "l", false, "Allow running on non-Linux platforms")
	fs.BoolVarP(&cfg.Checks.NoSizeCheck, "no-size-check", "s", false, "Disable the terminal size warning")
	fs.BoolVarP(&cfg.Mouse, "mouse", "m", false, "Enable mouse support")
	fs.StringVarP(&cfg.Storage.Dir, "dir", "d", "", "Auth directory holding entries.toml and key")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Browser.StartDir, "browser-dir", "", "File browser start directory")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&clipboardTimeout, "clipboard-timeout", 0, "Clipboard copy timeout (e.g. 100ms, 1s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedArgs, fs.Args())
	}

	cfg.Clipboard.Timeout = clipboardTimeout
	return &cfg, nil
}
