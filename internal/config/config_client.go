// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-totp-keeper/internal/utils"
)

const (
	defaultLogLevel         = "debug"
	defaultClipboardTimeout = 100 * time.Millisecond
)

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// Dir is the auth directory holding entries.toml and key.
	Dir string
}

// ClientBrowser holds file browser settings.
type ClientBrowser struct {
	// StartDir is where the browser opens; empty means the home directory.
	StartDir string
}

// ClientLog holds log output settings.
type ClientLog struct {
	// File is the log file path.
	File string
	// Level is a zerolog level name.
	Level string
}

// ClientClipboard holds clipboard settings.
type ClientClipboard struct {
	// Timeout bounds how long a copy may take.
	Timeout time.Duration
}

// ClientChecks lists the startup checks to run.
type ClientChecks struct {
	Root  bool
	Linux bool
	Size  bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig] with defaults applied.
type ClientConfig struct {
	Storage   ClientStorage
	Browser   ClientBrowser
	Log       ClientLog
	Clipboard ClientClipboard
	Checks    ClientChecks
	// Mouse enables mouse support in the terminal UI.
	Mouse bool
}

// GetClientConfig builds and validates the runtime config from args and the
// environment.
//
// It loads the base config via [GetStructuredConfig], fills defaults (the
// auth directory from [ResolveAuthDir], the log file inside it, level
// "debug", clipboard timeout 100ms), and validates the resulting
// [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dir := utils.ExpandPath(cfg.Storage.Dir)
	if dir == "" {
		var err error
		if dir, err = ResolveAuthDir(); err != nil {
			return nil, err
		}
	}

	logFile := utils.ExpandPath(cfg.Log.File)
	if logFile == "" {
		logFile = filepath.Join(dir, logFileName)
	}

	level := cfg.Log.Level
	if level == "" {
		level = defaultLogLevel
	}

	timeout := cfg.Clipboard.Timeout
	if timeout == 0 {
		timeout = defaultClipboardTimeout
	}

	clientCfg := &ClientConfig{
		Storage:   ClientStorage{Dir: dir},
		Browser:   ClientBrowser{StartDir: utils.ExpandPath(cfg.Browser.StartDir)},
		Log:       ClientLog{File: logFile, Level: level},
		Clipboard: ClientClipboard{Timeout: timeout},
		Checks: ClientChecks{
			Root:  !cfg.Checks.NoRootCheck,
			Linux: !cfg.Checks.NoLinuxCheck,
			Size:  !cfg.Checks.NoSizeCheck,
		},
		Mouse: cfg.Mouse,
	}

	return clientCfg, clientCfg.validate()
}
