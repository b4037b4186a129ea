// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

const (
	authDirName = "auth"
	logFileName = "auth.log"
)

// ResolveAuthDir returns the default auth directory:
// $XDG_DATA_HOME/auth when XDG_DATA_HOME is an absolute path, otherwise
// ~/.local/share/auth.
func ResolveAuthDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(xdg) {
		return filepath.Join(xdg, authDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrHomeDir
	}
	return filepath.Join(home, ".local", "share", authDirName), nil
}
