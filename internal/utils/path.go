// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes path expansion for user-typed import/export locations.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves the shorthands a user may type into a path prompt.
//
// Supported forms:
//   - "~"           the home directory
//   - "~/rest"      rest joined onto the home directory
//   - "$VAR"        the value of VAR
//   - "$VAR/rest"   rest joined onto the value of VAR
//
// Anything else, an unset variable, or a missing home directory leaves the
// input unchanged. Filesystem existence is never checked.
func ExpandPath(path string) string {
	switch {
	case strings.HasPrefix(path, "~"):
		return expandHome(path)
	case strings.HasPrefix(path, "$"):
		return expandEnv(path)
	default:
		return path
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}

func expandEnv(path string) string {
	name, rest, _ := strings.Cut(path[1:], "/")
	if name == "" {
		return path
	}

	value, ok := os.LookupEnv(name)
	if !ok {
		return path
	}

	return filepath.Join(value, strings.TrimLeft(rest, "/"))
}

// HasTrailingSeparator reports whether the raw path ends in a separator,
// meaning the user typed a directory rather than a file name.
func HasTrailingSeparator(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`)
}
