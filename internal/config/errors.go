// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrHomeDir indicates that neither XDG_DATA_HOME nor the home directory
	// could be used to place the auth directory.
	ErrHomeDir = errors.New("could not find home directory")
	// ErrUnexpectedArgs indicates positional arguments on the command line.
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	// ErrInvalidStorageConfigs indicates an unusable auth directory setting.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidClipboardConfigs indicates a negative clipboard timeout.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
)
