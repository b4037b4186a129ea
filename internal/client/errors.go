// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrCreateDir indicates that the auth directory could not be created.
	ErrCreateDir = errors.New("failed to create directory")
	// ErrCryptoInit indicates that the identity could not be loaded or
	// created.
	ErrCryptoInit = errors.New("failed to initialize encryption")
	// ErrRunningAsRoot is returned when started by root without
	// --no-root-check.
	ErrRunningAsRoot = errors.New("running as root is not allowed, use --no-root-check to override")
	// ErrUnsupportedPlatform is returned on non-Linux platforms without
	// --no-linux-check.
	ErrUnsupportedPlatform = errors.New("only Linux is supported, use --no-linux-check to override")
	// ErrNotATerminal is returned when stdin is not an interactive terminal.
	ErrNotATerminal = errors.New("stdin is not a terminal")
)
