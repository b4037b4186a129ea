// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrSave       = errors.New("failed to save entries")
	ErrEmptyEntry = errors.New("empty entries are not allowed")

	ErrDirectory    = errors.New("path points to a directory")
	ErrFileNotExist = errors.New("file does not exist")
	ErrNoFilename   = errors.New("no file name provided")
	ErrEmptyExport  = errors.New("no entries to export")
	ErrTomlExt      = errors.New("file must have .toml extension")

	ErrClipboard = errors.New("failed to copy to clipboard")
)
