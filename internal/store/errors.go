// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the vault and entries file storages. Each one
// names the stage that failed so callers can report it with [errors.Is].
var (
	// ErrRead is returned when a file exists but cannot be read.
	ErrRead = errors.New("failed to read file")

	// ErrWrite is returned when a file cannot be created or written.
	ErrWrite = errors.New("failed to write file")

	// ErrDecrypt is returned when the vault envelope cannot be opened with
	// the installation identity.
	ErrDecrypt = errors.New("failed to decrypt entries")

	// ErrEncryptor is returned when the serialized vault cannot be
	// encrypted.
	ErrEncryptor = errors.New("failed to create encryptor")

	// ErrUtf8 is returned when decrypted vault contents are not valid UTF-8.
	ErrUtf8 = errors.New("failed to decode entries as UTF-8")

	// ErrParse is returned when file contents are not a valid entries
	// document.
	ErrParse = errors.New("failed to parse entries")

	// ErrSerialize is returned when entries cannot be encoded as TOML.
	ErrSerialize = errors.New("failed to serialize entries")
)
