// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-totp-keeper/models"
)

//go:generate mockgen -source=vault_interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultStorage persists the ordered entry list in the encrypted vault file.
type VaultStorage interface {
	// Load reads, decrypts and parses the vault file. A missing file is an
	// empty vault, not an error. Each failing stage returns its own error:
	// [ErrRead], [ErrDecrypt], [ErrUtf8] or [ErrParse].
	Load(ctx context.Context) ([]models.Entry, error)

	// Save serializes, encrypts and overwrites the vault file. Failing
	// stages return [ErrSerialize], [ErrEncryptor] or [ErrWrite].
	Save(ctx context.Context, entries []models.Entry) error

	// Path returns the location of the vault file.
	Path() string
}

// EntriesFileStorage reads and writes plaintext entry files used for import
// and export. These files are never encrypted.
type EntriesFileStorage interface {
	// ReadEntries parses the TOML file at path. Failures return [ErrRead]
	// or [ErrParse].
	ReadEntries(ctx context.Context, path string) ([]models.Entry, error)

	// WriteEntries serializes entries as TOML into path, creating or
	// truncating it. Failures return [ErrSerialize] or [ErrWrite].
	WriteEntries(ctx context.Context, path string, entries []models.Entry) error
}
