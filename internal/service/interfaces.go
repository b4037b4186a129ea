// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-totp-keeper/models"
)

// VaultService owns the ordered entry list of the running process and
// persists it after every mutation.
//
// Every mutating method saves synchronously. When the save fails the
// in-memory change is kept and the returned error wraps [ErrSave], so the
// in-memory vault may be ahead of the file on disk until the next
// successful save.
//
// The service is not safe for concurrent use; it is driven from the single
// event loop goroutine.
type VaultService interface {
	// Load replaces the in-memory list with the contents of the vault
	// file. On error the previous list is kept.
	Load(ctx context.Context) error

	// Entries returns a copy of the current list.
	Entries() []models.Entry

	// Len returns the number of entries.
	Len() int

	// Entry returns the entry at index i, or false when i is out of range.
	Entry(i int) (models.Entry, bool)

	// Add appends a new entry. An empty name or secret is rejected with
	// [ErrEmptyEntry] and nothing changes.
	Add(ctx context.Context, name, secret string) error

	// Delete removes the entry at selected and returns the selection
	// clamped to the new length (0 for an empty list). It is a no-op on
	// an empty vault.
	Delete(ctx context.Context, selected int) (int, error)

	// DeleteAll clears the vault. It is a no-op on an empty vault.
	DeleteAll(ctx context.Context) error

	// Edit replaces the entry at selected. It is a no-op on an empty vault
	// and rejects empty fields with [ErrEmptyEntry].
	Edit(ctx context.Context, selected int, name, secret string) error

	// Import appends every entry from the plaintext TOML file at path and
	// returns how many were added. An empty path is a no-op. Path
	// validation fails with [ErrFileNotExist], [ErrDirectory] or
	// [ErrTomlExt] and changes nothing. A file that cannot be read or
	// parsed contributes no entries; the vault is still saved and the read
	// or parse error is returned.
	Import(ctx context.Context, path string) (int, error)

	// Export writes the vault in the clear to path, appending the .toml
	// extension when missing, and returns the path written. An empty path
	// or a path naming a directory fails with [ErrNoFilename]; an empty
	// vault fails with [ErrEmptyExport].
	Export(ctx context.Context, path string) (string, error)
}
