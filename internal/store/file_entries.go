// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/models"
)

const exportFilePerm = 0o600

// entriesFileStorage is the default implementation of
// [EntriesFileStorage]. Files it reads and writes are plaintext TOML with
// the same schema as the decrypted vault.
type entriesFileStorage struct {
	logger *logger.Logger
}

// NewEntriesFileStorage constructs a new [EntriesFileStorage].
func NewEntriesFileStorage(log *logger.Logger) EntriesFileStorage {
	return &entriesFileStorage{logger: log}
}

// ReadEntries reads and parses the plaintext entries file at path.
//
// Parameters:
//   - ctx: cancellation context, checked before any I/O.
//   - path: already expanded filesystem path of the source file.
//
// Returns the parsed entries in file order, or an error wrapping [ErrRead]
// when the file cannot be read and [ErrParse] when it is not an entries
// document.
func (s *entriesFileStorage) ReadEntries(ctx context.Context, path string) ([]models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	entries, err := UnmarshalEntries(contents)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("path", path).Int("entries", len(entries)).Msg("entries file read")
	return entries, nil
}

// WriteEntries serializes entries and writes them to path in the clear,
// creating or truncating the file with 0600 permissions.
//
// Returns an error wrapping [ErrSerialize] or [ErrWrite].
func (s *entriesFileStorage) WriteEntries(ctx context.Context, path string, entries []models.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contents, err := MarshalEntries(entries)
	if err != nil {
		return err
	}

	if err = os.WriteFile(path, contents, exportFilePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	s.logger.Debug().Str("path", path).Int("entries", len(entries)).Msg("entries file written")
	return nil
}
