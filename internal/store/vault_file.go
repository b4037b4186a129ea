// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/MKhiriev/go-totp-keeper/internal/crypto"
	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/models"
)

// VaultFileName is the name of the encrypted vault inside the auth
// directory. The extension is historical: the file holds an age envelope,
// not TOML.
const VaultFileName = "entries.toml"

const vaultFilePerm = 0o600

// vaultFileStorage is the default implementation of [VaultStorage]. It keeps
// the whole vault in a single age envelope whose plaintext is a TOML
// entries document.
//
// There is no locking: a single process per vault file is assumed.
type vaultFileStorage struct {
	path   string
	codec  crypto.SecretCodec
	logger *logger.Logger
}

// NewVaultFileStorage returns a [VaultStorage] that keeps the vault at
// dir/entries.toml, sealed with codec.
func NewVaultFileStorage(dir string, codec crypto.SecretCodec, log *logger.Logger) VaultStorage {
	return &vaultFileStorage{
		path:   filepath.Join(dir, VaultFileName),
		codec:  codec,
		logger: log,
	}
}

// Path implements [VaultStorage].
func (s *vaultFileStorage) Path() string {
	return s.path
}

// Load implements [VaultStorage].
func (s *vaultFileStorage) Load(ctx context.Context) ([]models.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encrypted, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Str("path", s.path).Msg("vault file does not exist yet, starting empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	decrypted, err := s.codec.Decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	if !utf8.Valid(decrypted) {
		return nil, ErrUtf8
	}

	entries, err := UnmarshalEntries(decrypted)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int("entries", len(entries)).Msg("vault loaded")
	return entries, nil
}

// Save implements [VaultStorage].
func (s *vaultFileStorage) Save(ctx context.Context, entries []models.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contents, err := MarshalEntries(entries)
	if err != nil {
		return err
	}

	encrypted, err := s.codec.Encrypt(contents)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptor, err)
	}

	if err = writeFileReplace(s.path, encrypted, vaultFilePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	s.logger.Debug().Int("entries", len(entries)).Msg("vault saved")
	return nil
}

// writeFileReplace writes data to a temporary file next to path and renames
// it over path, so readers never observe a partially written file.
func writeFileReplace(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
