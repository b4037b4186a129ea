// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/internal/store"
	"github.com/MKhiriev/go-totp-keeper/internal/utils"
	"github.com/MKhiriev/go-totp-keeper/models"
)

const tomlExt = ".toml"

type vaultService struct {
	vault   store.VaultStorage
	files   store.EntriesFileStorage
	entries []models.Entry
	logger  *logger.Logger
}

func NewVaultService(storages *store.ClientStorages, log *logger.Logger) VaultService {
	return &vaultService{
		vault:   storages.Vault,
		files:   storages.Files,
		entries: []models.Entry{},
		logger:  log,
	}
}

func (v *vaultService) Load(ctx context.Context) error {
	entries, err := v.vault.Load(ctx)
	if err != nil {
		v.logger.Err(err).Str("path", v.vault.Path()).Msg("failed to load vault")
		return fmt.Errorf("load vault: %w", err)
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	v.entries = entries
	v.logger.Info().Int("entries", len(entries)).Msg("vault loaded")

	return nil
}

func (v *vaultService) Entries() []models.Entry {
	return slices.Clone(v.entries)
}

func (v *vaultService) Len() int {
	return len(v.entries)
}

func (v *vaultService) Entry(i int) (models.Entry, bool) {
	if i < 0 || i >= len(v.entries) {
		return models.Entry{}, false
	}
	return v.entries[i], true
}

func (v *vaultService) Add(ctx context.Context, name, secret string) error {
	entry := models.Entry{Name: name, Secret: secret}
	if entry.IsEmpty() {
		return ErrEmptyEntry
	}

	v.entries = append(v.entries, entry)
	return v.save(ctx)
}

func (v *vaultService) Delete(ctx context.Context, selected int) (int, error) {
	if len(v.entries) == 0 {
		return 0, nil
	}

	selected = clamp(selected, len(v.entries))
	v.entries = slices.Delete(v.entries, selected, selected+1)
	selected = clamp(selected, len(v.entries))

	return selected, v.save(ctx)
}

func (v *vaultService) DeleteAll(ctx context.Context) error {
	if len(v.entries) == 0 {
		return nil
	}

	v.entries = []models.Entry{}
	return v.save(ctx)
}

func (v *vaultService) Edit(ctx context.Context, selected int, name, secret string) error {
	if len(v.entries) == 0 {
		return nil
	}

	entry := models.Entry{Name: name, Secret: secret}
	if entry.IsEmpty() {
		return ErrEmptyEntry
	}

	v.entries[clamp(selected, len(v.entries))] = entry
	return v.save(ctx)
}

func (v *vaultService) Import(ctx context.Context, path string) (int, error) {
	if path == "" {
		return 0, nil
	}

	resolved := utils.ExpandPath(path)
	if err := validateImportPath(resolved); err != nil {
		return 0, err
	}

	imported, readErr := v.files.ReadEntries(ctx, resolved)
	if readErr != nil {
		v.logger.Err(readErr).Str("path", resolved).Msg("import contributed no entries")
		imported = nil
	}

	v.entries = append(v.entries, imported...)
	if err := v.save(ctx); err != nil {
		return len(imported), err
	}

	v.logger.Info().Str("path", resolved).Int("entries", len(imported)).Msg("entries imported")
	return len(imported), readErr
}

func (v *vaultService) Export(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", ErrNoFilename
	}
	if len(v.entries) == 0 {
		return "", ErrEmptyExport
	}

	resolved, err := resolveExportPath(path)
	if err != nil {
		return "", err
	}

	if err = v.files.WriteEntries(ctx, resolved, v.entries); err != nil {
		v.logger.Err(err).Str("path", resolved).Msg("export failed")
		return "", fmt.Errorf("export entries: %w", err)
	}

	v.logger.Info().Str("path", resolved).Int("entries", len(v.entries)).Msg("entries exported")
	return resolved, nil
}

func (v *vaultService) save(ctx context.Context) error {
	if err := v.vault.Save(ctx, v.entries); err != nil {
		v.logger.Err(err).Str("path", v.vault.Path()).Msg("failed to save vault")
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

func validateImportPath(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrFileNotExist
	}
	if err == nil && info.IsDir() {
		return ErrDirectory
	}
	if filepath.Ext(path) != tomlExt {
		return ErrTomlExt
	}
	// other stat errors surface as a read error from the file storage
	return nil
}

// resolveExportPath expands raw and forces the .toml extension. A raw input
// ending in a separator, or one resolving to an existing directory, names
// no file.
func resolveExportPath(raw string) (string, error) {
	if utils.HasTrailingSeparator(raw) {
		return "", ErrNoFilename
	}

	path := utils.ExpandPath(raw)
	if isDir(path) {
		return "", ErrNoFilename
	}

	if !strings.HasSuffix(path, tomlExt) {
		path = withTomlExt(path)
	}
	if isDir(path) {
		return "", ErrDirectory
	}

	return path, nil
}

// withTomlExt replaces the extension of path with .toml. A dotfile name
// such as ".backup" has no extension and gets one appended.
func withTomlExt(path string) string {
	ext := filepath.Ext(path)
	if ext == filepath.Base(path) {
		ext = ""
	}
	return strings.TrimSuffix(path, ext) + tomlExt
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func clamp(i, n int) int {
	switch {
	case n == 0 || i < 0:
		return 0
	case i >= n:
		return n - 1
	default:
		return i
	}
}
