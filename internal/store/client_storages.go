// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-totp-keeper/internal/config"
	"github.com/MKhiriev/go-totp-keeper/internal/crypto"
	"github.com/MKhiriev/go-totp-keeper/internal/logger"
)

// ClientStorages groups the storages used by the vault service into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Vault is the encrypted vault file in the auth directory.
	Vault VaultStorage

	// Files reads and writes plaintext import/export files.
	Files EntriesFileStorage
}

// NewClientStorages wires the storages for the auth directory in cfg. The
// directory and the codec must already exist; creating them is part of
// startup and fails the process when it cannot be done.
func NewClientStorages(cfg config.ClientStorage, codec crypto.SecretCodec, log *logger.Logger) *ClientStorages {
	log.Info().Str("dir", cfg.Dir).Msg("creating storages...")

	return &ClientStorages{
		Vault: NewVaultFileStorage(cfg.Dir, codec, log),
		Files: NewEntriesFileStorage(log),
	}
}
