// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/internal/store"
)

type ClientServices struct {
	Vault VaultService
}

func NewClientServices(storages *store.ClientStorages, log *logger.Logger) *ClientServices {
	return &ClientServices{
		Vault: NewVaultService(storages, log.WithComponent("vault")),
	}
}
