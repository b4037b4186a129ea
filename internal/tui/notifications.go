// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-totp-keeper/internal/clipboard"
	"github.com/MKhiriev/go-totp-keeper/internal/crypto"
	"github.com/MKhiriev/go-totp-keeper/internal/service"
	"github.com/MKhiriev/go-totp-keeper/internal/store"
	"github.com/MKhiriev/go-totp-keeper/internal/totp"
)

// NotificationTTL is how long a notification stays on screen.
const NotificationTTL = 3 * time.Second

const (
	defaultTitle = "Auth"
	copiedTitle  = "Copied!"
)

// Notification is a message raised by an operation together with the time
// it was raised. Expiry is decided by the renderer.
type Notification struct {
	Message string
	At      time.Time
}

// Visible reports whether n should still be shown at now.
func (n Notification) Visible(now time.Time) bool {
	return now.Sub(n.At) < NotificationTTL
}

// outer sentinels come first so a wrapped cause never hides the operation
// that failed
var notificationSentinels = []error{
	service.ErrSave,
	service.ErrClipboard,
	service.ErrEmptyEntry,
	service.ErrDirectory,
	service.ErrFileNotExist,
	service.ErrNoFilename,
	service.ErrEmptyExport,
	service.ErrTomlExt,
	store.ErrRead,
	store.ErrWrite,
	store.ErrDecrypt,
	store.ErrEncryptor,
	store.ErrUtf8,
	store.ErrParse,
	store.ErrSerialize,
	crypto.ErrInvalidKey,
	crypto.ErrDecrypt,
	crypto.ErrEncryptor,
	totp.ErrInvalidKey,
	totp.ErrTotp,
}

// notificationMessage maps err to the user-facing text of the first known
// sentinel it wraps.
func notificationMessage(err error) string {
	for _, sentinel := range notificationSentinels {
		if errors.Is(err, sentinel) {
			return capitalize(sentinel.Error())
		}
	}
	if errors.Is(err, clipboard.ErrTimeout) || errors.Is(err, clipboard.ErrUnsupported) {
		return capitalize(service.ErrClipboard.Error())
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
