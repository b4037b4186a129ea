// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/MKhiriev/go-totp-keeper/internal/totp"
)

// InvalidCode is displayed in place of a TOTP code when the entry secret
// cannot produce one.
const InvalidCode = "Invalid"

// Entry is a single named TOTP credential.
//
// Name is a free-text display label and is not required to be unique.
// Secret is the base32 shared secret as typed by the user; case and
// whitespace are normalized only when a code is generated.
type Entry struct {
	Name   string `toml:"name"`
	Secret string `toml:"secret"`
}

// Entries is the root of the TOML document stored in the vault file and in
// plaintext import/export files:
//
//	[[entries]]
//	name = "GitHub"
//	secret = "JBSWY3DPEHPK3PXP"
type Entries struct {
	Entries []Entry `toml:"entries"`
}

// IsEmpty reports whether either field of the entry is empty.
func (e Entry) IsEmpty() bool {
	return e.Name == "" || e.Secret == ""
}

// Code returns the current TOTP code for the entry and the number of seconds
// it stays valid.
//
// Code never fails: a secret that cannot be decoded or any generation error
// yields ([InvalidCode], 0), so a broken entry can always be displayed.
func (e Entry) Code() (string, uint64) {
	return e.CodeAt(time.Now())
}

// CodeAt is [Entry.Code] evaluated at t.
func (e Entry) CodeAt(t time.Time) (string, uint64) {
	code, remaining, err := totp.GenerateAt(e.Secret, t)
	if err != nil {
		return InvalidCode, 0
	}
	return code, remaining
}
