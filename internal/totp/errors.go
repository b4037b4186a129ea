// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package totp

import "errors"

var (
	// ErrInvalidKey is returned when a secret is empty or is not valid
	// RFC 4648 base32 after normalization.
	ErrInvalidKey = errors.New("invalid key")

	// ErrTotp is returned when the code itself cannot be computed from a
	// decoded key.
	ErrTotp = errors.New("failed to generate TOTP code")
)
