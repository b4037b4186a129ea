// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKey is returned when an existing key file does not contain
	// an age X25519 identity.
	ErrInvalidKey = errors.New("invalid key")

	// ErrKeyGeneration is returned when a fresh identity cannot be generated.
	ErrKeyGeneration = errors.New("failed to generate identity")

	// ErrEncryptor is returned when the encryption context cannot be built
	// or the envelope cannot be written.
	ErrEncryptor = errors.New("failed to create encryptor")

	// ErrDecrypt is returned for a wrong key or a corrupted or foreign
	// envelope.
	ErrDecrypt = errors.New("failed to decrypt")
)
