// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto owns the installation identity and the envelope format of
// the vault file.
//
// The identity is an age X25519 key pair. Its private half is stored
// UNENCRYPTED in <dir>/key and is the only way to open the vault: losing or
// overwriting that file makes every entry permanently unrecoverable. Back it
// up together with the vault, and keep the backup somewhere else.
package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"filippo.io/age"
)

// KeyFileName is the name of the identity file inside the auth directory.
const KeyFileName = "key"

const keyFilePerm = 0o600

// ageCodec is the age-backed implementation of [SecretCodec].
type ageCodec struct {
	identity  *age.X25519Identity
	recipient *age.X25519Recipient
}

// LoadOrCreate returns a [SecretCodec] for the identity stored in
// dir/key. When the file does not exist a new identity is generated and its
// private representation is written there verbatim with 0600 permissions.
// This is the only place an identity is ever created.
//
// An existing but malformed key file fails with [ErrInvalidKey]; it is never
// replaced.
func LoadOrCreate(dir string) (SecretCodec, error) {
	keyPath := filepath.Join(dir, KeyFileName)

	raw, err := os.ReadFile(keyPath)
	switch {
	case err == nil:
		identity, err := parseIdentity(raw)
		if err != nil {
			return nil, err
		}
		return newAgeCodec(identity), nil
	case errors.Is(err, fs.ErrNotExist):
		return create(keyPath)
	default:
		return nil, fmt.Errorf("read key file: %w", err)
	}
}

// NewCodec wraps an already parsed identity.
func NewCodec(identity *age.X25519Identity) SecretCodec {
	return newAgeCodec(identity)
}

func newAgeCodec(identity *age.X25519Identity) *ageCodec {
	return &ageCodec{
		identity:  identity,
		recipient: identity.Recipient(),
	}
}

func create(keyPath string) (*ageCodec, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	// O_EXCL: never clobber a key that appeared since the read above.
	f, err := os.OpenFile(keyPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, keyFilePerm)
	if err != nil {
		return nil, fmt.Errorf("create key file: %w", err)
	}
	if _, err = f.WriteString(identity.String()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("write key file: %w", err)
	}
	if err = f.Close(); err != nil {
		return nil, fmt.Errorf("close key file: %w", err)
	}

	return newAgeCodec(identity), nil
}

// parseIdentity accepts both the bare AGE-SECRET-KEY-1... string written by
// LoadOrCreate and the commented format produced by age-keygen.
func parseIdentity(raw []byte) (*age.X25519Identity, error) {
	identities, err := age.ParseIdentities(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	for _, id := range identities {
		if x, ok := id.(*age.X25519Identity); ok {
			return x, nil
		}
	}
	return nil, fmt.Errorf("%w: no X25519 identity in key file", ErrInvalidKey)
}

// Encrypt implements [SecretCodec].
func (c *ageCodec) Encrypt(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := age.Encrypt(&buf, c.recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncryptor, err)
	}
	if _, err = w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("%w: write plaintext: %w", ErrEncryptor, err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize envelope: %w", ErrEncryptor, err)
	}

	return buf.Bytes(), nil
}

// Decrypt implements [SecretCodec].
func (c *ageCodec) Decrypt(ciphertext []byte) ([]byte, error) {
	r, err := age.Decrypt(bytes.NewReader(ciphertext), c.identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read payload: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}

// Recipient implements [SecretCodec].
func (c *ageCodec) Recipient() string {
	return c.recipient.String()
}
