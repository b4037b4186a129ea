// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"filippo.io/age"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreate_CreatesKeyFile(t *testing.T) {
	dir := t.TempDir()

	codec, err := LoadOrCreate(dir)
	require.NoError(t, err)
	require.NotNil(t, codec)

	keyPath := filepath.Join(dir, KeyFileName)
	info, err := os.Stat(keyPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := os.ReadFile(keyPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "AGE-SECRET-KEY-1"))
	assert.True(t, strings.HasPrefix(codec.Recipient(), "age1"))
}

func TestLoadOrCreate_ReusesExistingIdentity(t *testing.T) {
	dir := t.TempDir()

	first, err := LoadOrCreate(dir)
	require.NoError(t, err)
	ciphertext, err := first.Encrypt([]byte("entries"))
	require.NoError(t, err)

	second, err := LoadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, first.Recipient(), second.Recipient())

	plaintext, err := second.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("entries"), plaintext)
}

func TestLoadOrCreate_AcceptsAgeKeygenFormat(t *testing.T) {
	dir := t.TempDir()
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	content := "# created: 2026-01-01T00:00:00Z\n# public key: " + identity.Recipient().String() + "\n" + identity.String() + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyFileName), []byte(content), 0o600))

	codec, err := LoadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, identity.Recipient().String(), codec.Recipient())
}

func TestLoadOrCreate_MalformedKeyFile(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, KeyFileName)
	require.NoError(t, os.WriteFile(keyPath, []byte("not a key"), 0o600))

	codec, err := LoadOrCreate(dir)
	assert.Nil(t, codec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKey)

	// the malformed file is never replaced
	raw, err := os.ReadFile(keyPath)
	require.NoError(t, err)
	assert.Equal(t, "not a key", string(raw))
}

func TestLoadOrCreate_MissingDirectory(t *testing.T) {
	codec, err := LoadOrCreate(filepath.Join(t.TempDir(), "does", "not", "exist"))
	assert.Nil(t, codec)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidKey)
}

func TestAgeCodec_RoundTrip(t *testing.T) {
	codec, err := LoadOrCreate(t.TempDir())
	require.NoError(t, err)

	payloads := map[string][]byte{
		"empty":    {},
		"text":     []byte("entries = []\n"),
		"non-utf8": {0xff, 0xfe, 0x00, 0x80, 0xc3},
		"large":    []byte(strings.Repeat("x", 200_000)),
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			ciphertext, err := codec.Encrypt(payload)
			require.NoError(t, err)
			assert.NotEqual(t, payload, ciphertext)

			plaintext, err := codec.Decrypt(ciphertext)
			require.NoError(t, err)
			assert.Equal(t, payload, plaintext)
		})
	}
}

func TestAgeCodec_DecryptWithForeignIdentity(t *testing.T) {
	owner, err := LoadOrCreate(t.TempDir())
	require.NoError(t, err)
	stranger, err := LoadOrCreate(t.TempDir())
	require.NoError(t, err)

	ciphertext, err := owner.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = stranger.Decrypt(ciphertext)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestAgeCodec_DecryptCorrupted(t *testing.T) {
	codec, err := LoadOrCreate(t.TempDir())
	require.NoError(t, err)

	ciphertext, err := codec.Encrypt([]byte("secret"))
	require.NoError(t, err)

	tampered := append([]byte(nil), ciphertext...)
	tampered[len(tampered)-1] ^= 0xff

	for name, blob := range map[string][]byte{
		"garbage":   []byte("definitely not age"),
		"empty":     nil,
		"truncated": ciphertext[:len(ciphertext)/2],
		"tampered":  tampered,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decrypt(blob)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecrypt)
		})
	}
}

func TestNewCodec(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	require.NoError(t, err)

	codec := NewCodec(identity)
	assert.Equal(t, identity.Recipient().String(), codec.Recipient())
}
