// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_codec_mock.go -package=mock

// SecretCodec encrypts and decrypts opaque byte blobs with the long-lived
// identity of this installation.
//
// Both operations are pure transforms: on failure nothing is written
// anywhere and the input buffer is left untouched.
type SecretCodec interface {
	// Encrypt wraps plaintext into a self-describing age envelope addressed
	// to the public half of the identity. Any byte sequence is accepted,
	// including an empty one.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens an envelope produced by Encrypt. A foreign, truncated or
	// tampered envelope fails with [ErrDecrypt].
	Decrypt(ciphertext []byte) ([]byte, error)

	// Recipient returns the public key (age1...) the codec encrypts to.
	// It is safe to log.
	Recipient() string
}
