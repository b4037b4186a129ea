// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package totp derives RFC 6238 time-based one-time passwords from base32
// secrets as users type them into the vault: lower case, grouped with
// spaces, with or without '=' padding.
package totp

import (
	"encoding/base32"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/pquerna/otp"
	pqtotp "github.com/pquerna/otp/totp"
)

const (
	// Period is the TOTP time step in seconds.
	Period = 30
	// Digits is the length of a generated code.
	Digits = 6
	// MinKeyLength is the decoded key length below which the key is
	// right-padded with zero bytes.
	MinKeyLength = 16

	padBlock = 8
	padChar  = "="
)

// Normalize strips all whitespace from secret, upper-cases it and right-pads
// it with '=' to a multiple of 8 characters. An empty secret stays empty.
//
// Normalize is idempotent.
func Normalize(secret string) string {
	secret = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, secret)
	if secret == "" {
		return ""
	}

	secret = strings.ToUpper(secret)
	if n := len(secret) % padBlock; n != 0 {
		secret += strings.Repeat(padChar, padBlock-n)
	}
	return secret
}

// DecodeKey normalizes secret and decodes it into the raw HMAC key. Keys
// shorter than [MinKeyLength] bytes are right-padded with zeros, because
// several TOTP implementations refuse short keys.
func DecodeKey(secret string) ([]byte, error) {
	normalized := Normalize(secret)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidKey)
	}

	key, err := base32.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base32 encoding: %w", ErrInvalidKey, err)
	}

	if len(key) < MinKeyLength {
		padded := make([]byte, MinKeyLength)
		copy(padded, key)
		key = padded
	}

	return key, nil
}

// Generate returns the code for the current time and the number of seconds
// until it expires, in the range [1, 30].
func Generate(secret string) (string, uint64, error) {
	return GenerateAt(secret, time.Now())
}

// GenerateAt is [Generate] evaluated at t.
func GenerateAt(secret string, t time.Time) (string, uint64, error) {
	key, err := DecodeKey(secret)
	if err != nil {
		return "", 0, err
	}

	unix := t.Unix()
	if unix < 0 {
		return "", 0, fmt.Errorf("%w: time before unix epoch", ErrTotp)
	}

	// The library decodes the secret again, so hand it the padded key.
	code, err := pqtotp.GenerateCodeCustom(base32.StdEncoding.EncodeToString(key), t, pqtotp.ValidateOpts{
		Period:    Period,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrTotp, err)
	}

	remaining := uint64(Period - unix%Period)
	return code, remaining, nil
}
