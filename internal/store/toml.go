// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/MKhiriev/go-totp-keeper/models"
)

// MarshalEntries encodes entries as the TOML entries document shared by the
// vault file and import/export files.
func MarshalEntries(entries []models.Entry) ([]byte, error) {
	if entries == nil {
		entries = []models.Entry{}
	}

	data, err := toml.Marshal(models.Entries{Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return data, nil
}

// UnmarshalEntries decodes a TOML entries document. Empty input is an empty
// list. A document without the "entries" key, or with an entry missing its
// name or secret, fails with [ErrParse] as a whole.
func UnmarshalEntries(data []byte) ([]models.Entry, error) {
	if len(data) == 0 {
		return []models.Entry{}, nil
	}

	var doc models.Entries
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if !md.IsDefined("entries") {
		return nil, fmt.Errorf("%w: missing entries key", ErrParse)
	}

	for i, entry := range doc.Entries {
		if entry.IsEmpty() {
			return nil, fmt.Errorf("%w: entry %d needs a name and a secret", ErrParse, i)
		}
	}
	return doc.Entries, nil
}
