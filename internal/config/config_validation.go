// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] is usable before
// defaults are applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Clipboard.Timeout < 0 {
		return fmt.Errorf("%w: timeout %s is negative", ErrInvalidClipboardConfigs, cfg.Clipboard.Timeout)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.Clipboard.Timeout <= 0 {
		return ErrInvalidClipboardConfigs
	}

	return nil
}
