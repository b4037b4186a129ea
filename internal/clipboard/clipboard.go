// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard copies TOTP codes to the system clipboard without
// blocking the event loop for longer than a configured timeout.
//
// The system clipboard is reached through github.com/atotto/clipboard, which
// shells out to wl-copy when WAYLAND_DISPLAY is set and to xclip or xsel
// otherwise.
package clipboard

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-totp-keeper/internal/logger"
)

// WriteFunc writes text to a clipboard.
type WriteFunc func(text string) error

type asyncCopier struct {
	write   WriteFunc
	timeout time.Duration
	logger  *logger.Logger
}

// NewCopier returns a [Copier] backed by the system clipboard. A timeout
// of zero waits for every copy to finish.
func NewCopier(timeout time.Duration, log *logger.Logger) Copier {
	return NewCopierWithWriter(systemWrite, timeout, log)
}

// NewCopierWithWriter returns a [Copier] that runs write in a background
// goroutine per copy.
func NewCopierWithWriter(write WriteFunc, timeout time.Duration, log *logger.Logger) Copier {
	return &asyncCopier{write: write, timeout: timeout, logger: log.WithComponent("clipboard")}
}

func (c *asyncCopier) Copy(ctx context.Context, text string) error {
	// buffered so a late worker never blocks after the caller gave up
	done := make(chan error, 1)
	go func() {
		done <- c.write(text)
	}()

	var expired <-chan time.Time
	if c.timeout > 0 {
		timer := time.NewTimer(c.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err := <-done:
		if err != nil {
			c.logger.Err(err).Msg("clipboard write failed")
			return fmt.Errorf("write clipboard: %w", err)
		}
		return nil
	case <-expired:
		c.logger.Warn().Dur("timeout", c.timeout).Msg("clipboard write did not finish in time")
		return ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

func systemWrite(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
