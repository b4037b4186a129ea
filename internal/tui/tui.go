// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front end of the vault.
//
// [Controller] is the input state machine (Normal, Adding, Editing,
// Importing, Exporting and the file browser); the bubbletea models in this
// package only feed it events and draw its state.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-totp-keeper/internal/clipboard"
	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/internal/service"
	"github.com/MKhiriev/go-totp-keeper/models"
)

// Options controls the terminal session.
type Options struct {
	// Mouse enables hover selection and click-to-copy.
	Mouse bool
	// CheckSize shows a warning instead of the vault on small terminals.
	CheckSize bool
	// BrowserDir is where the file browser opens.
	BrowserDir string
	BuildInfo  models.AppBuildInfo
}

type TUI struct {
	services *service.ClientServices
	copier   clipboard.Copier
	logger   *logger.Logger
}

func New(services *service.ClientServices, copier clipboard.Copier, log *logger.Logger) *TUI {
	return &TUI{services: services, copier: copier, logger: log}
}

// Run loads the vault and runs the interactive loop until the user quits
// or ctx is cancelled. A failed load is shown as a notification on an
// empty vault.
func (t *TUI) Run(ctx context.Context, opts Options) error {
	controller := NewController(ctx, t.services.Vault, t.copier, t.logger, WithBrowserDir(opts.BrowserDir))
	controller.NotifyError(t.services.Vault.Load(ctx))

	root := NewRootModel(newMainLoopModel(controller, time.Now), opts.BuildInfo, opts.CheckSize)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	finalModel, err := tea.NewProgram(root, programOpts...).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(RootModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
