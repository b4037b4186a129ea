// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/MKhiriev/go-totp-keeper/internal/clipboard"
	"github.com/MKhiriev/go-totp-keeper/internal/config"
	"github.com/MKhiriev/go-totp-keeper/internal/crypto"
	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/internal/service"
	"github.com/MKhiriev/go-totp-keeper/internal/store"
	"github.com/MKhiriev/go-totp-keeper/internal/tui"
	"github.com/MKhiriev/go-totp-keeper/models"
)

const authDirPerm = 0o700

var _ Client = (*App)(nil)

// host describes the process environment the startup checks look at.
type host struct {
	geteuid    func() int
	goos       string
	isTerminal func() bool
}

func currentHost() host {
	return host{
		geteuid:    os.Geteuid,
		goos:       runtime.GOOS,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// App is the client process: startup checks, wiring and the UI loop.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	host      host
}

// NewApp returns an [App] for cfg running on the current host.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
		host:      currentHost(),
	}
}

// Run performs the startup checks, prepares the auth directory and runs the
// terminal UI until the user quits or ctx is cancelled. Any error returned
// before the UI starts is a startup failure.
func (a *App) Run(ctx context.Context) error {
	if err := a.checkEnvironment(); err != nil {
		return err
	}

	ui, err := a.prepare(ctx)
	if err != nil {
		return err
	}

	a.logger.Info().Msg("starting ui")
	err = ui.Run(ctx, tui.Options{
		Mouse:      a.cfg.Mouse,
		CheckSize:  a.cfg.Checks.Size,
		BrowserDir: a.cfg.Browser.StartDir,
		BuildInfo:  a.buildInfo,
	})
	if stoppedByContext(ctx, err) {
		a.logger.Info().Err(ctx.Err()).Msg("ui stopped by signal")
		return nil
	}
	return err
}

// stoppedByContext reports whether err is the UI shutting down because ctx
// was cancelled.
func stoppedByContext(ctx context.Context, err error) bool {
	return errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil
}

func (a *App) checkEnvironment() error {
	if a.cfg.Checks.Root && a.host.geteuid() == 0 {
		return ErrRunningAsRoot
	}
	if a.cfg.Checks.Linux && a.host.goos != "linux" {
		return fmt.Errorf("%w: running on %s", ErrUnsupportedPlatform, a.host.goos)
	}
	if !a.host.isTerminal() {
		return ErrNotATerminal
	}
	return nil
}

// prepare creates the auth directory and identity and wires every layer
// below the UI.
func (a *App) prepare(ctx context.Context) (*tui.TUI, error) {
	log := logger.FromContext(ctx)
	dir := a.cfg.Storage.Dir

	if err := os.MkdirAll(dir, authDirPerm); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCreateDir, dir, err)
	}
	log.Debug().Str("dir", dir).Msg("auth directory ready")

	codec, err := crypto.LoadOrCreate(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoInit, err)
	}
	log.Debug().Str("recipient", codec.Recipient()).Msg("identity loaded")

	storages := store.NewClientStorages(a.cfg.Storage, codec, a.logger)
	services := service.NewClientServices(storages, a.logger)
	copier := clipboard.NewCopier(a.cfg.Clipboard.Timeout, a.logger)

	return tui.New(services, copier, a.logger), nil
}
