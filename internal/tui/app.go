// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-totp-keeper/models"
)

// RootModel wraps the vault screen:
// 1) ticks once per second so codes refresh
// 2) shows the size warning on small terminals
// 3) toggles the build info overlay with "v" in Normal mode
// 4) delegates everything else to the vault screen
type RootModel struct {
	main      mainLoopModel
	buildInfo models.AppBuildInfo
	checkSize bool

	width  int
	height int

	showBuildInfo bool
}

func NewRootModel(main mainLoopModel, buildInfo models.AppBuildInfo, checkSize bool) RootModel {
	return RootModel{main: main, buildInfo: buildInfo, checkSize: checkSize}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(tick(), r.main.Init())
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return r, tick()
	case tea.WindowSizeMsg:
		r.width, r.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if r.showBuildInfo && !isForceQuit(msg) {
			if msg.String() == "esc" || msg.String() == "v" {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if msg.String() == "v" && r.main.controller.Mode() == ModeNormal {
			r.showBuildInfo = true
			return r, nil
		}
	}

	updated, cmd := r.main.Update(msg)
	r.main = updated.(mainLoopModel)
	return r, cmd
}

func (r RootModel) View() string {
	if r.checkSize && tooSmall(r.width, r.height) {
		return renderSizeWarning(r.width, r.height)
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.main.View()
}

func isForceQuit(msg tea.KeyMsg) bool {
	s := msg.String()
	return s == "ctrl+q" || s == "ctrl+c"
}
