// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-totp-keeper/models"
)

const (
	defaultWidth  = 110
	defaultHeight = 31
	helpBoxHeight = 3
	nameColumn    = 30
)

// mainLoopModel is the vault screen. Input goes to the controller; the
// model only draws its state.
type mainLoopModel struct {
	controller *Controller
	now        func() time.Time
	width      int
	height     int
}

func newMainLoopModel(controller *Controller, now func() time.Time) mainLoopModel {
	return mainLoopModel{controller: controller, now: now}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		m.controller.HandleKey(msg)
	case tea.MouseMsg:
		m.controller.HandleMouse(msg)
	}

	if m.controller.Quit() {
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	width, height := m.size()

	c := m.controller
	switch c.Mode() {
	case ModeAdding, ModeEditing:
		name, secret, field, _ := c.Form()
		return placeCenter(width, height, formPopup(c.Mode() == ModeEditing, name, secret, field).View())
	case ModeImporting, ModeExporting:
		path, _ := c.Path()
		return placeCenter(width, height, pathPopup(c.Mode(), path).View())
	case ModeFileBrowser:
		browser, pending, _ := c.Browser()
		return placeCenter(width, height, browserPopup(browser, pending).View())
	}

	now := m.now()
	list := m.renderEntries(c.Entries(), c.Selected(), now, height-helpBoxHeight-2)
	main := titledBox(c.Title(now), list, width, false)
	help := titledBox("Bindings", helpStyle.Render(fitText(helpText, width-4)), width, true)

	return main + "\n" + help
}

// renderEntries draws one line per entry and pads the list to rows lines
// so the help box stays at the bottom.
func (m mainLoopModel) renderEntries(entries []models.Entry, selected int, now time.Time, rows int) string {
	lines := make([]string, 0, max(rows, len(entries)))
	for i, entry := range entries {
		code, remaining := entry.CodeAt(now)
		line := fmt.Sprintf("%-*s %6s (%2ds)", nameColumn, fitText(entry.Name, nameColumn), code, remaining)
		if i == selected {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m mainLoopModel) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}
