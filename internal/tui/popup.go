// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	popupWidth = 60
	cursor     = "|"
)

type popupModel struct {
	title string
	lines []string
}

func (m popupModel) View() string {
	content := titleStyle.Render(m.title) + "\n\n" + strings.Join(m.lines, "\n")
	return overlayBoxStyle.Width(popupWidth).Render(content)
}

func formPopup(editing bool, name, secret string, field Field) popupModel {
	title := "Add Entry"
	if editing {
		title = "Edit Entry"
	}

	nameLine, secretLine := name, secret
	if field == FieldName {
		nameLine += cursor
	} else {
		secretLine += cursor
	}

	return popupModel{
		title: title,
		lines: []string{
			"Name:", nameLine, "",
			"Secret:", secretLine, "",
			helpStyle.Render("tab: switch field  enter: next/save  esc: cancel"),
		},
	}
}

func pathPopup(mode Mode, path string) popupModel {
	title := "Import"
	if mode == ModeExporting {
		title = "Export"
	}

	return popupModel{
		title: title,
		lines: []string{
			"Path:", path + cursor, "",
			helpStyle.Render("enter: confirm  tab: browse  esc: cancel"),
		},
	}
}

func browserPopup(b *FileBrowser, pending Mode) popupModel {
	title := "Select file to import"
	if pending == ModeExporting {
		title = "Select file to export to"
	}

	visible, offset := b.Visible()
	lines := []string{helpStyle.Render(fitText(b.Dir(), popupWidth-6)), ""}
	for i, entry := range visible {
		prefix := "  "
		if entry.IsDir {
			prefix = "/ "
		}
		line := prefix + fitText(entry.Name, popupWidth-8)
		if offset+i == b.Selected() {
			line = browserSelectedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(visible) == 0 {
		lines = append(lines, "-")
	}

	hidden := "show"
	if b.ShowHidden() {
		hidden = "hide"
	}
	lines = append(lines, "", helpStyle.Render("enter: open/select  backspace: up  .: "+hidden+" hidden  esc: back"))

	return popupModel{title: title, lines: lines}
}

func placeCenter(width, height int, view string) string {
	if width <= 0 || height <= 0 {
		return view
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
}
