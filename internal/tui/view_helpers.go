// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+q: quit"))

	return appStyle.Render(b.String())
}

// titledBox draws body inside a rounded border of the given outer width
// with title set into the top edge:
//
//	╭ Auth ──────╮
//	│ body       │
//	╰────────────╯
func titledBox(title, body string, width int, center bool) string {
	border := lipgloss.RoundedBorder()
	inner := max(width-2, 1)

	label := ""
	if title != "" {
		label = " " + fitText(title, max(inner-2, 0)) + " "
	}
	fill := max(inner-lipgloss.Width(label), 0)
	top := border.TopLeft + label + strings.Repeat(border.Top, fill) + border.TopRight

	align := lipgloss.Left
	if center {
		align = lipgloss.Center
	}
	box := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(accent).
		Width(inner).
		Align(align).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, borderStyle.Render(top), box)
}

// fitText truncates v to max runes, ending with "..." when cut.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
