// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var accent = lipgloss.Color("#CB9994")

var (
	appStyle             = lipgloss.NewStyle().Padding(1, 2)
	titleStyle           = lipgloss.NewStyle().Bold(true)
	helpStyle            = lipgloss.NewStyle().Faint(true)
	borderStyle          = lipgloss.NewStyle().Foreground(accent)
	selectedStyle        = lipgloss.NewStyle().Foreground(accent)
	browserSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warningStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	overlayBoxStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2)
)
