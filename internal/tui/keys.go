// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	forceQuit key.Binding
	quit      key.Binding
	up        key.Binding
	down      key.Binding
	add       key.Binding
	edit      key.Binding
	delete    key.Binding
	deleteAll key.Binding
	importing key.Binding
	exporting key.Binding
	copy      key.Binding
	version   key.Binding

	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	backspace key.Binding

	toggleHidden key.Binding
}

var keys = keyMap{
	forceQuit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c")),
	quit:      key.NewBinding(key.WithKeys("q")),
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	add:       key.NewBinding(key.WithKeys("a")),
	edit:      key.NewBinding(key.WithKeys("E")),
	delete:    key.NewBinding(key.WithKeys("d")),
	deleteAll: key.NewBinding(key.WithKeys("D")),
	importing: key.NewBinding(key.WithKeys("i")),
	exporting: key.NewBinding(key.WithKeys("e")),
	copy:      key.NewBinding(key.WithKeys("enter")),
	version:   key.NewBinding(key.WithKeys("v")),

	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	backspace: key.NewBinding(key.WithKeys("backspace")),

	toggleHidden: key.NewBinding(key.WithKeys(".")),
}

const helpText = "a add  E edit  d del  D del all  i import  e export  ↑/k up  ↓/j down  enter copy  v version  q quit  tab cycle fields/browse"
