// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// Mode is the input mode of the controller.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdding
	ModeEditing
	ModeImporting
	ModeExporting
	ModeFileBrowser
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdding:
		return "adding"
	case ModeEditing:
		return "editing"
	case ModeImporting:
		return "importing"
	case ModeExporting:
		return "exporting"
	case ModeFileBrowser:
		return "file browser"
	default:
		return "unknown"
	}
}

// Field is the active field of the add/edit form.
type Field int

const (
	FieldName Field = iota
	FieldSecret
)

// state carries the data of exactly one mode. Buffers exist only while
// their mode is active, so leaving a mode discards them.
type state interface {
	mode() Mode
}

type normalState struct{}

func (normalState) mode() Mode { return ModeNormal }

// entryForm backs both Adding and Editing.
type entryForm struct {
	editing bool
	name    string
	secret  string
	field   Field
}

func (f *entryForm) mode() Mode {
	if f.editing {
		return ModeEditing
	}
	return ModeAdding
}

// buffer returns the buffer of the active field.
func (f *entryForm) buffer() *string {
	if f.field == FieldSecret {
		return &f.secret
	}
	return &f.name
}

func (f *entryForm) toggleField() {
	if f.field == FieldName {
		f.field = FieldSecret
	} else {
		f.field = FieldName
	}
}

// pathPrompt backs both Importing and Exporting.
type pathPrompt struct {
	exporting bool
	path      string
}

func (p *pathPrompt) mode() Mode {
	if p.exporting {
		return ModeExporting
	}
	return ModeImporting
}

// browsing is the file browser opened on top of a pending path prompt.
type browsing struct {
	prompt  *pathPrompt
	browser *FileBrowser
}

func (*browsing) mode() Mode { return ModeFileBrowser }
