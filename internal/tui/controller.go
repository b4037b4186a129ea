// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-totp-keeper/internal/clipboard"
	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/internal/service"
	"github.com/MKhiriev/go-totp-keeper/internal/totp"
	"github.com/MKhiriev/go-totp-keeper/models"
)

// firstEntryRow is the screen row of the first entry, right below the top
// border of the vault box.
const firstEntryRow = 1

// Controller is the input state machine of the vault screen. It turns key
// and mouse events into vault operations and keeps the session state a
// renderer needs: the selection, the active mode with its buffers, and
// the latest notification.
//
// Every key in every mode has a defined effect, possibly none. Operation
// failures never escape: they become notifications.
//
// Copying an entry whose secret cannot produce a code copies nothing and
// raises the "Failed to generate TOTP code" notification instead of
// placing the "Invalid" placeholder on the clipboard.
type Controller struct {
	ctx        context.Context
	vault      service.VaultService
	copier     clipboard.Copier
	logger     *logger.Logger
	now        func() time.Time
	browserDir string

	selected     int
	state        state
	notification *Notification
	copiedAt     time.Time
	quit         bool
}

// ControllerOption customizes a [Controller].
type ControllerOption func(*Controller)

// WithClock replaces time.Now for notification timestamps and code
// generation.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// WithBrowserDir sets the directory the file browser opens in.
func WithBrowserDir(dir string) ControllerOption {
	return func(c *Controller) { c.browserDir = dir }
}

func NewController(ctx context.Context, vault service.VaultService, copier clipboard.Copier, log *logger.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		ctx:    ctx,
		vault:  vault,
		copier: copier,
		logger: log,
		now:    time.Now,
		state:  normalState{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Mode() Mode { return c.state.mode() }
func (c *Controller) Selected() int { return c.selected }
func (c *Controller) Quit() bool { return c.quit }
func (c *Controller) Entries() []models.Entry { return c.vault.Entries() }

// Form returns the add/edit buffers and the active field. ok is false
// outside Adding and Editing.
func (c *Controller) Form() (name, secret string, field Field, ok bool) {
	f, ok := c.state.(*entryForm)
	if !ok {
		return "", "", FieldName, false
	}
	return f.name, f.secret, f.field, true
}

// Path returns the path buffer of a pending import or export, including
// while the file browser is open on top of it.
func (c *Controller) Path() (string, bool) {
	switch s := c.state.(type) {
	case *pathPrompt:
		return s.path, true
	case *browsing:
		return s.prompt.path, true
	}
	return "", false
}

// Browser returns the open file browser and the mode it will return to.
func (c *Controller) Browser() (*FileBrowser, Mode, bool) {
	s, ok := c.state.(*browsing)
	if !ok {
		return nil, ModeNormal, false
	}
	return s.browser, s.prompt.mode(), true
}

// Notification returns the latest error notification, if any.
func (c *Controller) Notification() (Notification, bool) {
	if c.notification == nil {
		return Notification{}, false
	}
	return *c.notification, true
}

// CopiedAt returns the time of the last successful copy.
func (c *Controller) CopiedAt() (time.Time, bool) {
	return c.copiedAt, !c.copiedAt.IsZero()
}

// Title returns the vault box title at now: a visible error first, then a
// recent copy confirmation, otherwise the application name.
func (c *Controller) Title(now time.Time) string {
	if n, ok := c.Notification(); ok && n.Visible(now) {
		return n.Message
	}
	if at, ok := c.CopiedAt(); ok && (Notification{At: at}).Visible(now) {
		return copiedTitle
	}
	return defaultTitle
}

// NotifyError raises a notification for err. A nil err is ignored.
func (c *Controller) NotifyError(err error) {
	if err == nil {
		return
	}
	c.notification = &Notification{Message: notificationMessage(err), At: c.now()}
}

// Next selects the following entry, wrapping to the first.
func (c *Controller) Next() {
	if n := c.vault.Len(); n > 0 {
		c.selected = (c.selected + 1) % n
	}
}

// Prev selects the preceding entry, wrapping to the last.
func (c *Controller) Prev() {
	n := c.vault.Len()
	if n == 0 {
		return
	}
	if c.selected == 0 {
		c.selected = n - 1
	} else {
		c.selected--
	}
}

// HandleKey applies one key event. Ctrl+Q and Ctrl+C quit from any mode
// before anything else is considered.
func (c *Controller) HandleKey(msg tea.KeyMsg) {
	if key.Matches(msg, keys.forceQuit) {
		c.quit = true
		return
	}

	switch s := c.state.(type) {
	case normalState:
		c.handleNormal(msg)
	case *entryForm:
		c.handleForm(s, msg)
	case *pathPrompt:
		c.handlePrompt(s, msg)
	case *browsing:
		c.handleBrowser(s, msg)
	default:
		panic(fmt.Sprintf("tui: unknown controller state %T", s))
	}
}

// HandleMouse applies one mouse event in Normal mode: motion over an entry
// row selects it, any button press copies the selected code.
func (c *Controller) HandleMouse(msg tea.MouseMsg) {
	if c.Mode() != ModeNormal {
		return
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		row := msg.Y
		if row >= firstEntryRow && row < c.vault.Len()+firstEntryRow {
			c.selected = row - firstEntryRow
		}
	case msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel():
		c.copySelected()
	}
}

func (c *Controller) handleNormal(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.quit):
		c.quit = true
	case key.Matches(msg, keys.down):
		c.Next()
	case key.Matches(msg, keys.up):
		c.Prev()
	case key.Matches(msg, keys.add):
		c.state = &entryForm{}
	case key.Matches(msg, keys.edit):
		if entry, ok := c.vault.Entry(c.selected); ok {
			c.state = &entryForm{editing: true, name: entry.Name, secret: entry.Secret}
		}
	case key.Matches(msg, keys.delete):
		selected, err := c.vault.Delete(c.ctx, c.selected)
		c.selected = selected
		c.NotifyError(err)
	case key.Matches(msg, keys.deleteAll):
		err := c.vault.DeleteAll(c.ctx)
		c.selected = 0
		c.NotifyError(err)
	case key.Matches(msg, keys.importing):
		c.state = &pathPrompt{}
	case key.Matches(msg, keys.exporting):
		c.state = &pathPrompt{exporting: true}
	case key.Matches(msg, keys.copy):
		c.copySelected()
	}
}

func (c *Controller) handleForm(f *entryForm, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		f.toggleField()
	case key.Matches(msg, keys.enter):
		if f.field == FieldName {
			f.field = FieldSecret
			return
		}
		c.commitForm(f)
	case key.Matches(msg, keys.esc):
		c.state = normalState{}
	case key.Matches(msg, keys.backspace):
		popRune(f.buffer())
	default:
		*f.buffer() += printable(msg)
	}
}

// commitForm runs Add or Edit and leaves the form whatever the outcome.
func (c *Controller) commitForm(f *entryForm) {
	var err error
	if f.editing {
		err = c.vault.Edit(c.ctx, c.selected, f.name, f.secret)
	} else {
		err = c.vault.Add(c.ctx, f.name, f.secret)
	}

	c.state = normalState{}
	c.NotifyError(err)
}

func (c *Controller) handlePrompt(p *pathPrompt, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.enter):
		c.commitPrompt(p)
	case key.Matches(msg, keys.esc):
		c.state = normalState{}
	case key.Matches(msg, keys.backspace):
		popRune(&p.path)
	case key.Matches(msg, keys.tab):
		c.state = &browsing{prompt: p, browser: NewFileBrowser(c.browserDir)}
	default:
		p.path += printable(msg)
	}
}

// commitPrompt runs Import or Export and always returns to Normal.
func (c *Controller) commitPrompt(p *pathPrompt) {
	var err error
	if p.exporting {
		_, err = c.vault.Export(c.ctx, p.path)
	} else {
		_, err = c.vault.Import(c.ctx, p.path)
	}

	c.state = normalState{}
	c.NotifyError(err)
}

func (c *Controller) handleBrowser(s *browsing, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.esc):
		c.state = s.prompt
	case key.Matches(msg, keys.up):
		s.browser.MoveUp()
	case key.Matches(msg, keys.down):
		s.browser.MoveDown()
	case key.Matches(msg, keys.enter):
		if path, ok := s.browser.Enter(); ok {
			s.prompt.path = path
			c.state = s.prompt
		}
	case key.Matches(msg, keys.backspace):
		s.browser.Parent()
	case key.Matches(msg, keys.toggleHidden):
		s.browser.ToggleHidden()
	}
}

func (c *Controller) copySelected() {
	entry, ok := c.vault.Entry(c.selected)
	if !ok {
		return
	}

	code, _ := entry.CodeAt(c.now())
	if code == models.InvalidCode {
		c.NotifyError(totp.ErrTotp)
		return
	}

	if err := c.copier.Copy(c.ctx, code); err != nil {
		c.logger.Err(err).Msg("copy failed")
		c.NotifyError(fmt.Errorf("%w: %w", service.ErrClipboard, err))
		return
	}
	c.copiedAt = c.now()
}

// printable returns the text a key event types, dropping control
// characters. Named keys type nothing.
func printable(msg tea.KeyMsg) string {
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, string(msg.Runes))
}

func popRune(buf *string) {
	runes := []rune(*buf)
	if len(runes) == 0 {
		return
	}
	*buf = string(runes[:len(runes)-1])
}
