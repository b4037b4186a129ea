// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"cmp"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const browserMaxVisible = 11

// FileEntry is one row of the file browser listing.
type FileEntry struct {
	Name  string
	Path  string
	IsDir bool
}

// FileBrowser is a navigable directory listing used to pick an import or
// export path.
//
// The listing starts with ".." when the directory has a parent, followed by
// directories and then files, each group sorted case-insensitively. Dotfiles
// are hidden until toggled.
type FileBrowser struct {
	dir        string
	entries    []FileEntry
	selected   int
	scroll     int
	showHidden bool
}

// NewFileBrowser opens a browser in startDir when it is an existing
// directory, otherwise in the home directory, otherwise in ".".
func NewFileBrowser(startDir string) *FileBrowser {
	b := &FileBrowser{dir: browserStartDir(startDir)}
	b.refresh()
	return b
}

func browserStartDir(configured string) string {
	candidates := []string{configured}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, home)
	}
	candidates = append(candidates, ".")

	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(dir); err == nil {
				return abs
			}
			return dir
		}
	}
	return "."
}

func (b *FileBrowser) Dir() string { return b.dir }
func (b *FileBrowser) Entries() []FileEntry { return b.entries }
func (b *FileBrowser) Selected() int { return b.selected }
func (b *FileBrowser) ShowHidden() bool { return b.showHidden }

// Visible returns the window of entries that fits the browser popup and the
// index of its first element.
func (b *FileBrowser) Visible() ([]FileEntry, int) {
	end := min(b.scroll+browserMaxVisible, len(b.entries))
	return b.entries[b.scroll:end], b.scroll
}

// MoveUp selects the previous entry, wrapping to the last one.
func (b *FileBrowser) MoveUp() {
	if len(b.entries) == 0 {
		return
	}
	if b.selected > 0 {
		b.selected--
	} else {
		b.selected = len(b.entries) - 1
	}
	b.follow()
}

// MoveDown selects the next entry, wrapping to the first one.
func (b *FileBrowser) MoveDown() {
	if len(b.entries) == 0 {
		return
	}
	b.selected = (b.selected + 1) % len(b.entries)
	b.follow()
}

// Enter descends into the selected directory, or returns the selected file
// path with ok set.
func (b *FileBrowser) Enter() (path string, ok bool) {
	if len(b.entries) == 0 {
		return "", false
	}

	entry := b.entries[b.selected]
	if !entry.IsDir {
		return entry.Path, true
	}

	b.chdir(entry.Path)
	return "", false
}

// Parent moves to the parent directory. It is a no-op at the root.
func (b *FileBrowser) Parent() {
	parent := filepath.Dir(b.dir)
	if parent == b.dir {
		return
	}
	b.chdir(parent)
}

// ToggleHidden shows or hides dotfiles.
func (b *FileBrowser) ToggleHidden() {
	b.showHidden = !b.showHidden
	b.refresh()
}

func (b *FileBrowser) chdir(dir string) {
	b.dir = dir
	b.selected = 0
	b.scroll = 0
	b.refresh()
}

func (b *FileBrowser) follow() {
	switch {
	case b.selected < b.scroll:
		b.scroll = b.selected
	case b.selected >= b.scroll+browserMaxVisible:
		b.scroll = b.selected - browserMaxVisible + 1
	}
}

func (b *FileBrowser) refresh() {
	b.entries = nil

	if parent := filepath.Dir(b.dir); parent != b.dir {
		b.entries = append(b.entries, FileEntry{Name: "..", Path: parent, IsDir: true})
	}

	// an unreadable directory lists only ".."
	dirEntries, _ := os.ReadDir(b.dir)

	var dirs, files []FileEntry
	for _, de := range dirEntries {
		name := de.Name()
		if !b.showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		entry := FileEntry{Name: name, Path: filepath.Join(b.dir, name), IsDir: isDirEntry(b.dir, de)}
		if entry.IsDir {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	byName := func(x, y FileEntry) int {
		return cmp.Compare(strings.ToLower(x.Name), strings.ToLower(y.Name))
	}
	slices.SortFunc(dirs, byName)
	slices.SortFunc(files, byName)

	b.entries = append(b.entries, dirs...)
	b.entries = append(b.entries, files...)

	if b.selected >= len(b.entries) {
		b.selected = 0
		b.scroll = 0
	}
}

// isDirEntry follows symlinks so a link to a directory can be entered.
func isDirEntry(dir string, de fs.DirEntry) bool {
	if de.Type()&fs.ModeSymlink == 0 {
		return de.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, de.Name()))
	return err == nil && info.IsDir()
}
