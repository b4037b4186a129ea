// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-totp-keeper/internal/crypto"
	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/internal/mock"
	"github.com/MKhiriev/go-totp-keeper/internal/store"
	"github.com/MKhiriev/go-totp-keeper/models"
)

var (
	github = models.Entry{Name: "GitHub", Secret: "JBSWY3DPEHPK3PXP"}
	gitlab = models.Entry{Name: "GitLab", Secret: "GEZDGNBVGY3TQOJQ"}
	aws    = models.Entry{Name: "AWS", Secret: "MFRGGZDFMZTWQ2LK"}
)

// newMockedVault returns a vault backed by mocked storages. The vault file
// mock accepts Path calls freely.
func newMockedVault(t *testing.T, ctrl *gomock.Controller) (VaultService, *mock.MockVaultStorage, *mock.MockEntriesFileStorage) {
	t.Helper()
	vaultMock := mock.NewMockVaultStorage(ctrl)
	filesMock := mock.NewMockEntriesFileStorage(ctrl)
	vaultMock.EXPECT().Path().Return("/vault/entries.toml").AnyTimes()

	svc := NewVaultService(&store.ClientStorages{Vault: vaultMock, Files: filesMock}, logger.Nop())
	return svc, vaultMock, filesMock
}

// seeded loads entries into a mocked vault.
func seeded(t *testing.T, ctrl *gomock.Controller, entries ...models.Entry) (VaultService, *mock.MockVaultStorage, *mock.MockEntriesFileStorage) {
	t.Helper()
	svc, vaultMock, filesMock := newMockedVault(t, ctrl)
	vaultMock.EXPECT().Load(gomock.Any()).Return(append([]models.Entry(nil), entries...), nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc, vaultMock, filesMock
}

// newFileVault returns a vault backed by real files in a temporary auth
// directory.
func newFileVault(t *testing.T, dir string) VaultService {
	t.Helper()
	codec, err := crypto.LoadOrCreate(dir)
	require.NoError(t, err)

	storages := &store.ClientStorages{
		Vault: store.NewVaultFileStorage(dir, codec, logger.Nop()),
		Files: store.NewEntriesFileStorage(logger.Nop()),
	}
	svc := NewVaultService(storages, logger.Nop())
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestVaultService_Load_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := seeded(t, ctrl, github, gitlab)

	assert.Equal(t, []models.Entry{github, gitlab}, svc.Entries())
	assert.Equal(t, 2, svc.Len())
}

func TestVaultService_Load_NilIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, vaultMock, _ := newMockedVault(t, ctrl)
	vaultMock.EXPECT().Load(gomock.Any()).Return(nil, nil)

	require.NoError(t, svc.Load(context.Background()))
	assert.NotNil(t, svc.Entries())
	assert.Zero(t, svc.Len())
}

func TestVaultService_Load_ErrorKeepsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, vaultMock, _ := seeded(t, ctrl, github)
	vaultMock.EXPECT().Load(gomock.Any()).Return(nil, store.ErrDecrypt)

	err := svc.Load(context.Background())
	require.ErrorIs(t, err, store.ErrDecrypt)
	assert.Equal(t, []models.Entry{github}, svc.Entries())
}

func TestVaultService_Entries_ReturnsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := seeded(t, ctrl, github)

	got := svc.Entries()
	got[0].Name = "changed"

	entry, ok := svc.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "GitHub", entry.Name)
}

func TestVaultService_Entry_OutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := seeded(t, ctrl, github)

	_, ok := svc.Entry(-1)
	assert.False(t, ok)
	_, ok = svc.Entry(1)
	assert.False(t, ok)
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestVaultService_Add_AppendsAndSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, vaultMock, _ := seeded(t, ctrl, github)
	vaultMock.EXPECT().Save(gomock.Any(), []models.Entry{github, gitlab}).Return(nil)

	require.NoError(t, svc.Add(context.Background(), gitlab.Name, gitlab.Secret))
	assert.Equal(t, []models.Entry{github, gitlab}, svc.Entries())
}

func TestVaultService_Add_EmptyFieldsRejected(t *testing.T) {
	tests := []struct {
		name   string
		entry  string
		secret string
	}{
		{name: "empty name", entry: "", secret: "x"},
		{name: "empty secret", entry: "x", secret: ""},
		{name: "both empty", entry: "", secret: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := seeded(t, ctrl, github)

			err := svc.Add(context.Background(), tt.entry, tt.secret)
			require.ErrorIs(t, err, ErrEmptyEntry)
			assert.Equal(t, 1, svc.Len())
		})
	}
}

func TestVaultService_Add_SaveErrorKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, vaultMock, _ := newMockedVault(t, ctrl)
	vaultMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrWrite)

	err := svc.Add(context.Background(), github.Name, github.Secret)
	require.ErrorIs(t, err, ErrSave)
	require.ErrorIs(t, err, store.ErrWrite)
	assert.Equal(t, []models.Entry{github}, svc.Entries())
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestVaultService_Delete_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newMockedVault(t, ctrl)

	selected, err := svc.Delete(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, selected)
}

func TestVaultService_Delete_ClampsSelection(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		want     []models.Entry
		wantSel  int
	}{
		{name: "first", selected: 0, want: []models.Entry{gitlab, aws}, wantSel: 0},
		{name: "middle", selected: 1, want: []models.Entry{github, aws}, wantSel: 1},
		{name: "last", selected: 2, want: []models.Entry{github, gitlab}, wantSel: 1},
		{name: "beyond end", selected: 7, want: []models.Entry{github, gitlab}, wantSel: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, vaultMock, _ := seeded(t, ctrl, github, gitlab, aws)
			vaultMock.EXPECT().Save(gomock.Any(), tt.want).Return(nil)

			selected, err := svc.Delete(context.Background(), tt.selected)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSel, selected)
			assert.Equal(t, tt.want, svc.Entries())
		})
	}
}

func TestVaultService_Delete_LastEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, vaultMock, _ := seeded(t, ctrl, github)
	vaultMock.EXPECT().Save(gomock.Any(), []models.Entry{}).Return(nil)

	selected, err := svc.Delete(context.Background(), 0)
	require.NoError(t, err)
	assert.Zero(t, selected)
	assert.Zero(t, svc.Len())
}

func TestVaultService_Delete_SaveErrorKeepsDeletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, vaultMock, _ := seeded(t, ctrl, github, gitlab)
	vaultMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrEncryptor)

	selected, err := svc.Delete(context.Background(), 1)
	require.ErrorIs(t, err, ErrSave)
	assert.Equal(t, 0, selected)
	assert.Equal(t, []models.Entry{github}, svc.Entries())
}

// ── DeleteAll ────────────────────────────────────────────────────────────────

func TestVaultService_DeleteAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, vaultMock, _ := seeded(t, ctrl, github, gitlab)
	vaultMock.EXPECT().Save(gomock.Any(), []models.Entry{}).Return(nil)

	require.NoError(t, svc.DeleteAll(context.Background()))
	assert.Zero(t, svc.Len())
}

func TestVaultService_DeleteAll_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newMockedVault(t, ctrl)

	require.NoError(t, svc.DeleteAll(context.Background()))
}

// ── Edit ─────────────────────────────────────────────────────────────────────

func TestVaultService_Edit_ReplacesSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, vaultMock, _ := seeded(t, ctrl, github, gitlab)
	renamed := models.Entry{Name: "Work GitLab", Secret: gitlab.Secret}
	vaultMock.EXPECT().Save(gomock.Any(), []models.Entry{github, renamed}).Return(nil)

	require.NoError(t, svc.Edit(context.Background(), 1, renamed.Name, renamed.Secret))
	assert.Equal(t, []models.Entry{github, renamed}, svc.Entries())
}

func TestVaultService_Edit_EmptyVaultIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newMockedVault(t, ctrl)

	require.NoError(t, svc.Edit(context.Background(), 0, "a", "b"))
	assert.Zero(t, svc.Len())
}

func TestVaultService_Edit_EmptyFieldsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := seeded(t, ctrl, github)

	require.ErrorIs(t, svc.Edit(context.Background(), 0, "", "x"), ErrEmptyEntry)
	require.ErrorIs(t, svc.Edit(context.Background(), 0, "x", ""), ErrEmptyEntry)
	assert.Equal(t, []models.Entry{github}, svc.Entries())
}

// ── Import ───────────────────────────────────────────────────────────────────

func TestVaultService_Import_EmptyPathIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newMockedVault(t, ctrl)

	n, err := svc.Import(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestVaultService_Import_PathValidation(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "entries.txt")
	require.NoError(t, os.WriteFile(txt, []byte(""), 0o600))
	tomlDir := filepath.Join(dir, "dir.toml")
	require.NoError(t, os.Mkdir(tomlDir, 0o700))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing", path: filepath.Join(dir, "missing.toml"), wantErr: ErrFileNotExist},
		{name: "directory", path: dir, wantErr: ErrDirectory},
		{name: "directory with toml name", path: tomlDir, wantErr: ErrDirectory},
		{name: "wrong extension", path: txt, wantErr: ErrTomlExt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := seeded(t, ctrl, github)

			n, err := svc.Import(context.Background(), tt.path)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, n)
			assert.Equal(t, []models.Entry{github}, svc.Entries())
		})
	}
}

func TestVaultService_Import_AppendsWithoutDeduplication(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	ctrl := gomock.NewController(t)
	svc, vaultMock, filesMock := seeded(t, ctrl, github)
	filesMock.EXPECT().ReadEntries(gomock.Any(), path).Return([]models.Entry{github, gitlab}, nil)
	vaultMock.EXPECT().Save(gomock.Any(), []models.Entry{github, github, gitlab}).Return(nil)

	n, err := svc.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []models.Entry{github, github, gitlab}, svc.Entries())
}

func TestVaultService_Import_ParseErrorStillSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	ctrl := gomock.NewController(t)
	svc, vaultMock, filesMock := seeded(t, ctrl, github)
	filesMock.EXPECT().ReadEntries(gomock.Any(), path).Return(nil, store.ErrParse)
	vaultMock.EXPECT().Save(gomock.Any(), []models.Entry{github}).Return(nil)

	n, err := svc.Import(context.Background(), path)
	require.ErrorIs(t, err, store.ErrParse)
	assert.Zero(t, n)
	assert.Equal(t, []models.Entry{github}, svc.Entries())
}

func TestVaultService_Import_SaveErrorWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	ctrl := gomock.NewController(t)
	svc, vaultMock, filesMock := seeded(t, ctrl)
	filesMock.EXPECT().ReadEntries(gomock.Any(), path).Return(nil, store.ErrRead)
	vaultMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrWrite)

	_, err := svc.Import(context.Background(), path)
	require.ErrorIs(t, err, ErrSave)
	assert.False(t, errors.Is(err, store.ErrRead))
}

func TestVaultService_Import_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "in.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	ctrl := gomock.NewController(t)
	svc, vaultMock, filesMock := newMockedVault(t, ctrl)
	filesMock.EXPECT().ReadEntries(gomock.Any(), path).Return([]models.Entry{aws}, nil)
	vaultMock.EXPECT().Save(gomock.Any(), []models.Entry{aws}).Return(nil)

	n, err := svc.Import(context.Background(), "~/in.toml")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ── Export ───────────────────────────────────────────────────────────────────

func TestVaultService_Export_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := seeded(t, ctrl, github)
		_, err := svc.Export(context.Background(), "")
		require.ErrorIs(t, err, ErrNoFilename)
	})

	t.Run("empty vault", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newMockedVault(t, ctrl)
		_, err := svc.Export(context.Background(), filepath.Join(dir, "out"))
		require.ErrorIs(t, err, ErrEmptyExport)
	})

	t.Run("existing directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := seeded(t, ctrl, github)
		_, err := svc.Export(context.Background(), dir)
		require.ErrorIs(t, err, ErrNoFilename)
	})

	t.Run("trailing slash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := seeded(t, ctrl, github)
		_, err := svc.Export(context.Background(), filepath.Join(dir, "nope")+"/")
		require.ErrorIs(t, err, ErrNoFilename)
	})

	t.Run("trailing backslash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := seeded(t, ctrl, github)
		_, err := svc.Export(context.Background(), `out\`)
		require.ErrorIs(t, err, ErrNoFilename)
	})

	t.Run("toml target is a directory", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(dir, "taken.toml"), 0o700))
		ctrl := gomock.NewController(t)
		svc, _, _ := seeded(t, ctrl, github)
		_, err := svc.Export(context.Background(), filepath.Join(dir, "taken"))
		require.ErrorIs(t, err, ErrDirectory)
	})

	t.Run("write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, filesMock := seeded(t, ctrl, github)
		filesMock.EXPECT().WriteEntries(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrWrite)
		_, err := svc.Export(context.Background(), filepath.Join(dir, "out"))
		require.ErrorIs(t, err, store.ErrWrite)
	})
}

func TestVaultService_Export_Extension(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "appended", in: "out", want: "out.toml"},
		{name: "kept", in: "out.toml", want: "out.toml"},
		{name: "replaced", in: "out.txt", want: "out.toml"},
		{name: "dotfile", in: ".backup", want: ".backup.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := filepath.Join(dir, tt.want)
			ctrl := gomock.NewController(t)
			svc, _, filesMock := seeded(t, ctrl, github)
			filesMock.EXPECT().WriteEntries(gomock.Any(), want, []models.Entry{github}).Return(nil)

			got, err := svc.Export(context.Background(), filepath.Join(dir, tt.in))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

// ── End to end ───────────────────────────────────────────────────────────────

func TestVaultService_AddExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	exportDir := t.TempDir()

	src := newFileVault(t, t.TempDir())
	require.NoError(t, src.Add(ctx, "GitHub", "JBSWY3DPEHPK3PXP"))
	require.Equal(t, 1, src.Len())

	entry, ok := src.Entry(0)
	require.True(t, ok)
	code, _ := entry.Code()
	assert.Len(t, code, 6)

	written, err := src.Export(ctx, filepath.Join(exportDir, "x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exportDir, "x.toml"), written)

	plain, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(plain), `name = "GitHub"`)
	assert.Contains(t, string(plain), `secret = "JBSWY3DPEHPK3PXP"`)

	dst := newFileVault(t, t.TempDir())
	n, err := dst.Import(ctx, written)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []models.Entry{{Name: "GitHub", Secret: "JBSWY3DPEHPK3PXP"}}, dst.Entries())
}

func TestVaultService_PersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first := newFileVault(t, dir)
	require.NoError(t, first.Add(ctx, github.Name, github.Secret))
	require.NoError(t, first.Add(ctx, gitlab.Name, gitlab.Secret))
	_, err := first.Delete(ctx, 0)
	require.NoError(t, err)

	second := newFileVault(t, dir)
	assert.Equal(t, []models.Entry{gitlab}, second.Entries())
}

func TestVaultService_SelectionInvariant(t *testing.T) {
	ctx := context.Background()
	svc := newFileVault(t, t.TempDir())
	selected := 0

	check := func() {
		t.Helper()
		assert.GreaterOrEqual(t, selected, 0)
		assert.Less(t, selected, max(svc.Len(), 1))
	}

	for i := 0; i < 4; i++ {
		require.NoError(t, svc.Add(ctx, github.Name, github.Secret))
		check()
	}
	selected = 3
	for svc.Len() > 0 {
		var err error
		selected, err = svc.Delete(ctx, selected)
		require.NoError(t, err)
		check()
	}
	require.NoError(t, svc.Add(ctx, aws.Name, aws.Secret))
	require.NoError(t, svc.DeleteAll(ctx))
	selected = 0
	check()
}

func TestVaultService_Import_RejectsIncompleteDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "entry without secret", doc: "[[entries]]\nname = \"x\"\n"},
		{name: "trailing empty entry", doc: "[[entries]]\nname = \"GitHub\"\nsecret = \"JBSWY3DPEHPK3PXP\"\n\n[[entries]]\n"},
		{name: "no entries key", doc: "other = 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "in.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o600))

			svc := newFileVault(t, t.TempDir())
			require.NoError(t, svc.Add(context.Background(), gitlab.Name, gitlab.Secret))

			n, err := svc.Import(context.Background(), path)
			require.ErrorIs(t, err, store.ErrParse)
			assert.Zero(t, n)
			assert.Equal(t, []models.Entry{gitlab}, svc.Entries())
		})
	}
}
