package pointer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadMissingFile(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "global-version"))
	_, err := f.Read()
	require.ErrorIs(t, err, ErrNoActiveVersion)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadTrims(t *testing.T) {
	path := filepath.Join(t.TempDir(), "global-version")
	require.NoError(t, os.WriteFile(path, []byte("  0.8.4\n"), 0o644))

	got, err := New(path).Read()
	require.NoError(t, err)
	require.Equal(t, "0.8.4", got)
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "global-version")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))

	_, err := New(path).Read()
	require.ErrorIs(t, err, ErrNoActiveVersion)
}

func TestReadUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	path := filepath.Join(t.TempDir(), "global-version")
	require.NoError(t, os.WriteFile(path, []byte("0.8.4"), 0o000))

	_, err := New(path).Read()
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoActiveVersion)
	require.Contains(t, err.Error(), path)
}

func TestRoundTripExact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "global-version")
	f := New(path)

	require.NoError(t, f.Write("0.8.4"))
	got, err := f.Read()
	require.NoError(t, err)
	require.Equal(t, "0.8.4", got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0.8.4", string(raw), "pointer must hold exactly the version")
}

func TestWriteReplacesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "global-version")
	require.NoError(t, os.WriteFile(path, []byte("0.8.10-long-previous-content\n"), 0o644))

	f := New(path)
	require.NoError(t, f.Write("0.7.6"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "0.7.6", string(raw))
}

func TestWriteCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "global-version")
	require.NoError(t, New(path).Write("0.8.4"))

	got, err := New(path).Read()
	require.NoError(t, err)
	require.Equal(t, "0.8.4", got)
}

func TestWriteRenameFailureKeepsPrevious(t *testing.T) {
	orig := osRename
	t.Cleanup(func() { osRename = orig })

	path := filepath.Join(t.TempDir(), "global-version")
	f := New(path)
	require.NoError(t, f.Write("0.8.4"))

	osRename = func(string, string) error { return errors.New("rename denied") }
	err := f.Write("0.7.6")
	require.Error(t, err)
	require.Contains(t, err.Error(), "rename temp file")

	got, readErr := f.Read()
	require.NoError(t, readErr)
	require.Equal(t, "0.8.4", got)

	entries, dirErr := os.ReadDir(filepath.Dir(path))
	require.NoError(t, dirErr)
	for _, e := range entries {
		require.NotContains(t, e.Name(), ".tmp-")
	}
}

func TestWriteCreateTempFailure(t *testing.T) {
	orig := osCreateTemp
	t.Cleanup(func() { osCreateTemp = orig })
	osCreateTemp = func(string, string) (*os.File, error) { return nil, errors.New("no space") }

	err := New(filepath.Join(t.TempDir(), "global-version")).Write("0.8.4")
	require.Error(t, err)
	require.Contains(t, err.Error(), "create temp file")
}
