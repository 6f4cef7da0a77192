package internal_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eu-nephele/smo-sidebar/internal"
	"github.com/stretchr/testify/require"
)

func TestMarshalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	err := internal.MarshalFile(path, map[string]string{"page": "graphs"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"page\": \"graphs\"\n}\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files should be gone")

	var got map[string]string

	err = internal.UnmarshalFile(path, &got)
	require.NoError(t, err)
	require.Equal(t, "graphs", got["page"])
}

func TestMarshalFileUnsupportedValue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	err := internal.MarshalFile(path, map[string]any{"fn": func() {}})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestUnmarshalFileMissing(t *testing.T) {
	var v any

	err := internal.UnmarshalFile(filepath.Join(t.TempDir(), "nope.json"), &v)
	require.ErrorIs(t, err, os.ErrNotExist)
}

type failingCloser struct {
	err error
}

func (c failingCloser) Close() error {
	return c.err
}

func TestClose(t *testing.T) {
	var outErr error

	internal.Close("already closed", failingCloser{err: os.ErrClosed}, &outErr)
	require.NoError(t, outErr)

	boom := errors.New("boom")

	internal.Close("thing", failingCloser{err: boom}, &outErr)
	require.ErrorIs(t, outErr, boom)
	require.ErrorContains(t, outErr, "close thing")
}

func TestMarshalFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	err := internal.MarshalFile(path, []string{"dashboard"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}
