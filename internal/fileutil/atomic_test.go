package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func assertOnlyFile(t *testing.T, dir, name string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")

	require.NoError(t, WriteAtomic(path, 0o644, writeString("small_beats_big = true\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "small_beats_big = true\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	assertOnlyFile(t, dir, "state.toml")
}

func TestWriteAtomicOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")

	require.NoError(t, WriteAtomic(path, 0o644, writeString("initial")))
	require.NoError(t, WriteAtomic(path, 0o600, writeString("updated")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updated", string(data))
	assertOnlyFile(t, dir, "state.toml")
}

func TestWriteAtomicKeepsOldFileOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")
	require.NoError(t, WriteAtomic(path, 0o644, writeString("initial")))

	boom := errors.New("render failed")
	err := WriteAtomic(path, 0o644, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "initial", string(data))
	assertOnlyFile(t, dir, "state.toml")
}

func TestWriteAtomicMissingDirectory(t *testing.T) {
	t.Parallel()

	err := WriteAtomic(filepath.Join(t.TempDir(), "missing", "state.toml"), 0o644, writeString("x"))
	assert.Error(t, err)
}
