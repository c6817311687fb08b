package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saylorsolutions/cloak64/pkg/cloak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.efi")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0600))

	data, err := ReadInput(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0600))
	data, err = ReadInput(empty)
	assert.NoError(t, err)
	assert.Empty(t, data)
}

func TestReadInput_Missing(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, cloak.ErrReadFailure)
	assert.Contains(t, err.Error(), "missing")
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cloak64.dat")

	require.NoError(t, WriteOutput(path, []byte("first"), false))
	require.NoError(t, WriteOutput(path, []byte("second"), false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "No temporary files should be left behind")
}

func TestWriteOutput_NoClobber(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cloak64.dat")
	require.NoError(t, WriteOutput(path, []byte("first"), true))

	err := WriteOutput(path, []byte("second"), true)
	assert.ErrorIs(t, err, cloak.ErrWriteFailure)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestWriteOutput_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cloak64.dat")
	err := WriteOutput(path, []byte("data"), false)
	assert.ErrorIs(t, err, cloak.ErrWriteFailure)
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
