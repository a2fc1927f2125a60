//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	target := filepath.Join(dir, "status.yaml")

	require.NoError(t, fs.WriteFileAtomic(target, []byte("first"), 0o644))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	// Overwrite replaces content completely
	require.NoError(t, fs.WriteFileAtomic(target, []byte("second"), 0o644))
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestWriteFileAtomic_CreatesParentDirectories(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "deeper", "status.yaml")

	require.NoError(t, fs.WriteFileAtomic(target, []byte("data"), 0o644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}

func TestWriteFileAtomic_LeavesNoTemporaryFiles(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()
	target := filepath.Join(dir, "status.yaml")

	require.NoError(t, fs.WriteFileAtomic(target, []byte("data"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "status.yaml", entries[0].Name())
}
