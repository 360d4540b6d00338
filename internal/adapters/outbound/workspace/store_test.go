package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/transformspec/internal/adapters/outbound/workspace"
)

func TestStore_PrepareCreatesDirectory(t *testing.T) {
	root := t.TempDir()

	dir, err := workspace.New(".kiro").Prepare(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".kiro"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_PrepareFallsBackToPlainName(t *testing.T) {
	root := t.TempDir()
	// A regular file where the dotted directory should go.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".kiro"), []byte("x"), 0644))

	dir, err := workspace.New(".kiro").Prepare(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "kiro"), dir)
}

func TestStore_PrepareFailsWithoutFallback(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "out"), []byte("x"), 0644))

	_, err := workspace.New("out").Prepare(root)
	require.Error(t, err)
}

func TestStore_Write(t *testing.T) {
	store := workspace.New(".kiro")
	dir, err := store.Prepare(t.TempDir())
	require.NoError(t, err)

	path, err := store.Write(dir, "requirements-specification.md", []byte("# R"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# R", string(data))
}

func TestStore_WriteRejectsPaths(t *testing.T) {
	store := workspace.New(".kiro")
	dir := t.TempDir()

	for _, name := range []string{"", "../escape.md", "sub/file.md", ".."} {
		_, err := store.Write(dir, name, []byte("x"))
		assert.Error(t, err, name)
	}
}
