package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested"), 0755))
	for _, name := range []string{"b.toml", "a.toml", "ignored.txt", "nested/c.toml"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644))
	}

	files, err := FindFilesByExtension(tmpDir, ".toml")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(tmpDir, "a.toml"),
		filepath.Join(tmpDir, "b.toml"),
		filepath.Join(tmpDir, "nested", "c.toml"),
	}, files)
}

func TestFindFilesByExtension_SingleFileRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "bindings.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	files, err := FindFilesByExtension(filePath, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{filePath}, files)

	none, err := FindFilesByExtension(filePath, ".toml")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".hcl")
	require.Error(t, err)
}
