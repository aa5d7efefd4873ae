package safefileio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tempDir returns a temporary directory with symlinks resolved, since some
// platforms place it under a symlinked prefix such as /var -> /private/var.
func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestSafeReadFile(t *testing.T) {
	dir := tempDir(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm = \"md5\"\n"), 0o600))

	content, err := SafeReadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "algorithm = \"md5\"\n", string(content))
}

func TestSafeReadFile_Symlink(t *testing.T) {
	dir := tempDir(t)
	target := filepath.Join(dir, "target.toml")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	link := filepath.Join(dir, "link.toml")
	require.NoError(t, os.Symlink(target, link))

	_, err := SafeReadFile(link)

	assert.ErrorIs(t, err, ErrIsSymlink)
}

func TestSafeReadFile_SymlinkedParent(t *testing.T) {
	dir := tempDir(t)
	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(realDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(realDir, "config.toml"), []byte("x"), 0o600))
	linkDir := filepath.Join(dir, "linked")
	require.NoError(t, os.Symlink(realDir, linkDir))

	_, err := SafeReadFile(filepath.Join(linkDir, "config.toml"))

	assert.ErrorIs(t, err, ErrIsSymlink)
}

func TestSafeReadFile_Directory(t *testing.T) {
	_, err := SafeReadFile(tempDir(t))

	assert.ErrorIs(t, err, ErrInvalidFilePath)
}

func TestSafeReadFile_TooLarge(t *testing.T) {
	path := filepath.Join(tempDir(t), "big.toml")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{'#'}, MaxFileSize+1), 0o600))

	_, err := SafeReadFile(path)

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSafeReadFile_NotExist(t *testing.T) {
	_, err := SafeReadFile(filepath.Join(tempDir(t), "missing.toml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSafeOpenFile_Create(t *testing.T) {
	path := filepath.Join(tempDir(t), "run.json")

	f, err := SafeOpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("{}\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
