package tools

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/switchboard/internal/adapters/osfs"
	"github.com/aretw0/switchboard/pkg/domain"
)

// fileDeps skips the database; the file tools never touch the store.
func fileDeps() Deps {
	return Deps{Files: osfs.New()}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\nsecond line\n"), 0o644))

	msg, err := invoke(t, readFile(fileDeps()), map[string]any{"file_path": path})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Content of '%s':\n\nhello world\nsecond line\n", path), msg)
}

func TestReadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	_, err := invoke(t, readFile(fileDeps()), map[string]any{"file_path": path})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("Error: File '%s' does not exist", path), err.Error())
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestReadFileOnDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := invoke(t, readFile(fileDeps()), map[string]any{"file_path": dir})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("Error: '%s' is not a file", dir), err.Error())
	assert.Equal(t, domain.KindWrongType, domain.KindOf(err))
}

func TestReadFileBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x81}, 0o644))

	_, err := invoke(t, readFile(fileDeps()), map[string]any{"file_path": path})
	require.Error(t, err)
	assert.Equal(t, domain.KindDecodeFailure, domain.KindOf(err))
	assert.Contains(t, err.Error(), "binary or not UTF-8")
}

func TestReadFilePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	path := filepath.Join(t.TempDir(), "locked.txt")
	require.NoError(t, os.WriteFile(path, []byte("secret"), 0o000))

	_, err := invoke(t, readFile(fileDeps()), map[string]any{"file_path": path})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("Error: Permission denied reading '%s'", path), err.Error())
	assert.Equal(t, domain.KindPermissionDenied, domain.KindOf(err))
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	msg, err := invoke(t, listFiles(fileDeps()), map[string]any{"directory_path": dir})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Contents of '%s':\n\n[FILE] a.txt\n[DIR] sub/", dir), msg)
}

func TestListFilesEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	// An empty directory is a successful listing, not an error.
	msg, err := invoke(t, listFiles(fileDeps()), map[string]any{"directory_path": dir})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Contents of '%s':\n\n", dir), msg)
}

func TestListFilesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")

	_, err := invoke(t, listFiles(fileDeps()), map[string]any{"directory_path": dir})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("Error: Directory '%s' does not exist", dir), err.Error())
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestListFilesOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := invoke(t, listFiles(fileDeps()), map[string]any{"directory_path": path})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("Error: '%s' is not a directory", path), err.Error())
	assert.Equal(t, domain.KindWrongType, domain.KindOf(err))
}

func TestListFilesDefaultsToHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	msg, err := invoke(t, listFiles(fileDeps()), nil)
	require.NoError(t, err)
	assert.True(t, len(msg) > 0)
	assert.Contains(t, msg, fmt.Sprintf("Contents of '%s':", home))
}
