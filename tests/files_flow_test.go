package tests

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/switchboard"
	"github.com/aretw0/switchboard/internal/adapters/osfs"
	"github.com/aretw0/switchboard/internal/testutils"
)

// TestFileToolsUnderRoot dispatches the file tools against a rooted
// filesystem, the serve-time setup when files.root is configured.
// Relative paths resolve under the root and error messages echo the
// resolved path, not the caller's argument.
func TestFileToolsUnderRoot(t *testing.T) {
	root := testutils.WriteTree(t, map[string]string{
		"notes/plan.txt": "ship it\n",
		"notes/archive/": "",
	})
	srv := newServer(t, switchboard.WithFileSystem(osfs.NewRooted(root)))

	msg := mustText(t, srv, "read_file", map[string]any{"file_path": "notes/plan.txt"})
	want := fmt.Sprintf("Content of '%s':\n\nship it\n", filepath.Join(root, "notes", "plan.txt"))
	assert.Equal(t, want, msg)

	msg = mustText(t, srv, "list_files", map[string]any{"directory_path": "notes"})
	want = fmt.Sprintf("Contents of '%s':\n\n[DIR] archive/\n[FILE] plan.txt", filepath.Join(root, "notes"))
	assert.Equal(t, want, msg)

	res := dispatch(t, srv, "read_file", map[string]any{"file_path": "nope.txt"})
	require.True(t, res.IsError)
	assert.Equal(t, fmt.Sprintf("Error: File '%s' does not exist", filepath.Join(root, "nope.txt")), res.Text)

	res = dispatch(t, srv, "read_file", map[string]any{"file_path": "notes"})
	require.True(t, res.IsError)
	assert.Equal(t, fmt.Sprintf("Error: '%s' is not a file", filepath.Join(root, "notes")), res.Text)
}

// TestAbsolutePathIgnoresRoot keeps absolute arguments usable even when
// the server is rooted somewhere else.
func TestAbsolutePathIgnoresRoot(t *testing.T) {
	root := testutils.WriteTree(t, map[string]string{"inside.txt": "rooted\n"})
	outside := testutils.WriteTree(t, map[string]string{"outside.txt": "elsewhere\n"})
	srv := newServer(t, switchboard.WithFileSystem(osfs.NewRooted(root)))

	target := filepath.Join(outside, "outside.txt")
	msg := mustText(t, srv, "read_file", map[string]any{"file_path": target})
	assert.Equal(t, fmt.Sprintf("Content of '%s':\n\nelsewhere\n", target), msg)
}
