// Package testutils carries fixtures shared by the integration tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/switchboard/internal/adapters/sqlite"
	"github.com/aretw0/switchboard/internal/logging"
)

// OpenTestStore creates a migrated SQLite store on a temporary file.
// The store is closed and the file removed when the test finishes.
func OpenTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "crm.db"), logging.NewNop())
	require.NoError(t, err, "Failed to open sqlite store")
	t.Cleanup(func() { store.Close() })

	return store
}

// WriteTree materializes a file tree under a fresh temporary directory.
// Keys are slash-separated relative paths; a trailing slash creates a
// directory, anything else a UTF-8 file with the given content.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755), "Failed to create dir %s", rel)
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create parent of %s", rel)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write %s", rel)
	}

	return root
}
