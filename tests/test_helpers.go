package tests

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/switchboard"
	"github.com/aretw0/switchboard/pkg/domain"
)

// newServer builds a full server on a fresh database file.
func newServer(t *testing.T, opts ...switchboard.Option) *switchboard.Server {
	t.Helper()

	srv, err := switchboard.New(filepath.Join(t.TempDir(), "crm.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { srv.Close() })

	return srv
}

// dispatch runs one call, failing the test on protocol errors.
func dispatch(t *testing.T, srv *switchboard.Server, tool string, args map[string]any) domain.CallResult {
	t.Helper()

	res, err := srv.Dispatch(context.Background(), tool, args)
	require.NoError(t, err, "dispatch of %s should not raise a protocol error", tool)
	return res
}

// mustText dispatches and requires a successful result, returning its text.
func mustText(t *testing.T, srv *switchboard.Server, tool string, args map[string]any) string {
	t.Helper()

	res := dispatch(t, srv, tool, args)
	require.False(t, res.IsError, "tool %s failed: %s", tool, res.Text)
	return res.Text
}

// idFrom extracts the trailing identifier from "... with ID: <id>".
func idFrom(t *testing.T, msg string) string {
	t.Helper()

	i := strings.LastIndex(msg, ": ")
	require.GreaterOrEqual(t, i, 0, "no ID in %q", msg)
	return msg[i+2:]
}

// payload parses the JSON document that follows a message header.
func payload(t *testing.T, msg string, into any) {
	t.Helper()

	parts := strings.SplitN(msg, "\n\n", 2)
	require.Len(t, parts, 2, "message should carry a payload: %q", msg)
	require.NoError(t, json.Unmarshal([]byte(parts[1]), into))
}
