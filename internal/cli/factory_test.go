package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/switchboard/internal/config"
)

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoadConfigExplicitMustExist(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), true)
	require.Error(t, err)
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switchboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\nstore:\n  path: /tmp/x.db\n"), 0o644))

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
	// Untouched fields keep their defaults.
	assert.Equal(t, "stdio", cfg.Transport)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.Store.Path = filepath.Join(t.TempDir(), "crm.db")
	return cfg
}

func TestBuildServesDispatches(t *testing.T) {
	rt, err := Build(testConfig(t), BuildOptions{})
	require.NoError(t, err)
	defer rt.Close()

	assert.Nil(t, rt.Metrics)

	res, err := rt.Server.Dispatch(context.Background(), "search_customers",
		map[string]any{"search_term": "nobody"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "No customers found matching 'nobody' in all", res.Text)
}

func TestBuildWiresMetrics(t *testing.T) {
	rt, err := Build(testConfig(t), BuildOptions{Metrics: true})
	require.NoError(t, err)
	defer rt.Close()

	require.NotNil(t, rt.Metrics)
	assert.NotNil(t, rt.Metrics.Handler())
}

func TestBuildRejectsUnknownLogLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "loud"

	_, err := Build(cfg, BuildOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestBuildDebugWrapsStoreLogging(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "debug"

	rt, err := Build(cfg, BuildOptions{})
	require.NoError(t, err)
	defer rt.Close()

	// The logging middleware must stay transparent to dispatch results.
	res, err := rt.Server.Dispatch(context.Background(), "analyze_deal_pipeline", nil)
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "No deals in pipeline", res.Text)
}

func TestSignalContextParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sc := NewSignalContext(parent)
	defer sc.Cancel()

	cancel()
	<-sc.Done()
	assert.Nil(t, sc.Signal())
}
