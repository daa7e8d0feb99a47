// Package cli assembles servers for the switchboard commands.
//
// The factory owns provider lifecycle: it opens the store, layers the
// optional middleware, and hands the command a Runtime whose Close
// releases everything the factory opened.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/switchboard"
	"github.com/aretw0/switchboard/internal/adapters/osfs"
	"github.com/aretw0/switchboard/internal/adapters/sqlite"
	"github.com/aretw0/switchboard/internal/config"
	"github.com/aretw0/switchboard/internal/logging"
	"github.com/aretw0/switchboard/pkg/observability"
	"github.com/aretw0/switchboard/pkg/persistence/middleware"
	"github.com/aretw0/switchboard/pkg/ports"
)

// LoadConfig resolves the configuration file. A file the user named
// explicitly must exist; the default location is optional and quietly
// falls back to Defaults when nothing is there.
func LoadConfig(path string, explicit bool) (*config.Config, error) {
	if path == "" {
		path = config.DefaultPath
	}
	if !explicit {
		if _, err := os.Stat(path); err != nil {
			return config.Defaults(), nil
		}
	}
	return config.Load(path)
}

// BuildOptions selects the optional pieces assembled around the server.
type BuildOptions struct {
	// Metrics attaches Prometheus dispatch instrumentation.
	Metrics bool
}

// Runtime bundles a ready server with the pieces a command tears down.
type Runtime struct {
	Server  *switchboard.Server
	Metrics *observability.Metrics // nil unless BuildOptions.Metrics
	Logger  *slog.Logger

	store ports.Store
}

// Build wires providers, middleware, and hooks into a server according
// to cfg.
func Build(cfg *config.Config, opts BuildOptions) (*Runtime, error) {
	level, err := logging.Parse(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	store, err := openStore(cfg, level, logger)
	if err != nil {
		return nil, err
	}

	files := osfs.New()
	if cfg.Files.Root != "" {
		files = osfs.NewRooted(cfg.Files.Root)
	}

	serverOpts := []switchboard.Option{
		switchboard.WithStore(store),
		switchboard.WithFileSystem(files),
		switchboard.WithLogger(logger),
	}

	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
		serverOpts = append(serverOpts, switchboard.WithDispatchHooks(metrics.Hooks()))
	}

	server, err := switchboard.New("", serverOpts...)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Runtime{Server: server, Metrics: metrics, Logger: logger, store: store}, nil
}

// openStore opens the SQLite store, adding query logging in debug mode.
func openStore(cfg *config.Config, level slog.Level, logger *slog.Logger) (ports.Store, error) {
	base, err := sqlite.Open(cfg.Store.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", cfg.Store.Path, err)
	}
	if level != slog.LevelDebug {
		return base, nil
	}
	return middleware.Chain(base, middleware.NewLogging(logger)), nil
}

// Close releases the providers Build opened.
func (r *Runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.Logger.Warn("store close failed", "error", err)
	}
}
