package switchboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/switchboard/internal/adapters/osfs"
	"github.com/aretw0/switchboard/internal/adapters/sqlite"
	"github.com/aretw0/switchboard/internal/dispatch"
	"github.com/aretw0/switchboard/internal/logging"
	"github.com/aretw0/switchboard/internal/tools"
	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
	"github.com/aretw0/switchboard/pkg/registry"
)

// Server is the high-level entry point for the switchboard library.
// It owns the capability providers, the tool catalog and the dispatcher,
// and satisfies ports.Dispatcher so transports sit directly on top.
type Server struct {
	dispatcher *dispatch.Dispatcher
	store      ports.Store
	files      ports.FileSystem
	hooks      domain.DispatchHooks
	logger     *slog.Logger
	ownsStore  bool
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithDispatchHooks registers observability hooks fired around every
// resolved call.
func WithDispatchHooks(hooks domain.DispatchHooks) Option {
	return func(s *Server) {
		s.hooks = hooks
	}
}

// WithStore injects a custom Store, bypassing the default SQLite
// initialization. The caller keeps ownership; Close will not touch it.
func WithStore(store ports.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithFileSystem injects a custom FileSystem, replacing the host one.
func WithFileSystem(fsys ports.FileSystem) Option {
	return func(s *Server) {
		s.files = fsys
	}
}

// WithLogger sets a custom structured logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New initializes a Server. dbPath names the SQLite database file
// backing the CRM tools; it may be empty when WithStore is provided.
// The catalog is fixed at construction and never mutates afterwards.
func New(dbPath string, opts ...Option) (*Server, error) {
	srv := &Server{}

	// Apply options first to check whether providers were injected.
	for _, opt := range opts {
		opt(srv)
	}

	if srv.logger == nil {
		srv.logger = logging.NewNop()
	}

	if srv.store == nil {
		if dbPath == "" {
			return nil, fmt.Errorf("dbPath is required when no custom store is provided")
		}
		store, err := sqlite.Open(dbPath, srv.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
		srv.store = store
		srv.ownsStore = true
	}

	if srv.files == nil {
		srv.files = osfs.New()
	}

	reg := registry.New()
	if err := tools.Register(reg, tools.Deps{Store: srv.store, Files: srv.files}); err != nil {
		if srv.ownsStore {
			_ = srv.store.Close()
		}
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}

	srv.dispatcher = dispatch.New(reg,
		dispatch.WithLogger(srv.logger),
		dispatch.WithHooks(srv.hooks),
	)

	return srv, nil
}

// Dispatch routes one tool call end to end: resolve, validate, invoke.
// Tool failures come back as error-flagged results; the error return is
// reserved for protocol faults such as an unknown tool name.
func (s *Server) Dispatch(ctx context.Context, name string, args map[string]any) (domain.CallResult, error) {
	return s.dispatcher.Dispatch(ctx, name, args)
}

// Tools lists the catalog in registration order.
func (s *Server) Tools() []domain.ToolDefinition {
	return s.dispatcher.Tools()
}

// Store exposes the provider backing the CRM tools, for maintenance
// paths like seeding that live outside the protocol.
func (s *Server) Store() ports.Store {
	return s.store
}

// Close releases providers the server opened itself. Injected providers
// stay open; their owner closes them.
func (s *Server) Close() error {
	if !s.ownsStore {
		return nil
	}
	return s.store.Close()
}

var _ ports.Dispatcher = (*Server)(nil)
