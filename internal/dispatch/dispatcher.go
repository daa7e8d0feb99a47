// Package dispatch routes protocol calls to registered tool handlers.
//
// The Dispatcher is the choke point every invocation passes through:
// it resolves the tool by name, validates the raw argument bag against
// the tool's schema, runs the handler, and folds every failure mode
// into the uniform domain.CallResult envelope. Only an unknown tool
// name escapes as a Go error, because that is a protocol fault by the
// caller rather than an operation that ran and failed.
package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/switchboard/internal/logging"
	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/ports"
	"github.com/aretw0/switchboard/pkg/registry"
	"github.com/aretw0/switchboard/pkg/schema"
)

// Dispatcher resolves calls against a registry and produces CallResults.
// It is safe for concurrent use; all mutable state lives in the backends
// behind the handlers.
type Dispatcher struct {
	registry *registry.Registry
	hooks    domain.DispatchHooks
	logger   *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithHooks registers observability callbacks fired around every
// resolved call.
func WithHooks(hooks domain.DispatchHooks) Option {
	return func(d *Dispatcher) {
		d.hooks = hooks
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Dispatcher over reg.
func New(reg *registry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Tools lists the catalog in registration order.
func (d *Dispatcher) Tools() []domain.ToolDefinition {
	return d.registry.List()
}

// Dispatch runs one call end to end. The returned error is non-nil only
// for an unknown tool name; every other failure, including a handler
// panic, comes back as an error-flagged CallResult.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (domain.CallResult, error) {
	reg, ok := d.registry.Lookup(name)
	if !ok {
		d.logger.Warn("unknown tool requested", "tool", name)
		return domain.CallResult{}, domain.Errf(domain.KindProtocol, "Unknown tool: %s", name)
	}

	start := time.Now()
	d.fireCall(ctx, name)

	validated, err := schema.Validate(reg.Definition.Schema, args)
	if err != nil {
		// The handler never runs; no provider call happens.
		return d.finish(ctx, name, start, domain.Fail(err.Error())), nil
	}

	text, err := d.invoke(ctx, name, reg.Handler, validated)
	if err != nil {
		return d.finish(ctx, name, start, domain.Fail(err.Error())), nil
	}
	return d.finish(ctx, name, start, domain.Ok(text)), nil
}

// invoke runs the handler, converting a panic into a normal error so a
// misbehaving tool cannot take the process down.
func (d *Dispatcher) invoke(ctx context.Context, name string, h registry.Handler, args schema.Validated) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("tool handler panicked", "tool", name, "panic", r)
			err = domain.Errf(domain.KindBackendFailure, "Internal error in tool %s: %v", name, r)
		}
	}()
	return h(ctx, args)
}

// finish emits the return hook and the per-dispatch log line.
func (d *Dispatcher) finish(ctx context.Context, name string, start time.Time, res domain.CallResult) domain.CallResult {
	elapsed := time.Since(start)
	d.fireReturn(ctx, name, elapsed, res.IsError)
	d.logger.Info("tool dispatched",
		"tool", name,
		"duration", elapsed,
		"is_error", res.IsError,
	)
	return res
}

func (d *Dispatcher) fireCall(ctx context.Context, name string) {
	if d.hooks.OnToolCall == nil {
		return
	}
	d.hooks.OnToolCall(ctx, &domain.ToolEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventToolCall},
		ToolName:  name,
	})
}

func (d *Dispatcher) fireReturn(ctx context.Context, name string, elapsed time.Duration, isError bool) {
	if d.hooks.OnToolReturn == nil {
		return
	}
	d.hooks.OnToolReturn(ctx, &domain.ToolEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventToolReturn},
		ToolName:  name,
		Duration:  elapsed,
		IsError:   isError,
	})
}

var _ ports.Dispatcher = (*Dispatcher)(nil)
