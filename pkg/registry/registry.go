package registry

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/aretw0/switchboard/pkg/schema"
)

// Handler defines the signature for a tool implementation. It receives a
// context and the validated argument bag, and returns rendered text or a
// taxonomy error from pkg/domain.
type Handler func(ctx context.Context, args schema.Validated) (string, error)

// Registration binds a tool definition to the handler that serves it.
type Registration struct {
	Definition domain.ToolDefinition
	Handler    Handler
}

// Registry manages the available tools. Registration order is preserved
// and drives every listing. Lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]Registration
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Registration),
	}
}

// Register adds a tool to the catalog. The catalog is fixed at startup,
// so a duplicate name, an empty name or a nil handler is rejected.
func (r *Registry) Register(def domain.ToolDefinition, h Handler) error {
	if def.Name == "" {
		return fmt.Errorf("registry: tool name is empty")
	}
	if h == nil {
		return fmt.Errorf("registry: tool %s has no handler", def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[def.Name]; exists {
		return fmt.Errorf("registry: tool already registered: %s", def.Name)
	}
	r.entries[def.Name] = Registration{Definition: def, Handler: h}
	r.order = append(r.order, def.Name)
	return nil
}

// Lookup returns the registration for name.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.entries[name]
	return reg, ok
}

// List returns the tool definitions in registration order. The slice is
// a copy and safe to retain.
func (r *Registry) List() []domain.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].Definition)
	}
	return out
}

// Len reports the catalog size.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
