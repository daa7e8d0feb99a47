package ports

import (
	"context"

	"github.com/aretw0/switchboard/pkg/domain"
)

// Dispatcher is the driving port transports consume. Dispatch resolves a
// tool by name, validates the raw argument bag and runs the handler. Tool
// failures come back as error-flagged results; the error return is
// reserved for protocol faults such as an unknown tool name.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, args map[string]any) (domain.CallResult, error)

	// Tools lists the catalog in registration order.
	Tools() []domain.ToolDefinition
}
