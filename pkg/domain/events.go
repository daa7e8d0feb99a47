package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventToolCall   EventType = "tool_call"
	EventToolReturn EventType = "tool_return"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ToolEvent represents one tool dispatch. Duration and IsError are only
// set on the return event.
type ToolEvent struct {
	EventBase
	ToolName string        `json:"tool_name"`
	Duration time.Duration `json:"duration,omitempty"`
	IsError  bool          `json:"is_error,omitempty"`
}

// DispatchHooks defines callbacks for dispatch observability. Nil fields
// are skipped. Hooks run synchronously on the dispatching goroutine, so
// they should return quickly.
type DispatchHooks struct {
	OnToolCall   func(context.Context, *ToolEvent)
	OnToolReturn func(context.Context, *ToolEvent)
}
