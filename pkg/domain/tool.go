package domain

import "github.com/aretw0/switchboard/pkg/schema"

// ToolDefinition describes one callable tool as clients see it.
// Ideally compatible with OpenAI/MCP tool listing schemas.
type ToolDefinition struct {
	Name        string        `json:"name" yaml:"name" mapstructure:"name"`
	Description string        `json:"description" yaml:"description" mapstructure:"description"`
	Schema      schema.Schema `json:"input_schema" yaml:"input_schema" mapstructure:"input_schema"`
}
