package schema

import "encoding/json"

// JSONSchema renders s as the JSON Schema object MCP clients expect in a
// tool listing: {"type": "object", "properties": {...}, "required": [...]}.
func (s Schema) JSONSchema() map[string]any {
	properties := make(map[string]any, len(s))
	var required []string

	for _, f := range s {
		prop := map[string]any{"type": string(f.Kind)}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		if len(f.Allowed) > 0 {
			prop["enum"] = f.Allowed
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		properties[f.Key] = prop

		if f.Required {
			required = append(required, f.Key)
		}
	}

	out := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

// MarshalJSON serializes the schema in its wire form. Schemas are declared
// in code and never parsed back, so there is no UnmarshalJSON counterpart.
func (s Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.JSONSchema())
}
