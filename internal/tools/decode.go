package tools

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/switchboard/pkg/schema"
)

// decodeArgs converts a validated bag into a handler's argument struct.
// mapstructure converts between the numeric kinds JSON delivers, so a
// float64 lands in an int field; a value of the wrong shape is the
// handler's catch-all error.
func decodeArgs(args schema.Validated, out any) error {
	return mapstructure.Decode(map[string]any(args), out)
}

// renderJSON pretty-prints query results the way clients expect them.
func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
