package schema

import (
	"fmt"
	"strings"
)

// Validated holds arguments that passed contract checks: every declared
// field is present, with declared defaults or kind zero values filling
// the gaps. Keys the schema does not declare are dropped.
type Validated map[string]any

// Validate checks bag against s in declaration order and stops at the
// first violation. Presence and enum membership are checked; values are
// never converted. The bag is not modified.
func Validate(s Schema, bag map[string]any) (Validated, error) {
	out := make(Validated, len(s))
	for _, f := range s {
		value, present := bag[f.Key]
		if !present {
			if f.Required {
				return nil, &ValidationError{Key: f.Key, Reason: "required"}
			}
			out[f.Key] = f.DefaultValue()
			continue
		}

		if len(f.Allowed) > 0 && !isAllowed(value, f.Allowed) {
			return nil, &ValidationError{
				Key:    f.Key,
				Reason: fmt.Sprintf("invalid value %v, must be one of: %s", value, strings.Join(f.Allowed, ", ")),
				Value:  value,
			}
		}
		out[f.Key] = value
	}
	return out, nil
}

func isAllowed(value any, allowed []string) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
