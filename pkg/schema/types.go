package schema

// Kind identifies the wire shape a field accepts. Values follow JSON
// Schema type names.
type Kind string

const (
	String  Kind = "string"
	Number  Kind = "number"
	Integer Kind = "integer"
	Boolean Kind = "boolean"
)

// Zero returns the kind's zero value, used when an optional field
// declares no default.
func (k Kind) Zero() any {
	switch k {
	case Number:
		return 0.0
	case Integer:
		return 0
	case Boolean:
		return false
	default:
		return ""
	}
}

// Field declares the contract for one argument.
type Field struct {
	Key         string
	Kind        Kind
	Description string
	Required    bool
	Default     any      // substituted when an optional field is omitted
	Allowed     []string // enum for string fields; empty means unrestricted
}

// DefaultValue returns the declared default, or the kind's zero value
// when none is declared.
func (f Field) DefaultValue() any {
	if f.Default != nil {
		return f.Default
	}
	return f.Kind.Zero()
}

// Schema is an ordered list of field contracts. Declaration order drives
// validation order and serialization.
type Schema []Field
