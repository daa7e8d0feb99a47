package domain

// CallResult is the envelope every tool invocation produces. Text carries
// either the rendered payload or, when IsError is set, the message the
// caller should surface.
type CallResult struct {
	Text    string `json:"text"`
	IsError bool   `json:"is_error,omitempty"`
}

// Ok wraps a successful payload.
func Ok(text string) CallResult {
	return CallResult{Text: text}
}

// Fail wraps an error message in an error-flagged result.
func Fail(message string) CallResult {
	return CallResult{Text: message, IsError: true}
}
