package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so transports and handlers can react to the
// category without parsing message text.
type Kind string

const (
	// KindProtocol marks a malformed request, such as a tool name that is
	// not in the catalog. Protocol failures surface as Go errors rather
	// than error-flagged results.
	KindProtocol Kind = "protocol"

	// KindValidation marks arguments that break a tool's declared contract.
	KindValidation Kind = "validation"

	// KindDuplicateKey marks a write rejected by a uniqueness constraint.
	KindDuplicateKey Kind = "duplicate_key"

	// KindNotFound marks a lookup whose target does not exist.
	KindNotFound Kind = "not_found"

	// KindWrongType marks a path of the wrong type, a directory where a
	// file was required or the reverse.
	KindWrongType Kind = "wrong_type"

	// KindPermissionDenied marks an operation refused by the OS.
	KindPermissionDenied Kind = "permission_denied"

	// KindDecodeFailure marks content that could not be interpreted, such
	// as a file that is not valid UTF-8.
	KindDecodeFailure Kind = "decode_failure"

	// KindBackendFailure marks any other provider fault.
	KindBackendFailure Kind = "backend_failure"
)

// Error is a classified failure. Message is the caller-facing text; Err
// optionally preserves the underlying cause for logs and errors.Is checks.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Errf builds an Error of the given kind with a formatted message.
func Errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the taxonomy kind of err. Unclassified errors report
// KindBackendFailure.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindBackendFailure
}
