// Package apperrors defines the failure taxonomy shared by all services.
// Every failure is raised at the point of detection and propagated unmodified;
// the HTTP layer maps kinds to status codes.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the transport layer.
type Kind int

const (
	// KindNotFound means the resource does not exist, or exists but is
	// intentionally hidden from the caller.
	KindNotFound Kind = iota + 1
	// KindForbidden means the resource exists and the caller is known to
	// lack access.
	KindForbidden
	// KindInvalidArgument means the input was malformed.
	KindInvalidArgument
	// KindInvalidTransition means the requested status change is not
	// allowed from the current state.
	KindInvalidTransition
)

// Error is a classified, human-readable failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden creates a KindForbidden error.
func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument creates a KindInvalidArgument error.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// InvalidTransition creates a KindInvalidTransition error.
func InvalidTransition(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or 0 for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
