// Package apperr defines the application's error taxonomy.
// Every failure that crosses a layer boundary is one of a closed set of
// kinds; nothing below the HTTP handlers decides a transport status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure independent of transport encoding.
type Kind int

const (
	// KindInternal is an unexpected failure (storage error, bug).
	KindInternal Kind = iota
	// KindBadRequest is malformed or missing input.
	KindBadRequest
	// KindUnauthorized is a missing/invalid token or bad credentials.
	KindUnauthorized
	// KindForbidden is an authenticated caller without permission.
	KindForbidden
	// KindNotFound is an absent resource.
	KindNotFound
	// KindConflict is a uniqueness violation.
	KindConflict
)

// String returns the stable code for the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// HTTPStatus maps a kind to its transport status class.
// This mapping is applied exactly once, at the handler boundary.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed failure with a stable kind and a human-readable message.
// It carries no transport detail.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
// Allows errors.Is(err, apperr.BadRequest("")) style checks in tests.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// BadRequest returns a bad_request error.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Unauthorized returns an unauthorized error.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden returns a forbidden error.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound returns a not_found error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict returns a conflict error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal wraps an unexpected failure. The cause is preserved for logs but
// never rendered to clients.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from err.
// Any error outside the taxonomy is treated as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf extracts the client-facing message from err.
// Internal failures always render a generic message so causes never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "An error has occurred on the server"
}
