package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the transport layer can map
// it to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalidRequest
)

// Error is the error type every service operation returns for a
// business-rule failure. The message is meant for the API response.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// NotFound reports a missing guest, schedule, court or reservation.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict reports a slot that already holds a ready-to-play reservation.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// InvalidRequest reports malformed input, stale timing or a
// wrong-state operation.
func InvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

// Internal wraps an unexpected failure from a collaborator.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf extracts the kind from an error chain. Errors that are not
// an *Error count as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
