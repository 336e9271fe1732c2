package reqerr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation indicates a request failed validation before any
	// transport interaction took place.
	ErrValidation = errors.New("validation error")
	// ErrConfiguration indicates a configuration error.
	ErrConfiguration = errors.New("configuration error")
	// ErrRequestFailed indicates the transport could not complete the exchange.
	ErrRequestFailed = errors.New("request failed")
	// ErrBodyTooLarge indicates the response body exceeded the configured limit.
	ErrBodyTooLarge = errors.New("response body too large")
	// ErrClosed indicates an operation on an already-released request context.
	ErrClosed = errors.New("request context closed")
	// ErrInFlight indicates a request context was used while another
	// request on it had not yet returned.
	ErrInFlight = errors.New("request already in flight")
)

// Error is the error type returned by every public operation of the library.
type Error struct {
	kind    error
	message string
	cause   error
	op      string
}

// Error returns the error message.
func (e *Error) Error() string {
	var parts []string

	if e.op != "" {
		parts = append(parts, fmt.Sprintf("op: %s", e.op))
	}
	if e.kind != nil {
		parts = append(parts, fmt.Sprintf("kind: %s", e.kind))
	}
	if e.message != "" {
		parts = append(parts, fmt.Sprintf("msg: %s", e.message))
	}
	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("cause: %s", e.cause))
	}

	return strings.Join(parts, " | ")
}

// Is reports whether any error in the Error's chain matches target.
func (e *Error) Is(target error) bool {
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.cause != nil && errors.Is(e.cause, target) {
		return true
	}
	return false
}

// As finds the first error in the Error's chain that matches target, and
// if so, sets target to that error value and returns true.
func (e *Error) As(target any) bool {
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.cause != nil && errors.As(e.cause, target) {
		return true
	}
	return false
}

// Unwrap returns the cause of the error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the kind of the error.
func (e *Error) Kind() error {
	return e.kind
}

// Message returns the message of the error.
func (e *Error) Message() string {
	return e.message
}

// Cause returns the cause of the error.
func (e *Error) Cause() error {
	return e.cause
}

// Op returns the operation of the error.
func (e *Error) Op() string {
	return e.op
}

// New creates a new empty Error.
func New() *Error {
	return &Error{}
}

// WithKind sets the kind of the error.
func (e *Error) WithKind(kind error) *Error {
	e.kind = kind
	return e
}

// WithMessage sets the message of the error.
func (e *Error) WithMessage(msg string) *Error {
	e.message = msg
	return e
}

// WithCause sets the cause of the error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// WithOp sets the operation of the error.
func (e *Error) WithOp(op string) *Error {
	e.op = op
	return e
}
