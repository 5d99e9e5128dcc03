// Package domainerrors provides code-tagged errors shared across the
// submission core. Services attach a Code so callers can branch on the
// failure class without string matching.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers.
type Code string

const (
	// CodeInvalidInput marks malformed or unsupported caller input.
	CodeInvalidInput Code = "invalid_input"
	// CodePrecondition marks a failed check before any network activity.
	CodePrecondition Code = "precondition"
	// CodeMapping marks a failure while building the wire document.
	CodeMapping Code = "mapping"
	// CodeTransport marks a failed attachment upload or document submit.
	CodeTransport Code = "transport"
	// CodeDecode marks a malformed response from a successful transport call.
	CodeDecode Code = "decode"
	// CodeInternal marks unexpected internal failures.
	CodeInternal Code = "internal"
)

// Error is a code-tagged error, optionally wrapping a cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches two Errors by code so sentinel-style comparisons work with
// errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && (t.Message == "" || t.Message == e.Message)
}

// New creates a code-tagged error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a code-tagged error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// CodeOf extracts the Code from err, unwrapping as needed. Returns
// CodeInternal for errors that carry no code.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
