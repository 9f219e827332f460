// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package registry

import "fmt"

// ErrorKind categorizes feed loading errors.
type ErrorKind uint8

const (
	// ErrInvalidDocument indicates the feed could not be decoded.
	ErrInvalidDocument ErrorKind = iota

	// ErrEnumNotFound indicates the feed does not define the requested enum.
	ErrEnumNotFound

	// ErrInvalidValue indicates an enum value or offset is not a number.
	ErrInvalidValue

	// ErrUnsupportedFormat indicates a feed file with an unknown extension.
	ErrUnsupportedFormat
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidDocument:
		return "InvalidDocument"
	case ErrEnumNotFound:
		return "EnumNotFound"
	case ErrInvalidValue:
		return "InvalidValue"
	case ErrUnsupportedFormat:
		return "UnsupportedFormat"
	default:
		return "Unknown"
	}
}

// Error is returned by the feed parsers.
type Error struct {
	Kind    ErrorKind
	Message string

	// Cause is the underlying decoder error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("registry %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("registry %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind ErrorKind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}
