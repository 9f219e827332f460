// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cpp

import "fmt"

// ErrorKind categorizes emitter errors.
type ErrorKind uint8

const (
	// ErrInvalidInput indicates Compile was called without an enumeration.
	ErrInvalidInput ErrorKind = iota

	// ErrInvalidOptions indicates options that would produce broken C++.
	ErrInvalidOptions
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidInput:
		return "InvalidInput"
	case ErrInvalidOptions:
		return "InvalidOptions"
	default:
		return "Unknown"
	}
}

// Error represents an emitter error.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("cpp %s: %s", e.Kind, e.Message)
}

// NewError creates a new emitter error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}
