// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cbstate

import "fmt"

// ErrorKind categorizes malformed canonical feeds.
type ErrorKind uint8

const (
	// ErrMissingPrefix indicates a name without the VK_DYNAMIC_STATE_ prefix
	// or with nothing after it.
	ErrMissingPrefix ErrorKind = iota

	// ErrDuplicateState indicates a name listed more than once.
	ErrDuplicateState

	// ErrReservedName indicates a name that collides with a generated symbol.
	ErrReservedName
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrMissingPrefix:
		return "MissingPrefix"
	case ErrDuplicateState:
		return "DuplicateState"
	case ErrReservedName:
		return "ReservedName"
	default:
		return "Unknown"
	}
}

// Error reports a canonical feed the enumeration cannot be built from.
type Error struct {
	Kind ErrorKind

	// Name is the offending canonical name.
	Name string

	// Index is the zero-based position of Name in the feed.
	Index int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("cbstate %s: field %d %q", e.Kind, e.Index, e.Name)
}
