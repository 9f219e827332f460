// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cbstate

import "math/bits"

// Flags is a fixed-width set of states, the Go counterpart of
// CBDynamicFlags. Bit i stands for State(i); bit 0 is never a real state.
type Flags struct {
	width int
	bits  []uint64
}

// NewFlags creates an empty set able to hold states below width.
func NewFlags(width int) *Flags {
	if width < 0 {
		width = 0
	}
	return &Flags{
		width: width,
		bits:  make([]uint64, (width+63)/64),
	}
}

// Width returns the number of bits in the set.
func (f *Flags) Width() int {
	return f.width
}

// Set adds s to the set. States at or beyond the width are ignored.
func (f *Flags) Set(s State) *Flags {
	if int(s) < f.width {
		f.bits[s/64] |= 1 << (s % 64)
	}
	return f
}

// Clear removes s from the set.
func (f *Flags) Clear(s State) *Flags {
	if int(s) < f.width {
		f.bits[s/64] &^= 1 << (s % 64)
	}
	return f
}

// Test reports whether s is in the set.
func (f *Flags) Test(s State) bool {
	if int(s) >= f.width {
		return false
	}
	return f.bits[s/64]&(1<<(s%64)) != 0
}

// Count returns the number of states in the set.
func (f *Flags) Count() int {
	n := 0
	for _, w := range f.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// None reports whether the set is empty.
func (f *Flags) None() bool {
	for _, w := range f.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// Reset clears every bit.
func (f *Flags) Reset() {
	for i := range f.bits {
		f.bits[i] = 0
	}
}

// States returns the members in ascending order.
func (f *Flags) States() []State {
	var out []State
	for i, w := range f.bits {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			out = append(out, State(i*64+bit))
			w &= w - 1
		}
	}
	return out
}
