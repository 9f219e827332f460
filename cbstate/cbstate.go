// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cbstate renumbers VkDynamicState into a dense range usable as
// bitset indices and defines how states and state sets are described.
//
// Given the canonical fields in registry order, state i (1-based) is
// CB_DYNAMIC_STATE_<suffix>. Ordinal 0 is reserved as invalid and
// StatusNum, one past the last state, is both the bitset width and the
// value returned when a canonical name has no renumbered state.
//
//	e, err := cbstate.New(feed.Names(), table.Default())
//	flags := e.NewFlags().Set(e.Reverse("VK_DYNAMIC_STATE_VIEWPORT"))
//	e.StatesString(flags)   // "VK_DYNAMIC_STATE_VIEWPORT"
//	e.CommandsString(flags) // "vkCmdSetViewport"
//
// The cpp package emits C++ with exactly these semantics.
package cbstate

import (
	"strings"

	"github.com/gogpu/dynstate/table"
)

// Generated and canonical symbol names.
const (
	CanonicalPrefix = "VK_DYNAMIC_STATE_"
	SymbolPrefix    = "CB_DYNAMIC_STATE_"

	// StatusNumSymbol names the sentinel one past the last state.
	StatusNumSymbol = SymbolPrefix + "STATUS_NUM"

	// MaxEnum is the canonical value forward conversion falls back to.
	MaxEnum = CanonicalPrefix + "MAX_ENUM"

	// UnknownState is printed for descriptor misses and empty sets.
	UnknownState = "(Unknown Dynamic State)"

	// UnhandledString is what string_VkDynamicState returns for values
	// outside the enum.
	UnhandledString = "Unhandled VkDynamicState"
)

// The depth bias state has a second setter. It is matched by suffix since
// its ordinal depends on registry order.
const (
	DepthBiasSuffix   = "DEPTH_BIAS"
	DepthBias2Command = "vkCmdSetDepthBias2EXT"
)

// reservedSuffixes collide with symbols the generator emits itself.
var reservedSuffixes = map[string]struct{}{
	"STATUS_NUM": {},
	"MAX_ENUM":   {},
}

// State is a renumbered dynamic state.
type State uint32

// Invalid is the reserved ordinal 0.
const Invalid State = 0

// Descriptor pairs a state with the table entry that describes it.
type Descriptor struct {
	State  State
	Symbol string
	Entry  table.Entry
}

// Enumeration is the renumbered view of one canonical feed.
type Enumeration struct {
	names    []string // names[i-1] is state i
	ordinals map[string]State
	entries  []table.Entry // entries[i-1], zero Entry on a table miss
	found    []bool

	descriptors []Descriptor
	stale       []string
	depthBias   State
}

// New renumbers names in order, resolving each against tbl. A nil table
// means table.Default().
//
// Names must carry the VK_DYNAMIC_STATE_ prefix and be unique. States the
// table does not know are accepted; they describe as UnknownState.
func New(names []string, tbl *table.Table) (*Enumeration, error) {
	if tbl == nil {
		tbl = table.Default()
	}

	e := &Enumeration{
		names:    make([]string, 0, len(names)),
		ordinals: make(map[string]State, len(names)),
		entries:  make([]table.Entry, len(names)),
		found:    make([]bool, len(names)),
	}

	for i, name := range names {
		suffix, ok := strings.CutPrefix(name, CanonicalPrefix)
		if !ok || suffix == "" {
			return nil, &Error{Kind: ErrMissingPrefix, Name: name, Index: i}
		}
		if _, reserved := reservedSuffixes[suffix]; reserved {
			return nil, &Error{Kind: ErrReservedName, Name: name, Index: i}
		}
		if _, dup := e.ordinals[name]; dup {
			return nil, &Error{Kind: ErrDuplicateState, Name: name, Index: i}
		}

		s := State(i + 1)
		e.names = append(e.names, name)
		e.ordinals[name] = s
		if suffix == DepthBiasSuffix {
			e.depthBias = s
		}
		if entry, ok := tbl.Lookup(name); ok {
			e.entries[i] = entry
			e.found[i] = true
		}
	}

	// Descriptor cases follow table order, not ordinal order.
	for _, entry := range tbl.Entries() {
		s, ok := e.ordinals[entry.State]
		if !ok {
			e.stale = append(e.stale, entry.State)
			continue
		}
		e.descriptors = append(e.descriptors, Descriptor{
			State:  s,
			Symbol: e.Symbol(s),
			Entry:  entry,
		})
	}

	return e, nil
}

// Len returns the number of real states.
func (e *Enumeration) Len() int {
	return len(e.names)
}

// StatusNum returns the bitset width, one past the last state.
func (e *Enumeration) StatusNum() State {
	return State(len(e.names) + 1)
}

// NotFound returns the value Reverse yields for names outside the feed.
// It is numerically equal to StatusNum.
func (e *Enumeration) NotFound() State {
	return e.StatusNum()
}

// Valid reports whether s is a real state.
func (e *Enumeration) Valid(s State) bool {
	return s != Invalid && int(s) <= len(e.names)
}

// States returns every real state in ordinal order.
func (e *Enumeration) States() []State {
	out := make([]State, len(e.names))
	for i := range e.names {
		out[i] = State(i + 1)
	}
	return out
}

// Canonical returns the canonical names in ordinal order.
func (e *Enumeration) Canonical() []string {
	return append([]string(nil), e.names...)
}

// Forward converts a renumbered state to its canonical name, or MaxEnum
// when s is not a real state.
func (e *Enumeration) Forward(s State) string {
	if !e.Valid(s) {
		return MaxEnum
	}
	return e.names[s-1]
}

// Reverse converts a canonical name to its renumbered state, or NotFound.
func (e *Enumeration) Reverse(name string) State {
	if s, ok := e.ordinals[name]; ok {
		return s
	}
	return e.NotFound()
}

// Symbol returns the generated enumerator for s. StatusNum maps to
// StatusNumSymbol; anything else outside the range yields "".
func (e *Enumeration) Symbol(s State) string {
	switch {
	case e.Valid(s):
		return SymbolPrefix + strings.TrimPrefix(e.names[s-1], CanonicalPrefix)
	case s == e.StatusNum():
		return StatusNumSymbol
	default:
		return ""
	}
}

// Parse resolves a canonical name, a generated symbol or a bare suffix
// (VK_DYNAMIC_STATE_SCISSOR, CB_DYNAMIC_STATE_SCISSOR, SCISSOR).
func (e *Enumeration) Parse(name string) (State, bool) {
	if rest, ok := strings.CutPrefix(name, SymbolPrefix); ok {
		name = rest
	}
	if !strings.HasPrefix(name, CanonicalPrefix) {
		name = CanonicalPrefix + name
	}
	s, ok := e.ordinals[name]
	return s, ok
}

// String mirrors DynamicStateToString.
func (e *Enumeration) String(s State) string {
	if !e.Valid(s) {
		return UnhandledString
	}
	return e.names[s-1]
}

// Entry returns the table entry for s.
func (e *Enumeration) Entry(s State) (table.Entry, bool) {
	if !e.Valid(s) || !e.found[s-1] {
		return table.Entry{}, false
	}
	return e.entries[s-1], true
}

// DepthBias returns the depth bias state, if the feed has one.
func (e *Enumeration) DepthBias() (State, bool) {
	return e.depthBias, e.depthBias != Invalid
}

// Descriptors returns the descriptor cases in table order, skipping
// table entries the feed does not define.
func (e *Enumeration) Descriptors() []Descriptor {
	return append([]Descriptor(nil), e.descriptors...)
}

// Missing returns the canonical names the table has no entry for.
func (e *Enumeration) Missing() []string {
	var out []string
	for i, name := range e.names {
		if !e.found[i] {
			out = append(out, name)
		}
	}
	return out
}

// Stale returns table states that are not in the feed.
func (e *Enumeration) Stale() []string {
	return append([]string(nil), e.stale...)
}

// DescribeCommand mirrors DescribeDynamicStateCommand: the primary setter
// command, prefixed with UnknownState on a table miss. The depth bias
// state additionally names vkCmdSetDepthBias2EXT.
func (e *Enumeration) DescribeCommand(s State) string {
	var sb strings.Builder

	command := ""
	if entry, ok := e.Entry(s); ok {
		command = entry.Primary()
	} else {
		sb.WriteString(UnknownState)
		sb.WriteByte(' ')
	}
	sb.WriteString(command)

	// Only depth bias has two setters; other multi-setter entries would
	// still print their first command only.
	if s == e.depthBias && e.depthBias != Invalid {
		sb.WriteString(" or ")
		sb.WriteString(DepthBias2Command)
	}
	return sb.String()
}

// NewFlags returns an empty set sized StatusNum.
func (e *Enumeration) NewFlags(states ...State) *Flags {
	f := NewFlags(int(e.StatusNum()))
	for _, s := range states {
		f.Set(s)
	}
	return f
}

// StatesString mirrors DynamicStatesToString: canonical names of the set
// states in ordinal order, joined by "|".
func (e *Enumeration) StatesString(f *Flags) string {
	return e.join(f, "|", e.Forward)
}

// CommandsString mirrors DynamicStatesCommandsToString: descriptors of the
// set states in ordinal order, joined by ", ".
func (e *Enumeration) CommandsString(f *Flags) string {
	return e.join(f, ", ", e.DescribeCommand)
}

func (e *Enumeration) join(f *Flags, sep string, describe func(State) string) string {
	var sb strings.Builder
	for s := State(1); s < e.StatusNum(); s++ {
		if !f.Test(s) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(describe(s))
	}
	if sb.Len() == 0 {
		return UnknownState
	}
	return sb.String()
}
