// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package table maps VkDynamicState values to the commands that set them.
//
// The mapping is authored by hand. It may lag the registry, so lookups
// report a miss instead of failing and callers decide what to print.
//
//	t := table.Default()
//	entry, ok := t.Lookup("VK_DYNAMIC_STATE_DEPTH_BIAS")
//	// entry.Commands == []string{"vkCmdSetDepthBias", "vkCmdSetDepthBias2EXT"}
//
// A replacement table can be loaded from YAML or JSON with Parse or Load.
package table

import (
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Errors returned by New, Parse and Load.
var (
	ErrEmptyState     = errors.New("entry has no state name")
	ErrEmptyCommands  = errors.New("entry has no setter commands")
	ErrDuplicateState = errors.New("state listed more than once")
)

// Entry lists the setter commands for one dynamic state.
type Entry struct {
	// State is the canonical VkDynamicState name.
	State string `json:"state"`

	// Commands holds at least one command name, primary first.
	Commands []string `json:"commands"`
}

// Primary returns the first listed setter command.
func (e Entry) Primary() string {
	if len(e.Commands) == 0 {
		return ""
	}
	return e.Commands[0]
}

// Table is an ordered set of entries keyed by state name. Callers must not
// modify the command slices it hands out.
type Table struct {
	entries []Entry
	index   map[string]int
}

// New builds a table from entries, keeping their order.
func New(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.State == "" {
			return nil, fmt.Errorf("table: entry %d: %w", i, ErrEmptyState)
		}
		if len(e.Commands) == 0 {
			return nil, fmt.Errorf("table: %s: %w", e.State, ErrEmptyCommands)
		}
		if _, dup := t.index[e.State]; dup {
			return nil, fmt.Errorf("table: %s: %w", e.State, ErrDuplicateState)
		}
		t.index[e.State] = len(t.entries)
		t.entries = append(t.entries, Entry{
			State:    e.State,
			Commands: append([]string(nil), e.Commands...),
		})
	}
	return t, nil
}

// Default returns the built-in table.
func Default() *Table {
	t, err := New(defaultEntries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse decodes a YAML or JSON list of entries.
//
//	- state: VK_DYNAMIC_STATE_VIEWPORT
//	  commands: [vkCmdSetViewport]
func Parse(data []byte) (*Table, error) {
	var entries []Entry
	if err := yaml.UnmarshalStrict(data, &entries); err != nil {
		return nil, fmt.Errorf("table: decode: %w", err)
	}
	return New(entries...)
}

// Load reads and parses a table file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Lookup returns the entry for state. The boolean is false when the table
// has no entry.
func (t *Table) Lookup(state string) (Entry, bool) {
	i, ok := t.index[state]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// States returns the state names in table order.
func (t *Table) States() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.State
	}
	return out
}
