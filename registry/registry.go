// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package registry loads the canonical VkDynamicState enumeration.
//
// Three sources are supported:
//
//   - the Khronos vk.xml registry (ParseXML)
//   - a YAML or JSON field list (ParseList)
//   - a snapshot embedded in this package (Builtin)
//
// Field order is preserved exactly as the source declares it, which is the
// order the generator renumbers in.
package registry

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DynamicState is the name of the enum the generator consumes.
const DynamicState = "VkDynamicState"

// Field is one enumerant of the canonical enum.
type Field struct {
	// Name is the enumerant name, e.g. VK_DYNAMIC_STATE_LINE_WIDTH.
	Name string `json:"name"`

	// Value is the numeric value from the registry. List feeds may omit it.
	Value int64 `json:"value,omitempty"`

	// Origin names the feature or extension that added the field.
	// Empty for fields declared in the enum block itself.
	Origin string `json:"origin,omitempty"`
}

// Enum is an ordered list of fields.
type Enum struct {
	Name   string  `json:"enum"`
	Fields []Field `json:"fields"`
}

// Len returns the number of fields.
func (e *Enum) Len() int {
	return len(e.Fields)
}

// Names returns the field names in declaration order.
func (e *Enum) Names() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Name
	}
	return names
}

// Field returns the field with the given name.
func (e *Enum) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

//go:embed builtin.yaml
var builtinFeed []byte

// Builtin returns the embedded snapshot of VkDynamicState.
func Builtin() *Enum {
	e, err := ParseList(builtinFeed)
	if err != nil {
		panic("registry: builtin feed: " + err.Error())
	}
	return e
}

// Load reads the named enum from a feed file. Files ending in .xml are
// parsed as vk.xml; .yaml, .yml and .json as field lists.
func Load(path, enum string) (*Enum, error) {
	var (
		e   *Enum
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xml":
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		e, err = ParseXML(f, enum)
	case ".yaml", ".yml", ".json":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		e, err = ParseList(data)
		if err == nil && e.Name != enum {
			err = newError(ErrEnumNotFound, nil, "feed describes %s, not %s", e.Name, enum)
		}
	default:
		return nil, newError(ErrUnsupportedFormat, nil, "%s: unknown feed extension %q", path, ext)
	}
	if err != nil {
		return nil, err
	}

	Logger().Info("loaded canonical feed",
		zap.String("path", path),
		zap.String("enum", e.Name),
		zap.Int("fields", e.Len()))
	return e, nil
}
