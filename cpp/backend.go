// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cpp

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gogpu/dynstate/cbstate"
)

// Artifact file names.
const (
	HeaderFile = "dynamic_state_helper.h"
	SourceFile = "dynamic_state_helper.cpp"
)

// Kind identifies a generated artifact.
type Kind uint8

const (
	// KindUnknown is any file name the emitter has no code for.
	KindUnknown Kind = iota

	// KindHeader is dynamic_state_helper.h.
	KindHeader

	// KindSource is dynamic_state_helper.cpp.
	KindSource
)

// String returns the artifact kind name.
func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSource:
		return "source"
	default:
		return "unknown"
	}
}

// KindForFilename maps a file name, with or without directories, to its
// artifact kind.
func KindForFilename(name string) Kind {
	switch filepath.Base(name) {
	case HeaderFile:
		return KindHeader
	case SourceFile:
		return KindSource
	default:
		return KindUnknown
	}
}

// Filenames returns the artifacts the emitter knows, header first.
func Filenames() []string {
	return []string{HeaderFile, SourceFile}
}

// Options configures code generation.
type Options struct {
	// Generator is named in the "See ... for modifications" banner.
	Generator string `json:"generator"`

	// Copyright lists holder lines for the license block, without the
	// "Copyright (c)" prefix. Empty omits the license block.
	Copyright []string `json:"copyright"`

	// Includes are written at the top of the source file. Entries wrapped
	// in angle brackets are system includes; the rest are quoted.
	Includes []string `json:"includes"`

	// FuncEnum is the command identifier enum used by the descriptor.
	FuncEnum string `json:"funcEnum"`
}

// DefaultOptions returns options matching the Vulkan validation layers.
func DefaultOptions() Options {
	return Options{
		Generator: "dynstategen",
		Copyright: []string{
			"2023-2024 Valve Corporation",
			"2023-2024 LunarG, Inc.",
		},
		Includes: []string{"core_checks/core_validation.h"},
		FuncEnum: "vvl::Func",
	}
}

func (o *Options) validate() error {
	if o.Generator == "" {
		return NewError(ErrInvalidOptions, "generator name is empty")
	}
	if o.FuncEnum == "" {
		return NewError(ErrInvalidOptions, "command enum is empty")
	}
	fields := append([]string{o.Generator, o.FuncEnum}, o.Copyright...)
	fields = append(fields, o.Includes...)
	for _, f := range fields {
		if strings.ContainsAny(f, "\r\n") {
			return NewError(ErrInvalidOptions, fmt.Sprintf("option %q spans several lines", f))
		}
	}
	for _, inc := range o.Includes {
		if inc == "" || strings.Contains(inc, `"`) {
			return NewError(ErrInvalidOptions, fmt.Sprintf("malformed include %q", inc))
		}
	}
	return nil
}

// Info describes a generated artifact.
type Info struct {
	// Kind is the artifact that was written.
	Kind Kind

	// Symbols is the number of CBDynamicState enumerators, including
	// CB_DYNAMIC_STATE_STATUS_NUM. Zero for the source and unknown kinds.
	Symbols int

	// Cases is the number of descriptor switch cases. Zero unless Kind is
	// KindSource.
	Cases int

	// Unknown lists canonical states that describe as unknown because the
	// table has no entry for them.
	Unknown []string
}

// Compile generates the artifact named by filename for e.
func Compile(e *cbstate.Enumeration, filename string, options Options) (string, Info, error) {
	if e == nil {
		return "", Info{}, fmt.Errorf("cpp: %w", NewError(ErrInvalidInput, "nil enumeration"))
	}
	if err := options.validate(); err != nil {
		return "", Info{}, fmt.Errorf("cpp: %w", err)
	}

	w := newWriter(e, &options)
	kind := KindForFilename(filename)
	info := Info{Kind: kind}

	w.writePreamble()
	w.writeLine("// NOLINTBEGIN")
	w.writeLine("")

	switch kind {
	case KindHeader:
		w.writeHeader()
		info.Symbols = e.Len() + 1
	case KindSource:
		w.writeSource()
		info.Cases = len(e.Descriptors())
		info.Unknown = e.Missing()
	default:
		w.writeLine("// File name %s has no code to generate", filename)
		Logger().Warn("no code to generate", zap.String("file", filename))
	}

	w.writeLine("")
	w.writeLine("// NOLINTEND")

	if kind == KindSource {
		for _, name := range info.Unknown {
			Logger().Warn("dynamic state has no setter command entry", zap.String("state", name))
		}
		for _, name := range e.Stale() {
			Logger().Warn("table entry not in canonical enum", zap.String("state", name))
		}
	}
	Logger().Debug("generated artifact",
		zap.String("file", filename),
		zap.Stringer("kind", kind),
		zap.Int("bytes", w.out.Len()))

	return w.String(), info, nil
}
