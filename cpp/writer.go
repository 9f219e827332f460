// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cpp

import (
	"fmt"
	"strings"

	"github.com/gogpu/dynstate/cbstate"
)

// licenseBody follows the copyright lines of the generated preamble.
var licenseBody = []string{
	"",
	`Licensed under the Apache License, Version 2.0 (the "License");`,
	"you may not use this file except in compliance with the License.",
	"You may obtain a copy of the License at",
	"",
	"    http://www.apache.org/licenses/LICENSE-2.0",
	"",
	"Unless required by applicable law or agreed to in writing, software",
	`distributed under the License is distributed on an "AS IS" BASIS,`,
	"WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.",
	"See the License for the specific language governing permissions and",
	"limitations under the License.",
}

// Writer generates C++ source text for one enumeration.
type Writer struct {
	enum    *cbstate.Enumeration
	options *Options

	// Output buffer
	out strings.Builder

	// Current indentation level
	indent int
}

// newWriter creates a new C++ writer.
func newWriter(e *cbstate.Enumeration, options *Options) *Writer {
	return &Writer{
		enum:    e,
		options: options,
	}
}

// String returns the generated text.
func (w *Writer) String() string {
	return w.out.String()
}

// writePreamble writes the do-not-edit banner and the license block.
func (w *Writer) writePreamble() {
	w.writeLine("// *** THIS FILE IS GENERATED - DO NOT EDIT ***")
	w.writeLine("// See %s for modifications", w.options.Generator)
	w.writeLine("")

	if len(w.options.Copyright) == 0 {
		return
	}
	w.writeLine("/***************************************************************************")
	w.writeLine(" *")
	for _, holder := range w.options.Copyright {
		w.writeLine(" * Copyright (c) %s", holder)
	}
	for _, line := range licenseBody {
		if line == "" {
			w.writeLine(" *")
			continue
		}
		w.writeLine(" * %s", line)
	}
	w.writeLine(" ****************************************************************************/")
	w.writeLine("")
}

// writeInclude writes one include directive.
func (w *Writer) writeInclude(inc string) {
	if strings.HasPrefix(inc, "<") {
		w.writeLine("#include %s", inc)
		return
	}
	w.writeLine("#include \"%s\"", inc)
}

// Output helpers

// writeLine writes a line with indentation and newline. Empty lines carry
// no indentation.
//
//nolint:goprintffuncname
func (w *Writer) writeLine(format string, args ...any) {
	if format == "" {
		w.out.WriteByte('\n')
		return
	}
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

// writeIndent writes the current indentation.
func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// cString quotes s as a C++ string literal.
func cString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
