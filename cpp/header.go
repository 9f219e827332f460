// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/gogpu/dynstate/cbstate"

// Helper function declarations, in the order they are declared.
var headerDeclarations = []string{
	"VkDynamicState ConvertToDynamicState(CBDynamicState dynamic_state);",
	"CBDynamicState ConvertToCBDynamicState(VkDynamicState dynamic_state);",
	"const char* DynamicStateToString(CBDynamicState dynamic_state);",
	"std::string DynamicStatesToString(CBDynamicFlags const& dynamic_states);",
	"std::string DynamicStatesCommandsToString(CBDynamicFlags const& dynamic_states);",
	"",
	"std::string DescribeDynamicStateCommand(CBDynamicState dynamic_state);",
}

// writeHeader writes dynamic_state_helper.h.
func (w *Writer) writeHeader() {
	w.writeLine("#pragma once")
	w.writeLine("#include <bitset>")
	w.writeLine("")

	w.writeLine("// Reorders VkDynamicState so it can be a bitset")
	w.writeLine("typedef enum CBDynamicState {")
	w.pushIndent()
	for _, s := range w.enum.States() {
		w.writeLine("%s = %d,", w.enum.Symbol(s), s)
	}
	w.writeLine("%s = %d", cbstate.StatusNumSymbol, w.enum.StatusNum())
	w.popIndent()
	w.writeLine("} CBDynamicState;")
	w.writeLine("")

	w.writeLine("using CBDynamicFlags = std::bitset<%s>;", cbstate.StatusNumSymbol)
	for _, decl := range headerDeclarations {
		w.writeLine("%s", decl)
	}
}
