// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package cpp

import "github.com/gogpu/dynstate/cbstate"

// writeSource writes dynamic_state_helper.cpp.
func (w *Writer) writeSource() {
	for _, inc := range w.options.Includes {
		w.writeInclude(inc)
	}
	if len(w.options.Includes) > 0 {
		w.writeLine("")
	}

	w.writeForwardConversion()
	w.writeLine("")
	w.writeReverseConversion()
	w.writeLine("")
	w.writeToString()
	w.writeLine("")
	w.writeFlagsJoiner("DynamicStatesToString", "|",
		"string_VkDynamicState(ConvertToDynamicState(status))")
	w.writeLine("")
	w.writeFlagsJoiner("DynamicStatesCommandsToString", ", ",
		"DescribeDynamicStateCommand(status)")
	w.writeLine("")
	w.writeDescribeCommand()
}

// writeForwardConversion writes ConvertToDynamicState.
func (w *Writer) writeForwardConversion() {
	w.writeLine("VkDynamicState ConvertToDynamicState(CBDynamicState dynamic_state) {")
	w.pushIndent()
	w.writeLine("switch (dynamic_state) {")
	w.pushIndent()
	for _, s := range w.enum.States() {
		w.writeLine("case %s:", w.enum.Symbol(s))
		w.pushIndent()
		w.writeLine("return %s;", w.enum.Forward(s))
		w.popIndent()
	}
	w.writeLine("default:")
	w.pushIndent()
	w.writeLine("return %s;", cbstate.MaxEnum)
	w.popIndent()
	w.popIndent()
	w.writeLine("}")
	w.popIndent()
	w.writeLine("}")
}

// writeReverseConversion writes ConvertToCBDynamicState.
func (w *Writer) writeReverseConversion() {
	w.writeLine("CBDynamicState ConvertToCBDynamicState(VkDynamicState dynamic_state) {")
	w.pushIndent()
	w.writeLine("switch (dynamic_state) {")
	w.pushIndent()
	for _, name := range w.enum.Canonical() {
		w.writeLine("case %s:", name)
		w.pushIndent()
		w.writeLine("return %s;", w.enum.Symbol(w.enum.Reverse(name)))
		w.popIndent()
	}
	w.writeLine("default:")
	w.pushIndent()
	w.writeLine("return %s;", cbstate.StatusNumSymbol)
	w.popIndent()
	w.popIndent()
	w.writeLine("}")
	w.popIndent()
	w.writeLine("}")
}

// writeToString writes DynamicStateToString.
func (w *Writer) writeToString() {
	w.writeLine("const char* DynamicStateToString(CBDynamicState dynamic_state) {")
	w.pushIndent()
	w.writeLine("return string_VkDynamicState(ConvertToDynamicState(dynamic_state));")
	w.popIndent()
	w.writeLine("}")
}

// writeFlagsJoiner writes a function that joins the text produced by item
// for every set bit, in ordinal order.
func (w *Writer) writeFlagsJoiner(name, sep, item string) {
	w.writeLine("std::string %s(CBDynamicFlags const& dynamic_states) {", name)
	w.pushIndent()
	w.writeLine("std::string ret;")
	w.writeLine("// enum is not zero based")
	w.writeLine("for (int index = 1; index < %s; ++index) {", cbstate.StatusNumSymbol)
	w.pushIndent()
	w.writeLine("CBDynamicState status = static_cast<CBDynamicState>(index);")
	w.writeLine("if (dynamic_states[status]) {")
	w.pushIndent()
	w.writeLine("if (!ret.empty()) ret.append(%s);", cString(sep))
	w.writeLine("ret.append(%s);", item)
	w.popIndent()
	w.writeLine("}")
	w.popIndent()
	w.writeLine("}")
	w.writeLine("if (ret.empty()) ret.append(%s);", cString(cbstate.UnknownState))
	w.writeLine("return ret;")
	w.popIndent()
	w.writeLine("}")
}

// writeDescribeCommand writes DescribeDynamicStateCommand. Cases follow
// table order; the depth bias clause is only written when the feed has
// that state.
func (w *Writer) writeDescribeCommand() {
	fn := w.options.FuncEnum

	w.writeLine("std::string DescribeDynamicStateCommand(CBDynamicState dynamic_state) {")
	w.pushIndent()
	w.writeLine("std::stringstream ss;")
	w.writeLine("%s func = %s::Empty;", fn, fn)
	w.writeLine("switch (dynamic_state) {")
	w.pushIndent()
	for _, d := range w.enum.Descriptors() {
		w.writeLine("case %s:", d.Symbol)
		w.pushIndent()
		w.writeLine("func = %s::%s;", fn, d.Entry.Primary())
		w.writeLine("break;")
		w.popIndent()
	}
	w.writeLine("default:")
	w.pushIndent()
	w.writeLine("ss << %s;", cString(cbstate.UnknownState+" "))
	w.popIndent()
	w.popIndent()
	w.writeLine("}")
	w.writeLine("")
	w.writeLine("ss << String(func);")
	w.writeLine("")

	if s, ok := w.enum.DepthBias(); ok {
		w.writeLine("// Currently only exception that has 2 commands that can set it")
		w.writeLine("if (dynamic_state == %s) {", w.enum.Symbol(s))
		w.pushIndent()
		w.writeLine("ss << \" or \" << String(%s::%s);", fn, cbstate.DepthBias2Command)
		w.popIndent()
		w.writeLine("}")
		w.writeLine("")
	}

	w.writeLine("return ss.str();")
	w.popIndent()
	w.writeLine("}")
}
