// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cpp emits the C++ dynamic state helpers for a renumbered
// VkDynamicState enumeration.
//
// Two artifacts are produced, selected by file name:
//
//   - dynamic_state_helper.h: the CBDynamicState enum, the CBDynamicFlags
//     bitset alias and the helper declarations
//   - dynamic_state_helper.cpp: conversion switches, the flag joiners and
//     DescribeDynamicStateCommand
//
// # Basic Usage
//
//	e, _ := cbstate.New(registry.Builtin().Names(), table.Default())
//	header, info, err := cpp.Compile(e, cpp.HeaderFile, cpp.DefaultOptions())
//
// # Unknown Artifacts
//
// Any other file name yields the preamble and a comment saying there is
// nothing to generate. This is not an error.
//
// The generated code expects string_VkDynamicState, vvl::Func and
// String(vvl::Func) to be declared by the included headers.
package cpp
