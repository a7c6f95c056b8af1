// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package translate compiles WGSL shaders to Direct3D bytecode.
//
// WGSL is first translated to HLSL with naga, then handed to
// d3dcompile.Compiler.Compile:
//
//	code, diagnostics, err := translate.CompileWGSL(d3dcompile.New(), source, "fs_main", nil)
//
// Only shader models 5.0 and 5.1 can be targeted, since the Direct3D
// compiler produces DXBC.
package translate
