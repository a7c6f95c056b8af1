// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package d3dcompile compiles HLSL shaders with the Direct3D shader
// compiler (d3dcompiler_47.dll, the compiler behind fxc.exe).
//
// The package is a thin, safe layer over D3DCompileFromFile and D3DCompile.
// It converts Go strings into the NUL-terminated UTF-16 and ASCII buffers
// the compiler expects, keeps those buffers pinned for the duration of the
// call, and copies the bytecode and diagnostic blobs into Go memory before
// the compiler's blobs are released.
//
// Example usage:
//
//	opts := d3dcompile.DefaultOptions()
//	opts.EntryPoint = "PShader"
//	opts.Target = d3dcompile.Profile(d3dcompile.StagePixel, hlsl.ShaderModel5_0)
//	opts.Macros = []d3dcompile.ShaderMacro{{Name: "USE_FOG", Definition: "1"}}
//
//	code, diagnostics, err := d3dcompile.CompileFromFile("pixel.hlsl", opts)
//	if err != nil {
//	    log.Fatalf("%v\n%s", err, diagnostics)
//	}
//	if diagnostics != nil {
//	    log.Printf("warnings:\n%s", diagnostics)
//	}
//
// # Results
//
// Every compile returns bytecode, diagnostics and an error independently.
// Diagnostics may accompany a successful compilation (warnings) as well as a
// failed one. A nil *Artifact means the compiler produced no diagnostics.
//
// # Errors
//
//   - *EncodingError: an argument is not representable (non-ASCII
//     identifier, a string with an interior NUL, or a path that is not
//     valid UTF-8). The compiler is not called.
//   - *CompileError: the compiler rejected the shader.
//   - *WriteError: the bytecode could not be written (CompileFromFileToFile).
//   - ErrUnavailable: the compiler DLL could not be loaded. This is always
//     the case on platforms other than Windows.
//
// WGSL sources can be compiled through the translate subpackage, which
// translates them to HLSL with naga first.
package d3dcompile
