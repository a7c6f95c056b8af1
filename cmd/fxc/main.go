// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command fxc compiles HLSL shaders to Direct3D bytecode.
//
// Usage:
//
//	fxc [flags] <input>
//
// Examples:
//
//	fxc -T ps_5_0 -E PShader -o pixel.cso pixel.hlsl    # Compile to file
//	fxc -T vs_5_0 -D SKINNED -D BONES=4 vertex.hlsl     # Compile to stdout with macros
//	fxc --wgsl -E fs_main -o fs.cso shader.wgsl         # Translate WGSL, then compile
//
// Every flag can also be set through the environment (FXC_TARGET,
// FXC_ENTRY, ...) or a YAML file passed with --config.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/d3dcompile"
)

func main() {
	if err := NewCmd(d3dcompile.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
