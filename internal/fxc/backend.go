// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package fxc

import (
	"errors"
	"unsafe"
)

// ErrUnavailable is returned when the native compiler cannot be loaded.
var ErrUnavailable = errors.New("fxc: d3dcompiler_47.dll is not available")

// Call holds the marshaled arguments of a single compiler invocation.
// Pointer fields reference buffers owned by the caller.
type Call struct {
	// Path is the UTF-16 source file name (D3DCompileFromFile only).
	Path *uint16

	// Source is the in-memory shader source (D3DCompile only).
	Source []byte

	// SourceName is the optional ASCII name used in diagnostics (D3DCompile only).
	SourceName *byte

	// Macros points to a sentinel-terminated D3D_SHADER_MACRO array, or nil.
	Macros unsafe.Pointer

	// Include is an ID3DInclude pointer forwarded as-is.
	Include uintptr

	// EntryPoint and Target are ASCII strings.
	EntryPoint *byte
	Target     *byte

	// Flags1 holds D3DCOMPILE_* flags, Flags2 holds D3DCOMPILE_EFFECT_* flags.
	Flags1 uint32
	Flags2 uint32
}

// Result is what the compiler hands back: up to two blobs and an HRESULT.
// Either blob may be nil regardless of the HRESULT.
type Result struct {
	Code        Blob
	Diagnostics Blob
	HResult     HRESULT
}

// Backend performs the native compile call.
type Backend interface {
	// CompileFromFile calls D3DCompileFromFile.
	CompileFromFile(c *Call) (Result, error)

	// Compile calls D3DCompile.
	Compile(c *Call) (Result, error)
}

// Native returns the backend backed by d3dcompiler_47.dll.
func Native() Backend {
	return nativeBackend{}
}
