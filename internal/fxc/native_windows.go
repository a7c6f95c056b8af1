// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package fxc

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	d3dcompiler = windows.NewLazySystemDLL("d3dcompiler_47.dll")

	procD3DCompileFromFile = d3dcompiler.NewProc("D3DCompileFromFile")
	procD3DCompile         = d3dcompiler.NewProc("D3DCompile")
)

type nativeBackend struct{}

// CompileFromFile calls
//
//	HRESULT D3DCompileFromFile(LPCWSTR, const D3D_SHADER_MACRO*, ID3DInclude*,
//	    LPCSTR, LPCSTR, UINT, UINT, ID3DBlob**, ID3DBlob**)
func (nativeBackend) CompileFromFile(c *Call) (Result, error) {
	if err := procD3DCompileFromFile.Find(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Output slots start nil and are only read after the call returns.
	var code, diag *d3dBlob
	r, _, _ := procD3DCompileFromFile.Call(
		uintptr(unsafe.Pointer(c.Path)),
		uintptr(c.Macros),
		c.Include,
		uintptr(unsafe.Pointer(c.EntryPoint)),
		uintptr(unsafe.Pointer(c.Target)),
		uintptr(c.Flags1),
		uintptr(c.Flags2),
		uintptr(unsafe.Pointer(&code)),
		uintptr(unsafe.Pointer(&diag)),
	)

	return Result{
		Code:        wrapBlob(code),
		Diagnostics: wrapBlob(diag),
		HResult:     HRESULT(r),
	}, nil
}

// Compile calls
//
//	HRESULT D3DCompile(LPCVOID, SIZE_T, LPCSTR, const D3D_SHADER_MACRO*,
//	    ID3DInclude*, LPCSTR, LPCSTR, UINT, UINT, ID3DBlob**, ID3DBlob**)
func (nativeBackend) Compile(c *Call) (Result, error) {
	if err := procD3DCompile.Find(); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var src uintptr
	if len(c.Source) > 0 {
		src = uintptr(unsafe.Pointer(&c.Source[0]))
	}

	var code, diag *d3dBlob
	r, _, _ := procD3DCompile.Call(
		src,
		uintptr(len(c.Source)),
		uintptr(unsafe.Pointer(c.SourceName)),
		uintptr(c.Macros),
		c.Include,
		uintptr(unsafe.Pointer(c.EntryPoint)),
		uintptr(unsafe.Pointer(c.Target)),
		uintptr(c.Flags1),
		uintptr(c.Flags2),
		uintptr(unsafe.Pointer(&code)),
		uintptr(unsafe.Pointer(&diag)),
	)

	return Result{
		Code:        wrapBlob(code),
		Diagnostics: wrapBlob(diag),
		HResult:     HRESULT(r),
	}, nil
}

// d3dBlob is the COM layout of ID3DBlob.
type d3dBlob struct {
	vtbl *struct {
		QueryInterface   uintptr
		AddRef           uintptr
		Release          uintptr
		GetBufferPointer uintptr
		GetBufferSize    uintptr
	}
}

// wrapBlob avoids returning a typed nil inside the Blob interface.
func wrapBlob(b *d3dBlob) Blob {
	if b == nil {
		return nil
	}
	return b
}

func (b *d3dBlob) Pointer() unsafe.Pointer {
	r, _, _ := syscall.SyscallN(b.vtbl.GetBufferPointer, uintptr(unsafe.Pointer(b)))
	return *(*unsafe.Pointer)(unsafe.Pointer(&r))
}

func (b *d3dBlob) Size() uintptr {
	r, _, _ := syscall.SyscallN(b.vtbl.GetBufferSize, uintptr(unsafe.Pointer(b)))
	return r
}

func (b *d3dBlob) Release() {
	syscall.SyscallN(b.vtbl.Release, uintptr(unsafe.Pointer(b)))
}
