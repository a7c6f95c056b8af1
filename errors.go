// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import (
	"fmt"

	"github.com/gogpu/d3dcompile/internal/fxc"
	"github.com/gogpu/d3dcompile/internal/marshal"
)

// EncodingError reports an argument that cannot be converted to the
// native string form. It is returned before the compiler is called.
type EncodingError = marshal.EncodingError

// EncodingErrorKind categorizes encoding errors.
type EncodingErrorKind = marshal.EncodingErrorKind

const (
	// NonASCII indicates an identifier contains non-ASCII characters.
	NonASCII = marshal.NonASCII

	// EmbeddedNull indicates a string contains an interior NUL.
	EmbeddedNull = marshal.EmbeddedNull

	// InvalidUTF8 indicates a path is not valid UTF-8.
	InvalidUTF8 = marshal.InvalidUTF8
)

// HRESULT is the status code returned by the compiler.
type HRESULT = fxc.HRESULT

// ErrUnavailable is returned when d3dcompiler_47.dll cannot be loaded,
// including on every platform other than Windows.
var ErrUnavailable = fxc.ErrUnavailable

// CompileError reports that the compiler rejected the shader.
// Details are in the diagnostics returned alongside it.
type CompileError struct {
	// Source is the file path or source name that was compiled.
	Source string

	// HResult is the failure code returned by the compiler.
	HResult HRESULT
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("d3dcompile: compilation failed (%s)", e.HResult)
	}
	return fmt.Sprintf("d3dcompile: compilation of %s failed (%s)", e.Source, e.HResult)
}

// WriteError reports that compiled bytecode could not be written to disk.
type WriteError struct {
	// Path is the output file.
	Path string

	// Err is the underlying file system error.
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("d3dcompile: write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying file system error.
func (e *WriteError) Unwrap() error {
	return e.Err
}
