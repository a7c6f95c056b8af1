// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/gogpu/d3dcompile/internal/fxc"
)

func TestCompileError_Error(t *testing.T) {
	tests := []struct {
		err  *CompileError
		want string
	}{
		{&CompileError{Source: "a.hlsl", HResult: fxc.E_FAIL}, "d3dcompile: compilation of a.hlsl failed (E_FAIL)"},
		{&CompileError{HResult: fxc.E_FILE_NOT_FOUND}, "d3dcompile: compilation failed (ERROR_FILE_NOT_FOUND)"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWriteError_Unwrap(t *testing.T) {
	pathErr := &os.PathError{Op: "open", Path: "out.cso", Err: fs.ErrPermission}
	err := error(&WriteError{Path: "out.cso", Err: pathErr})

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false")
	}
	var pe *os.PathError
	if !errors.As(err, &pe) {
		t.Error("errors.As(err, *os.PathError) = false")
	}
	if !strings.Contains(err.Error(), "out.cso") {
		t.Errorf("Error() = %q, want path", err.Error())
	}
}
