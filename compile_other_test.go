// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build !windows

package d3dcompile

import (
	"errors"
	"testing"
)

func TestNativeUnavailable(t *testing.T) {
	_, diagnostics, err := CompileFromFile("testdata/pixel_shader.hlsl", DefaultOptions())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
	if diagnostics != nil {
		t.Errorf("diagnostics = %v, want none", diagnostics)
	}

	var zero Compiler
	if _, _, err := zero.Compile([]byte("x"), "", nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("zero Compiler error = %v, want ErrUnavailable", err)
	}
}
