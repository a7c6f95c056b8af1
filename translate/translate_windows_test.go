// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package translate

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/d3dcompile"
)

func TestCompileWGSL_Native(t *testing.T) {
	for _, entry := range []string{"vs_main", "fs_main"} {
		t.Run(entry, func(t *testing.T) {
			code, diagnostics, err := CompileWGSL(d3dcompile.New(), triangleShader, entry, nil)
			if errors.Is(err, d3dcompile.ErrUnavailable) {
				t.Skip(err)
			}
			if err != nil {
				for _, line := range diagnostics.Lines() {
					t.Log(line)
				}
				t.Fatalf("CompileWGSL error: %v", err)
			}
			if !bytes.HasPrefix(code, []byte("DXBC")) {
				t.Error("bytecode does not start with the DXBC magic")
			}
		})
	}
}
