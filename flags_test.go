// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import "testing"

func TestCompileFlags_Values(t *testing.T) {
	// Values must match d3dcompiler.h.
	tests := []struct {
		name string
		flag CompileFlags
		want uint32
	}{
		{"Debug", Debug, 0x1},
		{"SkipValidation", SkipValidation, 0x2},
		{"SkipOptimization", SkipOptimization, 0x4},
		{"PackMatrixRowMajor", PackMatrixRowMajor, 0x8},
		{"PackMatrixColumnMajor", PackMatrixColumnMajor, 0x10},
		{"IEEEStrictness", IEEEStrictness, 0x2000},
		{"OptimizationLevel0", OptimizationLevel0, 0x4000},
		{"OptimizationLevel1", OptimizationLevel1, 0x0},
		{"OptimizationLevel2", OptimizationLevel2, 0xC000},
		{"OptimizationLevel3", OptimizationLevel3, 0x8000},
		{"WarningsAreErrors", WarningsAreErrors, 0x40000},
		{"AllResourcesBound", AllResourcesBound, 0x200000},
		{"DebugNameForBinary", DebugNameForBinary, 0x800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if uint32(tt.flag) != tt.want {
				t.Errorf("%s = %#x, want %#x", tt.name, uint32(tt.flag), tt.want)
			}
		})
	}
}

func TestCompileFlags_OptimizationLevel(t *testing.T) {
	for level := 0; level <= 3; level++ {
		f := (Debug | WarningsAreErrors).WithOptimizationLevel(level)
		if got := f.OptimizationLevel(); got != level {
			t.Errorf("OptimizationLevel() = %d, want %d", got, level)
		}
		if !f.Has(Debug | WarningsAreErrors) {
			t.Errorf("WithOptimizationLevel(%d) dropped other flags: %v", level, f)
		}
	}

	if got := OptimizationLevel3.WithOptimizationLevel(7); got != 0 {
		t.Errorf("WithOptimizationLevel(7) = %#x, want default level", uint32(got))
	}
}

func TestCompileFlags_String(t *testing.T) {
	tests := []struct {
		flags CompileFlags
		want  string
	}{
		{0, "OptimizationLevel1"},
		{Debug | SkipOptimization, "Debug, SkipOptimization, OptimizationLevel1"},
		{OptimizationLevel3 | WarningsAreErrors, "WarningsAreErrors, OptimizationLevel3"},
		{OptimizationLevel2, "OptimizationLevel2"},
		{PackMatrixRowMajor | OptimizationLevel0, "PackMatrixRowMajor, OptimizationLevel0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.flags.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEffectFlags(t *testing.T) {
	if ChildEffect != 1 || AllowSlowOps != 2 {
		t.Fatalf("effect flag values = %d, %d; want 1, 2", ChildEffect, AllowSlowOps)
	}

	tests := []struct {
		flags EffectFlags
		want  string
	}{
		{0, "none"},
		{ChildEffect, "ChildEffect"},
		{AllowSlowOps, "AllowSlowOps"},
		{ChildEffect | AllowSlowOps, "ChildEffect, AllowSlowOps"},
		{1 << 7, "0x80"},
		{ChildEffect | 1<<4, "ChildEffect, 0x10"},
	}

	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("EffectFlags(%d).String() = %q, want %q", tt.flags, got, tt.want)
		}
	}
}
