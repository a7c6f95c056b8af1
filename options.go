// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import "github.com/gogpu/d3dcompile/internal/marshal"

// ShaderMacro is a preprocessor definition, equivalent to
// "#define Name Definition" at the top of the source.
// Names are not deduplicated.
type ShaderMacro struct {
	Name       string
	Definition string
}

// Include is an ID3DInclude pointer handed to the compiler unchanged.
// d3dcompile never resolves includes itself.
//
// Besides the two constants below, a caller may pass its own handler: a
// pointer to a struct whose first field points at a vtable of two
// callbacks, Open and Close, created with syscall.NewCallback. The struct
// and vtable must not move and must stay reachable until the compile call
// returns, for example by allocating them with windows.VirtualAlloc or by
// pinning them with a runtime.Pinner. The compiler calls Open and Close on
// the calling goroutine's thread.
type Include uintptr

const (
	// NoInclude makes any #include directive fail.
	NoInclude Include = 0

	// StandardFileInclude is D3D_COMPILE_STANDARD_FILE_INCLUDE: includes are
	// resolved relative to the including file by the compiler.
	StandardFileInclude Include = 1
)

// Options configures a compile call.
type Options struct {
	// Macros are passed in order. Empty means no macros.
	Macros []ShaderMacro

	// Include resolves #include directives.
	Include Include

	// EntryPoint is the name of the shader entry function. Must be ASCII.
	EntryPoint string

	// Target is the profile, e.g. "ps_5_0". Must be ASCII. See Profile.
	Target string

	// Flags are the general compile options.
	Flags CompileFlags

	// EffectFlags are the effect compile options.
	EffectFlags EffectFlags
}

// DefaultOptions returns options for a "main" pixel shader on ps_5_0.
func DefaultOptions() *Options {
	return &Options{
		Include:    NoInclude,
		EntryPoint: "main",
		Target:     "ps_5_0",
	}
}

func (o *Options) macros() []marshal.Macro {
	if len(o.Macros) == 0 {
		return nil
	}
	out := make([]marshal.Macro, len(o.Macros))
	for i, m := range o.Macros {
		out[i] = marshal.Macro{Name: m.Name, Definition: m.Definition}
	}
	return out
}
