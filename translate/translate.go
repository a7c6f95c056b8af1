// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package translate

import (
	"errors"
	"fmt"

	"github.com/gogpu/d3dcompile"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/hlsl"
	"github.com/gogpu/naga/ir"
)

// ErrDXILTarget is returned when a shader model that requires DXIL is requested.
var ErrDXILTarget = errors.New("translate: shader model requires DXIL, which d3dcompiler cannot produce")

// Options configures WGSL compilation.
type Options struct {
	// ShaderModel selects the target profile version. Defaults to 5.0.
	ShaderModel hlsl.ShaderModel

	// Validate runs naga's IR validation before generating HLSL.
	Validate bool

	// Flags and EffectFlags are passed to the Direct3D compiler.
	Flags       d3dcompile.CompileFlags
	EffectFlags d3dcompile.EffectFlags

	// Macros are passed to the Direct3D compiler.
	Macros []d3dcompile.ShaderMacro
}

// DefaultOptions returns options targeting Shader Model 5.0 with validation.
func DefaultOptions() *Options {
	return &Options{
		ShaderModel: hlsl.ShaderModel5_0,
		Validate:    true,
	}
}

// Shader is a WGSL entry point translated to HLSL.
type Shader struct {
	// Source is the generated HLSL.
	Source string

	// EntryPoint is the HLSL name of the entry function.
	EntryPoint string

	// Stage is the Direct3D stage of the entry point.
	Stage d3dcompile.Stage

	// Target is the profile to compile Source with, e.g. "ps_5_0".
	Target string

	// Info is naga's translation metadata.
	Info *hlsl.TranslationInfo
}

// WGSL translates the entry point named entry from WGSL source to HLSL.
// If entry is empty the first entry point is used.
func WGSL(source, entry string, opts *Options) (*Shader, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.ShaderModel.SupportsDXIL() {
		return nil, fmt.Errorf("%w: %s", ErrDXILTarget, opts.ShaderModel)
	}

	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("translate: lowering error: %w", err)
	}

	if opts.Validate {
		validationErrors, err := naga.Validate(module)
		if err != nil {
			return nil, fmt.Errorf("translate: validation error: %w", err)
		}
		if len(validationErrors) > 0 {
			return nil, fmt.Errorf("translate: validation failed: %w", &validationErrors[0])
		}
	}

	ep, err := findEntryPoint(module, entry)
	if err != nil {
		return nil, err
	}
	stage, err := stageOf(ep.Stage)
	if err != nil {
		return nil, err
	}

	hlslOpts := hlsl.DefaultOptions()
	hlslOpts.ShaderModel = opts.ShaderModel
	hlslOpts.EntryPoint = ep.Name

	code, info, err := hlsl.Compile(module, hlslOpts)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	name := ep.Name
	if info != nil {
		if mapped, ok := info.EntryPointNames[ep.Name]; ok && mapped != "" {
			name = mapped
		}
	}

	return &Shader{
		Source:     code,
		EntryPoint: name,
		Stage:      stage,
		Target:     d3dcompile.Profile(stage, opts.ShaderModel),
		Info:       info,
	}, nil
}

// CompileWGSL translates WGSL source and compiles the result with c.
// The returned values follow d3dcompile.Compiler.Compile; translation
// failures are returned as errors with no diagnostics.
func CompileWGSL(c *d3dcompile.Compiler, source, entry string, opts *Options) ([]byte, *d3dcompile.Artifact, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	shader, err := WGSL(source, entry, opts)
	if err != nil {
		return nil, nil, err
	}

	return c.Compile([]byte(shader.Source), shader.EntryPoint+".hlsl", &d3dcompile.Options{
		Macros:      opts.Macros,
		EntryPoint:  shader.EntryPoint,
		Target:      shader.Target,
		Flags:       opts.Flags,
		EffectFlags: opts.EffectFlags,
	})
}

func findEntryPoint(module *ir.Module, name string) (*ir.EntryPoint, error) {
	if len(module.EntryPoints) == 0 {
		return nil, errors.New("translate: module has no entry points")
	}
	if name == "" {
		return &module.EntryPoints[0], nil
	}
	for i := range module.EntryPoints {
		if module.EntryPoints[i].Name == name {
			return &module.EntryPoints[i], nil
		}
	}
	return nil, fmt.Errorf("translate: entry point %q not found", name)
}

func stageOf(s ir.ShaderStage) (d3dcompile.Stage, error) {
	switch s {
	case ir.StageVertex:
		return d3dcompile.StageVertex, nil
	case ir.StageFragment:
		return d3dcompile.StagePixel, nil
	case ir.StageCompute:
		return d3dcompile.StageCompute, nil
	default:
		return 0, fmt.Errorf("translate: unsupported shader stage %d", s)
	}
}
