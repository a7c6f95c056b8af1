// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import (
	"os"
	"runtime"

	"github.com/gogpu/d3dcompile/internal/fxc"
	"github.com/gogpu/d3dcompile/internal/marshal"
)

// Compiler invokes the native shader compiler.
//
// A Compiler holds no per-call state and is safe for concurrent use.
// Every buffer a call marshals is private to that call. The zero value
// uses the native compiler.
type Compiler struct {
	backend fxc.Backend
}

func (c *Compiler) impl() fxc.Backend {
	if c.backend == nil {
		return fxc.Native()
	}
	return c.backend
}

// New returns a Compiler backed by d3dcompiler_47.dll.
// The DLL is loaded on first use; on other platforms every call
// fails with ErrUnavailable.
func New() *Compiler {
	return &Compiler{backend: fxc.Native()}
}

var defaultCompiler = New()

// CompileFromFile compiles the shader at path with the default Compiler.
func CompileFromFile(path string, opts *Options) ([]byte, *Artifact, error) {
	return defaultCompiler.CompileFromFile(path, opts)
}

// CompileFromFileToFile compiles the shader at path with the default
// Compiler and writes the bytecode to out.
func CompileFromFileToFile(path, out string, opts *Options) (*Artifact, error) {
	return defaultCompiler.CompileFromFileToFile(path, out, opts)
}

// Compile compiles in-memory HLSL source with the default Compiler.
func Compile(source []byte, sourceName string, opts *Options) ([]byte, *Artifact, error) {
	return defaultCompiler.Compile(source, sourceName, opts)
}

// CompileFromFile compiles the shader at path.
//
// The three results are independent:
//   - On success the bytecode is non-nil; diagnostics may still be present
//     and should be treated as warnings.
//   - If an argument cannot be encoded the error is an *EncodingError, the
//     compiler is not called and diagnostics are nil.
//   - If the compiler fails the error is a *CompileError and diagnostics
//     hold whatever the compiler reported, possibly nothing.
func (c *Compiler) CompileFromFile(path string, opts *Options) ([]byte, *Artifact, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	in, err := marshalInputs(opts)
	if err != nil {
		return nil, nil, err
	}
	in.path, err = marshal.EncodePathArg("path", path)
	if err != nil {
		return nil, nil, err
	}

	Logger().Debug("d3dcompile: compiling file",
		"path", path,
		"entry", opts.EntryPoint,
		"target", opts.Target,
		"macros", in.macros.Len(),
		"flags", opts.Flags,
		"effect_flags", opts.EffectFlags,
	)

	return c.invoke(in, path, c.impl().CompileFromFile)
}

// Compile compiles in-memory HLSL source. sourceName appears in
// diagnostics; it must be ASCII and may be empty.
func (c *Compiler) Compile(source []byte, sourceName string, opts *Options) ([]byte, *Artifact, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	in, err := marshalInputs(opts)
	if err != nil {
		return nil, nil, err
	}
	if sourceName != "" {
		in.sourceName, err = marshal.EncodeArg("source name", sourceName)
		if err != nil {
			return nil, nil, err
		}
	}
	in.source = source

	Logger().Debug("d3dcompile: compiling source",
		"name", sourceName,
		"size", len(source),
		"entry", opts.EntryPoint,
		"target", opts.Target,
		"macros", in.macros.Len(),
		"flags", opts.Flags,
	)

	return c.invoke(in, sourceName, c.impl().Compile)
}

// CompileFromFileToFile compiles the shader at path and writes the
// bytecode to out, replacing any existing file.
//
// Diagnostics are returned whatever the outcome. A failure to write the
// file is reported as a *WriteError.
func (c *Compiler) CompileFromFileToFile(path, out string, opts *Options) (*Artifact, error) {
	code, diagnostics, err := c.CompileFromFile(path, opts)
	if err != nil {
		return diagnostics, err
	}

	if err := writeBytecode(out, code); err != nil {
		return diagnostics, &WriteError{Path: out, Err: err}
	}

	Logger().Debug("d3dcompile: wrote bytecode", "path", out, "bytes", len(code))
	return diagnostics, nil
}

func writeBytecode(path string, code []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(code); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// inputs owns every buffer marshaled for one call.
type inputs struct {
	opts       *Options
	path       []uint16
	source     []byte
	sourceName []byte
	entry      []byte
	target     []byte
	macros     *marshal.MacroArray
}

// marshalInputs encodes the option strings and macros. Any failure aborts
// before anything is handed to the compiler.
func marshalInputs(opts *Options) (*inputs, error) {
	entry, err := marshal.EncodeArg("entry point", opts.EntryPoint)
	if err != nil {
		return nil, err
	}
	target, err := marshal.EncodeArg("target", opts.Target)
	if err != nil {
		return nil, err
	}
	macros, err := marshal.BuildMacros(opts.macros())
	if err != nil {
		return nil, err
	}
	return &inputs{
		opts:   opts,
		entry:  entry,
		target: target,
		macros: macros,
	}, nil
}

// pin pins every buffer that the call references.
func (in *inputs) pin(p *runtime.Pinner) {
	for _, b := range [][]byte{in.source, in.sourceName, in.entry, in.target} {
		if len(b) > 0 {
			p.Pin(&b[0])
		}
	}
	if len(in.path) > 0 {
		p.Pin(&in.path[0])
	}
	in.macros.Pin(p)
}

func (in *inputs) call() *fxc.Call {
	c := &fxc.Call{
		Source:     in.source,
		Macros:     in.macros.Pointer(),
		Include:    uintptr(in.opts.Include),
		EntryPoint: &in.entry[0],
		Target:     &in.target[0],
		Flags1:     uint32(in.opts.Flags),
		Flags2:     uint32(in.opts.EffectFlags),
	}
	if len(in.path) > 0 {
		c.Path = &in.path[0]
	}
	if len(in.sourceName) > 0 {
		c.SourceName = &in.sourceName[0]
	}
	return c
}

// invoke runs one native call and extracts its outputs.
// The marshaled buffers stay pinned and reachable until fn returns,
// on every return path.
func (c *Compiler) invoke(in *inputs, source string, fn func(*fxc.Call) (fxc.Result, error)) ([]byte, *Artifact, error) {
	var pinner runtime.Pinner
	in.pin(&pinner)
	defer pinner.Unpin()

	res, err := fn(in.call())
	runtime.KeepAlive(in)

	if err != nil {
		fxc.Discard(res.Code)
		fxc.Discard(res.Diagnostics)
		return nil, nil, err
	}

	diagnostics := newArtifact(fxc.Extract(res.Diagnostics))

	if res.HResult.Failed() {
		fxc.Discard(res.Code)
		Logger().Debug("d3dcompile: compilation failed",
			"source", source,
			"hresult", res.HResult,
			"diagnostics", diagnostics.Len(),
		)
		return nil, diagnostics, &CompileError{Source: source, HResult: res.HResult}
	}

	code, _ := fxc.Extract(res.Code)
	if code == nil {
		code = []byte{}
	}

	if diagnostics != nil {
		Logger().Warn("d3dcompile: compiled with diagnostics",
			"source", source,
			"diagnostics", diagnostics.Text(),
		)
	}
	Logger().Debug("d3dcompile: compiled", "source", source, "bytes", len(code))

	return code, diagnostics, nil
}
