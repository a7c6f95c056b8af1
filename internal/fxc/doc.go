// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package fxc invokes the Direct3D shader compiler (d3dcompiler_47.dll)
// and copies its output blobs into Go memory.
//
// The package works on already-marshaled arguments: raw pointers to
// NUL-terminated buffers built by package marshal. Callers are responsible
// for keeping those buffers alive and pinned for the duration of a call.
//
// On platforms other than Windows the native backend always reports
// ErrUnavailable.
package fxc
