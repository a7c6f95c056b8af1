// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build !windows

package fxc

type nativeBackend struct{}

func (nativeBackend) CompileFromFile(*Call) (Result, error) {
	return Result{}, ErrUnavailable
}

func (nativeBackend) Compile(*Call) (Result, error) {
	return Result{}, ErrUnavailable
}
