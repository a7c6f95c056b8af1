// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package fxc

import "unsafe"

// Blob is a compiler-owned buffer, mirroring ID3DBlob.
type Blob interface {
	// Pointer returns the start of the buffer. It may be nil.
	Pointer() unsafe.Pointer

	// Size returns the buffer length in bytes.
	Size() uintptr

	// Release drops the compiler's reference. The blob must not be used afterwards.
	Release()
}

// Extract copies b into Go memory and releases it.
//
// A nil blob yields (nil, false). A blob that reports a nil buffer pointer
// yields an empty, non-nil slice: some compiler versions return such blobs
// for empty output.
func Extract(b Blob) ([]byte, bool) {
	if b == nil {
		return nil, false
	}
	defer b.Release()

	p := b.Pointer()
	if p == nil {
		return []byte{}, true
	}

	n := b.Size()
	data := make([]byte, n)
	copy(data, unsafe.Slice((*byte)(p), n))
	return data, true
}

// Discard releases b if it is non-nil.
func Discard(b Blob) {
	if b != nil {
		b.Release()
	}
}
