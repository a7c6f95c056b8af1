// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package fxc

import "fmt"

// HRESULT is a COM status code.
type HRESULT uint32

// Status codes the compiler is known to return.
const (
	S_OK          HRESULT = 0x00000000
	S_FALSE       HRESULT = 0x00000001
	E_NOTIMPL     HRESULT = 0x80004001
	E_FAIL        HRESULT = 0x80004005
	E_OUTOFMEMORY HRESULT = 0x8007000E
	E_INVALIDARG  HRESULT = 0x80070057

	// HRESULT_FROM_WIN32 values for file access failures.
	E_FILE_NOT_FOUND HRESULT = 0x80070002
	E_PATH_NOT_FOUND HRESULT = 0x80070003
	E_ACCESS_DENIED  HRESULT = 0x80070005
)

// Failed reports whether hr is a failure code (severity bit set).
func (hr HRESULT) Failed() bool {
	return hr&0x80000000 != 0
}

// String returns the symbolic name of hr, or its hex value.
func (hr HRESULT) String() string {
	switch hr {
	case S_OK:
		return "S_OK"
	case S_FALSE:
		return "S_FALSE"
	case E_NOTIMPL:
		return "E_NOTIMPL"
	case E_FAIL:
		return "E_FAIL"
	case E_OUTOFMEMORY:
		return "E_OUTOFMEMORY"
	case E_INVALIDARG:
		return "E_INVALIDARG"
	case E_FILE_NOT_FOUND:
		return "ERROR_FILE_NOT_FOUND"
	case E_PATH_NOT_FOUND:
		return "ERROR_PATH_NOT_FOUND"
	case E_ACCESS_DENIED:
		return "ERROR_ACCESS_DENIED"
	default:
		return fmt.Sprintf("0x%08X", uint32(hr))
	}
}
