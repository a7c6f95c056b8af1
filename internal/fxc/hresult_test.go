// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package fxc

import "testing"

func TestHRESULT(t *testing.T) {
	tests := []struct {
		hr     HRESULT
		failed bool
		want   string
	}{
		{S_OK, false, "S_OK"},
		{S_FALSE, false, "S_FALSE"},
		{E_FAIL, true, "E_FAIL"},
		{E_INVALIDARG, true, "E_INVALIDARG"},
		{E_OUTOFMEMORY, true, "E_OUTOFMEMORY"},
		{E_NOTIMPL, true, "E_NOTIMPL"},
		{E_FILE_NOT_FOUND, true, "ERROR_FILE_NOT_FOUND"},
		{E_PATH_NOT_FOUND, true, "ERROR_PATH_NOT_FOUND"},
		{E_ACCESS_DENIED, true, "ERROR_ACCESS_DENIED"},
		{0x887A0005, true, "0x887A0005"},
		{0x00000042, false, "0x00000042"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.hr.Failed(); got != tt.failed {
				t.Errorf("Failed() = %v, want %v", got, tt.failed)
			}
			if got := tt.hr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
