// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import "testing"

func TestArtifact_AbsentVersusEmpty(t *testing.T) {
	absent := newArtifact(nil, false)
	if absent != nil {
		t.Fatalf("newArtifact(nil, false) = %v, want nil", absent)
	}
	if absent.Len() != 0 || absent.Bytes() != nil || absent.Text() != "" || absent.Lines() != nil {
		t.Error("nil Artifact methods should return zero values")
	}

	empty := newArtifact([]byte{}, true)
	if empty == nil {
		t.Fatal("newArtifact([]byte{}, true) = nil, want empty artifact")
	}
	if empty.Len() != 0 {
		t.Errorf("Len() = %d, want 0", empty.Len())
	}
}

func TestArtifact_Text(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"plain", []byte("error X3000: syntax error"), "error X3000: syntax error"},
		{"nul terminated", []byte("warning X3206\x00"), "warning X3206"},
		{"ansi", []byte("C:\\shaders\\caf\xe9.hlsl(3,1): error\x00"), "C:\\shaders\\café.hlsl(3,1): error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArtifact(tt.data, true)
			if got := a.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
			if got := a.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArtifact_Lines(t *testing.T) {
	a := newArtifact([]byte("a.hlsl(1,1): warning X3206\r\n\r\na.hlsl(2,5): error X3004\n\x00"), true)
	got := a.Lines()
	want := []string{"a.hlsl(1,1): warning X3206", "a.hlsl(2,5): error X3004"}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewArtifact_Copies(t *testing.T) {
	data := []byte("warning")
	a := NewArtifact(data)
	data[0] = 'W'
	if got := a.Text(); got != "warning" {
		t.Errorf("Text() = %q, want %q", got, "warning")
	}
	if NewArtifact(nil) == nil {
		t.Error("NewArtifact(nil) should be a present, empty artifact")
	}
}
