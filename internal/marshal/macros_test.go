// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package marshal

import (
	"errors"
	"runtime"
	"testing"
)

func TestBuildMacros_Empty(t *testing.T) {
	for _, macros := range [][]Macro{nil, {}} {
		a, err := BuildMacros(macros)
		if err != nil {
			t.Fatalf("BuildMacros(%v) error: %v", macros, err)
		}
		if a.Pointer() != nil {
			t.Errorf("Pointer() = %p, want nil for empty macro list", a.Pointer())
		}
		if len(a.Entries()) != 0 {
			t.Errorf("Entries() has %d entries, want 0", len(a.Entries()))
		}
		if got := ReadMacros(a.Pointer()); got != nil {
			t.Errorf("ReadMacros = %v, want nil", got)
		}
	}
}

func TestBuildMacros_Sentinel(t *testing.T) {
	macros := []Macro{
		{Name: "USE_FOG", Definition: "1"},
		{Name: "LIGHTS", Definition: "4"},
		{Name: "USE_FOG", Definition: "0"},
		{Name: "EMPTY", Definition: ""},
	}

	a, err := BuildMacros(macros)
	if err != nil {
		t.Fatalf("BuildMacros error: %v", err)
	}

	entries := a.Entries()
	if len(entries) != len(macros)+1 {
		t.Fatalf("len(Entries()) = %d, want %d", len(entries), len(macros)+1)
	}
	if a.Len() != len(macros) {
		t.Errorf("Len() = %d, want %d", a.Len(), len(macros))
	}

	last := entries[len(entries)-1]
	if last.Name != nil || last.Definition != nil {
		t.Errorf("last entry = %+v, want {nil, nil}", last)
	}
	for i, e := range entries[:len(macros)] {
		if e.Name == nil || e.Definition == nil {
			t.Fatalf("entry %d has a nil field: %+v", i, e)
		}
		if got := CString(e.Name); got != macros[i].Name {
			t.Errorf("entry %d name = %q, want %q", i, got, macros[i].Name)
		}
		if got := CString(e.Definition); got != macros[i].Definition {
			t.Errorf("entry %d definition = %q, want %q", i, got, macros[i].Definition)
		}
	}

	got := ReadMacros(a.Pointer())
	if len(got) != len(macros) {
		t.Fatalf("ReadMacros returned %d macros, want %d", len(got), len(macros))
	}
	for i := range got {
		if got[i] != macros[i] {
			t.Errorf("ReadMacros[%d] = %+v, want %+v", i, got[i], macros[i])
		}
	}
}

func TestBuildMacros_Errors(t *testing.T) {
	tests := []struct {
		name   string
		macros []Macro
		arg    string
		kind   EncodingErrorKind
	}{
		{
			name:   "non-ascii name",
			macros: []Macro{{Name: "NAMÉ", Definition: "1"}},
			arg:    "macro[0].name",
			kind:   NonASCII,
		},
		{
			name:   "nul in definition",
			macros: []Macro{{Name: "A", Definition: "1"}, {Name: "B", Definition: "x\x00y"}},
			arg:    "macro[1].definition",
			kind:   EmbeddedNull,
		},
		{
			name:   "later entry fails",
			macros: []Macro{{Name: "A", Definition: "1"}, {Name: "B", Definition: "2"}, {Name: "ç", Definition: "3"}},
			arg:    "macro[2].name",
			kind:   NonASCII,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := BuildMacros(tt.macros)
			if a != nil {
				t.Errorf("BuildMacros returned a partial array")
			}
			var encErr *EncodingError
			if !errors.As(err, &encErr) {
				t.Fatalf("error = %v, want *EncodingError", err)
			}
			if encErr.Arg != tt.arg {
				t.Errorf("Arg = %q, want %q", encErr.Arg, tt.arg)
			}
			if encErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", encErr.Kind, tt.kind)
			}
		})
	}
}

func TestMacroArray_Pin(t *testing.T) {
	a, err := BuildMacros([]Macro{{Name: "A", Definition: "1"}, {Name: "B", Definition: "2"}})
	if err != nil {
		t.Fatal(err)
	}

	var p runtime.Pinner
	a.Pin(&p)
	runtime.GC()
	if got := ReadMacros(a.Pointer()); len(got) != 2 || got[1].Name != "B" {
		t.Errorf("ReadMacros after pin = %+v", got)
	}
	p.Unpin()

	// Pinning an empty or nil array is a no-op.
	empty, _ := BuildMacros(nil)
	empty.Pin(&p)
	(*MacroArray)(nil).Pin(&p)
	p.Unpin()
}

func TestWString(t *testing.T) {
	buf, err := EncodeWide("shaders/é.hlsl")
	if err != nil {
		t.Fatal(err)
	}
	if got := WString(&buf[0]); got != "shaders/é.hlsl" {
		t.Errorf("WString = %q", got)
	}
	if got := WString(nil); got != "" {
		t.Errorf("WString(nil) = %q, want empty", got)
	}
	if got := CString(nil); got != "" {
		t.Errorf("CString(nil) = %q, want empty", got)
	}
}
