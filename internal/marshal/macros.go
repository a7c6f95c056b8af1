// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package marshal

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Macro is a preprocessor name/definition pair in Go form.
type Macro struct {
	Name       string
	Definition string
}

// MacroEntry mirrors D3D_SHADER_MACRO: two LPCSTR fields.
// The terminating entry has both fields nil.
type MacroEntry struct {
	Name       *byte
	Definition *byte
}

// MacroArray owns the encoded macro buffers together with the
// pointer view into them. The view is only valid while the MacroArray
// is reachable; keep it alive until the native call has returned.
type MacroArray struct {
	names   [][]byte
	defs    [][]byte
	entries []MacroEntry
}

// BuildMacros encodes macros into a sentinel-terminated MacroArray.
//
// For an empty list the result has no entries and Pointer returns nil, so
// the compiler sees "no macros" without a sentinel-only array. Duplicate
// names are passed through. The first encoding failure aborts the build.
func BuildMacros(macros []Macro) (*MacroArray, error) {
	a := &MacroArray{}
	if len(macros) == 0 {
		return a, nil
	}

	a.names = make([][]byte, 0, len(macros))
	a.defs = make([][]byte, 0, len(macros))
	a.entries = make([]MacroEntry, 0, len(macros)+1)

	for i, m := range macros {
		name, err := EncodeArg(fmt.Sprintf("macro[%d].name", i), m.Name)
		if err != nil {
			return nil, err
		}
		def, err := EncodeArg(fmt.Sprintf("macro[%d].definition", i), m.Definition)
		if err != nil {
			return nil, err
		}
		a.names = append(a.names, name)
		a.defs = append(a.defs, def)
		a.entries = append(a.entries, MacroEntry{Name: &name[0], Definition: &def[0]})
	}

	// D3D_SHADER_MACRO arrays carry no length; the compiler stops at {NULL, NULL}.
	a.entries = append(a.entries, MacroEntry{})

	return a, nil
}

// Len returns the number of macros, excluding the sentinel.
func (a *MacroArray) Len() int {
	return len(a.names)
}

// Entries returns the pointer view, including the sentinel when non-empty.
func (a *MacroArray) Entries() []MacroEntry {
	return a.entries
}

// Pointer returns the address of the first entry, or nil for an empty array.
func (a *MacroArray) Pointer() unsafe.Pointer {
	if a == nil || len(a.entries) == 0 {
		return nil
	}
	return unsafe.Pointer(&a.entries[0])
}

// Pin pins the entry array and every buffer it points to, so the view may be
// handed to native code. The caller must call p.Unpin after the call returns.
func (a *MacroArray) Pin(p *runtime.Pinner) {
	if a == nil || len(a.entries) == 0 {
		return
	}
	p.Pin(&a.entries[0])
	for i := range a.names {
		p.Pin(&a.names[i][0])
		p.Pin(&a.defs[i][0])
	}
}

// ReadMacros walks a native macro array starting at ptr until the sentinel
// and decodes each entry. A nil ptr yields nil. It is the inverse of
// BuildMacros and is used by backends that inspect marshaled input.
func ReadMacros(ptr unsafe.Pointer) []Macro {
	if ptr == nil {
		return nil
	}
	var out []Macro
	for e := (*MacroEntry)(ptr); e.Name != nil || e.Definition != nil; e = (*MacroEntry)(unsafe.Add(unsafe.Pointer(e), unsafe.Sizeof(MacroEntry{}))) {
		out = append(out, Macro{Name: CString(e.Name), Definition: CString(e.Definition)})
	}
	return out
}

// CString copies the NUL-terminated byte string at p into a Go string.
func CString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// WString copies the NUL-terminated UTF-16 string at p into a Go string.
func WString(p *uint16) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*uint16)(unsafe.Add(unsafe.Pointer(p), n*2)) != 0 {
		n++
	}
	return DecodeWide(unsafe.Slice(p, n))
}
