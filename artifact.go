// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package d3dcompile

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Artifact is a Go-owned copy of a buffer produced by the compiler.
//
// A nil *Artifact means the compiler produced no buffer at all, which is
// different from a non-nil Artifact of length zero. All methods accept a
// nil receiver.
type Artifact struct {
	data []byte
}

// NewArtifact returns an Artifact holding a copy of data.
func NewArtifact(data []byte) *Artifact {
	return &Artifact{data: append([]byte{}, data...)}
}

// newArtifact wraps the result of fxc.Extract.
func newArtifact(data []byte, present bool) *Artifact {
	if !present {
		return nil
	}
	return &Artifact{data: data}
}

// Bytes returns the raw buffer contents.
func (a *Artifact) Bytes() []byte {
	if a == nil {
		return nil
	}
	return a.data
}

// Len returns the buffer length in bytes.
func (a *Artifact) Len() int {
	if a == nil {
		return 0
	}
	return len(a.data)
}

// Text decodes the buffer as diagnostic text.
//
// The compiler writes messages in the ANSI code page and terminates them
// with NUL; the terminator is dropped and the bytes are decoded as
// Windows-1252, so file names with accented characters survive.
func (a *Artifact) Text() string {
	if a == nil {
		return ""
	}
	raw := bytes.TrimRight(a.data, "\x00")
	text, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(text)
}

// Lines returns the non-empty lines of Text.
func (a *Artifact) Lines() []string {
	var lines []string
	for _, line := range strings.Split(a.Text(), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// String returns Text.
func (a *Artifact) String() string {
	return a.Text()
}
