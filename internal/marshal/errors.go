// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package marshal

import "fmt"

// EncodingErrorKind categorizes string encoding failures.
type EncodingErrorKind uint8

const (
	// NonASCII indicates an identifier contains a character outside 0x00-0x7F.
	NonASCII EncodingErrorKind = iota

	// EmbeddedNull indicates a string contains an interior NUL and cannot be
	// represented as a NUL-terminated native string.
	EmbeddedNull

	// InvalidUTF8 indicates a path is not valid UTF-8 and has no UTF-16 form.
	InvalidUTF8
)

// String returns a human-readable error kind name.
func (k EncodingErrorKind) String() string {
	switch k {
	case NonASCII:
		return "NonASCII"
	case EmbeddedNull:
		return "EmbeddedNull"
	case InvalidUTF8:
		return "InvalidUTF8"
	default:
		return "Unknown"
	}
}

// EncodingError reports a string that cannot be marshaled.
type EncodingError struct {
	// Arg names the argument being encoded, e.g. "entry point" or "macro[2].name".
	// Empty when the encoder was called directly.
	Arg string

	// Kind categorizes the error.
	Kind EncodingErrorKind

	// Offset is the byte offset of the offending character in the input.
	Offset int
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	var what string
	switch e.Kind {
	case NonASCII:
		what = "contains non-ASCII characters"
	case EmbeddedNull:
		what = "contains an interior NUL"
	case InvalidUTF8:
		what = "contains invalid UTF-8"
	default:
		what = "cannot be encoded"
	}
	if e.Arg == "" {
		return fmt.Sprintf("string %s at offset %d", what, e.Offset)
	}
	return fmt.Sprintf("%s %s at offset %d", e.Arg, what, e.Offset)
}

// withArg returns a copy of err naming arg, or err unchanged if it is not
// an *EncodingError.
func withArg(err error, arg string) error {
	if e, ok := err.(*EncodingError); ok {
		c := *e
		c.Arg = arg
		return &c
	}
	return err
}
