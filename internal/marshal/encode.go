// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package marshal

import (
	"bytes"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeWide encodes s as a NUL-terminated UTF-16 string.
//
// Invalid UTF-8 fails with InvalidUTF8 and is checked first. A string
// containing NUL fails with EmbeddedNull because wide-string APIs stop at
// the first one.
func EncodeWide(s string) ([]uint16, error) {
	buf := make([]uint16, 0, len(s)+1)
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return nil, &EncodingError{Kind: InvalidUTF8, Offset: i}
			}
		}
		buf = utf16.AppendRune(buf, r)
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, &EncodingError{Kind: EmbeddedNull, Offset: i}
	}
	return append(buf, 0), nil
}

// EncodeASCII encodes s as a NUL-terminated ASCII string.
//
// Non-ASCII input is rejected before NULs are considered, so a string
// with both problems reports NonASCII.
func EncodeASCII(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return nil, &EncodingError{Kind: NonASCII, Offset: i}
		}
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, &EncodingError{Kind: EmbeddedNull, Offset: i}
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf, nil
}

// EncodeArg is EncodeASCII with the argument name attached to any error.
func EncodeArg(arg, s string) ([]byte, error) {
	buf, err := EncodeASCII(s)
	if err != nil {
		return nil, withArg(err, arg)
	}
	return buf, nil
}

// EncodePathArg is EncodeWide with the argument name attached to any error.
func EncodePathArg(arg, s string) ([]uint16, error) {
	buf, err := EncodeWide(s)
	if err != nil {
		return nil, withArg(err, arg)
	}
	return buf, nil
}

// DecodeASCII returns the string stored in a NUL-terminated buffer produced
// by EncodeASCII.
func DecodeASCII(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// DecodeWide returns the string stored in a NUL-terminated buffer produced
// by EncodeWide.
func DecodeWide(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
