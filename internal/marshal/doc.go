// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package marshal converts Go strings and macro lists into the
// NUL-terminated buffers and pointer arrays the Direct3D compiler reads.
//
// Two encodings are used:
//   - UTF-16 for file paths (LPCWSTR)
//   - ASCII for identifiers such as entry points, profiles and macros (LPCSTR)
//
// Every encoder is total over its valid input and returns an
// *EncodingError otherwise. Nothing here calls native code.
package marshal
