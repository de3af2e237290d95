// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	// KindInvalidParameter indicates the caller supplied unusable
	// input: an empty payload, a resource handle or object reference
	// as payload, an unknown compression algorithm or encoding, or an
	// unsupported cipher method. Fix the input; retrying will not help.
	KindInvalidParameter Kind = "invalid_parameter"

	// KindEncode indicates the printable text encoding step failed.
	KindEncode Kind = "encode"

	// KindDecode indicates the input could not be decoded: characters
	// outside the text alphabet, a malformed or unwhitelisted
	// footprint, or a Huffman stream that ends before its EOF symbol.
	KindDecode Kind = "decode"

	// KindCompression indicates the compressor or decompressor
	// reported a failure.
	KindCompression Kind = "compression"

	// KindCrypt indicates the stream cipher failed or the embedded
	// initialization vector is malformed.
	KindCrypt Kind = "crypt"
)

// Error is a classified pipeline error. It wraps an inner error so
// errors.Is and errors.As can still reach the original cause.
type Error struct {
	// Kind classifies the error.
	Kind Kind

	// Err carries the human-readable message.
	Err error
}

// Error returns the underlying message prefixed with the kind.
func (e *Error) Error() string { return string(e.Kind) + ": " + e.Err.Error() }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// InvalidParameter creates a KindInvalidParameter error.
func InvalidParameter(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParameter, Err: fmt.Errorf(format, args...)}
}

// Encode creates a KindEncode error.
func Encode(format string, args ...any) *Error {
	return &Error{Kind: KindEncode, Err: fmt.Errorf(format, args...)}
}

// Decode creates a KindDecode error.
func Decode(format string, args ...any) *Error {
	return &Error{Kind: KindDecode, Err: fmt.Errorf(format, args...)}
}

// Compression creates a KindCompression error.
func Compression(format string, args ...any) *Error {
	return &Error{Kind: KindCompression, Err: fmt.Errorf(format, args...)}
}

// Crypt creates a KindCrypt error.
func Crypt(format string, args ...any) *Error {
	return &Error{Kind: KindCrypt, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind, true
	}
	return "", false
}

// Is reports whether err's chain contains an *Error of the given kind.
func Is(err error, kind Kind) bool {
	found, ok := KindOf(err)
	return ok && found == kind
}
