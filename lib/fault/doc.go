// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fault classifies the failures of the base62x pipeline so
// callers can tell bad input apart from corrupt data or backend
// failures without parsing error text.
//
// Every error produced by the pipeline packages carries exactly one
// [Kind]. Lower layers create the [Error] with a kind-specific
// constructor; upper layers add context with fmt.Errorf and %w, which
// keeps the kind reachable through [KindOf] and [Is].
//
// Key exports:
//
//   - [InvalidParameter] -- bad or empty payload, unknown algorithm, encoding or cipher
//   - [Encode] -- the text encoding step failed or produced nothing
//   - [Decode] -- text decoding failed, malformed footprint, truncated Huffman stream
//   - [Compression] -- the compressor failed or is unavailable
//   - [Crypt] -- cipher failure or malformed IV
//
// This package depends on no other base62x packages.
package fault
