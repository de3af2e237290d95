// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the CBOR configuration used to flatten
// structured payloads before they enter the transform pipeline.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical value always flattens to the same bytes, so the same
// value always produces the same Base62x text when no cipher is
// involved.
//
//	data, err := codec.Marshal(value)
//	value, err := codec.UnmarshalAny(data)
//
// Key exports:
//
//   - [Marshal] / [Unmarshal] -- deterministic encode, typed decode
//   - [UnmarshalAny] -- decode into generic Go values
//   - [Diagnose] -- RFC 8949 diagnostic notation for inspect output
package codec
