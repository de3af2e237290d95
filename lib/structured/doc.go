// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package structured turns composite Go values (maps, slices and
// arrays) into bytes the transform pipeline can carry, and recognizes
// those bytes on the way back.
//
// A flattened value is the CBOR self-describe tag (55799, encoded
// d9 d9 f7) followed by a Core Deterministic CBOR array or map. The
// grammar is checked by [Looks]: the prefix, then a major-type 4 or 5
// head byte.
//
// [Reconstitute] is deliberately best-effort. A payload that matches
// the grammar but does not decode completely is handed back to the
// caller as raw bytes with no error. The same applies to a plain byte
// payload that happens to start with the prefix: if it decodes, it is
// reported as structured.
//
// Key exports:
//
//   - [Composite] -- whether a value needs flattening
//   - [Flatten] / [Reconstitute] -- the two directions
//   - [Looks] -- grammar check without decoding
package structured
