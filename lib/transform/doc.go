// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package transform is the reversible payload pipeline:
//
//	encode: payload -> [encrypt] -> [compress + footprint] -> Base62x text
//	decode: text -> Base62x bytes -> [footprint + decompress] -> [decrypt] -> payload
//
// A [Transform] is built for one payload in one direction by [Encode]
// or [Decode], configured with [Transform.Compress] and
// [Transform.Encrypt], and run by [Transform.Encoded] or
// [Transform.Decoded]. Encryption always runs before compression on
// the way in and after decompression on the way out, whatever order
// the configuration calls were made in.
//
// The decoder learns the compression algorithm from the footprint
// header, so a decode transform needs no compression configuration.
// It does need the same password and cipher method the encoder used:
// tokens carry no cipher identification.
//
// Composite payloads (maps, slices, arrays) are flattened with
// lib/structured and come back from [Transform.Decoded] as generic
// values. The recognition is best-effort; see that package.
//
// Transforms are not safe for concurrent use. [Transform.Close]
// releases the password held in locked memory.
//
// Key exports:
//
//   - [Encode] / [Decode] -- construct a transform
//   - [Transform] -- configuration and execution
//   - [Decoded] -- recovered payload, raw and reconstituted
//   - [Report] -- per-stage sizes from a decode, for inspection
//   - [WithTextCodec] / [WithLogger] -- construction options
package transform
