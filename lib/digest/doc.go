// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest fingerprints recovered payloads with BLAKE3-256.
//
// A digest lets two parties confirm that a decode recovered the bytes
// that were encoded without exchanging the payload itself: the sender
// records the digest at encode time and "base62x inspect --expect"
// checks it after decoding, decrypting and decompressing.
//
// Key exports:
//
//   - [Sum] hashes a payload
//   - [Digest] is the 32-byte result; it formats as lowercase hex and
//     marshals as text
//   - [Parse] reads the hex form back, with or without a "blake3:"
//     prefix
package digest
