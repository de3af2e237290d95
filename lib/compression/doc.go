// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compression holds the fixed whitelist of compression
// algorithms and dispatches payloads to them.
//
// Two algorithms exist and no others can be registered:
//
//   - gzip, with a required sub-encoding: zlib (RFC 1950), deflate
//     (raw RFC 1951) or gzip (RFC 1952). All three run through
//     github.com/klauspost/compress at best compression.
//   - huffman, the self-describing codec in lib/huffman. It has no
//     sub-encoding; one supplied by a caller is discarded.
//
// Key exports:
//
//   - [NewSelection] -- validate an (algorithm, encoding) pair
//   - [Compress] / [Decompress] -- run a payload through a selection
//   - [ParseAlgorithm] / [ParseEncoding] -- whitelist lookups
package compression
