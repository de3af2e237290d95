// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package footprint writes and parses the header that makes a
// compressed payload self-describing:
//
//	[MFB62X.COMPRESS.<base64("algorithm,encoding")>]<compressed body>
//
// The header sits at offset 0 and ends at the first ']' after the
// prefix. A decoder reads the algorithm and encoding from it, so no
// side-channel configuration is needed. Values read back are checked
// against the compression whitelist before anything is decompressed.
//
// Parsing is a two-phase scan (literal prefix, then a bounded
// bracket-delimited base64 span) so the cost of rejecting a hostile
// buffer is constant.
//
// Key exports:
//
//   - [Attach] -- render the footprint for a selection
//   - [Detach] -- strip and validate a footprint
//   - [Prefix] -- the literal that opens every footprint
package footprint
