// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package base62x encodes bytes as text drawn from [0-9A-Za-z].
//
// Input is read in six-bit groups. Values 0 through 60 map to the 61
// symbols of "0-9A-Za-wyz"; the letter 'x' is held back as an escape,
// and values 61, 62 and 63 are written as "x1", "x2" and "x3". Three
// input bytes become four groups. A trailing single byte becomes two
// groups (2+6 bits) and a trailing pair becomes three (4+6+6 bits), so
// no padding characters are needed.
//
// Output is safe in URLs, file names and identifiers without further
// escaping.
//
// Key exports:
//
//   - [Encode] / [Decode] -- the text codec
//   - [Codec] -- the same pair as a value, for pipelines that take a
//     pluggable text codec
package base62x
