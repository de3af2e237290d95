// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds cipher passwords and derived keys in memory the
// garbage collector never sees.
//
// A [Buffer] is an anonymous mmap region locked into RAM and excluded
// from core dumps. Closing it zeroes, unlocks and unmaps the region.
// Reading a closed buffer panics; Close is idempotent.
//
// Key exports:
//
//   - [New] -- zero-filled buffer for a derived key
//   - [Clone] -- protected copy of a caller-owned password
//   - [NewFromBytes] -- protected copy that wipes the source
//   - [ReadFromPath] -- password from a key file or stdin
//   - [Zero] -- wipe a heap slice in place
//
// Depends on golang.org/x/sys/unix.
package secret
