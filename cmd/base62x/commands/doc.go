// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the base62x command tree on top of the
// [cli] framework.
//
// Every command reads its input from a file argument or from the
// Streams input, and writes to the Streams output or to --output.
// Defaults for compression, cipher method, key file and log level come
// from [config]; flags override them.
//
// Key exports:
//
//   - [Root] returns the command tree bound to a set of [Streams]
//   - [StandardStreams] is the process stdin/stdout/stderr
package commands
