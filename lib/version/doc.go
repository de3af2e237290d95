// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports the build identity of the base62x binary.
//
// Values come from -ldflags when the release build sets them:
//
//	go build -ldflags "-X github.com/bureau-foundation/base62x/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/base62x
//
// Otherwise the VCS stamp the Go toolchain embeds is used, and
// "unknown" when there is none.
package version
