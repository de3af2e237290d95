// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// base62x encodes payloads as Base62x text and decodes them back, with
// optional gzip-family or Huffman compression and optional stream
// cipher encryption.
//
// Exit status is 0 on success, 2 for invalid input or flags, 3 for a
// missing file, and 1 for anything else.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
	"github.com/bureau-foundation/base62x/cmd/base62x/commands"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.Root(commands.StandardStreams()).Execute(ctx, os.Args[1:])
}
