// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
	"github.com/bureau-foundation/base62x/lib/version"
)

// Streams are the input and output a command tree is bound to. Tests
// substitute buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StandardStreams returns the process's stdin, stdout and stderr.
func StandardStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Root builds the base62x command tree.
func Root(streams Streams) *cli.Command {
	return &cli.Command{
		Name: "base62x",
		Description: `base62x: reversible printable encoding with optional compression and encryption.

Payloads are optionally encrypted with a stream cipher, optionally
compressed (gzip family or Huffman), and encoded into the Base62x
alphabet. Compressed text carries a footprint naming the algorithm, so
decode needs no compression flags.`,
		Stderr: streams.Err,
		Subcommands: []*cli.Command{
			encodeCommand(streams),
			decodeCommand(streams),
			inspectCommand(streams),
			methodsCommand(streams),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					if len(args) > 0 {
						return cli.Validation("version takes no arguments, got %q", args[0])
					}
					_, err := fmt.Fprintf(streams.Out, "base62x %s\n", version.Full())
					return err
				},
			},
		},
	}
}
