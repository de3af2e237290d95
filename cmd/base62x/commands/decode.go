// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
	"github.com/bureau-foundation/base62x/lib/codec"
	"github.com/bureau-foundation/base62x/lib/transform"
)

type decodeParams struct {
	globalParams
	cipherParams
	Output string `flag:"output,o" desc:"write the payload to a file instead of stdout"`
	Diag   bool   `flag:"diag,d"   desc:"print a structured payload in CBOR diagnostic notation"`
}

// openDecode reads Base62x text and prepares a decode transform with
// the cipher configured. Whitespace anywhere in the text is ignored,
// so wrapped or newline-terminated input decodes as-is.
func openDecode(streams Streams, args []string, global *globalParams, cipher *cipherParams, logger *slog.Logger) (*transform.Transform, error) {
	cfg, err := global.Config()
	if err != nil {
		return nil, err
	}
	if err := cipher.checkStdin(cfg, args); err != nil {
		return nil, err
	}

	raw, err := readInput(streams.In, args, false)
	if err != nil {
		return nil, err
	}

	pipeline, err := transform.Decode(string(stripSpace(raw)), transform.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	if err := cipher.apply(pipeline, cfg); err != nil {
		pipeline.Close()
		return nil, err
	}
	return pipeline, nil
}

func decodeCommand(streams Streams) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode Base62x text back to the payload",
		Description: `Read Base62x text from a file or stdin and write the recovered payload.

Compression is discovered from the footprint. Encrypted text needs the
same --key-file and --method it was encoded with; a wrong password
yields garbage rather than an error, since the cipher is not
authenticated.

With --diag, a payload that was flattened from a map, list or array is
printed in CBOR diagnostic notation instead of raw bytes.`,
		Usage: "base62x decode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Round-trip a file",
				Command:     "base62x encode -c huffman notes.txt | base62x decode",
			},
			{
				Description: "Decrypt into a file",
				Command:     "base62x decode -k key.txt -m chacha20 -o report.pdf report.b62x",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			pipeline, err := openDecode(streams, args, &params.globalParams, &params.cipherParams, logger)
			if err != nil {
				return err
			}
			defer pipeline.Close()

			decoded, err := pipeline.Decoded()
			if err != nil {
				return err
			}

			if !params.Diag {
				return writeOutput(streams.Out, params.Output, decoded.Bytes)
			}
			if !decoded.Structured {
				return cli.Validation("--diag: payload is not a structured value")
			}
			notation, err := codec.Diagnose(decoded.Bytes)
			if err != nil {
				return err
			}
			return writeOutput(streams.Out, params.Output, []byte(notation+"\n"))
		},
	}
}
