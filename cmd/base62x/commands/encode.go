// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
	"github.com/bureau-foundation/base62x/lib/config"
	"github.com/bureau-foundation/base62x/lib/transform"
)

type encodeParams struct {
	globalParams
	cipherParams
	Compress string `flag:"compress,c" desc:"compression algorithm: gzip, huffman or none (default: from config)"`
	Encoding string `flag:"encoding,e" desc:"gzip encoding: zlib, deflate or gzip"`
	HexInput bool   `flag:"hex,x"      desc:"treat input as hex-encoded bytes"`
	Output   string `flag:"output,o"   desc:"write the text to a file instead of stdout"`
}

// applyCompression selects compression from the flags, falling back
// to the config when --compress is absent.
func (p *encodeParams) applyCompression(t *transform.Transform, cfg *config.Config) error {
	algorithm, encoding := p.Compress, p.Encoding
	if algorithm == "" {
		algorithm = cfg.Compression.Algorithm
		if encoding == "" {
			encoding = cfg.Compression.Encoding
		}
	}
	if algorithm == "" || algorithm == "none" {
		if p.Encoding != "" {
			return cli.Validation("--encoding %q requires a compression algorithm", p.Encoding)
		}
		return nil
	}
	return t.Compress(algorithm, encoding)
}

func encodeCommand(streams Streams) *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode a payload as Base62x text",
		Description: `Read a payload from a file or stdin and write its Base62x text,
followed by a newline.

With --key-file the payload is encrypted first. With --compress the
(possibly encrypted) bytes are compressed and prefixed with a footprint
naming the algorithm and encoding. gzip needs --encoding; huffman
ignores it.`,
		Usage: "base62x encode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Encode stdin without compression",
				Command:     "printf 'hello' | base62x encode",
			},
			{
				Description: "Compress with gzip/zlib and encrypt",
				Command:     "base62x encode -c gzip -e zlib -k key.txt report.pdf",
			},
			{
				Description: "Encode raw bytes given as hex",
				Command:     "echo 'de ad be ef' | base62x encode --hex",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			cfg, err := params.Config()
			if err != nil {
				return err
			}
			if err := params.checkStdin(cfg, args); err != nil {
				return err
			}

			data, err := readInput(streams.In, args, params.HexInput)
			if err != nil {
				return err
			}

			pipeline, err := transform.Encode(data, transform.WithLogger(logger))
			if err != nil {
				return err
			}
			defer pipeline.Close()

			if err := params.applyCompression(pipeline, cfg); err != nil {
				return err
			}
			if err := params.cipherParams.apply(pipeline, cfg); err != nil {
				return err
			}

			text, err := pipeline.Encoded()
			if err != nil {
				return err
			}
			logger.Debug("encoded", "input_bytes", len(data), "characters", len(text))
			return writeOutput(streams.Out, params.Output, []byte(text+"\n"))
		},
	}
}
