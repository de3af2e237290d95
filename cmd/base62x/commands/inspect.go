// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"text/tabwriter"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
	"github.com/bureau-foundation/base62x/lib/digest"
	"github.com/bureau-foundation/base62x/lib/transform"
)

type inspectParams struct {
	globalParams
	cipherParams
	cli.JSONOutput
	Expect string `flag:"expect" desc:"fail unless the recovered payload has this BLAKE3 digest"`
}

// inspectResult is the JSON shape of "base62x inspect --json".
type inspectResult struct {
	TextLength        int           `json:"text_length"`
	DecodedBytes      int           `json:"decoded_bytes"`
	Compression       string        `json:"compression"`
	FootprintBytes    int           `json:"footprint_bytes"`
	BodyBytes         int           `json:"body_bytes"`
	DecompressedBytes int           `json:"decompressed_bytes"`
	Cipher            string        `json:"cipher,omitempty"`
	PlaintextBytes    int           `json:"plaintext_bytes"`
	Structured        bool          `json:"structured"`
	Digest            digest.Digest `json:"blake3"`
	HuffmanCodes      []huffmanCode `json:"huffman_codes,omitempty"`
}

type huffmanCode struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
}

func newInspectResult(report transform.Report) inspectResult {
	result := inspectResult{
		TextLength:        report.TextLength,
		DecodedBytes:      report.DecodedBytes,
		Compression:       report.Selection.String(),
		FootprintBytes:    report.HeaderLength,
		BodyBytes:         report.BodyLength,
		DecompressedBytes: report.DecompressedLength,
		Cipher:            report.Method,
		PlaintextBytes:    report.PlaintextLength,
		Structured:        report.Result.Structured,
		Digest:            digest.Sum(report.Result.Bytes),
	}

	for symbol, code := range report.HuffmanCodes {
		result.HuffmanCodes = append(result.HuffmanCodes, huffmanCode{Symbol: symbol.String(), Code: code.String()})
	}
	// Shortest codes first; equal lengths in code order.
	slices.SortFunc(result.HuffmanCodes, func(a, b huffmanCode) int {
		return cmp.Or(cmp.Compare(len(a.Code), len(b.Code)), cmp.Compare(a.Code, b.Code))
	})
	return result
}

func (r inspectResult) write(w io.Writer) error {
	cipher := r.Cipher
	if cipher == "" {
		cipher = "none"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "text\t%d characters\n", r.TextLength)
	fmt.Fprintf(tw, "decoded\t%d bytes\n", r.DecodedBytes)
	fmt.Fprintf(tw, "compression\t%s\n", r.Compression)
	fmt.Fprintf(tw, "footprint\t%d bytes\n", r.FootprintBytes)
	fmt.Fprintf(tw, "body\t%d bytes\n", r.BodyBytes)
	fmt.Fprintf(tw, "decompressed\t%d bytes\n", r.DecompressedBytes)
	fmt.Fprintf(tw, "cipher\t%s\n", cipher)
	fmt.Fprintf(tw, "plaintext\t%d bytes\n", r.PlaintextBytes)
	fmt.Fprintf(tw, "structured\t%t\n", r.Structured)
	fmt.Fprintf(tw, "blake3\t%s\n", r.Digest)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.HuffmanCodes) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\nHuffman codes:\n")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, entry := range r.HuffmanCodes {
		fmt.Fprintf(tw, "  %s\t%s\n", entry.Symbol, entry.Code)
	}
	return tw.Flush()
}

func inspectCommand(streams Streams) *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Describe each stage of decoding Base62x text",
		Description: `Decode Base62x text and report what each stage found: the footprint
and its compression selection, the size after every stage, the Huffman
code table when the payload is Huffman-compressed, and the BLAKE3-256
digest of the recovered payload. With --expect, the command fails when
the digest differs.

The payload itself is not printed. Encrypted text is decrypted when a
key file is given; otherwise the digest covers the ciphertext token.`,
		Usage: "base62x inspect [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Show the Huffman code table",
				Command:     "printf 'AAAAAAAABBBBCCD' | base62x encode -c huffman | base62x inspect",
			},
			{
				Description: "Machine-readable report",
				Command:     "base62x inspect --json report.b62x",
			},
		},
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			var expected digest.Digest
			if params.Expect != "" {
				parsed, err := digest.Parse(params.Expect)
				if err != nil {
					return err
				}
				expected = parsed
			}

			pipeline, err := openDecode(streams, args, &params.globalParams, &params.cipherParams, logger)
			if err != nil {
				return err
			}
			defer pipeline.Close()

			report, err := pipeline.Report()
			if err != nil {
				return err
			}

			result := newInspectResult(report)
			if done, err := params.EmitJSON(streams.Out, result); done {
				if err != nil {
					return err
				}
			} else if err := result.write(streams.Out); err != nil {
				return err
			}

			if params.Expect != "" && result.Digest != expected {
				return fmt.Errorf("payload digest %s does not match expected %s", result.Digest, expected)
			}
			return nil
		},
	}
}
