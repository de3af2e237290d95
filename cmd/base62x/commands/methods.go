// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
	"github.com/bureau-foundation/base62x/lib/compression"
	"github.com/bureau-foundation/base62x/lib/crypt"
)

type methodsParams struct {
	cli.JSONOutput
}

type methodsResult struct {
	Ciphers     []cipherInfo      `json:"ciphers"`
	Compression []compressionInfo `json:"compression"`
}

type cipherInfo struct {
	Name    string `json:"name"`
	KeySize int    `json:"key_size"`
	IVSize  int    `json:"iv_size"`
	Default bool   `json:"default,omitempty"`
}

type compressionInfo struct {
	Algorithm string   `json:"algorithm"`
	Encodings []string `json:"encodings,omitempty"`
}

func listMethods() methodsResult {
	var result methodsResult
	for _, method := range crypt.Methods() {
		result.Ciphers = append(result.Ciphers, cipherInfo{
			Name:    method.Name,
			KeySize: method.KeySize,
			IVSize:  method.IVSize,
			Default: method.Name == crypt.DefaultMethod,
		})
	}
	for _, algorithm := range compression.Algorithms() {
		info := compressionInfo{Algorithm: string(algorithm)}
		for _, encoding := range algorithm.Encodings() {
			info.Encodings = append(info.Encodings, string(encoding))
		}
		result.Compression = append(result.Compression, info)
	}
	return result
}

func methodsCommand(streams Streams) *cli.Command {
	var params methodsParams

	return &cli.Command{
		Name:    "methods",
		Summary: "List cipher methods and compression algorithms",
		Params:  func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("methods takes no arguments, got %q", args[0])
			}

			result := listMethods()
			if done, err := params.EmitJSON(streams.Out, result); done {
				return err
			}

			tw := tabwriter.NewWriter(streams.Out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "CIPHER\tKEY\tIV\t\n")
			for _, info := range result.Ciphers {
				marker := ""
				if info.Default {
					marker = "(default)"
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", info.Name, info.KeySize, info.IVSize, marker)
			}
			fmt.Fprintf(tw, "\t\t\t\n")
			fmt.Fprintf(tw, "COMPRESSION\tENCODINGS\t\t\n")
			for _, info := range result.Compression {
				encodings := strings.Join(info.Encodings, ", ")
				if encodings == "" {
					encodings = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t\t\n", info.Algorithm, encodings)
			}
			return tw.Flush()
		},
	}
}
