// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
)

// readInput reads the single optional file argument, or stdin when
// there is none. With hexMode the bytes are hex digits, optionally
// separated by whitespace.
func readInput(stdin io.Reader, args []string, hexMode bool) ([]byte, error) {
	var data []byte
	switch len(args) {
	case 0:
		read, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		data = read
	case 1:
		read, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		data = read
	default:
		return nil, cli.Validation("expected at most one input file, got %d arguments", len(args))
	}

	if hexMode {
		return decodeHexInput(data)
	}
	return data, nil
}

func stripSpace(data []byte) []byte {
	return bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)
}

// decodeHexInput accepts "d9 d9 f7" as well as "d9d9f7".
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := stripSpace(data)
	if len(cleaned) == 0 {
		return nil, cli.Validation("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, cli.Validation("decode hex: %v", err)
	}
	return decoded[:count], nil
}

// writeOutput writes data to path, or to stdout when path is empty.
// Files are created owner-only since decoded output may be plaintext.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
