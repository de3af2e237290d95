// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadFromPath loads a cipher password from a key file, or from the
// first line of stdin when path is "-". Surrounding whitespace is
// trimmed and every heap copy is wiped before returning.
func ReadFromPath(path string) (*Buffer, error) {
	if path == "-" {
		return readLine(os.Stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}
	defer Zero(data)
	return protectTrimmed(data, path)
}

func readLine(reader io.Reader) (*Buffer, error) {
	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading key from stdin: %w", err)
		}
		return nil, fmt.Errorf("reading key from stdin: no input")
	}
	line := scanner.Bytes()
	defer Zero(line)
	return protectTrimmed(line, "stdin")
}

func protectTrimmed(data []byte, source string) (*Buffer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("key from %s is empty", source)
	}
	return Clone(trimmed)
}
