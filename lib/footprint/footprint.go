// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package footprint

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/bureau-foundation/base62x/lib/compression"
	"github.com/bureau-foundation/base62x/lib/fault"
)

// Prefix opens every footprint. It is wire format.
const Prefix = "[MFB62X.COMPRESS."

// closer ends the footprint.
const closer = ']'

// maxSpan bounds the base64 span between Prefix and the closing
// bracket. The longest whitelisted pair, "huffman,deflate" before
// normalization, encodes to 20 characters.
const maxSpan = 64

// Attach returns the footprint for selection. The encoding field is
// empty when the selection has none.
func Attach(selection compression.Selection) []byte {
	fields := string(selection.Algorithm) + "," + string(selection.Encoding)
	encoded := base64.StdEncoding.EncodeToString([]byte(fields))

	output := make([]byte, 0, len(Prefix)+len(encoded)+1)
	output = append(output, Prefix...)
	output = append(output, encoded...)
	return append(output, closer)
}

// Detached is the result of stripping a footprint.
type Detached struct {
	// Payload is the buffer after the footprint, or the whole buffer
	// when there was none. It aliases the input.
	Payload []byte

	// Selection names the algorithm and encoding from the footprint.
	// It is the none selection when the buffer carried no footprint.
	Selection compression.Selection

	// HeaderLength is the number of bytes the footprint occupied.
	HeaderLength int
}

// Compressed reports whether a footprint named an algorithm.
func (d Detached) Compressed() bool { return !d.Selection.IsNone() }

// Detach strips and validates the footprint at the front of buffer.
// A footprint is Prefix, a run of base64 characters and a closing
// bracket within maxSpan bytes. A buffer without one, including one
// that starts with Prefix but has no such run, is returned whole as an
// uncompressed payload. A well-formed span whose contents do not name
// a whitelisted selection fails with a decode error.
func Detach(buffer []byte) (Detached, error) {
	// Phase one: literal prefix.
	if !bytes.HasPrefix(buffer, []byte(Prefix)) {
		return Detached{Payload: buffer}, nil
	}

	// Phase two: bounded base64 span up to the closing bracket.
	rest := buffer[len(Prefix):]
	window := rest[:min(len(rest), maxSpan+1)]
	end := bytes.IndexByte(window, closer)
	if end < 0 || !base64Run(rest[:end]) {
		return Detached{Payload: buffer}, nil
	}

	decoded, err := base64.StdEncoding.Strict().DecodeString(string(rest[:end]))
	if err != nil {
		return Detached{}, fault.Decode("footprint: invalid base64: %w", err)
	}
	algorithm, encoding, err := splitFields(string(decoded))
	if err != nil {
		return Detached{}, err
	}

	selection, err := validate(algorithm, encoding)
	if err != nil {
		return Detached{}, err
	}

	headerLength := len(Prefix) + end + 1
	return Detached{
		Payload:      buffer[headerLength:],
		Selection:    selection,
		HeaderLength: headerLength,
	}, nil
}

// base64Run reports whether span is one or more standard base64
// characters followed by at most two '=' padding characters.
func base64Run(span []byte) bool {
	body := bytes.TrimRight(span, "=")
	if len(body) == 0 || len(span)-len(body) > 2 {
		return false
	}
	for _, character := range body {
		switch {
		case 'A' <= character && character <= 'Z',
			'a' <= character && character <= 'z',
			'0' <= character && character <= '9',
			character == '+', character == '/':
		default:
			return false
		}
	}
	return true
}

func splitFields(fields string) (string, string, error) {
	parts := strings.Split(fields, ",")
	if len(parts) != 2 {
		return "", "", fault.Decode("footprint: expected 2 comma-separated fields, got %d", len(parts))
	}
	return parts[0], parts[1], nil
}

// validate checks footprint fields against the whitelist. Unlike
// compression.NewSelection it tolerates a gzip footprint without an
// encoding, and it reports decode errors because the values came from
// the data, not from the caller.
func validate(algorithm, encoding string) (compression.Selection, error) {
	if algorithm == "" {
		return compression.Selection{}, nil
	}
	parsed, err := compression.ParseAlgorithm(algorithm)
	if err != nil {
		return compression.Selection{}, fault.Decode("footprint: %w", err)
	}
	if encoding == "" {
		return compression.Selection{Algorithm: parsed}, nil
	}
	parsedEncoding, err := compression.ParseEncoding(parsed, encoding)
	if err != nil {
		return compression.Selection{}, fault.Decode("footprint: %w", err)
	}
	return compression.Selection{Algorithm: parsed, Encoding: parsedEncoding}, nil
}
