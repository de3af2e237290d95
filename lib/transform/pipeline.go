// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"github.com/bureau-foundation/base62x/lib/compression"
	"github.com/bureau-foundation/base62x/lib/crypt"
	"github.com/bureau-foundation/base62x/lib/fault"
	"github.com/bureau-foundation/base62x/lib/footprint"
	"github.com/bureau-foundation/base62x/lib/huffman"
	"github.com/bureau-foundation/base62x/lib/structured"
)

// Decoded is the result of a decode.
type Decoded struct {
	// Bytes is the recovered payload.
	Bytes []byte

	// Value is the reconstituted composite when Structured is true,
	// and nil otherwise.
	Value any

	// Structured reports whether Bytes matched the flattened-value
	// grammar and decoded completely.
	Structured bool
}

// Report describes each stage of a decode.
type Report struct {
	TextLength   int
	DecodedBytes int

	// Selection is read from the footprint; it is the none selection
	// for an uncompressed payload.
	Selection    compression.Selection
	HeaderLength int
	BodyLength   int

	// HuffmanCodes is the code table embedded in a huffman stream.
	HuffmanCodes map[huffman.Symbol]huffman.Code

	DecompressedLength int

	// Method is empty unless a password was configured.
	Method          string
	PlaintextLength int

	Result Decoded
}

// Encoded runs the encode pipeline and returns the Base62x text.
func (t *Transform) Encoded() (string, error) {
	if t.mode != ModeEncode {
		return "", fault.InvalidParameter("Encoded called on a %s transform", t.mode)
	}

	data := t.payload
	t.logger.Debug("encoding payload", "bytes", len(data), "flattened", t.flattened)

	if t.password != nil {
		token, err := crypt.Encrypt(data, t.method, t.password)
		if err != nil {
			return "", err
		}
		t.logger.Debug("encrypted payload", "method", t.method.Name, "bytes", len(token))
		data = token
	}

	if !t.selection.IsNone() {
		compressed, err := compression.Compress(data, t.selection)
		if err != nil {
			return "", err
		}
		if len(compressed) == 0 {
			return "", fault.Encode("%s produced no output", t.selection)
		}
		header := footprint.Attach(t.selection)
		framed := make([]byte, 0, len(header)+len(compressed))
		framed = append(framed, header...)
		data = append(framed, compressed...)
		t.logger.Debug("compressed payload", "selection", t.selection.String(), "bytes", len(data))
	}

	text := t.textCodec.Encode(data)
	if text == "" {
		return "", fault.Encode("text codec produced no output for %d bytes", len(data))
	}
	t.logger.Debug("encoded text", "characters", len(text))
	return text, nil
}

// Decoded runs the decode pipeline.
func (t *Transform) Decoded() (Decoded, error) {
	report, err := t.Report()
	if err != nil {
		return Decoded{}, err
	}
	return report.Result, nil
}

// Report runs the decode pipeline and records the size of each stage.
func (t *Transform) Report() (Report, error) {
	if t.mode != ModeDecode {
		return Report{}, fault.InvalidParameter("Decoded called on a %s transform", t.mode)
	}
	report := Report{TextLength: len(t.text)}

	raw, err := t.textCodec.Decode(t.text)
	if err != nil {
		if _, classified := fault.KindOf(err); classified {
			return Report{}, err
		}
		return Report{}, fault.Decode("text codec: %w", err)
	}
	if len(raw) == 0 {
		return Report{}, fault.Decode("text codec produced no bytes")
	}
	report.DecodedBytes = len(raw)
	t.logger.Debug("decoded text", "characters", len(t.text), "bytes", len(raw))

	detached, err := footprint.Detach(raw)
	if err != nil {
		return Report{}, err
	}
	report.Selection = detached.Selection
	report.HeaderLength = detached.HeaderLength
	report.BodyLength = len(detached.Payload)

	data := detached.Payload
	if detached.Compressed() {
		// Huffman decodes here rather than through compression so the
		// tree is parsed once for both the payload and the code table.
		if detached.Selection.Algorithm == compression.AlgorithmHuffman {
			data, report.HuffmanCodes, err = huffman.DecodeWithCodes(data)
		} else {
			data, err = compression.Decompress(data, detached.Selection)
		}
		if err != nil {
			return Report{}, err
		}
		t.logger.Debug("decompressed payload", "selection", detached.Selection.String(), "bytes", len(data))
	}
	report.DecompressedLength = len(data)

	if t.password != nil {
		data, err = crypt.Decrypt(data, t.method, t.password)
		if err != nil {
			return Report{}, err
		}
		report.Method = t.method.Name
		t.logger.Debug("decrypted payload", "method", t.method.Name, "bytes", len(data))
	}
	report.PlaintextLength = len(data)

	report.Result = Decoded{Bytes: data}
	if value, ok := structured.Reconstitute(data); ok {
		report.Result.Value = value
		report.Result.Structured = true
	}
	return report, nil
}
