// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"errors"
	"io"

	"github.com/bureau-foundation/base62x/lib/bitstream"
	"github.com/bureau-foundation/base62x/lib/fault"
)

// Encode compresses payload with a tree built from payload itself and
// returns the serialized tree followed by the bit-packed codes and the
// EOF code. Small inputs may grow: the tree costs up to three bytes per
// distinct byte value.
func Encode(payload []byte) ([]byte, error) {
	root, err := BuildTree(payload)
	if err != nil {
		return nil, err
	}
	codes := CodeTable(root)

	writer := bitstream.NewWriter()
	for index, value := range payload {
		code, ok := codes[ByteSymbol(value)]
		if !ok {
			return nil, fault.Compression("huffman: symbol 0x%02x at offset %d is not in the code tree", value, index)
		}
		writer.WriteBits(code)
	}
	writer.WriteBits(codes[EOF])

	tree := Serialize(root)
	packed := writer.Finish()
	output := make([]byte, 0, len(tree)+len(packed))
	output = append(output, tree...)
	return append(output, packed...), nil
}

// Decode reverses Encode. It fails with a decode error when the stream
// ends before the EOF symbol is reached.
func Decode(data []byte) ([]byte, error) {
	decoded, _, err := decode(data)
	return decoded, err
}

// DecodeWithCodes is Decode that also returns the code table of the
// embedded tree, parsing the tree once.
func DecodeWithCodes(data []byte) ([]byte, map[Symbol]Code, error) {
	decoded, root, err := decode(data)
	if err != nil {
		return nil, nil, err
	}
	return decoded, CodeTable(root), nil
}

func decode(data []byte) ([]byte, *Node, error) {
	root, consumed, err := Deserialize(data)
	if err != nil {
		return nil, nil, err
	}

	reader := bitstream.NewReader(data[consumed:])
	// At most one symbol per bit, and usually several bits per symbol.
	decoded := make([]byte, 0, reader.Remaining()/2)
	current := root
	for {
		if current.IsLeaf() {
			if current.symbol.IsEOF() {
				return decoded, root, nil
			}
			decoded = append(decoded, current.symbol.Byte())
			current = root
			continue
		}

		bit, err := reader.ReadBit()
		if errors.Is(err, io.EOF) {
			return nil, nil, fault.Decode("huffman: truncated stream: input ended after %d symbols without an EOF symbol", len(decoded))
		}
		if err != nil {
			return nil, nil, fault.Decode("huffman: reading bit stream: %w", err)
		}
		if bit {
			current = current.right
		} else {
			current = current.left
		}
	}
}
