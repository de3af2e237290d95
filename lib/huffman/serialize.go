// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import "github.com/bureau-foundation/base62x/lib/fault"

// Node tags of the serialized tree. These values are wire format:
// changing them breaks every previously encoded stream.
const (
	tagInternal byte = 0x00
	tagLeaf     byte = 0x01
	tagEOF      byte = 0x02
)

// maxNodes bounds a serialized tree: 256 byte leaves plus EOF give 257
// leaves and 256 internal nodes.
const maxNodes = 2*257 - 1

// Serialize returns the pre-order tagged encoding of the tree under
// root.
func Serialize(root *Node) []byte {
	output := make([]byte, 0, 64)
	var walk func(node *Node)
	walk = func(node *Node) {
		switch {
		case !node.IsLeaf():
			output = append(output, tagInternal)
			walk(node.left)
			walk(node.right)
		case node.symbol.IsEOF():
			output = append(output, tagEOF)
		default:
			output = append(output, tagLeaf, node.symbol.Byte())
		}
	}
	walk(root)
	return output
}

// treeParser consumes a serialized tree from the front of a buffer.
type treeParser struct {
	data     []byte
	offset   int
	nodes    int
	seenEOF  bool
	seenByte [256]bool
}

// Deserialize rebuilds the tree written by Serialize from the front of
// data. It returns the root and the number of bytes the tree occupied;
// the bit-packed payload starts at that offset.
func Deserialize(data []byte) (*Node, int, error) {
	parser := &treeParser{data: data}
	root, err := parser.node()
	if err != nil {
		return nil, 0, err
	}
	if root.IsLeaf() {
		return nil, 0, fault.Decode("huffman: serialized tree has a single leaf")
	}
	if !parser.seenEOF {
		return nil, 0, fault.Decode("huffman: serialized tree has no EOF leaf")
	}
	return root, parser.offset, nil
}

func (p *treeParser) node() (*Node, error) {
	if p.offset >= len(p.data) {
		return nil, fault.Decode("huffman: serialized tree truncated at byte %d", p.offset)
	}
	p.nodes++
	if p.nodes > maxNodes {
		return nil, fault.Decode("huffman: serialized tree exceeds %d nodes", maxNodes)
	}

	tag := p.data[p.offset]
	p.offset++

	switch tag {
	case tagInternal:
		left, err := p.node()
		if err != nil {
			return nil, err
		}
		right, err := p.node()
		if err != nil {
			return nil, err
		}
		return &Node{left: left, right: right}, nil

	case tagLeaf:
		if p.offset >= len(p.data) {
			return nil, fault.Decode("huffman: serialized tree truncated inside a leaf")
		}
		value := p.data[p.offset]
		p.offset++
		if p.seenByte[value] {
			return nil, fault.Decode("huffman: serialized tree repeats symbol 0x%02x", value)
		}
		p.seenByte[value] = true
		return &Node{symbol: ByteSymbol(value)}, nil

	case tagEOF:
		if p.seenEOF {
			return nil, fault.Decode("huffman: serialized tree has more than one EOF leaf")
		}
		p.seenEOF = true
		return &Node{symbol: EOF}, nil

	default:
		return nil, fault.Decode("huffman: unknown node tag 0x%02x at byte %d", tag, p.offset-1)
	}
}
