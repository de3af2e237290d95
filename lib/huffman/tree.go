// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bureau-foundation/base62x/lib/fault"
)

// Symbol is one letter of the Huffman alphabet: a byte value 0-255 or
// the out-of-band EOF marker. EOF is outside the byte range, so it can
// never be confused with a payload byte.
type Symbol uint16

// EOF marks the logical end of an encoded stream.
const EOF Symbol = 256

// ByteSymbol returns the symbol for a payload byte.
func ByteSymbol(value byte) Symbol { return Symbol(value) }

// IsEOF reports whether s is the EOF marker.
func (s Symbol) IsEOF() bool { return s == EOF }

// Byte returns the payload byte of a non-EOF symbol.
func (s Symbol) Byte() byte { return byte(s) }

// String renders printable bytes as quoted characters and the rest as
// hex, for code table dumps.
func (s Symbol) String() string {
	switch {
	case s.IsEOF():
		return "EOF"
	case s > 0x20 && s < 0x7f:
		return fmt.Sprintf("%q", rune(s))
	default:
		return fmt.Sprintf("0x%02x", uint16(s))
	}
}

// Node is a Huffman tree node. A node is a leaf iff both children are
// nil; internal nodes always have both and their symbol is unused.
// Trees are built once and walked read-only afterwards.
type Node struct {
	symbol Symbol
	weight uint64
	left   *Node
	right  *Node
}

// newLeaf returns a leaf for symbol.
func newLeaf(symbol Symbol, weight uint64) *Node {
	return &Node{symbol: symbol, weight: weight}
}

// join returns an internal node over left and right whose weight is
// their sum.
func join(left, right *Node) *Node {
	return &Node{weight: left.weight + right.weight, left: left, right: right}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Symbol returns the symbol of a leaf.
func (n *Node) Symbol() Symbol { return n.symbol }

// Weight returns the frequency carried by the node. Trees rebuilt by
// Deserialize carry no weights.
func (n *Node) Weight() uint64 { return n.weight }

// Left returns the child reached by a 0 bit.
func (n *Node) Left() *Node { return n.left }

// Right returns the child reached by a 1 bit.
func (n *Node) Right() *Node { return n.right }

// nodeQueue is kept sorted ascending by weight. A node is inserted in
// front of the first node of equal or greater weight, so among equal
// weights the most recently inserted node comes first. Tree shapes, and
// therefore the encoded bytes, depend on this order.
type nodeQueue struct {
	nodes []*Node
}

func (q *nodeQueue) add(node *Node) {
	index := 0
	for index < len(q.nodes) && q.nodes[index].weight < node.weight {
		index++
	}
	q.nodes = slices.Insert(q.nodes, index, node)
}

// popTwo removes the two lightest nodes. ok is false when fewer than
// two remain.
func (q *nodeQueue) popTwo() (first, second *Node, ok bool) {
	if len(q.nodes) < 2 {
		return nil, nil, false
	}
	first, second = q.nodes[0], q.nodes[1]
	q.nodes = q.nodes[2:]
	return first, second, true
}

// only returns the single remaining node.
func (q *nodeQueue) only() (*Node, error) {
	if len(q.nodes) != 1 {
		return nil, fault.Compression("huffman: node queue holds %d nodes, expected exactly one", len(q.nodes))
	}
	return q.nodes[0], nil
}

type weightedSymbol struct {
	symbol Symbol
	weight uint64
}

// frequencies counts the bytes of sample in order of first occurrence
// and appends EOF with weight 1.
func frequencies(sample []byte) []weightedSymbol {
	var index [256]int
	table := make([]weightedSymbol, 0, 257)
	for _, value := range sample {
		position := index[value]
		if position == 0 {
			table = append(table, weightedSymbol{symbol: ByteSymbol(value)})
			position = len(table)
			index[value] = position
		}
		table[position-1].weight++
	}
	return append(table, weightedSymbol{symbol: EOF, weight: 1})
}

// BuildTree builds an optimal prefix code tree from the byte
// frequencies of sample. Only bytes present in sample can be encoded
// with the result.
func BuildTree(sample []byte) (*Node, error) {
	if len(sample) == 0 {
		return nil, fault.Compression("huffman: cannot build a code tree from an empty sample")
	}

	table := frequencies(sample)
	slices.SortStableFunc(table, func(a, b weightedSymbol) int {
		switch {
		case a.weight > b.weight:
			return -1
		case a.weight < b.weight:
			return 1
		default:
			return 0
		}
	})

	queue := &nodeQueue{nodes: make([]*Node, 0, len(table))}
	for _, entry := range table {
		queue.add(newLeaf(entry.symbol, entry.weight))
	}
	for {
		first, second, ok := queue.popTwo()
		if !ok {
			break
		}
		queue.add(join(first, second))
	}
	return queue.only()
}

// Code is the bit path from the root to a leaf: false for a left edge,
// true for a right edge.
type Code []bool

// String renders the code as a string of '0' and '1'.
func (c Code) String() string {
	var builder strings.Builder
	builder.Grow(len(c))
	for _, bit := range c {
		if bit {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

// CodeTable derives the code of every leaf under root.
func CodeTable(root *Node) map[Symbol]Code {
	table := make(map[Symbol]Code)
	var walk func(node *Node, path Code)
	walk = func(node *Node, path Code) {
		if node == nil {
			return
		}
		if node.IsLeaf() {
			table[node.symbol] = slices.Clone(path)
			return
		}
		walk(node.left, append(path, false))
		walk(node.right, append(path, true))
	}
	walk(root, make(Code, 0, 16))
	return table
}
