// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package huffman implements the self-describing Huffman codec used by
// the "huffman" compression algorithm.
//
// The tree is built from the payload being compressed, so it is only
// valid for the bytes that payload contains. An extra [EOF] symbol of
// weight 1 is always added and its code terminates every stream; the
// decoder stops there and never depends on the padding bits that
// [bitstream.Writer.Finish] leaves in the last byte.
//
// Encoded layout:
//
//	[serialized tree] [bit-packed codes] [EOF code] [zero padding to a byte]
//
// The serialized tree is a pre-order walk of one tag byte per node:
//
//	0x00  internal node, followed by its left then right subtree
//	0x01  leaf, followed by the literal byte
//	0x02  the EOF leaf
//
// The layout is private to this implementation: each stream embeds its
// own tree, so there is no cross-implementation compatibility to keep.
//
// Key exports:
//
//   - [BuildTree] -- optimal prefix code from a frequency sample
//   - [CodeTable] -- symbol to bit-string map derived from a tree
//   - [Serialize] / [Deserialize] -- tree to and from its tagged prefix
//   - [Encode] / [Decode] -- the complete codec
package huffman
