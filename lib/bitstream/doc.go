// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bitstream packs individual bits into bytes and unpacks them
// again, most significant bit first within each byte.
//
// The stream carries no length marker. [Writer.Finish] pads the final
// partial byte with zero bits, so a reader sees up to seven trailing
// padding bits; the Huffman codec stops at its EOF symbol and never
// interprets them. [Reader.ReadBit] returns io.EOF only once every bit
// of the buffer, padding included, has been consumed.
package bitstream
