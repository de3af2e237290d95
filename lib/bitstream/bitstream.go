// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bitstream

import "io"

// Writer accumulates bits MSB-first into a byte buffer.
type Writer struct {
	data []byte

	// working holds the bits of the byte being assembled, already
	// shifted into their final positions.
	working byte
	// count is the number of bits in working; always < 8.
	count uint
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteBit appends one bit: 1 if bit is true.
func (w *Writer) WriteBit(bit bool) {
	if bit {
		w.working |= 0x80 >> w.count
	}
	w.count++
	if w.count == 8 {
		w.data = append(w.data, w.working)
		w.working = 0
		w.count = 0
	}
}

// WriteBits appends bits in order.
func (w *Writer) WriteBits(bits []bool) {
	for _, bit := range bits {
		w.WriteBit(bit)
	}
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return len(w.data)*8 + int(w.count)
}

// Finish returns the packed bytes, including the partial working byte
// if any bits are pending. The unwritten low-order bits of that last
// byte are zero. The Writer may continue to be used; later writes
// extend the stream from where it left off.
func (w *Writer) Finish() []byte {
	output := make([]byte, len(w.data), len(w.data)+1)
	copy(output, w.data)
	if w.count > 0 {
		output = append(output, w.working)
	}
	return output
}

// Reader yields the bits of a byte buffer MSB-first.
type Reader struct {
	data   []byte
	cursor int
}

// NewReader returns a Reader positioned at the first bit of data. The
// buffer is borrowed, not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit returns the next bit. It returns io.EOF once all
// 8*len(data) bits have been read.
func (r *Reader) ReadBit() (bool, error) {
	if r.cursor >= len(r.data)*8 {
		return false, io.EOF
	}
	value := r.data[r.cursor/8]>>(7-uint(r.cursor%8))&1 == 1
	r.cursor++
	return value, nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return len(r.data)*8 - r.cursor
}
