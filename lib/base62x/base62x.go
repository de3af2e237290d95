// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package base62x

import (
	"strings"

	"github.com/bureau-foundation/base62x/lib/fault"
)

// alphabet maps six-bit values 0..60. It skips 'x'.
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwyz"

// escape introduces the two-character form of values 61..63.
const escape = 'x'

const escapedBase = len(alphabet) // 61

// invalid marks bytes outside the alphabet in the decode table.
const invalid = 0xff

var decodeTable = func() [256]byte {
	var table [256]byte
	for index := range table {
		table[index] = invalid
	}
	for value := range len(alphabet) {
		table[alphabet[value]] = byte(value)
	}
	return table
}()

// Codec is a value form of Encode and Decode.
type Codec struct{}

// Encode implements the text codec contract.
func (Codec) Encode(data []byte) string { return Encode(data) }

// Decode implements the text codec contract.
func (Codec) Decode(text string) ([]byte, error) { return Decode(text) }

// Encode renders data as Base62x text. Empty input yields "".
func Encode(data []byte) string {
	var builder strings.Builder
	builder.Grow(len(data)*4/3 + len(data)/8 + 4)

	full := len(data) - len(data)%3
	for index := 0; index < full; index += 3 {
		group := uint32(data[index])<<16 | uint32(data[index+1])<<8 | uint32(data[index+2])
		writeSextet(&builder, group>>18)
		writeSextet(&builder, group>>12&0x3f)
		writeSextet(&builder, group>>6&0x3f)
		writeSextet(&builder, group&0x3f)
	}

	switch len(data) - full {
	case 1:
		value := uint32(data[full])
		writeSextet(&builder, value>>6)
		writeSextet(&builder, value&0x3f)
	case 2:
		value := uint32(data[full])<<8 | uint32(data[full+1])
		writeSextet(&builder, value>>12)
		writeSextet(&builder, value>>6&0x3f)
		writeSextet(&builder, value&0x3f)
	}
	return builder.String()
}

func writeSextet(builder *strings.Builder, value uint32) {
	if int(value) < escapedBase {
		builder.WriteByte(alphabet[value])
		return
	}
	builder.WriteByte(escape)
	builder.WriteByte(byte('1' + int(value) - escapedBase))
}

// Decode parses Base62x text. It fails with a decode error on empty
// input, characters outside the alphabet, an 'x' not followed by '1',
// '2' or '3', a group count no byte length can produce, or a leading
// tail group too large for the bits it carries.
func Decode(text string) ([]byte, error) {
	if text == "" {
		return nil, fault.Decode("base62x: empty input")
	}

	sextets, err := parseSextets(text)
	if err != nil {
		return nil, err
	}

	tail := len(sextets) % 4
	if tail == 1 {
		return nil, fault.Decode("base62x: %d groups cannot come from whole bytes", len(sextets))
	}

	full := len(sextets) - tail
	output := make([]byte, 0, full/4*3+2)
	for index := 0; index < full; index += 4 {
		group := uint32(sextets[index])<<18 | uint32(sextets[index+1])<<12 |
			uint32(sextets[index+2])<<6 | uint32(sextets[index+3])
		output = append(output, byte(group>>16), byte(group>>8), byte(group))
	}

	switch tail {
	case 2:
		if sextets[full] >= 1<<2 {
			return nil, fault.Decode("base62x: final single-byte group overflows (%d)", sextets[full])
		}
		output = append(output, sextets[full]<<6|sextets[full+1])
	case 3:
		if sextets[full] >= 1<<4 {
			return nil, fault.Decode("base62x: final two-byte group overflows (%d)", sextets[full])
		}
		value := uint32(sextets[full])<<12 | uint32(sextets[full+1])<<6 | uint32(sextets[full+2])
		output = append(output, byte(value>>8), byte(value))
	}
	return output, nil
}

func parseSextets(text string) ([]byte, error) {
	sextets := make([]byte, 0, len(text))
	for index := 0; index < len(text); index++ {
		character := text[index]
		if character == escape {
			if index+1 >= len(text) {
				return nil, fault.Decode("base62x: dangling escape at offset %d", index)
			}
			next := text[index+1]
			if next < '1' || next > '3' {
				return nil, fault.Decode("base62x: invalid escape %q at offset %d", text[index:index+2], index)
			}
			sextets = append(sextets, byte(escapedBase+int(next-'1')))
			index++
			continue
		}
		value := decodeTable[character]
		if value == invalid {
			return nil, fault.Decode("base62x: invalid character %q at offset %d", character, index)
		}
		sextets = append(sextets, value)
	}
	return sextets, nil
}
