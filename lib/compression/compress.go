// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compression

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/bureau-foundation/base62x/lib/fault"
	"github.com/bureau-foundation/base62x/lib/huffman"
)

// Algorithm names a compression algorithm. The names travel inside the
// footprint header, so they are wire constants.
type Algorithm string

const (
	// AlgorithmNone means the payload is not compressed.
	AlgorithmNone Algorithm = ""

	// AlgorithmGzip is the gzip family; it requires an Encoding.
	AlgorithmGzip Algorithm = "gzip"

	// AlgorithmHuffman is the self-describing Huffman codec.
	AlgorithmHuffman Algorithm = "huffman"
)

// Encoding names the container format of the gzip family.
type Encoding string

const (
	// EncodingNone is the absent encoding. Huffman always uses it.
	EncodingNone Encoding = ""

	// EncodingZlib is a zlib stream (RFC 1950).
	EncodingZlib Encoding = "zlib"

	// EncodingDeflate is a raw deflate stream (RFC 1951).
	EncodingDeflate Encoding = "deflate"

	// EncodingGzip is a gzip member (RFC 1952).
	EncodingGzip Encoding = "gzip"
)

// gzipEncodings is the whitelist of gzip sub-encodings.
var gzipEncodings = []Encoding{EncodingZlib, EncodingDeflate, EncodingGzip}

// Algorithms returns the whitelisted algorithms in footprint order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmGzip, AlgorithmHuffman}
}

// ParseAlgorithm looks name up in the whitelist.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AlgorithmGzip, AlgorithmHuffman:
		return Algorithm(name), nil
	default:
		return AlgorithmNone, fmt.Errorf("unknown compression algorithm %q", name)
	}
}

// ParseEncoding looks name up in the encodings allowed for algorithm.
// Huffman accepts any name and returns EncodingNone.
func ParseEncoding(algorithm Algorithm, name string) (Encoding, error) {
	switch algorithm {
	case AlgorithmHuffman:
		return EncodingNone, nil
	case AlgorithmGzip:
		if slices.Contains(gzipEncodings, Encoding(name)) {
			return Encoding(name), nil
		}
		return EncodingNone, fmt.Errorf("unknown %s encoding %q", algorithm, name)
	default:
		return EncodingNone, fmt.Errorf("unknown compression algorithm %q", algorithm)
	}
}

// Encodings returns the sub-encodings allowed for the algorithm.
func (a Algorithm) Encodings() []Encoding {
	if a == AlgorithmGzip {
		return slices.Clone(gzipEncodings)
	}
	return nil
}

// Selection is a validated (algorithm, encoding) pair.
type Selection struct {
	Algorithm Algorithm
	Encoding  Encoding
}

// NewSelection validates algorithm and encoding against the whitelist.
// A huffman selection silently drops any encoding.
func NewSelection(algorithm, encoding string) (Selection, error) {
	parsed, err := ParseAlgorithm(algorithm)
	if err != nil {
		return Selection{}, fault.InvalidParameter("algo: %w", err)
	}
	parsedEncoding, err := ParseEncoding(parsed, encoding)
	if err != nil {
		return Selection{}, fault.InvalidParameter("encoding: %w", err)
	}
	return Selection{Algorithm: parsed, Encoding: parsedEncoding}, nil
}

// DefaultSelection returns gzip with the zlib encoding.
func DefaultSelection() Selection {
	return Selection{Algorithm: AlgorithmGzip, Encoding: EncodingZlib}
}

// IsNone reports whether the selection disables compression.
func (s Selection) IsNone() bool { return s.Algorithm == AlgorithmNone }

// String renders the selection as "algorithm" or "algorithm/encoding".
func (s Selection) String() string {
	switch {
	case s.IsNone():
		return "none"
	case s.Encoding == EncodingNone:
		return string(s.Algorithm)
	default:
		return string(s.Algorithm) + "/" + string(s.Encoding)
	}
}

// Compress compresses data with the selected algorithm. A none
// selection returns data unchanged (no copy).
func Compress(data []byte, selection Selection) ([]byte, error) {
	switch selection.Algorithm {
	case AlgorithmNone:
		return data, nil
	case AlgorithmHuffman:
		return huffman.Encode(data)
	case AlgorithmGzip:
		return compressGzipFamily(data, selection.Encoding)
	default:
		return nil, fault.Compression("unsupported compression algorithm %q", selection.Algorithm)
	}
}

// Decompress reverses Compress. A gzip selection without an encoding
// decodes as a gzip member.
func Decompress(data []byte, selection Selection) ([]byte, error) {
	switch selection.Algorithm {
	case AlgorithmNone:
		return data, nil
	case AlgorithmHuffman:
		return huffman.Decode(data)
	case AlgorithmGzip:
		return decompressGzipFamily(data, selection.Encoding)
	default:
		return nil, fault.Compression("unsupported compression algorithm %q", selection.Algorithm)
	}
}

// Gzip family: all three encodings share the deflate core at
// BestCompression (level 9).

func compressGzipFamily(data []byte, encoding Encoding) ([]byte, error) {
	var buffer bytes.Buffer
	var writer io.WriteCloser
	var err error

	switch encoding {
	case EncodingZlib:
		writer, err = zlib.NewWriterLevel(&buffer, zlib.BestCompression)
	case EncodingDeflate:
		writer, err = flate.NewWriter(&buffer, flate.BestCompression)
	case EncodingGzip, EncodingNone:
		writer, err = gzip.NewWriterLevel(&buffer, gzip.BestCompression)
	default:
		return nil, fault.Compression("unsupported gzip encoding %q", encoding)
	}
	if err != nil {
		return nil, fault.Compression("creating %s writer: %w", encodingName(encoding), err)
	}

	if _, err := writer.Write(data); err != nil {
		return nil, fault.Compression("%s compress: %w", encodingName(encoding), err)
	}
	if err := writer.Close(); err != nil {
		return nil, fault.Compression("%s compress: %w", encodingName(encoding), err)
	}
	return buffer.Bytes(), nil
}

func decompressGzipFamily(compressed []byte, encoding Encoding) ([]byte, error) {
	source := bytes.NewReader(compressed)
	var reader io.ReadCloser
	var err error

	switch encoding {
	case EncodingZlib:
		reader, err = zlib.NewReader(source)
	case EncodingDeflate:
		reader = flate.NewReader(source)
	case EncodingGzip, EncodingNone:
		reader, err = gzip.NewReader(source)
	default:
		return nil, fault.Compression("unsupported gzip encoding %q", encoding)
	}
	if err != nil {
		return nil, fault.Compression("opening %s stream: %w", encodingName(encoding), err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fault.Compression("%s decompress: %w", encodingName(encoding), err)
	}
	return decompressed, nil
}

func encodingName(encoding Encoding) string {
	if encoding == EncodingNone {
		return string(EncodingGzip)
	}
	return string(encoding)
}
