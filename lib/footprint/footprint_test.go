// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package footprint

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/bureau-foundation/base62x/lib/compression"
	"github.com/bureau-foundation/base62x/lib/fault"
)

func forge(fields string) []byte {
	return []byte(Prefix + base64.StdEncoding.EncodeToString([]byte(fields)) + "]")
}

func TestAttachWireFormat(t *testing.T) {
	tests := []struct {
		selection compression.Selection
		want      string
	}{
		// base64("gzip,zlib") = Z3ppcCx6bGli
		{compression.Selection{Algorithm: compression.AlgorithmGzip, Encoding: compression.EncodingZlib}, "[MFB62X.COMPRESS.Z3ppcCx6bGli]"},
		// base64("huffman,") = aHVmZm1hbiw=
		{compression.Selection{Algorithm: compression.AlgorithmHuffman}, "[MFB62X.COMPRESS.aHVmZm1hbiw=]"},
	}
	for _, tt := range tests {
		if got := string(Attach(tt.selection)); got != tt.want {
			t.Errorf("Attach(%v) = %q, want %q", tt.selection, got, tt.want)
		}
	}
}

func TestAttachDetachRoundtrip(t *testing.T) {
	selections := []compression.Selection{
		{Algorithm: compression.AlgorithmGzip, Encoding: compression.EncodingZlib},
		{Algorithm: compression.AlgorithmGzip, Encoding: compression.EncodingDeflate},
		{Algorithm: compression.AlgorithmGzip, Encoding: compression.EncodingGzip},
		{Algorithm: compression.AlgorithmHuffman},
	}

	for _, selection := range selections {
		t.Run(selection.String(), func(t *testing.T) {
			header := Attach(selection)
			detached, err := Detach(header)
			if err != nil {
				t.Fatalf("Detach: %v", err)
			}
			if len(detached.Payload) != 0 {
				t.Errorf("payload = %q, want empty", detached.Payload)
			}
			if detached.Selection != selection {
				t.Errorf("selection = %+v, want %+v", detached.Selection, selection)
			}
			if detached.HeaderLength != len(header) {
				t.Errorf("HeaderLength = %d, want %d", detached.HeaderLength, len(header))
			}

			body := []byte("compressed]body[with brackets")
			detached, err = Detach(append(Attach(selection), body...))
			if err != nil {
				t.Fatalf("Detach with body: %v", err)
			}
			if !bytes.Equal(detached.Payload, body) {
				t.Errorf("payload = %q, want %q", detached.Payload, body)
			}
		})
	}
}

func TestDetachWithoutFootprint(t *testing.T) {
	for _, buffer := range []string{
		"plain payload",
		"[MFB62X.COMPRES",
		"x[MFB62X.COMPRESS.Z3ppcCx6bGli]",
		Prefix,
		Prefix + "Z3ppcCx6bGli",
		Prefix + "not base64!]tail",
		Prefix + "!!!!]",
		Prefix + "]empty span",
		Prefix + "Z3pp===]three pads",
		Prefix + strings.Repeat("A", maxSpan+1) + "]",
	} {
		detached, err := Detach([]byte(buffer))
		if err != nil {
			t.Fatalf("Detach(%q): %v", buffer, err)
		}
		if detached.Compressed() {
			t.Errorf("Detach(%q) reported compression %v", buffer, detached.Selection)
		}
		if string(detached.Payload) != buffer {
			t.Errorf("Detach(%q) payload = %q", buffer, detached.Payload)
		}
	}
}

func TestDetachNormalizesEncoding(t *testing.T) {
	detached, err := Detach(forge("huffman,zlib"))
	if err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if detached.Selection != (compression.Selection{Algorithm: compression.AlgorithmHuffman}) {
		t.Errorf("huffman footprint kept its encoding: %+v", detached.Selection)
	}

	detached, err = Detach(forge("gzip,"))
	if err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if detached.Selection != (compression.Selection{Algorithm: compression.AlgorithmGzip}) {
		t.Errorf("gzip footprint without encoding = %+v", detached.Selection)
	}

	detached, err = Detach(forge(","))
	if err != nil {
		t.Fatalf("Detach: %v", err)
	}
	if detached.Compressed() {
		t.Errorf("empty algorithm field should mean uncompressed, got %v", detached.Selection)
	}
}

func TestDetachRejects(t *testing.T) {
	tests := []struct {
		name   string
		buffer []byte
	}{
		{"unwhitelisted algorithm", forge("lzma,")},
		{"unwhitelisted gzip encoding", forge("gzip,brotli")},
		{"one field", forge("gzip")},
		{"three fields", forge("gzip,zlib,extra")},
		{"base64 characters with a bad length", []byte(Prefix + "abc]")},
		{"padding in the wrong place", []byte(Prefix + "Z3ppcCx6bGl=]")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Detach(tt.buffer)
			if !fault.Is(err, fault.KindDecode) {
				t.Errorf("Detach(%q) = %v, want decode error", tt.buffer, err)
			}
		})
	}
}
