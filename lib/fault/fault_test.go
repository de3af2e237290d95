// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestConstructorsSetKind(t *testing.T) {
	tests := []struct {
		err  *Error
		want Kind
	}{
		{InvalidParameter("payload is empty"), KindInvalidParameter},
		{Encode("empty output"), KindEncode},
		{Decode("truncated stream"), KindDecode},
		{Compression("zlib failed"), KindCompression},
		{Crypt("bad iv"), KindCrypt},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if tt.err.Kind != tt.want {
				t.Errorf("Kind = %q, want %q", tt.err.Kind, tt.want)
			}
			if !Is(tt.err, tt.want) {
				t.Errorf("Is(%v, %q) = false", tt.err, tt.want)
			}
		})
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := Decode("footprint names unknown algorithm %q", "lzma")
	wrapped := fmt.Errorf("decoding payload: %w", inner)

	kind, ok := KindOf(wrapped)
	if !ok {
		t.Fatal("KindOf did not find the classified error")
	}
	if kind != KindDecode {
		t.Errorf("KindOf = %q, want %q", kind, KindDecode)
	}
	if Is(wrapped, KindCrypt) {
		t.Error("Is(wrapped, crypt) should be false")
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	err := Compression("reading gzip stream: %w", io.ErrUnexpectedEOF)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if got, want := err.Error(), "compression: reading gzip stream: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindOfUnclassified(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf should report false for an unclassified error")
	}
	if _, ok := KindOf(nil); ok {
		t.Error("KindOf should report false for nil")
	}
}
