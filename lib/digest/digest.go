// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/base62x/lib/fault"
)

// Size is the digest length in bytes.
const Size = 32

// prefix optionally tags the hex form.
const prefix = "blake3:"

// Digest is a BLAKE3-256 hash.
type Digest [Size]byte

// Sum hashes data.
func Sum(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// String returns the lowercase hex form without a prefix.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Parse reads a 64-character hex digest. Surrounding whitespace and a
// "blake3:" prefix are accepted; hex digits may be either case.
func Parse(text string) (Digest, error) {
	var d Digest
	trimmed := strings.TrimPrefix(strings.TrimSpace(text), prefix)
	if len(trimmed) != hex.EncodedLen(Size) {
		return d, fault.InvalidParameter("digest is %d hex characters, want %d", len(trimmed), hex.EncodedLen(Size))
	}
	if _, err := hex.Decode(d[:], []byte(trimmed)); err != nil {
		return d, fault.InvalidParameter("parsing digest: %w", err)
	}
	return d, nil
}
