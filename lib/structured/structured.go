// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package structured

import (
	"bytes"
	"reflect"

	"github.com/bureau-foundation/base62x/lib/codec"
	"github.com/bureau-foundation/base62x/lib/fault"
)

// Prefix is the encoded CBOR self-describe tag.
var Prefix = []byte{0xd9, 0xd9, 0xf7}

// CBOR initial bytes for arrays (major type 4) and maps (major type 5)
// span 0x80 through 0xbf.
const (
	headFirst = 0x80
	headLast  = 0xbf
)

// Composite reports whether value is a map, or a slice or array whose
// elements are not bytes.
func Composite(value any) bool {
	if value == nil {
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	switch kind {
	case reflect.Map:
		return true
	case reflect.Slice, reflect.Array:
		return reflect.TypeOf(value).Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// Flatten encodes a composite value. Values that CBOR cannot represent
// (for example a map holding a channel) fail with an invalid parameter
// error.
func Flatten(value any) ([]byte, error) {
	if !Composite(value) {
		return nil, fault.InvalidParameter("cannot flatten %T: not a map, slice or array", value)
	}
	body, err := codec.Marshal(value)
	if err != nil {
		return nil, fault.InvalidParameter("flattening %T: %w", value, err)
	}
	output := make([]byte, 0, len(Prefix)+len(body))
	output = append(output, Prefix...)
	return append(output, body...), nil
}

// Looks reports whether data matches the flattened-value grammar.
func Looks(data []byte) bool {
	if len(data) <= len(Prefix) || !bytes.HasPrefix(data, Prefix) {
		return false
	}
	head := data[len(Prefix)]
	return head >= headFirst && head <= headLast
}

// Reconstitute decodes a flattened value. It returns false, and the
// caller keeps the raw bytes, when data does not match the grammar or
// does not decode completely.
func Reconstitute(data []byte) (any, bool) {
	if !Looks(data) {
		return nil, false
	}
	value, err := codec.UnmarshalAny(data[len(Prefix):])
	if err != nil {
		return nil, false
	}
	return value, true
}
