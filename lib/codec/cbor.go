// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

var encMode cbor.EncMode

// decMode decodes untyped maps as map[string]any, the shape most
// callers flatten. looseDecMode accepts any key type and is the
// fallback when a map carries non-string keys.
var (
	decMode      cbor.DecMode
	looseDecMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}

	looseDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[any]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes data into v. Trailing bytes after the first item
// are an error.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// UnmarshalAny decodes data into generic values. Maps come back as
// map[string]any when every key is a text string, and as map[any]any
// otherwise.
func UnmarshalAny(data []byte) (any, error) {
	var value any
	err := decMode.Unmarshal(data, &value)
	if err == nil {
		return value, nil
	}
	var loose any
	if looseErr := looseDecMode.Unmarshal(data, &loose); looseErr != nil {
		return nil, err
	}
	return loose, nil
}

// Diagnose returns RFC 8949 §8 diagnostic notation for data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
