// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/bureau-foundation/base62x/lib/fault"
	"github.com/bureau-foundation/base62x/lib/structured"
)

// normalize converts a caller payload into the bytes the pipeline
// carries. It reports whether the bytes are a flattened composite.
func normalize(payload any) ([]byte, bool, error) {
	switch value := payload.(type) {
	case nil:
		return nil, false, fault.InvalidParameter("payload cannot be empty")
	case string:
		return nonEmpty([]byte(value))
	case []byte:
		return nonEmpty(value)
	case *os.File, io.Reader, io.Writer, io.Closer:
		return nil, false, fault.InvalidParameter("payload cannot be a resource handle (%T)", payload)
	case bool:
		return []byte(strconv.FormatBool(value)), false, nil
	}

	kind := reflect.TypeOf(payload).Kind()
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return []byte(strconv.FormatInt(reflect.ValueOf(payload).Int(), 10)), false, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return []byte(strconv.FormatUint(reflect.ValueOf(payload).Uint(), 10)), false, nil
	case reflect.Float32, reflect.Float64:
		bits := 64
		if kind == reflect.Float32 {
			bits = 32
		}
		return []byte(strconv.FormatFloat(reflect.ValueOf(payload).Float(), 'g', -1, bits)), false, nil
	case reflect.String:
		return nonEmpty([]byte(reflect.ValueOf(payload).String()))
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return nil, false, fault.InvalidParameter("payload cannot be a resource handle (%T)", payload)
	case reflect.Pointer, reflect.Struct:
		return nil, false, fault.InvalidParameter("payload cannot be an object reference (%T)", payload)
	case reflect.Map, reflect.Slice, reflect.Array:
		if reflect.ValueOf(payload).Len() == 0 {
			return nil, false, fault.InvalidParameter("payload cannot be empty")
		}
		if !structured.Composite(payload) {
			return byteElements(reflect.ValueOf(payload)), false, nil
		}
		flat, err := structured.Flatten(payload)
		if err != nil {
			return nil, false, err
		}
		return flat, true, nil
	default:
		return nil, false, fault.InvalidParameter("unsupported payload type %T", payload)
	}
}

func nonEmpty(data []byte) ([]byte, bool, error) {
	if len(data) == 0 {
		return nil, false, fault.InvalidParameter("payload cannot be empty")
	}
	return data, false, nil
}

// byteElements copies a named byte slice or a byte array.
func byteElements(value reflect.Value) []byte {
	data := make([]byte, value.Len())
	for index := range data {
		data[index] = byte(value.Index(index).Uint())
	}
	return data
}
