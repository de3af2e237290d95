// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"slices"
	"strings"

	"golang.org/x/crypto/chacha20"

	"github.com/bureau-foundation/base62x/lib/fault"
)

// DefaultMethod is used when the caller names no method.
const DefaultMethod = "aes-128-ctr"

// Method describes one supported stream cipher.
type Method struct {
	// Name is the lowercase registry name, e.g. "aes-256-ctr".
	Name string

	// KeySize is the derived key length in bytes.
	KeySize int

	// IVSize is the IV or nonce length in bytes. The token carries
	// it as 2*IVSize hex characters.
	IVSize int

	newStream func(key, iv []byte) (cipher.Stream, error)
}

var methods = []Method{
	aesCTR("aes-128-ctr", 16),
	aesCTR("aes-192-ctr", 24),
	aesCTR("aes-256-ctr", 32),
	{Name: "chacha20", KeySize: chacha20.KeySize, IVSize: chacha20.NonceSize, newStream: newChaCha20},
	{Name: "xchacha20", KeySize: chacha20.KeySize, IVSize: chacha20.NonceSizeX, newStream: newChaCha20},
}

func aesCTR(name string, keySize int) Method {
	return Method{
		Name:    name,
		KeySize: keySize,
		IVSize:  aes.BlockSize,
		newStream: func(key, iv []byte) (cipher.Stream, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return cipher.NewCTR(block, iv), nil
		},
	}
}

// chacha20 picks the variant from the nonce length.
func newChaCha20(key, nonce []byte) (cipher.Stream, error) {
	return chacha20.NewUnauthenticatedCipher(key, nonce)
}

// LookupMethod finds a method by name, ignoring case and surrounding
// whitespace. An empty name selects DefaultMethod.
func LookupMethod(name string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = DefaultMethod
	}
	index := slices.IndexFunc(methods, func(m Method) bool { return m.Name == normalized })
	if index < 0 {
		return Method{}, fault.InvalidParameter("unsupported cipher method %q (supported: %s)", name, strings.Join(MethodNames(), ", "))
	}
	return methods[index], nil
}

// Methods returns every supported method in registry order.
func Methods() []Method {
	return slices.Clone(methods)
}

// MethodNames returns the registry names in registry order.
func MethodNames() []string {
	names := make([]string, len(methods))
	for index, method := range methods {
		names[index] = method.Name
	}
	return names
}

// String returns the method name.
func (m Method) String() string { return m.Name }
