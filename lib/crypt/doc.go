// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package crypt wraps payloads in an unauthenticated stream cipher and
// frames the result as printable text:
//
//	hex(iv) || base64(ciphertext)
//
// The hex prefix has a fixed length per method, so a decryptor splits
// the token without a delimiter. A fresh random IV is drawn for every
// call to [Encrypt].
//
// Passwords are never used as keys directly. [DeriveKey] runs
// HKDF-SHA256 over the password with the method name in the info
// string, so one password yields unrelated keys for different methods.
// Derived keys live in [secret.Buffer] and are closed after each use.
//
// There is no integrity tag. A wrong password or a tampered body
// decrypts to garbage without an error.
//
// Key exports:
//
//   - [LookupMethod] / [Methods] -- the cipher registry
//   - [Encrypt] / [Decrypt] -- token framing around a stream cipher
//   - [DeriveKey] -- password to method-sized key
package crypt
