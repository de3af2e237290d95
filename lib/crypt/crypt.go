// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package crypt

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/bureau-foundation/base62x/lib/fault"
	"github.com/bureau-foundation/base62x/lib/secret"
)

// hkdfInfoPrefix is the HKDF info prefix. The method name follows it.
// Changing it invalidates every existing token.
const hkdfInfoPrefix = "base62x.crypt.v1:"

// DeriveKey derives method.KeySize bytes from password. The password
// is borrowed; the returned buffer must be closed by the caller.
func DeriveKey(password *secret.Buffer, method Method) (*secret.Buffer, error) {
	reader := hkdf.New(sha256.New, password.Bytes(), nil, []byte(hkdfInfoPrefix+method.Name))
	derived := make([]byte, method.KeySize)
	if _, err := io.ReadFull(reader, derived); err != nil {
		secret.Zero(derived)
		return nil, fault.Crypt("deriving %s key: %w", method.Name, err)
	}
	key, err := secret.NewFromBytes(derived)
	if err != nil {
		return nil, fault.Crypt("protecting %s key: %w", method.Name, err)
	}
	return key, nil
}

// Encrypt encrypts plaintext under a key derived from password and
// returns the printable token. The password is borrowed.
func Encrypt(plaintext []byte, method Method, password *secret.Buffer) ([]byte, error) {
	iv := make([]byte, method.IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fault.Crypt("generating %s iv: %w", method.Name, err)
	}

	ciphertext, err := xor(plaintext, method, password, iv)
	if err != nil {
		return nil, err
	}

	hexLength := hex.EncodedLen(len(iv))
	token := make([]byte, hexLength+base64.StdEncoding.EncodedLen(len(ciphertext)))
	hex.Encode(token, iv)
	base64.StdEncoding.Encode(token[hexLength:], ciphertext)
	return token, nil
}

// Decrypt reverses Encrypt. A token whose IV prefix is not hex, whose
// body is empty or not base64, or that is shorter than the IV prefix
// fails with a crypt error. The password is borrowed.
func Decrypt(token []byte, method Method, password *secret.Buffer) ([]byte, error) {
	hexLength := hex.EncodedLen(method.IVSize)
	if len(token) <= hexLength {
		return nil, fault.Crypt("%s token is %d bytes, need more than the %d-character iv prefix", method.Name, len(token), hexLength)
	}

	iv := make([]byte, method.IVSize)
	if _, err := hex.Decode(iv, token[:hexLength]); err != nil {
		return nil, fault.Crypt("%s token iv: %w", method.Name, err)
	}

	body := token[hexLength:]
	ciphertext := make([]byte, base64.StdEncoding.DecodedLen(len(body)))
	n, err := base64.StdEncoding.Strict().Decode(ciphertext, body)
	if err != nil {
		return nil, fault.Crypt("%s token body: %w", method.Name, err)
	}

	return xor(ciphertext[:n], method, password, iv)
}

// xor runs the method's keystream over input. Encryption and
// decryption are the same operation for a stream cipher.
func xor(input []byte, method Method, password *secret.Buffer, iv []byte) ([]byte, error) {
	key, err := DeriveKey(password, method)
	if err != nil {
		return nil, err
	}
	defer key.Close()

	stream, err := method.newStream(key.Bytes(), iv)
	if err != nil {
		return nil, fault.Crypt("initializing %s: %w", method.Name, err)
	}
	output := make([]byte, len(input))
	stream.XORKeyStream(output, input)
	return output, nil
}
