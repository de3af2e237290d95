// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
	"github.com/bureau-foundation/base62x/lib/config"
	"github.com/bureau-foundation/base62x/lib/digest"
)

// execute runs the command tree against in-memory streams with no
// config file in effect.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")

	var stdout, stderr bytes.Buffer
	streams := Streams{In: strings.NewReader(stdin), Out: &stdout, Err: &stderr}
	err := Root(streams).Execute(context.Background(), args)
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestEncodeKnownValue(t *testing.T) {
	output, err := execute(t, "Man", "encode")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if output != "JM5k\n" {
		t.Errorf("encode output = %q, want %q", output, "JM5k\n")
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	keyFile := writeFile(t, "key.txt", "correct horse battery staple\n")
	payload := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 8)

	tests := []struct {
		name   string
		encode []string
		decode []string
	}{
		{name: "plain"},
		{name: "gzip zlib", encode: []string{"-c", "gzip", "-e", "zlib"}},
		{name: "gzip deflate", encode: []string{"--compress", "gzip", "--encoding", "deflate"}},
		{name: "gzip gzip", encode: []string{"-c", "gzip", "-e", "gzip"}},
		{name: "huffman", encode: []string{"-c", "huffman"}},
		{name: "explicit none", encode: []string{"-c", "none"}},
		{
			name:   "encrypted",
			encode: []string{"-k", keyFile},
			decode: []string{"-k", keyFile},
		},
		{
			name:   "encrypted huffman xchacha20",
			encode: []string{"-k", keyFile, "-m", "xchacha20", "-c", "huffman"},
			decode: []string{"-k", keyFile, "-m", "XChaCha20"},
		},
		{
			name:   "encrypted gzip aes-256",
			encode: []string{"-k", keyFile, "-m", "aes-256-ctr", "-c", "gzip", "-e", "deflate"},
			decode: []string{"-k", keyFile, "-m", "aes-256-ctr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := execute(t, payload, append([]string{"encode"}, tt.encode...)...)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			decoded, err := execute(t, text, append([]string{"decode"}, tt.decode...)...)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if decoded != payload {
				t.Errorf("roundtrip = %q, want %q", decoded, payload)
			}
		})
	}
}

func TestDecodeIgnoresWhitespace(t *testing.T) {
	text, err := execute(t, "wrapped payload", "encode", "-c", "huffman")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	trimmed := strings.TrimSpace(text)
	wrapped := trimmed[:len(trimmed)/2] + "\n  " + trimmed[len(trimmed)/2:] + "\r\n"

	decoded, err := execute(t, wrapped, "decode")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != "wrapped payload" {
		t.Errorf("decode = %q", decoded)
	}
}

func TestFileInputAndOutput(t *testing.T) {
	input := writeFile(t, "input.bin", "\x00\x01\x02binary\xff")
	textPath := filepath.Join(t.TempDir(), "out.b62x")
	payloadPath := filepath.Join(t.TempDir(), "out.bin")

	if output, err := execute(t, "", "encode", "-o", textPath, input); err != nil || output != "" {
		t.Fatalf("encode to file: output %q, err %v", output, err)
	}
	if _, err := execute(t, "", "decode", "--output", payloadPath, textPath); err != nil {
		t.Fatalf("decode from file: %v", err)
	}

	got, err := os.ReadFile(payloadPath)
	if err != nil {
		t.Fatalf("reading decoded payload: %v", err)
	}
	if string(got) != "\x00\x01\x02binary\xff" {
		t.Errorf("decoded payload = %q", got)
	}
}

func TestHexInputAndDiag(t *testing.T) {
	// A self-described CBOR array: the flattened form of []int{1, 2, 3}.
	text, err := execute(t, "d9 d9 f7\n83 01 02 03\n", "encode", "--hex", "-c", "gzip", "-e", "zlib")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	notation, err := execute(t, text, "decode", "--diag")
	if err != nil {
		t.Fatalf("decode --diag: %v", err)
	}
	if !strings.Contains(notation, "[1, 2, 3]") {
		t.Errorf("diagnostic notation = %q", notation)
	}
}

func TestDiagRejectsUnstructuredPayload(t *testing.T) {
	text, err := execute(t, "just text", "encode")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	_, err = execute(t, text, "decode", "--diag")
	if cli.ExitCode(err) != 2 {
		t.Errorf("decode --diag on plain text = %v, want validation error", err)
	}
}

func TestInspectHuffman(t *testing.T) {
	const payload = "AAAAAAAABBBBCCD"
	text, err := execute(t, payload, "encode", "-c", "huffman")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	output, err := execute(t, text, "inspect", "--json")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	var result inspectResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("parsing inspect output %q: %v", output, err)
	}

	if result.Compression != "huffman" {
		t.Errorf("compression = %q, want huffman", result.Compression)
	}
	if result.FootprintBytes != len("[MFB62X.COMPRESS.aHVmZm1hbiw=]") {
		t.Errorf("footprint = %d bytes", result.FootprintBytes)
	}
	if result.PlaintextBytes != len(payload) || result.Cipher != "" || result.Structured {
		t.Errorf("unexpected report %+v", result)
	}

	if want := digest.Sum([]byte(payload)); result.Digest != want {
		t.Errorf("digest = %s, want %s", result.Digest, want)
	}

	want := []huffmanCode{
		{Symbol: "'A'", Code: "1"},
		{Symbol: "'B'", Code: "01"},
		{Symbol: "'C'", Code: "001"},
		{Symbol: "EOF", Code: "0000"},
		{Symbol: "'D'", Code: "0001"},
	}
	if len(result.HuffmanCodes) != len(want) {
		t.Fatalf("huffman codes = %+v, want %+v", result.HuffmanCodes, want)
	}
	for index := range want {
		if result.HuffmanCodes[index] != want[index] {
			t.Errorf("code %d = %+v, want %+v", index, result.HuffmanCodes[index], want[index])
		}
	}
}

func TestInspectExpect(t *testing.T) {
	text, err := execute(t, "verified", "encode", "-c", "gzip", "-e", "zlib")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	match := "blake3:" + digest.Sum([]byte("verified")).String()
	if _, err := execute(t, text, "inspect", "--expect", match); err != nil {
		t.Errorf("inspect --expect with the matching digest: %v", err)
	}

	mismatch := digest.Sum([]byte("tampered")).String()
	output, err := execute(t, text, "inspect", "--json", "--expect", mismatch)
	if cli.ExitCode(err) != 1 {
		t.Errorf("inspect --expect with a different digest = %v, want exit 1", err)
	}
	if !strings.Contains(output, `"blake3"`) {
		t.Errorf("report not written before the mismatch: %q", output)
	}

	if _, err := execute(t, text, "inspect", "--expect", "not-a-digest"); cli.ExitCode(err) != 2 {
		t.Errorf("inspect --expect with a malformed digest = %v, want exit 2", err)
	}
}

func TestInspectText(t *testing.T) {
	keyFile := writeFile(t, "key.txt", "hunter2")
	text, err := execute(t, "secret payload", "encode", "-k", keyFile, "-m", "chacha20", "-c", "gzip", "-e", "gzip")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	output, err := execute(t, text, "inspect", "-k", keyFile, "-m", "chacha20")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, fragment := range []string{"gzip/gzip", "chacha20", "plaintext     14 bytes"} {
		if !strings.Contains(output, fragment) {
			t.Errorf("inspect output lacks %q:\n%s", fragment, output)
		}
	}
	if strings.Contains(output, "Huffman codes") {
		t.Errorf("gzip report lists Huffman codes:\n%s", output)
	}
}

func TestMethods(t *testing.T) {
	output, err := execute(t, "", "methods", "--json")
	if err != nil {
		t.Fatalf("methods: %v", err)
	}
	var result methodsResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("parsing methods output: %v", err)
	}
	if len(result.Ciphers) != 5 {
		t.Errorf("ciphers = %+v, want 5", result.Ciphers)
	}
	if len(result.Compression) != 2 || result.Compression[0].Algorithm != "gzip" || len(result.Compression[0].Encodings) != 3 {
		t.Errorf("compression = %+v", result.Compression)
	}

	text, err := execute(t, "", "methods")
	if err != nil {
		t.Fatalf("methods: %v", err)
	}
	if !strings.Contains(text, "aes-128-ctr") || !strings.Contains(text, "(default)") || !strings.Contains(text, "huffman") {
		t.Errorf("methods table:\n%s", text)
	}
}

func TestVersion(t *testing.T) {
	output, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(output, "base62x ") {
		t.Errorf("version output = %q", output)
	}
}

func TestConfigDefaults(t *testing.T) {
	keyFile := writeFile(t, "key.txt", "from-config")
	configPath := writeFile(t, "base62x.yaml", `
compression:
  algorithm: huffman
encryption:
  method: aes-192-ctr
  key_file: `+keyFile+`
log:
  level: debug
`)

	text, err := execute(t, "configured payload", "encode", "--config", configPath)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := execute(t, text, "inspect", "--json", "--config", configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	var result inspectResult
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("parsing inspect output: %v", err)
	}
	if result.Compression != "huffman" || result.Cipher != "aes-192-ctr" {
		t.Errorf("config defaults not applied: %+v", result)
	}

	// Flags override the config.
	plain, err := execute(t, "configured payload", "encode", "--config", configPath, "-c", "none", "-k", writeFile(t, "other.txt", "other"))
	if err != nil {
		t.Fatalf("encode with overrides: %v", err)
	}
	if _, err := execute(t, plain, "inspect", "--config", configPath); err != nil {
		t.Fatalf("inspect with the wrong key still reports stages: %v", err)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	configPath := writeFile(t, "base62x.yaml", "compression:\n  algorithm: gzip\n  encoding: deflate\n")

	var stdout bytes.Buffer
	t.Setenv(config.EnvironmentVariable, configPath)
	streams := Streams{In: strings.NewReader("from env"), Out: &stdout, Err: &bytes.Buffer{}}
	if err := Root(streams).Execute(context.Background(), []string{"encode"}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	output, err := execute(t, stdout.String(), "inspect", "--json")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(output, `"compression": "gzip/deflate"`) {
		t.Errorf("environment config not applied:\n%s", output)
	}
}

func TestErrors(t *testing.T) {
	keyFile := writeFile(t, "key.txt", "k")
	invalidConfig := writeFile(t, "bad.yaml", "encryption:\n  method: rot13\n")

	tests := []struct {
		name  string
		stdin string
		args  []string
		exit  int
	}{
		{"empty payload", "", []string{"encode"}, 2},
		{"unknown algorithm", "x", []string{"encode", "-c", "lzma"}, 2},
		{"gzip without encoding", "x", []string{"encode", "-c", "gzip"}, 2},
		{"encoding without algorithm", "x", []string{"encode", "-e", "zlib"}, 2},
		{"method without key", "x", []string{"encode", "-m", "chacha20"}, 2},
		{"unknown method", "x", []string{"encode", "-k", keyFile, "-m", "rot13"}, 2},
		{"key and payload on stdin", "x", []string{"encode", "-k", "-"}, 2},
		{"bad hex", "zz", []string{"encode", "--hex"}, 2},
		{"too many files", "", []string{"encode", keyFile, keyFile}, 2},
		{"missing input", "", []string{"decode", "/definitely/not/here.b62x"}, 3},
		{"missing key file", "JM5k", []string{"decode", "-k", "/definitely/not/here.key"}, 3},
		{"invalid config", "x", []string{"encode", "--config", invalidConfig}, 2},
		{"empty text", "  \n", []string{"decode"}, 2},
		{"invalid text", "!!!!", []string{"decode"}, 1},
		{"bad log level", "x", []string{"encode", "--log-level", "loud"}, 2},
		{"unknown flag", "x", []string{"encode", "--compres", "gzip"}, 2},
		{"unknown command", "", []string{"encdoe"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := cli.ExitCode(err); got != tt.exit {
				t.Errorf("ExitCode(%v) = %d, want %d", err, got, tt.exit)
			}
		})
	}
}
