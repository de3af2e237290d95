// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFromPath(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     string
	}{
		{"plain", "s3cret", "s3cret"},
		{"trailing newline", "s3cret\n", "s3cret"},
		{"surrounding whitespace", "  s3cret \t\n", "s3cret"},
		{"inner whitespace kept", "two words\n", "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "key")
			if err := os.WriteFile(path, []byte(tt.contents), 0o600); err != nil {
				t.Fatalf("writing key file: %v", err)
			}

			buffer, err := ReadFromPath(path)
			if err != nil {
				t.Fatalf("ReadFromPath: %v", err)
			}
			defer buffer.Close()

			if got := buffer.String(); got != tt.want {
				t.Errorf("key = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadFromPathMissingFile(t *testing.T) {
	_, err := ReadFromPath(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for a missing key file")
	}
}

func TestReadFromPathEmpty(t *testing.T) {
	for _, contents := range []string{"", " \n\t\n"} {
		path := filepath.Join(t.TempDir(), "key")
		if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
			t.Fatalf("writing key file: %v", err)
		}
		if _, err := ReadFromPath(path); err == nil {
			t.Errorf("ReadFromPath accepted key file containing %q", contents)
		}
	}
}

func TestReadLine(t *testing.T) {
	buffer, err := readLine(strings.NewReader("  from-stdin  \nsecond line\n"))
	if err != nil {
		t.Fatalf("readLine: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != "from-stdin" {
		t.Errorf("key = %q, want %q", got, "from-stdin")
	}

	if _, err := readLine(strings.NewReader("")); err == nil {
		t.Error("readLine accepted empty input")
	}
}
