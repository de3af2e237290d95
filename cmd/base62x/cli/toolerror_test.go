// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/bureau-foundation/base62x/lib/fault"
)

func TestClassify(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here")

	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"invalid parameter", fault.InvalidParameter("payload cannot be empty"), CategoryValidation},
		{"wrapped invalid parameter", fmt.Errorf("encode: %w", fault.InvalidParameter("bad algo")), CategoryValidation},
		{"decode", fault.Decode("bad footprint"), CategoryInternal},
		{"crypt", fault.Crypt("bad iv"), CategoryInternal},
		{"missing file", statErr, CategoryNotFound},
		{"plain", errors.New("boom"), CategoryInternal},
		{"already categorized", NotFound("gone"), CategoryNotFound},
	}
	for _, tt := range tests {
		var toolError *ToolError
		if !errors.As(Classify(tt.err), &toolError) {
			t.Errorf("Classify(%s) is not a ToolError", tt.name)
			continue
		}
		if toolError.Category != tt.want {
			t.Errorf("Classify(%s) category = %s, want %s", tt.name, toolError.Category, tt.want)
		}
		if !errors.Is(toolError, tt.err) && toolError.Err != tt.err {
			t.Errorf("Classify(%s) lost the original error", tt.name)
		}
	}
	if Classify(nil) != nil {
		t.Error("Classify(nil) is not nil")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{Validation("bad"), 2},
		{NotFound("missing"), 3},
		{Internal("bug"), 1},
		{fault.InvalidParameter("empty"), 2},
		{fault.Compression("zlib failed"), 1},
		{errors.New("plain"), 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestToolErrorMessage(t *testing.T) {
	err := Validation("unknown flag %q", "--x")
	if err.Error() != `unknown flag "--x"` {
		t.Errorf("Error() = %q", err.Error())
	}
}
