// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/bureau-foundation/base62x/lib/fault"
)

// ErrorCategory classifies command errors for the exit status.
type ErrorCategory string

const (
	// CategoryValidation means the user supplied bad input: unknown
	// flags, an empty payload, an unsupported algorithm or cipher.
	// Fix the input and run again.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound means a named file does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal covers everything else, including text that
	// fails to decode and cipher failures.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized command error. It wraps the original
// error so errors.Is and errors.As still see the full chain.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

// Error returns the underlying message without the category.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status for the category.
func (e *ToolError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	default:
		return 1
	}
}

// Validation creates a validation error.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Classify wraps err in a ToolError. Errors that already carry a
// category keep it; invalid-parameter pipeline errors become
// validation errors; missing files become not-found.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var toolError *ToolError
	if errors.As(err, &toolError) {
		return err
	}
	switch {
	case fault.Is(err, fault.KindInvalidParameter):
		return &ToolError{Category: CategoryValidation, Err: err}
	case errors.Is(err, fs.ErrNotExist):
		return &ToolError{Category: CategoryNotFound, Err: err}
	default:
		return &ToolError{Category: CategoryInternal, Err: err}
	}
}

// ExitCode returns the exit status for err: 0 for nil, the ToolError
// category's code when there is one, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var toolError *ToolError
	if errors.As(Classify(err), &toolError) {
		return toolError.ExitCode()
	}
	return 1
}
