// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework behind the base62x binary.
//
// A [Command] names a subcommand, exposes a params struct whose tagged
// fields become flags (see [BindFlags]), and runs with a logger built
// at the level the params ask for. [Command.Execute] routes
// subcommands, parses flags with github.com/spf13/pflag, and prints
// structured help.
//
// Unknown commands and flags get a suggestion when a known name is
// within Levenshtein distance 3.
//
// Errors are classified with [ToolError]. [Classify] maps pipeline
// errors from lib/fault onto categories and [ExitCode] turns a
// category into the process exit status.
package cli
