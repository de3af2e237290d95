// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the defaults the base62x command applies when a
// flag is not given: compression selection, cipher method, key file
// and log level.
//
// The file comes from the --config flag or the BASE62X_CONFIG
// environment variable. There is no discovery; without either, the
// command runs on [Default]. Unknown keys are rejected so a typo does
// not silently disable compression or encryption.
//
//	compression:
//	  algorithm: gzip
//	  encoding: zlib
//	encryption:
//	  method: aes-256-ctr
//	  key_file: ${HOME}/.config/base62x/key
//	log:
//	  level: info
//
// Only encryption.key_file undergoes ${VAR} and ${VAR:-default}
// expansion.
package config
