// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/base62x/lib/compression"
	"github.com/bureau-foundation/base62x/lib/crypt"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "BASE62X_CONFIG"

// Config is the command configuration.
type Config struct {
	Compression CompressionConfig `yaml:"compression"`
	Encryption  EncryptionConfig  `yaml:"encryption"`
	Log         LogConfig         `yaml:"log"`
}

// CompressionConfig selects the default compression for encode.
type CompressionConfig struct {
	// Algorithm is "gzip", "huffman", or empty (or "none") for no
	// compression.
	Algorithm string `yaml:"algorithm"`

	// Encoding is the gzip sub-encoding: zlib, deflate or gzip.
	// Ignored for huffman.
	Encoding string `yaml:"encoding"`
}

// EncryptionConfig selects the default cipher.
type EncryptionConfig struct {
	// Method is a cipher name from crypt.MethodNames.
	// Default: aes-128-ctr
	Method string `yaml:"method"`

	// KeyFile holds the password. Encryption is off when it is empty
	// and no --key-file flag is given.
	KeyFile string `yaml:"key_file"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is debug, info, warn or error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Encryption: EncryptionConfig{Method: crypt.DefaultMethod},
		Log:        LogConfig{Level: "info"},
	}
}

// Load loads the file named by BASE62X_CONFIG, or returns Default when
// the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads path over Default and expands variables in the key
// file path. It does not validate; call Validate.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.Encryption.KeyFile = expandVars(cfg.Encryption.KeyFile)
	return cfg, nil
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Selection returns the configured compression selection.
func (c *Config) Selection() (compression.Selection, error) {
	algorithm := strings.TrimSpace(c.Compression.Algorithm)
	if algorithm == "" || algorithm == "none" {
		return compression.Selection{}, nil
	}
	return compression.NewSelection(algorithm, c.Compression.Encoding)
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks every field against its whitelist and reports all
// problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Selection(); err != nil {
		errs = append(errs, fmt.Errorf("compression: %w", err))
	}
	if _, err := crypt.LookupMethod(c.Encryption.Method); err != nil {
		errs = append(errs, fmt.Errorf("encryption.method: %w", err))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
