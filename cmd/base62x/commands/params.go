// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/base62x/cmd/base62x/cli"
	"github.com/bureau-foundation/base62x/lib/config"
	"github.com/bureau-foundation/base62x/lib/secret"
	"github.com/bureau-foundation/base62x/lib/transform"
)

// globalParams are the flags every pipeline command accepts.
type globalParams struct {
	ConfigPath   string `flag:"config"    desc:"YAML config file (default: $BASE62X_CONFIG)"`
	LogLevelName string `flag:"log-level" desc:"debug, info, warn or error (default: from config)"`

	loaded *config.Config
}

// Config loads and validates the configuration once per invocation.
func (p *globalParams) Config() (*config.Config, error) {
	if p.loaded != nil {
		return p.loaded, nil
	}

	var cfg *config.Config
	var err error
	if p.ConfigPath != "" {
		cfg, err = config.LoadFile(p.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, &cli.ToolError{Category: cli.CategoryValidation, Err: fmt.Errorf("config: %w", err)}
	}

	p.loaded = cfg
	return cfg, nil
}

// LogLevel implements cli.LogLeveler. A config that fails to load
// leaves the level at info; Run reports the load error itself.
func (p *globalParams) LogLevel() (slog.Level, error) {
	if p.LogLevelName != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(p.LogLevelName)); err != nil {
			return slog.LevelInfo, fmt.Errorf("--log-level: %w", err)
		}
		return level, nil
	}
	cfg, err := p.Config()
	if err != nil {
		return slog.LevelInfo, nil
	}
	return cfg.LogLevel()
}

// cipherParams select the stream cipher. Encryption is off unless a
// key file comes from the flag or the config.
type cipherParams struct {
	KeyFile string `flag:"key-file,k" desc:"file holding the password, or - for the first line of stdin"`
	Method  string `flag:"method,m"   desc:"cipher method (default: from config, then aes-128-ctr)"`
}

func (p *cipherParams) keyFile(cfg *config.Config) string {
	if p.KeyFile != "" {
		return p.KeyFile
	}
	return cfg.Encryption.KeyFile
}

// checkStdin rejects reading both the key and the payload from stdin.
func (p *cipherParams) checkStdin(cfg *config.Config, args []string) error {
	if p.keyFile(cfg) == "-" && len(args) == 0 {
		return cli.Validation("--key-file - reads stdin, so the input must be a file argument")
	}
	return nil
}

// apply configures t with the password from the key file. The password
// is wiped once the transform holds its own copy.
func (p *cipherParams) apply(t *transform.Transform, cfg *config.Config) error {
	path := p.keyFile(cfg)
	if path == "" {
		if p.Method != "" {
			return cli.Validation("--method requires --key-file or encryption.key_file")
		}
		return nil
	}

	method := p.Method
	if method == "" {
		method = cfg.Encryption.Method
	}

	password, err := secret.ReadFromPath(path)
	if err != nil {
		return err
	}
	defer password.Close()

	return t.Encrypt(password.Bytes(), method)
}
