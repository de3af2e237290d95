// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

type sharedFlags struct {
	Config string `flag:"config" desc:"config file"`
}

type boundParams struct {
	sharedFlags
	Name    string   `flag:"name,n" desc:"name" default:"anonymous"`
	Count   int      `flag:"count" default:"3"`
	Force   bool     `flag:"force,f"`
	Tags    []string `flag:"tag" default:"a,b"`
	Ignored string
}

func TestBindFlagsDefaults(t *testing.T) {
	var params boundParams
	flagSet := FlagsFromParams("test", &params)
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if params.Name != "anonymous" || params.Count != 3 || params.Force {
		t.Errorf("defaults not applied: %+v", params)
	}
	if len(params.Tags) != 2 || params.Tags[0] != "a" || params.Tags[1] != "b" {
		t.Errorf("Tags = %v, want [a b]", params.Tags)
	}
	if flagSet.Lookup("ignored") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlagsParse(t *testing.T) {
	var params boundParams
	flagSet := FlagsFromParams("test", &params)
	args := []string{"--config", "c.yaml", "-n", "mario", "--count=7", "-f", "--tag", "x", "--tag", "y", "rest"}
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if params.Config != "c.yaml" {
		t.Errorf("embedded Config = %q", params.Config)
	}
	if params.Name != "mario" || params.Count != 7 || !params.Force {
		t.Errorf("params = %+v", params)
	}
	if len(params.Tags) != 2 || params.Tags[0] != "x" {
		t.Errorf("Tags = %v", params.Tags)
	}
	if rest := flagSet.Args(); len(rest) != 1 || rest[0] != "rest" {
		t.Errorf("Args = %v", rest)
	}
}

func TestBindFlagsRejects(t *testing.T) {
	tests := []struct {
		name   string
		params any
	}{
		{"not a pointer", boundParams{}},
		{"pointer to non-struct", new(string)},
		{"unsupported type", &struct {
			Ratio float64 `flag:"ratio"`
		}{}},
		{"bad default", &struct {
			Count int `flag:"count" default:"many"`
		}{}},
	}
	for _, tt := range tests {
		if err := BindFlags(tt.params, pflag.NewFlagSet("test", pflag.ContinueOnError)); err == nil {
			t.Errorf("BindFlags(%s) succeeded", tt.name)
		}
	}
}
