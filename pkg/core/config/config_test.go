package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"hours", "720h", 720 * time.Hour, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("General.LogFormat = %v, want console", cfg.General.LogFormat)
	}
	if cfg.General.OutputDir != "." {
		t.Errorf("General.OutputDir = %v, want .", cfg.General.OutputDir)
	}
	want := []string{"KEYWORD", "EXPR", "RELOP", "IDENTIFIER", "PUNCTUATION"}
	if !reflect.DeepEqual(cfg.Scanner.StreamKinds, want) {
		t.Errorf("Scanner.StreamKinds = %v, want %v", cfg.Scanner.StreamKinds, want)
	}
	if cfg.Parser.Identifiers != 3 || cfg.Parser.Conditionals != 3 {
		t.Errorf("Parser = %+v, want 3/3", cfg.Parser)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled = false, want true")
	}
	if cfg.History.Retention.Duration != 30*24*time.Hour {
		t.Errorf("History.Retention = %v, want 720h", cfg.History.Retention.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/ffparse.toml")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "ffparse.toml",
			content: `
[general]
log_level = "debug"
output_dir = "$FFPARSE_TEST_DIR/out"

[parser]
identifiers = 2
conditionals = 4

[analysis]
grammar_file = "grammar.yaml"

[history]
enabled = false
retention = "48h"
`,
		},
		{
			name: "yaml",
			file: "ffparse.yaml",
			content: `
general:
  log_level: debug
  output_dir: $FFPARSE_TEST_DIR/out
parser:
  identifiers: 2
  conditionals: 4
analysis:
  grammar_file: grammar.yaml
history:
  enabled: false
  retention: 48h
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FFPARSE_TEST_DIR", "/tmp/ff")
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if cfg.General.LogLevel != "debug" {
				t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
			}
			if cfg.General.LogFormat != "console" {
				t.Errorf("General.LogFormat = %v, want default console", cfg.General.LogFormat)
			}
			if cfg.General.OutputDir != "/tmp/ff/out" {
				t.Errorf("General.OutputDir = %v, want /tmp/ff/out", cfg.General.OutputDir)
			}
			if cfg.Parser.Identifiers != 2 || cfg.Parser.Conditionals != 4 {
				t.Errorf("Parser = %+v, want 2/4", cfg.Parser)
			}
			if cfg.Analysis.GrammarFile != "grammar.yaml" {
				t.Errorf("Analysis.GrammarFile = %v", cfg.Analysis.GrammarFile)
			}
			if cfg.History.Enabled {
				t.Error("History.Enabled = true, want false")
			}
			if cfg.History.Retention.Duration != 48*time.Hour {
				t.Errorf("History.Retention = %v, want 48h", cfg.History.Retention.Duration)
			}
			if cfg.Path != path {
				t.Errorf("Path = %v, want %v", cfg.Path, path)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    mdwerror.Code
	}{
		{"syntax", "[general\n", mdwerror.CodeConfigError},
		{"log level", "[general]\nlog_level = \"loud\"\n", mdwerror.CodeInvalidConfig},
		{"log format", "[general]\nlog_format = \"xml\"\n", mdwerror.CodeInvalidConfig},
		{"identifiers", "[parser]\nidentifiers = -1\n", mdwerror.CodeInvalidConfig},
		{"retention", "[history]\nretention = \"soon\"\n", mdwerror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ffparse.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Load() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[parser]\nconditionals = 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvVar, path)
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Parser.Conditionals != 5 {
		t.Errorf("Parser.Conditionals = %v, want 5", cfg.Parser.Conditionals)
	}

	t.Setenv(EnvVar, filepath.Join(dir, "missing.toml"))
	if _, err := LoadFromEnv(); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("LoadFromEnv() error = %v, want NOT_FOUND", err)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty for defaults", cfg.Path)
	}
}
