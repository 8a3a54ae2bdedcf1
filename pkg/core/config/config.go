// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration with defaults and env lookup
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
	mdwlog "github.com/msto63/ffparse/foundation/core/log"
)

// EnvVar names the environment variable holding the config path
const EnvVar = "FFPARSE_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Scanner  ScannerConfig  `toml:"scanner" yaml:"scanner"`
	Parser   ParserConfig   `toml:"parser" yaml:"parser"`
	Analysis AnalysisConfig `toml:"analysis" yaml:"analysis"`
	History  HistoryConfig  `toml:"history" yaml:"history"`

	// Path is the file the configuration was loaded from; empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	OutputDir string `toml:"output_dir" yaml:"output_dir"`
}

// ScannerConfig selects the token kinds handed to the parser
type ScannerConfig struct {
	StreamKinds []string `toml:"stream_kinds" yaml:"stream_kinds"`
}

// ParserConfig holds the sentence template counts
type ParserConfig struct {
	Identifiers  int `toml:"identifiers" yaml:"identifiers"`
	Conditionals int `toml:"conditionals" yaml:"conditionals"`
}

// AnalysisConfig selects the grammar analysed by FIRST/FOLLOW
type AnalysisConfig struct {
	GrammarFile string `toml:"grammar_file" yaml:"grammar_file"`
}

// HistoryConfig holds run history settings
type HistoryConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Path      string   `toml:"path" yaml:"path"`
	Retention Duration `toml:"retention" yaml:"retention"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{
		History: HistoryConfig{Enabled: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mdwerror.New("config file not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	if err != nil {
		return nil, configError(err, "failed to read config", path)
	}

	cfg := &Config{History: HistoryConfig{Enabled: true}}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, configError(err, "failed to parse config", path)
	}

	cfg.Path = path
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by FFPARSE_CONFIG or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	return []string{
		"./configs/ffparse.toml",
		"./ffparse.toml",
		filepath.Join(os.Getenv("HOME"), ".config/ffparse/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.General.OutputDir == "" {
		c.General.OutputDir = "."
	}

	// Scanner
	if len(c.Scanner.StreamKinds) == 0 {
		c.Scanner.StreamKinds = []string{"KEYWORD", "EXPR", "RELOP", "IDENTIFIER", "PUNCTUATION"}
	}

	// Parser
	if c.Parser.Identifiers == 0 {
		c.Parser.Identifiers = 3
	}
	if c.Parser.Conditionals == 0 {
		c.Parser.Conditionals = 3
	}

	// History
	if c.History.Path == "" {
		c.History.Path = filepath.Join(os.Getenv("HOME"), ".local/share/ffparse/history.db")
	}
	if c.History.Retention.Duration == 0 {
		c.History.Retention.Duration = 30 * 24 * time.Hour
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.OutputDir = os.ExpandEnv(c.General.OutputDir)
	c.Analysis.GrammarFile = os.ExpandEnv(c.Analysis.GrammarFile)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("invalid log level", "general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("invalid log format", "general.log_format", c.General.LogFormat)
	}
	if c.Parser.Identifiers < 1 {
		return invalid("identifier count must be positive", "parser.identifiers", c.Parser.Identifiers)
	}
	if c.Parser.Conditionals < 0 {
		return invalid("conditional count must not be negative", "parser.conditionals", c.Parser.Conditionals)
	}
	if c.History.Retention.Duration < 0 {
		return invalid("retention must not be negative", "history.retention", c.History.Retention.String())
	}
	return nil
}

func configError(err error, message, path string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", path)
}

func invalid(message, key string, value interface{}) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}
