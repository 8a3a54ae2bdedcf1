// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/ffparse/foundation/core/log"
	"github.com/msto63/ffparse/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "console" (default: console)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs (besides Output)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// NewLogger creates a Foundation logger; unknown level or format strings
// fall back to warn and console.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelWarn
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatConsole
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// FromConfig builds the CLI logger from the general section. verbose
// lowers the level to debug.
func FromConfig(general config.GeneralConfig, verbose bool) *mdwlog.Logger {
	cfg := DefaultLoggerConfig("ffparse")
	cfg.Level = general.LogLevel
	cfg.Format = general.LogFormat
	if verbose {
		cfg.Level = "debug"
	}
	return NewLogger(cfg)
}
