// ============================================================================
// DahDit - Morse Language Interpreter
// ============================================================================
//
// Package:     logging
// Description: Factory functions for building the application logger
// Author:      JangHwanPark
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"

	"github.com/JangHwanPark/DahDit/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Primary output, defaults to stderr so program output stays clean
	Output io.Writer

	// Additional outputs (besides the primary one)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// FromConfig derives a logger configuration from the [general] section
func FromConfig(name string, general config.GeneralConfig) LoggerConfig {
	cfg := DefaultLoggerConfig(name)
	if general.LogLevel != "" {
		cfg.Level = general.LogLevel
	}
	if general.LogFormat != "" {
		cfg.Format = general.LogFormat
	}
	return cfg
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *ddlog.Logger {
	// Determine log level
	level := parseLevel(cfg.Level)

	// Build output writer
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	// Determine format
	format, err := ddlog.ParseFormat(cfg.Format)
	if err != nil {
		format = ddlog.FormatText
	}

	return ddlog.NewWithConfig(ddlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *ddlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level to ddlog.Level. Unknown levels fall
// back to warn.
func parseLevel(level string) ddlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return ddlog.LevelTrace
	case "debug":
		return ddlog.LevelDebug
	case "info":
		return ddlog.LevelInfo
	case "warn", "warning":
		return ddlog.LevelWarn
	case "error":
		return ddlog.LevelError
	case "fatal":
		return ddlog.LevelFatal
	default:
		return ddlog.LevelWarn
	}
}
