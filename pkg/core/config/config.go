// ============================================================================
// DahDit - Morse Language Interpreter
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration for the dahdit command
// Author:      JangHwanPark
// Created:     2026-10-01
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

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "DAHDIT_CONFIG"

// Color modes for diagnostics
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the complete application configuration
type Config struct {
	General     GeneralConfig     `toml:"general" yaml:"general"`
	Interpreter InterpreterConfig `toml:"interpreter" yaml:"interpreter"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	History     HistoryConfig     `toml:"history" yaml:"history"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// InterpreterConfig holds the interpreter limits
type InterpreterConfig struct {
	ExpressionCapacity int `toml:"expression_capacity" yaml:"expression_capacity"`
	SymbolCapacity     int `toml:"symbol_capacity" yaml:"symbol_capacity"`
	MaxNameLength      int `toml:"max_name_length" yaml:"max_name_length"`
	MaxStringLength    int `toml:"max_string_length" yaml:"max_string_length"`
}

// DiagnosticsConfig holds diagnostic output settings
type DiagnosticsConfig struct {
	Color string `toml:"color" yaml:"color"` // auto, always or never
}

// UseColor resolves the color mode for an output that is or is not a
// terminal
func (d DiagnosticsConfig) UseColor(terminal bool) bool {
	switch d.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return terminal
	}
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

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// Load loads configuration from a TOML file, or a YAML file when the
// extension is .yaml or .yml
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, dderror.Newf("config file not found: %s", path).
			WithCode(dderror.CodeNotFound).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, dderror.Wrap(err, "failed to read config").WithCode(dderror.CodeConfigError)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, dderror.Wrap(err, "failed to parse config").WithCode(dderror.CodeConfigError).WithDetail("path", path)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, dderror.Wrap(err, "failed to parse config").WithCode(dderror.CodeConfigError).WithDetail("path", path)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the DAHDIT_CONFIG environment
// variable or the first default location that exists. Without any file it
// returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
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
		"./dahdit.toml",
		"./dahdit.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/dahdit/config.toml"),
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Interpreter
	if c.Interpreter.ExpressionCapacity == 0 {
		c.Interpreter.ExpressionCapacity = 64
	}
	if c.Interpreter.SymbolCapacity == 0 {
		c.Interpreter.SymbolCapacity = 256
	}
	if c.Interpreter.MaxNameLength == 0 {
		c.Interpreter.MaxNameLength = 63
	}
	if c.Interpreter.MaxStringLength == 0 {
		c.Interpreter.MaxStringLength = 1024
	}

	// Diagnostics
	if c.Diagnostics.Color == "" {
		c.Diagnostics.Color = ColorAuto
	}

	// History
	if c.History.Path == "" {
		c.History.Path = "${HOME}/.local/share/dahdit/history.db"
	}
	if c.History.Retention.Duration == 0 {
		c.History.Retention.Duration = 30 * 24 * time.Hour
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.History.Path = os.ExpandEnv(c.History.Path)
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return dderror.Newf("invalid %s: %s", field, reason).
			WithCode(dderror.CodeInvalidConfig).
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := ddlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "unknown level")
	}
	if _, err := ddlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "expected json, text or logfmt")
	}

	if c.Interpreter.ExpressionCapacity < 1 {
		return invalid("interpreter.expression_capacity", c.Interpreter.ExpressionCapacity, "must be positive")
	}
	if c.Interpreter.SymbolCapacity < 1 {
		return invalid("interpreter.symbol_capacity", c.Interpreter.SymbolCapacity, "must be positive")
	}
	if c.Interpreter.MaxNameLength < 1 {
		return invalid("interpreter.max_name_length", c.Interpreter.MaxNameLength, "must be positive")
	}
	if c.Interpreter.MaxStringLength < 1 {
		return invalid("interpreter.max_string_length", c.Interpreter.MaxStringLength, "must be positive")
	}

	switch c.Diagnostics.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("diagnostics.color", c.Diagnostics.Color, "expected auto, always or never")
	}

	if c.History.Retention.Duration < 0 {
		return invalid("history.retention", c.History.Retention.String(), "must not be negative")
	}
	return nil
}
