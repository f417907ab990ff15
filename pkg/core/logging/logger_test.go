package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"

	"github.com/JangHwanPark/DahDit/pkg/core/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected ddlog.Level
	}{
		{"trace", ddlog.LevelTrace},
		{"debug", ddlog.LevelDebug},
		{"INFO", ddlog.LevelInfo},
		{"warning", ddlog.LevelWarn},
		{"error", ddlog.LevelError},
		{"fatal", ddlog.LevelFatal},
		{"", ddlog.LevelWarn},
		{"chatty", ddlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig("dahdit", config.GeneralConfig{LogLevel: "debug"})
	if cfg.Name != "dahdit" || cfg.Level != "debug" || cfg.Format != "text" {
		t.Errorf("FromConfig() = %+v", cfg)
	}
}

func TestNewLogger(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "dahdit",
		Level:             "info",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Debug("hidden")
	logger.Info("run started", ddlog.Fields{"file": "a.dit"})

	for _, out := range []string{primary.String(), extra.String()} {
		if strings.Contains(out, "hidden") {
			t.Errorf("debug message logged at info level: %s", out)
		}
		if !strings.Contains(out, `message="run started"`) || !strings.Contains(out, `logger=dahdit`) {
			t.Errorf("unexpected output: %s", out)
		}
	}
}

func TestNewLoggerUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "warn", Format: "xml", Output: &buf})
	logger.Warn("careful")

	if !strings.Contains(buf.String(), "[WRN]") {
		t.Errorf("unknown format should fall back to text: %s", buf.String())
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("dahdit")
	if logger.GetLevel() != ddlog.LevelWarn {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}
}
