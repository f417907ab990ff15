// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formatters, context derivation, error
//              integration and timers.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{"json": FormatJSON, "TEXT": FormatText, "logfmt": FormatLogfmt} {
		got, err := ParseFormat(input)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", input, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were logged:\n%s", out)
	}
	if strings.Count(out, "shown") != 2 {
		t.Errorf("expected two messages, got:\n%s", out)
	}
	if !logger.IsLevelEnabled(LevelError) || logger.IsLevelEnabled(LevelInfo) {
		t.Error("IsLevelEnabled disagrees with configured level")
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger = logger.WithName("dahdit").WithField("component", "dahdit-parser").WithRequestID("run-42")

	logger.Info("statement parsed", Fields{"line": 3})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	want := map[string]interface{}{
		"level":      "info",
		"message":    "statement parsed",
		"logger":     "dahdit",
		"component":  "dahdit-parser",
		"request_id": "run-42",
		"line":       float64(3),
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("field %s = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestTextOutputIsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("run finished", Fields{"zeta": 1, "alpha": 2})

	out := buf.String()
	if !strings.Contains(out, "[INF]") {
		t.Errorf("missing level marker: %s", out)
	}
	if !strings.Contains(out, "[alpha=2 zeta=1]") {
		t.Errorf("fields not sorted: %s", out)
	}
}

func TestLogfmtOutput(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	logger.Info("hello", Fields{"file": "a.dit", "count": 2})

	out := buf.String()
	for _, want := range []string{`level=info`, `message="hello"`, `count=2`, `file="a.dit"`} {
		if !strings.Contains(out, want) {
			t.Errorf("logfmt output missing %s: %s", want, out)
		}
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	_ = parent.WithField("component", "child")

	parent.Info("parent message")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("child field leaked into parent: %s", buf.String())
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		minLevel  Level
		wantLevel string
	}{
		{"recoverable at debug", dderror.New("bad run").WithCode(dderror.CodeLex), LevelDebug, "debug"},
		{"io at error", dderror.New("missing").WithCode(dderror.CodeIO), LevelDebug, "error"},
		{"plain error", errors.New("plain"), LevelDebug, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.minLevel, FormatJSON)
			logger.LogError(tt.err)

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}
		})
	}

	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should log nothing")
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()
	logger.Error("nothing")
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("nop logger should have every level disabled")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("run")
	if !timer.IsRunning() {
		t.Fatal("timer should be running")
	}
	timer.WithField("file", "a.dit").Stop()
	if timer.IsRunning() {
		t.Error("timer should be stopped")
	}
	if timer.Stop() != 0 {
		t.Error("second Stop should return 0")
	}

	out := buf.String()
	if strings.Count(out, "run completed") != 1 {
		t.Errorf("expected one completion line, got:\n%s", out)
	}
	if !strings.Contains(out, "file=a.dit") {
		t.Errorf("timer field missing: %s", out)
	}
}

func TestTimerFailureEscalates(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.StartTimer("run").StopWithResult(false, Fields{"diagnostics": 2})

	out := buf.String()
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "completed with errors") {
		t.Errorf("failed timer should log at warn: %s", out)
	}
}
