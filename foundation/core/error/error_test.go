// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-28 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("no such file").WithCode(CodeIO),
			message:  "open source",
			wantMsg:  "open source: no such file",
			wantCode: CodeIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped cause")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeIO, SeverityCritical},
		{CodeParse, SeverityLow},
		{CodeEval, SeverityLow},
		{CodeDatabaseError, SeverityHigh},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeLex)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestHasCodeWalksChain(t *testing.T) {
	inner := New("division by zero").WithCode(CodeEval)
	outer := fmt.Errorf("statement 3: %w", inner)

	if !HasCode(outer, CodeEval) {
		t.Error("HasCode should find code through fmt wrapping")
	}
	if HasCode(outer, CodeIO) {
		t.Error("HasCode reported a code that is not in the chain")
	}
	if GetCode(outer) != CodeEval {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeEval)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on foreign error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity on foreign error should be SeverityMedium")
	}
}

func TestDetails(t *testing.T) {
	err := New("unexpected character").
		WithCode(CodeLex).
		WithDetail("line", 3).
		WithDetails(map[string]interface{}{"column": 7})

	details := err.Details()
	if details["line"] != 3 || details["column"] != 7 {
		t.Errorf("Details() = %v", details)
	}

	details["line"] = 99
	if v, _ := err.Detail("line"); v != 3 {
		t.Error("Details() must return a copy")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "run failed").
		WithCode(CodeIO).
		WithOperation("open").
		WithRequestID("run-1").
		WithDetail("file", "a.dit")

	s := err.String()
	for _, want := range []string{"Code: DAHDIT_IO", "Operation: open", "RequestID: run-1", "file=a.dit", "Cause: boom"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != "DAHDIT_IO" || decoded["severity"] != "critical" {
		t.Errorf("unexpected JSON: %s", data)
	}
}

func TestCodeClassification(t *testing.T) {
	tests := []struct {
		code        Code
		valid       bool
		category    string
		recoverable bool
	}{
		{CodeIO, true, "interpreter", false},
		{CodeLex, true, "interpreter", true},
		{CodeParse, true, "interpreter", true},
		{CodeEval, true, "interpreter", true},
		{CodeInvalidConfig, true, "configuration", false},
		{CodeDatabaseError, true, "database", false},
		{Code("BOGUS"), false, "generic", false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.code.Recoverable(); got != tt.recoverable {
				t.Errorf("Recoverable() = %v, want %v", got, tt.recoverable)
			}
		})
	}
}
