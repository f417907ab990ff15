// File: diag_test.go
// Title: Diagnostics Sink Tests
// Description: Tests for rendering and the sink implementations.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial tests

package diag

import (
	"bytes"
	"strings"
	"testing"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
)

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"with file", Diagnostic{File: "a.dit", Line: 2, Column: 5, Kind: KindLex, Message: "unknown Morse sequence"}, "a.dit:2:5: error: unknown Morse sequence"},
		{"stdin", Diagnostic{Line: 1, Column: 1, Kind: KindEval, Message: "division by zero"}, "<stdin>:1:1: error: division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindCodes(t *testing.T) {
	for _, k := range []Kind{KindIO, KindLex, KindParse, KindEval} {
		if got := KindFromCode(k.Code()); got != k {
			t.Errorf("KindFromCode(%v.Code()) = %v", k, got)
		}
	}
	if KindFromCode(dderror.CodeCapacity) != KindParse {
		t.Error("capacity errors are parse diagnostics")
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Report(Diagnostic{Kind: KindLex, Message: "a"})
	c.Report(Diagnostic{Kind: KindEval, Message: "b"})
	c.Report(Diagnostic{Kind: KindEval, Message: "c"})

	if c.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", c.Count())
	}
	byKind := c.ByKind()
	if byKind[KindLex] != 1 || byKind[KindEval] != 2 {
		t.Errorf("ByKind() = %v", byKind)
	}

	got := c.Diagnostics()
	got[0].Message = "changed"
	if c.Diagnostics()[0].Message != "a" {
		t.Error("Diagnostics() must return a copy")
	}

	c.Reset()
	if c.Count() != 0 {
		t.Error("Reset() should clear the collector")
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf, false)
	sink.Report(Diagnostic{File: "p.dit", Line: 3, Column: 9, Kind: KindParse, Message: "missing ';'"})

	if got, want := buf.String(), "p.dit:3:9: error: missing ';'\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	buf.Reset()
	NewWriterSink(&buf, true).Report(Diagnostic{Line: 1, Column: 2, Message: "boom"})
	out := buf.String()
	if !strings.Contains(out, "<stdin>:1:2:") || !strings.Contains(out, "boom") {
		t.Errorf("styled output missing content: %q", out)
	}
}

func TestMultiSink(t *testing.T) {
	a, b := NewCollector(), NewCollector()
	MultiSink{a, nil, b, Discard}.Report(Diagnostic{Message: "x"})

	if a.Count() != 1 || b.Count() != 1 {
		t.Errorf("counts = %d, %d; want 1, 1", a.Count(), b.Count())
	}
}
