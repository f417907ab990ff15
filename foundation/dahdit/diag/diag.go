// File: diag.go
// Title: Diagnostics Sink
// Description: Defines the Diagnostic record produced by the lexer, parser
//              and executor, and the sinks that collect or print them.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-29 v0.1.0: Initial sink types
// - 2026-10-06 v0.1.1: Styled WriterSink output

// Package diag carries positioned error reports out of the interpreter
// stages. No stage ever terminates the run on a diagnostic; the caller decides
// what accumulated diagnostics mean.
package diag

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
)

// Kind identifies the stage that produced a diagnostic
type Kind string

const (
	KindIO    Kind = "io"
	KindLex   Kind = "lex"
	KindParse Kind = "parse"
	KindEval  Kind = "eval"
)

// Code maps the kind to its error code
func (k Kind) Code() dderror.Code {
	switch k {
	case KindIO:
		return dderror.CodeIO
	case KindLex:
		return dderror.CodeLex
	case KindParse:
		return dderror.CodeParse
	case KindEval:
		return dderror.CodeEval
	default:
		return dderror.CodeUnknown
	}
}

// KindFromCode is the inverse of Kind.Code. Unknown codes map to KindEval.
func KindFromCode(code dderror.Code) Kind {
	switch code {
	case dderror.CodeIO:
		return KindIO
	case dderror.CodeLex:
		return KindLex
	case dderror.CodeParse, dderror.CodeCapacity:
		return KindParse
	default:
		return KindEval
	}
}

// StdinName is shown in place of an empty file name
const StdinName = "<stdin>"

// Diagnostic is a single positioned report
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// String renders file:line:col: error: message
func (d Diagnostic) String() string {
	file := d.File
	if file == "" {
		file = StdinName
	}
	return fmt.Sprintf("%s:%d:%d: error: %s", file, d.Line, d.Column, d.Message)
}

// Sink receives diagnostics
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(d Diagnostic)

// Report calls f(d)
func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops every diagnostic
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector records diagnostics in order
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Report implements Sink
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, d)
}

// Diagnostics returns a copy of everything reported so far
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of diagnostics
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// ByKind counts diagnostics per kind
func (c *Collector) ByKind() map[Kind]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := make(map[Kind]int)
	for _, d := range c.items {
		counts[d.Kind]++
	}
	return counts
}

// Reset drops all recorded diagnostics
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Styles used by WriterSink when color is enabled
var (
	ColorError = lipgloss.Color("#EF4444")
	ColorMuted = lipgloss.Color("#94A3B8")

	LocationStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)

// WriterSink prints one line per diagnostic
type WriterSink struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewWriterSink creates a sink writing to w. With color set, the location and
// label are styled with lipgloss.
func NewWriterSink(w io.Writer, color bool) *WriterSink {
	return &WriterSink{w: w, color: color}
}

// Report implements Sink
func (s *WriterSink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.color {
		fmt.Fprintln(s.w, d.String())
		return
	}

	file := d.File
	if file == "" {
		file = StdinName
	}
	loc := LocationStyle.Render(fmt.Sprintf("%s:%d:%d:", file, d.Line, d.Column))
	label := LabelStyle.Render("error:")
	fmt.Fprintf(s.w, "%s %s %s\n", loc, label, d.Message)
}

// MultiSink fans a diagnostic out to several sinks
type MultiSink []Sink

// Report implements Sink
func (m MultiSink) Report(d Diagnostic) {
	for _, s := range m {
		if s != nil {
			s.Report(d)
		}
	}
}
