// File: session.go
// Title: DahDit Session
// Description: Drives lexer, parser and executor over a source while keeping
//              one symbol table across calls.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-07
//
// Change History:
// - 2026-09-30 v0.1.0: Initial session
// - 2026-10-07 v0.1.1: Per-call diagnostics for the interactive shell

package dahdit

import (
	"errors"
	"io"
	"os"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/diag"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/executor"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/parser"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/symtab"
)

// Options configures sessions and interpreters. Zero values select the
// package defaults.
type Options struct {
	Logger *ddlog.Logger
	Output io.Writer // Program output, defaults to os.Stdout
	Sink   diag.Sink // Receives diagnostics as they are reported

	ExpressionCapacity int
	SymbolCapacity     int
	MaxNameLength      int
	MaxStringLength    int
}

func (o *Options) applyDefaults() {
	if o.Logger == nil {
		o.Logger = ddlog.GetDefault()
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Sink == nil {
		o.Sink = diag.Discard
	}
}

// Stats summarizes one evaluated source
type Stats struct {
	Statements  int // Statements attempted, including skipped ones
	Executed    int // Statements that ran without error
	Diagnostics []diag.Diagnostic
}

// Session evaluates sources against a shared symbol table
type Session struct {
	options Options
	logger  *ddlog.Logger
	symbols *symtab.Table
}

// NewSession creates a session with an empty symbol table
func NewSession(opts Options) *Session {
	opts.applyDefaults()
	return &Session{
		options: opts,
		logger:  opts.Logger,
		symbols: symtab.New(opts.SymbolCapacity),
	}
}

// Symbols returns the session's symbol table
func (s *Session) Symbols() *symtab.Table {
	return s.symbols
}

// Reset forgets every variable
func (s *Session) Reset() {
	s.symbols.Reset()
}

// Eval runs every statement read from r. name is used in diagnostics.
func (s *Session) Eval(name string, r io.Reader) Stats {
	stats, _ := s.eval(name, func(opts parser.LexerOptions) (*parser.Lexer, io.Closer, error) {
		return parser.NewLexer(name, r, opts), io.NopCloser(r), nil
	})
	return stats
}

// EvalFile opens path and runs it. Only a source that cannot be opened
// yields an error.
func (s *Session) EvalFile(path string) (Stats, error) {
	return s.eval(path, func(opts parser.LexerOptions) (*parser.Lexer, io.Closer, error) {
		return parser.Open(path, opts)
	})
}

type sourceOpener func(opts parser.LexerOptions) (*parser.Lexer, io.Closer, error)

func (s *Session) eval(file string, open sourceOpener) (Stats, error) {
	collector := diag.NewCollector()
	sink := diag.MultiSink{collector, s.options.Sink}

	lexer, closer, err := open(parser.LexerOptions{
		Logger:          s.logger,
		Sink:            sink,
		MaxStringLength: s.options.MaxStringLength,
	})
	if err != nil {
		return Stats{}, err
	}
	defer closer.Close()

	exec, err := executor.New(executor.Options{
		Logger:  s.logger,
		Sink:    sink,
		Output:  s.options.Output,
		Symbols: s.symbols,
		File:    file,
	})
	if err != nil {
		return Stats{}, dderror.Wrap(err, "cannot create executor")
	}

	p := parser.New(lexer, parser.Options{
		Logger:             s.logger,
		Sink:               sink,
		ExpressionCapacity: s.options.ExpressionCapacity,
		MaxNameLength:      s.options.MaxNameLength,
	})

	var stats Stats
	for {
		stmt, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		stats.Statements++
		if err != nil {
			continue
		}
		if err := exec.Execute(stmt); err != nil {
			continue
		}
		stats.Executed++
	}

	stats.Diagnostics = collector.Diagnostics()
	return stats, nil
}
