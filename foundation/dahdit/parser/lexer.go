// File: lexer.go
// Title: DahDit Lexical Analyzer
// Description: Streams tokens from a Morse-encoded source with one byte of
//              lookahead. Bad input is reported to the diagnostics sink and
//              skipped; the lexer never ends the stream early on its own.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-05
//
// Change History:
// - 2026-09-29 v0.1.0: Initial lexer over bufio.Reader
// - 2026-10-05 v0.1.1: Loop-based recovery, read errors end the stream once

package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/diag"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/morse"
)

// DefaultMaxStringLength bounds a string literal payload in bytes
const DefaultMaxStringLength = 1024

// LexerOptions configures a Lexer
type LexerOptions struct {
	Logger          *ddlog.Logger
	Sink            diag.Sink
	MaxStringLength int
}

// Lexer performs lexical analysis of DahDit source
type Lexer struct {
	file   string
	reader *bufio.Reader
	ch     byte // Current byte under examination
	atEOF  bool
	line   int // Line of ch (1-based)
	column int // Column of ch (1-based)

	maxString int
	sink      diag.Sink
	logger    *ddlog.Logger
}

// NewLexer creates a lexer reading from r. file is used in diagnostics.
func NewLexer(file string, r io.Reader, opts LexerOptions) *Lexer {
	if opts.Logger == nil {
		opts.Logger = ddlog.GetDefault()
	}
	if opts.Sink == nil {
		opts.Sink = diag.Discard
	}
	if opts.MaxStringLength <= 0 {
		opts.MaxStringLength = DefaultMaxStringLength
	}

	l := &Lexer{
		file:      file,
		reader:    bufio.NewReader(r),
		line:      1,
		maxString: opts.MaxStringLength,
		sink:      opts.Sink,
		logger:    opts.Logger.WithField("component", "dahdit-lexer"),
	}
	l.readChar() // Initialize first character
	return l
}

// Open opens path and returns a lexer over it together with the file to
// close. An unopenable source yields a DAHDIT_IO error.
func Open(path string, opts LexerOptions) (*Lexer, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, dderror.Wrap(err, "cannot open source").
			WithCode(dderror.CodeIO).
			WithOperation("open").
			WithDetail("file", path)
	}
	return NewLexer(path, f, opts), f, nil
}

// File returns the name used in diagnostics
func (l *Lexer) File() string {
	return l.file
}

// NextToken returns the next token from the input. After the end of input
// every call returns an EOF token.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		line, column := l.line, l.column
		if l.atEOF {
			return Token{Type: TokenEOF, Line: line, Column: column}
		}

		switch ch := l.ch; {
		case ch == '"':
			return l.readString(line, column)
		case ch == '\n':
			l.readChar()
			return Token{Type: TokenNewline, Char: '\n', Value: "\n", Line: line, Column: column}
		case ch == '/':
			l.readChar()
			return Token{Type: TokenSeparator, Char: '/', Value: "/", Line: line, Column: column}
		case ch == '=':
			l.readChar()
			return Token{Type: TokenAssign, Char: '=', Value: "=", Line: line, Column: column}
		case ch == ';':
			l.readChar()
			return Token{Type: TokenTerminator, Char: ';', Value: ";", Line: line, Column: column}
		case morse.IsMorse(ch):
			return l.readMorse(line, column)
		default:
			l.report(line, column, fmt.Sprintf("unexpected character %q", rune(ch)))
			l.readChar()
		}
	}
}

// Tokenize reads the whole input. The final token is always EOF.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// readChar advances to the next byte and updates the position. A read error
// other than io.EOF is reported once and treated as end of input.
func (l *Lexer) readChar() {
	if l.atEOF {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	b, err := l.reader.ReadByte()
	l.column++
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.sink.Report(diag.Diagnostic{
				File: l.file, Line: l.line, Column: l.column,
				Kind: diag.KindIO, Message: "read error: " + err.Error(),
			})
			l.logger.WarnWithErr("source read failed", err, ddlog.Fields{"file": l.file})
		}
		l.atEOF = true
		l.ch = 0
		return
	}
	l.ch = b
}

// skipWhitespace skips blanks and # comments until neither applies. Newlines
// are tokens and are not skipped.
func (l *Lexer) skipWhitespace() {
	for !l.atEOF {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '#':
			for !l.atEOF && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readString reads a literal starting at the opening quote. It ends at the
// closing quote, or unterminated at a newline or the end of input. The
// newline is left for the next token.
func (l *Lexer) readString(line, column int) Token {
	l.readChar() // opening quote

	var sb strings.Builder
	truncated := false
	for !l.atEOF && l.ch != '"' && l.ch != '\n' {
		if sb.Len() < l.maxString {
			sb.WriteByte(l.ch)
		} else {
			truncated = true
		}
		l.readChar()
	}

	if truncated {
		l.report(line, column, fmt.Sprintf("string literal longer than %d bytes", l.maxString))
	}
	if l.atEOF || l.ch != '"' {
		l.report(line, column, "unterminated string literal")
	} else {
		l.readChar() // closing quote
	}

	return Token{Type: TokenString, Value: sb.String(), Line: line, Column: column}
}

// readMorse reads a maximal dot/dash run and decodes it
func (l *Lexer) readMorse(line, column int) Token {
	var sb strings.Builder
	for !l.atEOF && morse.IsMorse(l.ch) {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	seq := sb.String()

	r, ok := morse.Decode(seq)
	if !ok {
		l.report(line, column, fmt.Sprintf("unknown Morse sequence %q", seq))
		return Token{Type: TokenLetter, Char: morse.Unknown, Value: seq, Line: line, Column: column}
	}
	if tt, isOp := operatorTokens[r]; isOp {
		return Token{Type: tt, Char: r, Value: seq, Line: line, Column: column}
	}
	return Token{Type: TokenLetter, Char: r, Value: seq, Line: line, Column: column}
}

func (l *Lexer) report(line, column int, message string) {
	l.sink.Report(diag.Diagnostic{File: l.file, Line: line, Column: column, Kind: diag.KindLex, Message: message})
	l.logger.Debug("lex error", ddlog.Fields{"file": l.file, "line": line, "column": column, "message": message})
}
