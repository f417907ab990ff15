// File: parser.go
// Title: DahDit Recursive Descent Parser
// Description: Builds one statement per call from the token stream, emitting
//              expressions in postfix order. Every parse error is reported,
//              the parser skips past the next terminator and the caller
//              continues with the following statement.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-05
//
// Change History:
// - 2026-09-29 v0.1.0: Initial parser with two precedence tiers
// - 2026-10-02 v0.1.1: PRINT phrase form
// - 2026-10-05 v0.1.2: Resynchronize on every statement error

package parser

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/ast"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/diag"
)

// DefaultMaxNameLength bounds identifier length
const DefaultMaxNameLength = 63

// Statement keywords
const (
	KeywordPrint = "PRINT"
	KeywordVar   = "VAR"
)

// Options configures the parser
type Options struct {
	Logger             *ddlog.Logger
	Sink               diag.Sink
	ExpressionCapacity int // Maximum items per expression (default 64)
	MaxNameLength      int // Maximum identifier length (default 63)
}

// ParseError describes an abandoned statement. It has already been reported
// to the diagnostics sink when Next returns it.
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string

	err *dderror.Error
}

func newParseError(file string, tok Token, code dderror.Code, message string) *ParseError {
	return &ParseError{
		File:    file,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: message,
		err: dderror.New(message).
			WithCode(code).
			WithOperation("parse").
			WithDetail("line", tok.Line).
			WithDetail("column", tok.Column),
	}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Unwrap exposes the coded error
func (e *ParseError) Unwrap() error {
	return e.err
}

// Parser implements a recursive descent parser for DahDit
type Parser struct {
	lexer   *Lexer
	logger  *ddlog.Logger
	sink    diag.Sink
	options Options

	current Token
}

// New creates a parser and primes one lookahead token
func New(lexer *Lexer, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = ddlog.GetDefault()
	}
	if opts.Sink == nil {
		opts.Sink = diag.Discard
	}
	if opts.ExpressionCapacity <= 0 {
		opts.ExpressionCapacity = ast.DefaultCapacity
	}
	if opts.MaxNameLength <= 0 {
		opts.MaxNameLength = DefaultMaxNameLength
	}

	p := &Parser{
		lexer:   lexer,
		logger:  opts.Logger.WithField("component", "dahdit-parser"),
		sink:    opts.Sink,
		options: opts,
	}
	p.advance() // Load first token
	return p
}

// Next parses the next statement. It returns io.EOF at the end of input and
// a *ParseError when a statement had to be skipped.
func (p *Parser) Next() (ast.Statement, error) {
	p.skipBlank()
	if p.current.Type == TokenEOF {
		return nil, io.EOF
	}

	stmt, err := p.parseStatement()
	if err != nil {
		p.synchronize()
		return nil, err
	}

	p.logger.Trace("statement parsed", ddlog.Fields{"statement": stmt.String(), "position": stmt.Position().String()})
	return stmt, nil
}

// parseStatement dispatches on the leading keyword word
func (p *Parser) parseStatement() (ast.Statement, error) {
	start := p.current
	pos := ast.Position{Line: start.Line, Column: start.Column}

	if start.Type != TokenLetter {
		return nil, p.errorAt(start, dderror.CodeParse, "expected PRINT or VAR, found %s", describe(start))
	}

	keyword := p.readWord()
	switch keyword {
	case KeywordPrint:
		return p.parsePrint(pos)
	case KeywordVar:
		return p.parseVar(pos)
	default:
		return nil, p.errorAt(start, dderror.CodeParse, "unknown statement %q (expected PRINT or VAR)", keyword)
	}
}

// parsePrint parses the body of a PRINT statement
func (p *Parser) parsePrint(pos ast.Position) (ast.Statement, error) {
	p.skipBlank()

	if p.current.Type == TokenString {
		text := p.current.Value
		p.advance()
		if err := p.expectTerminator(KeywordPrint); err != nil {
			return nil, err
		}
		return &ast.PrintStringStmt{Text: text, Pos: pos}, nil
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if expr.Len() == 1 {
		switch p.current.Type {
		case TokenLetter, TokenSeparator, TokenNewline:
			return p.parsePhrase(pos, expr)
		}
	}

	if err := p.expectTerminator(KeywordPrint); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expr: expr, Pos: pos}, nil
}

// parsePhrase collects the words after a single-item PRINT expression. The
// item is rendered back to text and the words are joined with single spaces.
// Without any further word the statement stays a value print.
func (p *Parser) parsePhrase(pos ast.Position, expr *ast.Expression) (ast.Statement, error) {
	words := []string{expr.Items()[0].String()}

	for {
		switch p.current.Type {
		case TokenLetter:
			words = append(words, p.readWord())
		case TokenSeparator, TokenNewline:
			p.advance()
		case TokenTerminator:
			p.advance()
			if len(words) == 1 {
				return &ast.PrintStmt{Expr: expr, Pos: pos}, nil
			}
			return &ast.PrintStringStmt{Text: strings.Join(words, " "), Pos: pos}, nil
		case TokenEOF:
			return nil, p.errorAt(p.current, dderror.CodeParse, "missing ';' after PRINT")
		case TokenAssign:
			return nil, p.errorAt(p.current, dderror.CodeParse, "unexpected '=' in PRINT")
		default:
			return nil, p.errorAt(p.current, dderror.CodeParse, "unexpected %s in PRINT phrase", describe(p.current))
		}
	}
}

// parseVar parses VAR IDENT ('=' expr)? ';'
func (p *Parser) parseVar(pos ast.Position) (ast.Statement, error) {
	p.skipBlank()

	nameTok := p.current
	if nameTok.Type != TokenLetter {
		return nil, p.errorAt(nameTok, dderror.CodeParse, "expected identifier after VAR, found %s", describe(nameTok))
	}
	name := p.readWord()
	if isNumber(name) {
		return nil, p.errorAt(nameTok, dderror.CodeParse, "expected identifier after VAR, found number %s", name)
	}
	if err := p.checkName(nameTok, name); err != nil {
		return nil, err
	}

	stmt := &ast.VarDeclStmt{Name: name, Pos: pos}

	p.skipBlank()
	if p.current.Type == TokenAssign {
		p.advance()
		initExpr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt.Init = initExpr
	}

	if err := p.expectTerminator(KeywordVar); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseExpression parses expr := term (('+' | '-') term)*
func (p *Parser) parseExpression() (*ast.Expression, error) {
	expr := ast.NewExpression(p.options.ExpressionCapacity)

	if err := p.parseTerm(expr); err != nil {
		return nil, err
	}
	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		opTok := p.current
		op := ast.OpAdd
		if opTok.Type == TokenMinus {
			op = ast.OpSub
		}
		p.advance()

		if err := p.parseTerm(expr); err != nil {
			return nil, err
		}
		if err := p.push(expr, opTok, ast.Operator(op)); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

// parseTerm parses term := factor (('*' | '/' | '%') factor)*
func (p *Parser) parseTerm(expr *ast.Expression) error {
	if err := p.parseFactor(expr); err != nil {
		return err
	}
	for {
		var op ast.Op
		switch p.current.Type {
		case TokenStar:
			op = ast.OpMul
		case TokenSlash:
			op = ast.OpDiv
		case TokenPercent:
			op = ast.OpMod
		default:
			return nil
		}
		opTok := p.current
		p.advance()

		if err := p.parseFactor(expr); err != nil {
			return err
		}
		if err := p.push(expr, opTok, ast.Operator(op)); err != nil {
			return err
		}
	}
}

// parseFactor parses one word as a number or a variable reference
func (p *Parser) parseFactor(expr *ast.Expression) error {
	p.skipBlank()

	tok := p.current
	if tok.Type != TokenLetter {
		return p.errorAt(tok, dderror.CodeParse, "expected number or identifier, found %s", describe(tok))
	}
	word := p.readWord()

	if isNumber(word) {
		n, err := strconv.ParseInt(word, 10, 32)
		if err != nil {
			return p.errorAt(tok, dderror.CodeParse, "integer literal %s out of range", word)
		}
		return p.push(expr, tok, ast.Number(int32(n)))
	}

	if err := p.checkName(tok, word); err != nil {
		return err
	}
	return p.push(expr, tok, ast.Variable(word))
}

func (p *Parser) push(expr *ast.Expression, tok Token, item ast.Item) error {
	if err := expr.Push(item); err != nil {
		if errors.Is(err, ast.ErrExpressionFull) {
			return p.errorAt(tok, dderror.CodeCapacity, "expression exceeds %d items", expr.Cap())
		}
		return p.errorAt(tok, dderror.CodeInternal, "%v", err)
	}
	return nil
}

func (p *Parser) checkName(tok Token, name string) error {
	if len(name) > p.options.MaxNameLength {
		return p.errorAt(tok, dderror.CodeParse, "identifier of %d characters exceeds the limit of %d", len(name), p.options.MaxNameLength)
	}
	return nil
}

// expectTerminator consumes the closing ';', allowing separators and line
// breaks in front of it
func (p *Parser) expectTerminator(keyword string) error {
	p.skipBlank()
	if p.current.Type != TokenTerminator {
		return p.errorAt(p.current, dderror.CodeParse, "missing ';' after %s, found %s", keyword, describe(p.current))
	}
	p.advance()
	return nil
}

// readWord collects a maximal run of letter tokens
func (p *Parser) readWord() string {
	var sb strings.Builder
	for p.current.Type == TokenLetter {
		sb.WriteRune(p.current.Char)
		p.advance()
	}
	return sb.String()
}

// skipBlank skips separators and line breaks
func (p *Parser) skipBlank() {
	for p.current.Type == TokenSeparator || p.current.Type == TokenNewline {
		p.advance()
	}
}

// synchronize discards tokens up to and including the next terminator
func (p *Parser) synchronize() {
	for p.current.Type != TokenTerminator && p.current.Type != TokenEOF {
		p.advance()
	}
	if p.current.Type == TokenTerminator {
		p.advance()
	}
}

// advance moves to the next token
func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

// errorAt reports a diagnostic at tok and returns the matching ParseError
func (p *Parser) errorAt(tok Token, code dderror.Code, format string, args ...interface{}) *ParseError {
	message := fmt.Sprintf(format, args...)
	file := p.lexer.File()

	p.sink.Report(diag.Diagnostic{
		File:    file,
		Line:    tok.Line,
		Column:  tok.Column,
		Kind:    diag.KindParse,
		Message: message,
	})
	p.logger.Debug("parse error", ddlog.Fields{
		"file":    file,
		"line":    tok.Line,
		"column":  tok.Column,
		"code":    code,
		"message": message,
	})

	return newParseError(file, tok, code, message)
}

func isNumber(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return true
}
