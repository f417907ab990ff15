// File: token.go
// Title: DahDit Tokens
// Description: Token kinds produced by the lexer and their string forms.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial token definitions

package parser

import (
	"fmt"
	"strconv"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota

	TokenLetter // decoded letter or digit
	TokenString // "string literal"

	// Decoded Morse operators
	TokenAssign  // =
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %

	// Raw punctuation
	TokenSeparator  // '/' byte between words
	TokenTerminator // ;
	TokenNewline    // \n
)

// Token represents a lexical token with position information
type Token struct {
	Type   TokenType // Token type
	Char   rune      // Decoded character for letters and operators
	Value  string    // String payload, or the source text
	Line   int       // Line number (1-based)
	Column int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF, TokenSeparator, TokenTerminator, TokenNewline:
		return t.Type.String()
	case TokenString:
		return fmt.Sprintf("STRING(%s)", strconv.Quote(t.Value))
	default:
		return fmt.Sprintf("%s(%c)", t.Type.String(), t.Char)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenLetter:
		return "LETTER"
	case TokenString:
		return "STRING"
	case TokenAssign:
		return "ASSIGN"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenPercent:
		return "PERCENT"
	case TokenSeparator:
		return "SEPARATOR"
	case TokenTerminator:
		return "TERMINATOR"
	case TokenNewline:
		return "NEWLINE"
	default:
		return "UNKNOWN"
	}
}

// describe names a token for diagnostics
func describe(t Token) string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenLetter:
		return fmt.Sprintf("'%c'", t.Char)
	case TokenString:
		return "string literal"
	case TokenSeparator:
		return "'/' separator"
	case TokenTerminator:
		return "';'"
	case TokenNewline:
		return "line break"
	default:
		return fmt.Sprintf("operator '%c'", t.Char)
	}
}

// operatorTokens maps decoded operator symbols to token types
var operatorTokens = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'%': TokenPercent,
	'=': TokenAssign,
}
