// File: doc.go
// Title: DahDit Parser Package Documentation
// Description: Lexer and recursive descent parser for Morse-encoded DahDit
//              programs.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-05
//
// Change History:
// - 2026-09-29 v0.1.0: Initial parser implementation
// - 2026-10-05 v0.1.1: Statement-level recovery for every parse error

/*
Package parser turns DahDit source text into statements.

The Lexer decodes maximal runs of dots and dashes through the morse package.
Letters and digits become Letter tokens, while the reserved operator sequences
become Plus, Minus, Star, Slash, Percent or Assign tokens. The raw bytes
'/', '=', ';' and newline are single-character tokens. A '/' byte separates
words and is not the divide operator.

The Parser consumes one statement per call to Next:

	statement  := PRINT print_body ';' | VAR IDENT ('=' expr)? ';'
	print_body := STRING | expr | phrase
	expr       := term (('+' | '-') term)*
	term       := factor (('*' | '/' | '%') factor)*
	factor     := NUMBER | IDENT

Neither stage stops on bad input. The lexer reports a diagnostic and keeps
scanning. The parser reports a diagnostic, skips past the next ';' and
returns a *ParseError so the caller can move on to the next statement.
*/
package parser
