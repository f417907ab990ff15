// File: encode.go
// Title: Morse Encoder
// Description: Turns plain DahDit text into Morse source. Structural bytes,
//              string literals and comments are copied unchanged.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-04
//
// Change History:
// - 2026-09-29 v0.1.0: Initial encoder
// - 2026-10-04 v0.1.1: Copy string literals and comments verbatim

package morse

import (
	"fmt"
	"strings"
)

// EncodeError reports a character that has no Morse representation
type EncodeError struct {
	Char   rune
	Line   int
	Column int
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%d:%d: cannot encode %q", e.Line, e.Column, e.Char)
}

// EncodeText converts plain text such as
//
//	VAR A = 2+3; PRINT A;
//
// into Morse source. Letters, digits and the operators + - * / % are encoded,
// each followed by a space. A run of spaces after a word becomes the word
// separator " / ". Spaces around operators are dropped. The bytes ; = and
// newlines are copied as punctuation, and "..." literals and # comments are
// copied unchanged. A plain / is the divide operator, not a separator.
func EncodeText(src string) (string, error) {
	var b strings.Builder
	line, col := 1, 0
	pendingSpace, afterWord := false, false
	inString, inComment := false, false

	flushSpace := func() {
		if pendingSpace {
			b.WriteString("/ ")
			pendingSpace = false
		}
	}

	for _, r := range src {
		col++
		switch {
		case r == '\n':
			inString, inComment = false, false
			pendingSpace, afterWord = false, false
			b.WriteByte('\n')
			line++
			col = 0
			continue
		case inComment:
			b.WriteRune(r)
			continue
		case inString:
			b.WriteRune(r)
			if r == '"' {
				inString = false
				b.WriteByte(' ')
			}
			continue
		}

		switch r {
		case ' ', '\t', '\r':
			pendingSpace = afterWord
		case '"':
			flushSpace()
			inString, afterWord = true, false
			b.WriteRune(r)
		case '#':
			pendingSpace, afterWord = false, false
			inComment = true
			b.WriteRune(r)
		case ';', '=':
			pendingSpace, afterWord = false, false
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			seq, ok := Encode(r)
			if !ok {
				return "", &EncodeError{Char: r, Line: line, Column: col}
			}
			if IsOperator(r) {
				pendingSpace = false
			}
			flushSpace()
			b.WriteString(seq)
			b.WriteByte(' ')
			afterWord = !IsOperator(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n"), nil
}
