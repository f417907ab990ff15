// File: morse.go
// Title: Morse Decoder
// Description: Maps dot/dash sequences to letters, digits and the operator
//              symbols of the DahDit language, and back. The operator table is
//              consulted before the alphanumeric table.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial decoder with operator overrides

// Package morse decodes and encodes the Morse alphabet used by DahDit
// programs.
//
// Six sequences are reserved for arithmetic and assignment. They are looked up
// before the ITU letter table, so a reserved sequence never decodes to a
// letter. `-..-` is the ITU code for X and is reclaimed for `*`; X therefore
// cannot appear in a DahDit identifier.
package morse

const (
	// Dot and Dash are the two symbols of a Morse run
	Dot  = '.'
	Dash = '-'

	// Unknown is returned for sequences without a table entry
	Unknown = '?'

	// MaxSequenceLength is the longest run the decoder accepts
	MaxSequenceLength = 15
)

// operators holds the reserved sequences. Checked before letters.
var operators = map[string]rune{
	".-.-.":  '+',
	"-....-": '-',
	"-..-":   '*',
	"-..-.":  '/',
	"-.-.-":  '%',
	"-...-":  '=',
}

var alphanumerics = map[string]rune{
	".-": 'A', "-...": 'B', "-.-.": 'C', "-..": 'D', ".": 'E',
	"..-.": 'F', "--.": 'G', "....": 'H', "..": 'I', ".---": 'J',
	"-.-": 'K', ".-..": 'L', "--": 'M', "-.": 'N', "---": 'O',
	".--.": 'P', "--.-": 'Q', ".-.": 'R', "...": 'S', "-": 'T',
	"..-": 'U', "...-": 'V', ".--": 'W', "-..-": 'X', "-.--": 'Y',
	"--..": 'Z',
	"-----": '0', ".----": '1', "..---": '2', "...--": '3', "....-": '4',
	".....": '5', "-....": '6', "--...": '7', "---..": '8', "----.": '9',
}

// encodings is the reverse of both tables with operators taking precedence,
// which drops X.
var encodings = buildEncodings()

func buildEncodings() map[rune]string {
	enc := make(map[rune]string, len(alphanumerics)+len(operators))
	for seq, r := range alphanumerics {
		if _, reserved := operators[seq]; reserved {
			continue
		}
		enc[r] = seq
	}
	for seq, r := range operators {
		enc[r] = seq
	}
	return enc
}

// Decode returns the symbol for a dot/dash sequence. Sequences that are
// empty, too long, contain other characters or have no table entry yield
// (Unknown, false).
func Decode(seq string) (rune, bool) {
	if len(seq) == 0 || len(seq) > MaxSequenceLength {
		return Unknown, false
	}
	if r, ok := operators[seq]; ok {
		return r, true
	}
	if r, ok := alphanumerics[seq]; ok {
		return r, true
	}
	return Unknown, false
}

// Encode returns the sequence for a letter, digit or operator symbol.
// Lowercase letters are encoded as their uppercase form.
func Encode(r rune) (string, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	seq, ok := encodings[r]
	return seq, ok
}

// IsOperator reports whether r is one of the reserved operator or
// assignment symbols.
func IsOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=':
		return true
	default:
		return false
	}
}

// IsMorse reports whether b is a dot or a dash.
func IsMorse(b byte) bool {
	return b == Dot || b == Dash
}
