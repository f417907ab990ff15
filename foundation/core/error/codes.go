// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used across DahDit. Stage codes mirror the four
//              error kinds of the interpreter (io, lex, parse, eval); the
//              remaining codes cover configuration and the run history store.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with interpreter stage codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Interpreter stages
	CodeIO       Code = "DAHDIT_IO"
	CodeLex      Code = "DAHDIT_LEX"
	CodeParse    Code = "DAHDIT_PARSE"
	CodeEval     Code = "DAHDIT_EVAL"
	CodeCapacity Code = "DAHDIT_CAPACITY"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeIO, CodeLex, CodeParse, CodeEval, CodeCapacity,
		CodeConfigError, CodeInvalidConfig, CodeDatabaseError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIO, CodeLex, CodeParse, CodeEval, CodeCapacity:
		return "interpreter"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeDatabaseError:
		return "database"
	default:
		return "generic"
	}
}

// Recoverable reports whether an error with this code lets a run continue.
// Only a source that cannot be opened stops a program before it starts.
func (c Code) Recoverable() bool {
	switch c {
	case CodeLex, CodeParse, CodeEval, CodeCapacity:
		return true
	default:
		return false
	}
}
