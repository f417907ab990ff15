// ============================================================================
// DahDit - Morse Language Interpreter
// ============================================================================
//
// Package:     version
// Description: Central version management for the interpreter and tools
// Author:      JangHwanPark
// Created:     2026-10-01
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Interpreter version
	Interpreter = "0.1.0"

	// Language revision accepted by the parser
	Language = "1"

	// History database schema version
	HistorySchema = "1"
)

// Build metadata, set through -ldflags at release time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language":
		return Language
	case "history":
		return HistorySchema
	default:
		return Interpreter
	}
}

// String returns a one-line version banner
func String() string {
	return fmt.Sprintf("dahdit %s (language %s, commit %s, built %s, %s/%s)",
		Interpreter, Language, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
