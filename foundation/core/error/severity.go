// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification for errors, used by the logger to pick
//              a log level and by the CLI to decide on exit status.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers problems local to a single token or statement.
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code.
	SeverityMedium

	// SeverityHigh covers failures of supporting infrastructure (config, storage).
	SeverityHigh

	// SeverityCritical means nothing could be executed at all.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeIO:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeDatabaseError, CodeInternal:
		return SeverityHigh
	case CodeLex, CodeParse, CodeEval, CodeCapacity, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
