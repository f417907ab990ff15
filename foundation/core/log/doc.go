// Package log provides structured logging for DahDit.
//
// Package: log
// Title: DahDit Structured Logging
// Description: Leveled, structured logger with JSON, text and logfmt output,
//              immutable With* derivation for component and run context, and
//              performance timers. Integrates with the error package so coded
//              errors are logged at a level matching their severity.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := ddlog.NewWithConfig(ddlog.Config{
//		Level:  ddlog.LevelDebug,
//		Format: ddlog.FormatText,
//		Output: os.Stderr,
//	})
//
//	parserLog := logger.WithField("component", "dahdit-parser")
//	parserLog.Debug("statement parsed", ddlog.Fields{"line": 3})
//
//	timer := logger.StartTimer("run")
//	defer timer.Stop()
package log
