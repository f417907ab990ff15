// Package error provides structured error handling for DahDit.
//
// Package: error
// Title: DahDit Error Handling
// Description: Structured errors carrying a code, a severity and free-form
//              details. Interpreter stages attach their position information as
//              details so that diagnostics, logs and the run history all see the
//              same classification.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with DahDit stage codes
//
// Usage:
//
//	import dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
//
//	err := dderror.New("cannot open source").
//		WithCode(dderror.CodeIO).
//		WithDetail("file", path)
//
//	if dderror.HasCode(err, dderror.CodeIO) {
//		// fatal: nothing was executed
//	}
package error
