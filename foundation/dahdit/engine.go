// File: engine.go
// Title: DahDit Interpreter
// Description: Runs whole DahDit sources. Each run gets a fresh symbol
//              table, a uuid run ID attached to the logger, and a Result
//              with counts, diagnostics and timing.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-08
//
// Change History:
// - 2026-09-30 v0.1.0: Initial interpreter
// - 2026-10-08 v0.1.1: Run IDs and run timers

package dahdit

import (
	"io"
	"time"

	"github.com/google/uuid"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/diag"
)

// Result describes a completed run
type Result struct {
	RunID       string            `json:"run_id"`
	File        string            `json:"file"`
	Statements  int               `json:"statements"`
	Executed    int               `json:"executed"`
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
	StartedAt   time.Time         `json:"started_at"`
	Duration    time.Duration     `json:"duration"`
}

// Failed reports whether any diagnostic was produced
func (r *Result) Failed() bool {
	return len(r.Diagnostics) > 0
}

// Interpreter runs DahDit sources
type Interpreter struct {
	options Options
	logger  *ddlog.Logger
}

// New creates an interpreter
func New(opts Options) (*Interpreter, error) {
	opts.applyDefaults()
	if opts.ExpressionCapacity < 0 || opts.SymbolCapacity < 0 || opts.MaxNameLength < 0 {
		return nil, dderror.New("interpreter limits must not be negative").
			WithCode(dderror.CodeInvalidInput).
			WithDetails(map[string]interface{}{
				"expression_capacity": opts.ExpressionCapacity,
				"symbol_capacity":     opts.SymbolCapacity,
				"max_name_length":     opts.MaxNameLength,
			})
	}

	logger := opts.Logger.WithField("component", "dahdit-engine")
	logger.Debug("interpreter initialized", ddlog.Fields{
		"expression_capacity": opts.ExpressionCapacity,
		"symbol_capacity":     opts.SymbolCapacity,
		"max_name_length":     opts.MaxNameLength,
	})

	return &Interpreter{options: opts, logger: logger}, nil
}

// RunFile runs the program stored at path. The only error is a source that
// cannot be opened; it is a DAHDIT_IO error carrying the run ID.
func (i *Interpreter) RunFile(path string) (*Result, error) {
	return i.run(path, func(s *Session) (Stats, error) {
		return s.EvalFile(path)
	})
}

// Run runs the program read from r. name is used in diagnostics; an empty
// name is shown as <stdin>.
func (i *Interpreter) Run(name string, r io.Reader) (*Result, error) {
	if r == nil {
		return nil, dderror.New("no source reader").WithCode(dderror.CodeInvalidInput)
	}
	return i.run(name, func(s *Session) (Stats, error) {
		return s.Eval(name, r), nil
	})
}

func (i *Interpreter) run(file string, eval func(*Session) (Stats, error)) (*Result, error) {
	runID := uuid.NewString()
	logger := i.logger.WithRequestID(runID)

	opts := i.options
	opts.Logger = logger
	session := NewSession(opts)

	started := time.Now()
	timer := logger.StartTimer("run").WithField("file", file)

	stats, err := eval(session)
	if err != nil {
		timer.StopWithResult(false, nil)
		ioErr := dderror.Wrap(err, "run aborted").WithRequestID(runID)
		logger.LogError(ioErr)
		return nil, ioErr
	}

	result := &Result{
		RunID:       runID,
		File:        file,
		Statements:  stats.Statements,
		Executed:    stats.Executed,
		Diagnostics: stats.Diagnostics,
		StartedAt:   started,
		Duration:    time.Since(started),
	}

	timer.StopWithResult(!result.Failed(), ddlog.Fields{
		"statements":  result.Statements,
		"executed":    result.Executed,
		"diagnostics": len(result.Diagnostics),
	})
	return result, nil
}
