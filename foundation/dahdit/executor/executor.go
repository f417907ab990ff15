// File: executor.go
// Title: DahDit Statement Executor
// Description: Evaluates postfix expressions with an explicit operand stack
//              and executes statements against the symbol table. Failures
//              skip the statement and never abort the run.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-05
//
// Change History:
// - 2026-09-30 v0.1.0: Initial executor
// - 2026-10-05 v0.1.1: Visitor dispatch and typed EvalError

// Package executor runs DahDit statements. Arithmetic is 32-bit two's
// complement and wraps on overflow; division truncates toward zero.
package executor

import (
	"fmt"
	"io"
	"strconv"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/ast"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/diag"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/symtab"
)

// Options configures executor behavior
type Options struct {
	Logger  *ddlog.Logger
	Sink    diag.Sink
	Output  io.Writer     // Program output, required
	Symbols *symtab.Table // Defaults to a table of symtab.DefaultCapacity
	File    string        // Used in diagnostics
}

// EvalError describes a statement that could not be executed
type EvalError struct {
	File    string
	Line    int
	Column  int
	Message string

	err *dderror.Error
}

func newEvalError(file string, pos ast.Position, code dderror.Code, message string) *EvalError {
	return &EvalError{
		File:    file,
		Line:    pos.Line,
		Column:  pos.Column,
		Message: message,
		err: dderror.New(message).
			WithCode(code).
			WithOperation("execute").
			WithDetail("line", pos.Line).
			WithDetail("column", pos.Column),
	}
}

// Error implements the error interface
func (e *EvalError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Unwrap exposes the coded error
func (e *EvalError) Unwrap() error {
	return e.err
}

// Executor executes DahDit statements
type Executor struct {
	logger  *ddlog.Logger
	sink    diag.Sink
	output  io.Writer
	symbols *symtab.Table
	file    string

	pos ast.Position // Position of the statement being executed
}

// New creates a new executor
func New(opts Options) (*Executor, error) {
	if opts.Output == nil {
		return nil, dderror.New("executor output is required").WithCode(dderror.CodeInvalidInput)
	}
	if opts.Logger == nil {
		opts.Logger = ddlog.GetDefault()
	}
	if opts.Sink == nil {
		opts.Sink = diag.Discard
	}
	if opts.Symbols == nil {
		opts.Symbols = symtab.New(symtab.DefaultCapacity)
	}

	e := &Executor{
		logger:  opts.Logger.WithField("component", "dahdit-executor"),
		sink:    opts.Sink,
		output:  opts.Output,
		symbols: opts.Symbols,
		file:    opts.File,
	}

	e.logger.Debug("executor initialized", ddlog.Fields{
		"symbol_capacity": opts.Symbols.Cap(),
		"file":            opts.File,
	})
	return e, nil
}

// Symbols returns the table the executor writes to
func (e *Executor) Symbols() *symtab.Table {
	return e.symbols
}

// Evaluate computes the value of a postfix expression. Errors carry the
// position of the statement currently being executed, if any.
func (e *Executor) Evaluate(expr *ast.Expression) (int32, error) {
	items := expr.Items()
	stack := make([]int32, 0, len(items))

	for _, item := range items {
		switch item.Kind {
		case ast.ItemNumber:
			stack = append(stack, item.Number)

		case ast.ItemVariable:
			v, ok := e.symbols.Get(item.Name)
			if !ok {
				return 0, e.fail(dderror.CodeEval, "undefined variable %s", item.Name)
			}
			stack = append(stack, v)

		case ast.ItemOperator:
			if len(stack) < 2 {
				return 0, e.fail(dderror.CodeInternal, "operand stack underflow at %s", item.Op)
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := e.apply(item.Op, lhs, rhs)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		default:
			return 0, e.fail(dderror.CodeInternal, "unknown expression item %v", item.Kind)
		}
	}

	if len(stack) != 1 {
		return 0, e.fail(dderror.CodeInternal, "malformed expression leaves %d values", len(stack))
	}
	return stack[0], nil
}

func (e *Executor) apply(op ast.Op, lhs, rhs int32) (int32, error) {
	switch op {
	case ast.OpAdd:
		return lhs + rhs, nil
	case ast.OpSub:
		return lhs - rhs, nil
	case ast.OpMul:
		return lhs * rhs, nil
	case ast.OpDiv:
		if rhs == 0 {
			return 0, e.fail(dderror.CodeEval, "division by zero")
		}
		return lhs / rhs, nil
	case ast.OpMod:
		if rhs == 0 {
			return 0, e.fail(dderror.CodeEval, "modulo by zero")
		}
		return lhs % rhs, nil
	default:
		return 0, e.fail(dderror.CodeInternal, "unknown operator %v", op)
	}
}

// Execute runs one statement. A failure is reported to the diagnostics sink
// and returned; the caller continues with the next statement.
func (e *Executor) Execute(stmt ast.Statement) error {
	e.pos = stmt.Position()
	defer func() { e.pos = ast.Position{} }()

	err := stmt.Accept(e)
	if evalErr, ok := err.(*EvalError); ok {
		e.sink.Report(diag.Diagnostic{
			File:    evalErr.File,
			Line:    evalErr.Line,
			Column:  evalErr.Column,
			Kind:    diag.KindEval,
			Message: evalErr.Message,
		})
		e.logger.LogError(evalErr)
	}
	return err
}

// VisitPrint writes the decimal value and a line break
func (e *Executor) VisitPrint(stmt *ast.PrintStmt) error {
	v, err := e.Evaluate(stmt.Expr)
	if err != nil {
		return err
	}
	return e.writeLine(strconv.FormatInt(int64(v), 10))
}

// VisitPrintString writes the text and a line break
func (e *Executor) VisitPrintString(stmt *ast.PrintStringStmt) error {
	return e.writeLine(stmt.Text)
}

// VisitVarDecl evaluates the initializer and stores the result
func (e *Executor) VisitVarDecl(stmt *ast.VarDeclStmt) error {
	if stmt.Init == nil {
		return e.fail(dderror.CodeEval, "VAR without initializer is not supported yet")
	}

	v, err := e.Evaluate(stmt.Init)
	if err != nil {
		return err
	}
	if err := e.symbols.Set(stmt.Name, v); err != nil {
		return e.fail(dderror.CodeEval, "symbol table full, cannot add %s (capacity %d)", stmt.Name, e.symbols.Cap())
	}

	e.logger.Trace("variable set", ddlog.Fields{"name": stmt.Name, "value": v})
	return nil
}

func (e *Executor) writeLine(s string) error {
	if _, err := io.WriteString(e.output, s+"\n"); err != nil {
		return e.fail(dderror.CodeEval, "cannot write output: %v", err)
	}
	return nil
}

func (e *Executor) fail(code dderror.Code, format string, args ...interface{}) *EvalError {
	return newEvalError(e.file, e.pos, code, fmt.Sprintf(format, args...))
}
