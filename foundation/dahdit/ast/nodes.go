// File: nodes.go
// Title: DahDit Statement Definitions
// Description: Defines the three statement forms and their source positions.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial statement definitions

package ast

import (
	"fmt"
	"strconv"
)

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Statement is one executable DahDit statement
type Statement interface {
	// String returns the statement in plain (non-Morse) syntax
	String() string

	// Position returns the position of the statement keyword
	Position() Position

	// Accept dispatches to the matching Visitor method
	Accept(v Visitor) error

	stmtNode()
}

// PrintStmt prints the value of an expression
type PrintStmt struct {
	Expr *Expression
	Pos  Position
}

// PrintStringStmt prints literal text, from a string literal or a phrase
type PrintStringStmt struct {
	Text string
	Pos  Position
}

// VarDeclStmt declares or updates a variable. Init is nil when no
// initializer was written.
type VarDeclStmt struct {
	Name string
	Init *Expression
	Pos  Position
}

func (s *PrintStmt) stmtNode()       {}
func (s *PrintStringStmt) stmtNode() {}
func (s *VarDeclStmt) stmtNode()     {}

func (s *PrintStmt) Position() Position       { return s.Pos }
func (s *PrintStringStmt) Position() Position { return s.Pos }
func (s *VarDeclStmt) Position() Position     { return s.Pos }

func (s *PrintStmt) Accept(v Visitor) error       { return v.VisitPrint(s) }
func (s *PrintStringStmt) Accept(v Visitor) error { return v.VisitPrintString(s) }
func (s *VarDeclStmt) Accept(v Visitor) error     { return v.VisitVarDecl(s) }

func (s *PrintStmt) String() string {
	return fmt.Sprintf("PRINT [%s];", s.Expr)
}

func (s *PrintStringStmt) String() string {
	return "PRINT " + strconv.Quote(s.Text) + ";"
}

func (s *VarDeclStmt) String() string {
	if s.Init == nil {
		return "VAR " + s.Name + ";"
	}
	return fmt.Sprintf("VAR %s = [%s];", s.Name, s.Init)
}
