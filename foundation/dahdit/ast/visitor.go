// File: visitor.go
// Title: Statement Visitor
// Description: Visitor interface for dispatching on statement forms.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial visitor

package ast

// Visitor handles each statement form
type Visitor interface {
	VisitPrint(stmt *PrintStmt) error
	VisitPrintString(stmt *PrintStringStmt) error
	VisitVarDecl(stmt *VarDeclStmt) error
}
