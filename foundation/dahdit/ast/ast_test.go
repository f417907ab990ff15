// File: ast_test.go
// Title: AST Tests
// Description: Tests for expression capacity, rendering and visitor dispatch.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial tests

package ast

import (
	"errors"
	"testing"
)

func TestExpressionPush(t *testing.T) {
	expr := NewExpression(3)
	for _, item := range []Item{Number(2), Variable("A"), Operator(OpMul)} {
		if err := expr.Push(item); err != nil {
			t.Fatalf("Push(%v) error = %v", item, err)
		}
	}

	if err := expr.Push(Number(1)); !errors.Is(err, ErrExpressionFull) {
		t.Errorf("Push beyond capacity = %v, want ErrExpressionFull", err)
	}
	if expr.Len() != 3 {
		t.Errorf("Len() = %d after failed push, want 3", expr.Len())
	}
	if got := expr.String(); got != "2 A *" {
		t.Errorf("String() = %q, want %q", got, "2 A *")
	}
}

func TestNewExpressionDefaultCapacity(t *testing.T) {
	if got := NewExpression(0).Cap(); got != DefaultCapacity {
		t.Errorf("Cap() = %d, want %d", got, DefaultCapacity)
	}
}

func TestItemString(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Number(-42), "-42"},
		{Variable("COUNT"), "COUNT"},
		{Operator(OpAdd), "+"},
		{Operator(OpSub), "-"},
		{Operator(OpDiv), "/"},
		{Operator(OpMod), "%"},
	}
	for _, tt := range tests {
		if got := tt.item.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStatementString(t *testing.T) {
	sum := NewExpression(4)
	_ = sum.Push(Number(1))
	_ = sum.Push(Number(2))
	_ = sum.Push(Operator(OpAdd))

	tests := []struct {
		stmt Statement
		want string
	}{
		{&PrintStmt{Expr: sum}, "PRINT [1 2 +];"},
		{&PrintStringStmt{Text: "HI YOU"}, `PRINT "HI YOU";`},
		{&VarDeclStmt{Name: "A"}, "VAR A;"},
		{&VarDeclStmt{Name: "A", Init: sum}, "VAR A = [1 2 +];"},
	}
	for _, tt := range tests {
		if got := tt.stmt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

type recordingVisitor struct {
	visited []string
}

func (r *recordingVisitor) VisitPrint(*PrintStmt) error {
	r.visited = append(r.visited, "print")
	return nil
}

func (r *recordingVisitor) VisitPrintString(*PrintStringStmt) error {
	r.visited = append(r.visited, "string")
	return nil
}

func (r *recordingVisitor) VisitVarDecl(*VarDeclStmt) error {
	r.visited = append(r.visited, "var")
	return nil
}

func TestAcceptDispatch(t *testing.T) {
	v := &recordingVisitor{}
	stmts := []Statement{
		&VarDeclStmt{Name: "A", Pos: Position{Line: 1, Column: 1}},
		&PrintStmt{Expr: NewExpression(1)},
		&PrintStringStmt{Text: "x"},
	}
	for _, s := range stmts {
		if err := s.Accept(v); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"var", "print", "string"}
	for i := range want {
		if v.visited[i] != want[i] {
			t.Errorf("visited = %v, want %v", v.visited, want)
			break
		}
	}
	if stmts[0].Position().String() != "1:1" {
		t.Errorf("Position() = %v", stmts[0].Position())
	}
}
