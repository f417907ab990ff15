// File: doc.go
// Title: DahDit AST Package Documentation
// Description: Statement and postfix expression types produced by the parser
//              and consumed by the executor.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial package documentation

/*
Package ast defines the values passed from the DahDit parser to the executor.

A program is never held as a whole tree. The parser builds one Statement per
call and the executor consumes it immediately. Expressions are flat postfix
sequences: every operator follows the two operands it applies to, so

	2 + 3 * 4

is stored as

	2 3 4 * +

and is evaluated with a single operand stack.
*/
package ast
