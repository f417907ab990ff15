// File: expression.go
// Title: Postfix Expressions
// Description: Capacity-bounded postfix item sequences with typed overflow
//              errors.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-01
//
// Change History:
// - 2026-09-29 v0.1.0: Initial expression buffer
// - 2026-10-01 v0.1.1: Growable storage with an explicit capacity check

package ast

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultCapacity is the default maximum number of items per expression
const DefaultCapacity = 64

// ErrExpressionFull is returned by Push when the expression is at capacity
var ErrExpressionFull = errors.New("expression capacity exceeded")

// ItemKind tags an expression item
type ItemKind int

const (
	ItemNumber ItemKind = iota
	ItemVariable
	ItemOperator
)

// String returns the item kind name
func (k ItemKind) String() string {
	switch k {
	case ItemNumber:
		return "number"
	case ItemVariable:
		return "variable"
	case ItemOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Op is a binary arithmetic operator
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

// String returns the operator symbol
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}

// Item is one element of a postfix expression. Only the field matching Kind
// is meaningful.
type Item struct {
	Kind   ItemKind
	Number int32
	Name   string
	Op     Op
}

// Number creates a literal item
func Number(n int32) Item { return Item{Kind: ItemNumber, Number: n} }

// Variable creates a variable reference item
func Variable(name string) Item { return Item{Kind: ItemVariable, Name: name} }

// Operator creates an operator item
func Operator(op Op) Item { return Item{Kind: ItemOperator, Op: op} }

// String renders the item as source text
func (i Item) String() string {
	switch i.Kind {
	case ItemNumber:
		return strconv.FormatInt(int64(i.Number), 10)
	case ItemVariable:
		return i.Name
	default:
		return i.Op.String()
	}
}

// Expression is an ordered postfix sequence with a fixed capacity
type Expression struct {
	items    []Item
	capacity int
}

// NewExpression creates an empty expression. A capacity <= 0 selects
// DefaultCapacity.
func NewExpression(capacity int) *Expression {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Expression{capacity: capacity}
}

// Push appends an item. It fails with ErrExpressionFull at capacity and
// leaves the expression unchanged.
func (e *Expression) Push(item Item) error {
	if len(e.items) >= e.capacity {
		return ErrExpressionFull
	}
	e.items = append(e.items, item)
	return nil
}

// Items returns the postfix items. The slice must not be modified.
func (e *Expression) Items() []Item {
	return e.items
}

// Len returns the number of items
func (e *Expression) Len() int {
	return len(e.items)
}

// Cap returns the capacity
func (e *Expression) Cap() int {
	return e.capacity
}

// String renders the postfix form separated by spaces
func (e *Expression) String() string {
	parts := make([]string, len(e.items))
	for i, item := range e.items {
		parts[i] = item.String()
	}
	return strings.Join(parts, " ")
}
