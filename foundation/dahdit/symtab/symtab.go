// File: symtab.go
// Title: DahDit Symbol Table
// Description: Bounded name to int32 mapping with find-or-insert updates.
//              Names keep their insertion order for listing.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-07
//
// Change History:
// - 2026-09-30 v0.1.0: Initial table
// - 2026-10-07 v0.1.1: Names and Reset for the interactive session

// Package symtab stores DahDit variables for one run. There is at most one
// slot per name and no deletion; a full table rejects new names but keeps
// updating existing ones.
package symtab

import (
	"errors"
	"sync"
)

// DefaultCapacity is the number of distinct names a table holds by default
const DefaultCapacity = 256

// ErrTableFull is returned by Set when a new name does not fit
var ErrTableFull = errors.New("symbol table full")

// Table is a fixed-capacity symbol table
type Table struct {
	mu       sync.RWMutex
	capacity int
	index    map[string]int
	names    []string
	values   []int32
}

// New creates a table for capacity names. A capacity <= 0 selects
// DefaultCapacity.
func New(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Table{
		capacity: capacity,
		index:    make(map[string]int),
	}
}

// Set updates name or inserts it. Inserting into a full table fails with
// ErrTableFull and leaves existing entries untouched.
func (t *Table) Set(name string, value int32) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if slot, ok := t.index[name]; ok {
		t.values[slot] = value
		return nil
	}
	if len(t.names) >= t.capacity {
		return ErrTableFull
	}

	t.index[name] = len(t.names)
	t.names = append(t.names, name)
	t.values = append(t.values, value)
	return nil
}

// Get looks up name
func (t *Table) Get(name string) (int32, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	slot, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.values[slot], true
}

// Len returns the number of names in use
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}

// Cap returns the capacity
func (t *Table) Cap() int {
	return t.capacity
}

// Names returns the names in insertion order
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Reset removes every entry
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.index = make(map[string]int)
	t.names = nil
	t.values = nil
}
