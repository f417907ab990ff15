// File: symtab_test.go
// Title: Symbol Table Tests
// Description: Tests for last-write-wins updates and capacity handling.
// Author: JangHwanPark
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-10-07
//
// Change History:
// - 2026-09-30 v0.1.0: Initial tests

package symtab

import (
	"errors"
	"fmt"
	"testing"
)

func TestSetGet(t *testing.T) {
	table := New(4)

	if _, ok := table.Get("A"); ok {
		t.Fatal("Get on empty table should miss")
	}

	steps := []struct {
		name  string
		value int32
	}{
		{"A", 1},
		{"B", -7},
		{"A", 2},
	}
	for _, s := range steps {
		if err := table.Set(s.name, s.value); err != nil {
			t.Fatalf("Set(%s, %d) error = %v", s.name, s.value, err)
		}
	}

	if v, ok := table.Get("A"); !ok || v != 2 {
		t.Errorf("Get(A) = %d, %v; want 2, true", v, ok)
	}
	if v, ok := table.Get("B"); !ok || v != -7 {
		t.Errorf("Get(B) = %d, %v; want -7, true", v, ok)
	}
	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (no duplicate slot)", table.Len())
	}
}

func TestTableFull(t *testing.T) {
	table := New(3)
	for i := 0; i < 3; i++ {
		if err := table.Set(fmt.Sprintf("V%d", i), int32(i)); err != nil {
			t.Fatalf("Set error = %v", err)
		}
	}

	if err := table.Set("EXTRA", 9); !errors.Is(err, ErrTableFull) {
		t.Fatalf("Set on full table = %v, want ErrTableFull", err)
	}
	if _, ok := table.Get("EXTRA"); ok {
		t.Error("rejected name should not be stored")
	}
	for i := 0; i < 3; i++ {
		if v, ok := table.Get(fmt.Sprintf("V%d", i)); !ok || v != int32(i) {
			t.Errorf("prior entry V%d = %d, %v", i, v, ok)
		}
	}

	if err := table.Set("V1", 42); err != nil {
		t.Errorf("updating an existing name in a full table failed: %v", err)
	}
}

func TestNamesAndReset(t *testing.T) {
	table := New(0)
	if table.Cap() != DefaultCapacity {
		t.Errorf("Cap() = %d, want %d", table.Cap(), DefaultCapacity)
	}

	for _, n := range []string{"Z", "A", "M", "A"} {
		_ = table.Set(n, 1)
	}
	names := table.Names()
	want := []string{"Z", "A", "M"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names() = %v, want %v", names, want)
		}
	}

	table.Reset()
	if table.Len() != 0 || len(table.Names()) != 0 {
		t.Error("Reset() should empty the table")
	}
}
