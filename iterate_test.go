// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "testing"

func TestIterateNotX0(t *testing.T) {
	c := NewCache[bool]()
	root := NIthvar(c, 0)

	it := NewIterator(c, root)

	if !it.Next() {
		t.Fatalf("iterator exhausted before first pair")
	}
	if a, v := it.Assignment(), it.Value(); a.bits[0] != Zero || v != true {
		t.Errorf("pair 1: assignment=%v value=%v, want {x0=0}->true", a.bits, v)
	}

	if !it.Next() {
		t.Fatalf("iterator exhausted before second pair")
	}
	if a, v := it.Assignment(), it.Value(); a.bits[0] != One || v != false {
		t.Errorf("pair 2: assignment=%v value=%v, want {x0=1}->false", a.bits, v)
	}

	if it.Next() {
		t.Errorf("iterator produced a third pair for ¬x0")
	}
}

func TestIterateNotX0AndX1(t *testing.T) {
	c := NewCache[bool]()
	root := notX0AndX1(c)

	it := NewIterator(c, root)

	if !it.Next() {
		t.Fatalf("iterator exhausted before first pair")
	}
	a, v := it.Assignment(), it.Value()
	if a.bits[0] != Zero || a.bits[1] != Zero || v != false {
		t.Errorf("pair 1: assignment=%v value=%v, want {x0=0,x1=0}->false", a.bits, v)
	}

	if !it.Next() {
		t.Fatalf("iterator exhausted before second pair")
	}
	a, v = it.Assignment(), it.Value()
	if a.bits[0] != Zero || a.bits[1] != One || v != true {
		t.Errorf("pair 2: assignment=%v value=%v, want {x0=0,x1=1}->true", a.bits, v)
	}

	if !it.Next() {
		t.Fatalf("iterator exhausted before third pair")
	}
	a, v = it.Assignment(), it.Value()
	if _, hasX1 := a.bits[1]; hasX1 {
		t.Errorf("pair 3: x1 should be don't-care (absent), got %v", a.bits)
	}
	if a.bits[0] != One || v != false {
		t.Errorf("pair 3: assignment=%v value=%v, want {x0=1}->false", a.bits, v)
	}

	if it.Next() {
		t.Errorf("iterator produced a fourth pair for ¬x0 ∧ x1")
	}
}

func TestIterateSingleTerminal(t *testing.T) {
	c := NewCache[bool]()
	it := NewIterator(c, True(c))

	if !it.Next() {
		t.Fatalf("iterator over a bare terminal produced no pairs")
	}
	if len(it.Assignment().bits) != 0 {
		t.Errorf("single-terminal assignment should be empty, got %v", it.Assignment().bits)
	}
	if it.Value() != true {
		t.Errorf("single-terminal value = %v, want true", it.Value())
	}
	if it.Next() {
		t.Errorf("iterator over a bare terminal produced a second pair")
	}
}

func TestIterateCoversEveryAssignmentExactlyOnce(t *testing.T) {
	c := NewCache[bool]()
	root := worked3NodeExample(c)

	it := NewIterator(c, root)
	seenTrue := 0
	for it.Next() {
		if it.Value() {
			seenTrue++
		}
	}

	// count every concrete completion covered by the true-valued
	// partial assignments and compare against Satcount.
	want := Satcount(c, root, 3)
	it2 := NewIterator(c, root)
	var total int64
	for it2.Next() {
		if !it2.Value() {
			continue
		}
		free := 3 - len(it2.Assignment().bits)
		total += 1 << uint(free)
	}
	if int64(want.Int64()) != total {
		t.Errorf("iteration covers %d completions, Satcount reports %s", total, want.String())
	}
}
