// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"testing"
	"unsafe"
)

// f(x) = (x0 ∧ x1) ∨ (¬x0 ∧ x2)
func worked3NodeExample(c *Cache[bool]) ID {
	left := And(c, Ithvar(c, 0), Ithvar(c, 1))
	right := And(c, NIthvar(c, 0), Ithvar(c, 2))
	return Or(c, left, right)
}

func TestReachableCount(t *testing.T) {
	c := NewCache[bool]()
	root := worked3NodeExample(c)
	if got := ReachableCount(c, root); got != 3 {
		t.Errorf("ReachableCount = %d, want 3", got)
	}
}

func TestMemorySize(t *testing.T) {
	c := NewCache[bool]()
	root := worked3NodeExample(c)
	want := uintptr(3) * unsafe.Sizeof(nonterminalNode{})
	if got := MemorySize(c, root); got != want {
		t.Errorf("MemorySize = %d, want %d", got, want)
	}
}

func TestReachableCountSharedSubgraph(t *testing.T) {
	c := NewCache[bool]()
	shared := Ithvar(c, 1)
	root := Or(c, And(c, Ithvar(c, 0), shared), And(c, NIthvar(c, 0), shared))
	// the two branches reduce to the same node regardless of path, so
	// ReachableCount must not double count the shared variable.
	if got := ReachableCount(c, root); got != 1 {
		t.Errorf("ReachableCount over a shared subgraph = %d, want 1 (x0 ∧ x1 | ¬x0 ∧ x1 reduces to x1)", got)
	}
}

func TestAllnodesPostOrder(t *testing.T) {
	c := NewCache[bool]()
	root := worked3NodeExample(c)
	nodes := Allnodes(c, root)
	seen := make(map[ID]bool)
	for _, id := range nodes {
		_, low, high := c.NonterminalFields(id)
		if low.IsNonterminal() && !seen[low] {
			t.Errorf("node %d emitted before its low child %d", id, low)
		}
		if high.IsNonterminal() && !seen[high] {
			t.Errorf("node %d emitted before its high child %d", id, high)
		}
		seen[id] = true
	}
	if nodes[len(nodes)-1] != root {
		t.Errorf("root not emitted last: got %d, root is %d", nodes[len(nodes)-1], root)
	}
}
