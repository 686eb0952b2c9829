// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "unsafe"

// ReachableCount returns the number of distinct nonterminal nodes
// reachable from root, following low/high edges and visiting each
// node once regardless of how many paths lead to it (spec.md §4.4,
// C8). Terminals are not counted: an all-terminal BDD has a
// ReachableCount of 0.
func ReachableCount[T comparable](c *Cache[T], root ID) int {
	seen := make(map[ID]bool)
	var walk func(id ID)
	walk = func(id ID) {
		if id.IsTerminal() || seen[id] {
			return
		}
		seen[id] = true
		_, low, high := c.NonterminalFields(id)
		walk(low)
		walk(high)
	}
	walk(root)
	return len(seen)
}

// MemorySize estimates the number of bytes occupied by the nodes
// reachable from root, as ReachableCount(c, root) times the size of
// one nonterminal record. It is an estimate of the graph's own
// footprint, not of the Cache's total memory (which also holds every
// other node ever produced, plus the operator memo).
func MemorySize[T comparable](c *Cache[T], root ID) uintptr {
	return uintptr(ReachableCount(c, root)) * unsafe.Sizeof(nonterminalNode{})
}

// Allnodes returns every nonterminal id reachable from root, in
// post-order (every node's low and high appear before the node
// itself). This is the order serialize.go's Save relies on, and the
// order the teacher's own Allnodes/allnodesfrom walk produces.
func Allnodes[T comparable](c *Cache[T], root ID) []ID {
	seen := make(map[ID]bool)
	var order []ID
	var walk func(id ID)
	walk = func(id ID) {
		if id.IsTerminal() || seen[id] {
			return
		}
		seen[id] = true
		_, low, high := c.NonterminalFields(id)
		walk(low)
		walk(high)
		order = append(order, id)
	}
	walk(root)
	return order
}
