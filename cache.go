// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"unsafe"
)

// nonterminalKey is the triple a nonterminal node is hash-consed on.
type nonterminalKey struct {
	level int32
	low   ID
	high  ID
}

// nonterminalNode is the fixed-size record stored for every
// nonterminal; its size is what MemorySize reports (see size.go).
type nonterminalNode struct {
	level int32
	low   ID
	high  ID
}

// Cache owns the unique table (hash-consed nonterminal triples) and
// the terminal table (hash-consed terminal values) for one BDD
// universe. Ids returned by a Cache are only meaningful for that same
// Cache: there is no cross-cache equality. A Cache is not safe for
// concurrent mutation; see the package doc.
type Cache[T comparable] struct {
	terminals    map[T]ID
	terminalVals []T

	nonterminals map[nonterminalKey]ID
	nonterminalN []nonterminalKey

	memo memoStore

	produced int // total number of nonterminals ever created, for Stats
}

// CacheOption configures a Cache at construction time.
type CacheOption func(*cacheConfig)

type cacheConfig struct {
	nodeHint  int
	termHint  int
	boundedBy int // 0 means unbounded map-backed memo
}

// WithInitialCapacity hints at the number of nonterminal and terminal
// nodes the Cache will hold, to avoid incremental map growth. It is a
// performance hint only; the Cache grows past it transparently.
func WithInitialCapacity(nonterminals, terminals int) CacheOption {
	return func(c *cacheConfig) {
		if nonterminals > 0 {
			c.nodeHint = nonterminals
		}
		if terminals > 0 {
			c.termHint = terminals
		}
	}
}

// WithBoundedMemo selects a bounded, evicting operator memo backed by
// an LRU cache of the given size instead of the default unbounded Go
// map. Eviction is semantically invisible: a result evicted from the
// memo is simply recomputed, and re-memoized, the next time it is
// needed (spec.md §4.2, §9).
func WithBoundedMemo(size int) CacheOption {
	return func(c *cacheConfig) {
		c.boundedBy = size
	}
}

// NewCache returns a new, empty Cache for the terminal domain T.
func NewCache[T comparable](opts ...CacheOption) *Cache[T] {
	cfg := &cacheConfig{nodeHint: 64, termHint: 2}
	for _, opt := range opts {
		opt(cfg)
	}
	c := &Cache[T]{
		terminals:    make(map[T]ID, cfg.termHint),
		terminalVals: make([]T, 0, cfg.termHint),
		nonterminals: make(map[nonterminalKey]ID, cfg.nodeHint),
		nonterminalN: make([]nonterminalKey, 0, cfg.nodeHint),
	}
	if cfg.boundedBy > 0 {
		c.memo = newLRUMemo(cfg.boundedBy)
	} else {
		c.memo = newMapMemo()
	}
	return c
}

// Terminal returns the canonical id for value, creating it on first
// request. terminal(v1) = terminal(v2) iff v1 = v2.
func (c *Cache[T]) Terminal(value T) ID {
	if id, ok := c.terminals[value]; ok {
		return id
	}
	idx := len(c.terminalVals)
	c.terminalVals = append(c.terminalVals, value)
	id := idFromTerminalIndex(idx)
	c.terminals[value] = id
	return id
}

// Nonterminal returns the canonical id for the triple
// (level, low, high), applying the non-redundancy reduction rule: if
// low == high the call returns low directly without allocating a
// node. Repeated calls with the same arguments return the same id.
func (c *Cache[T]) Nonterminal(level int32, low, high ID) ID {
	if low == high {
		return low
	}
	key := nonterminalKey{level, low, high}
	if id, ok := c.nonterminals[key]; ok {
		return id
	}
	idx := len(c.nonterminalN)
	c.nonterminalN = append(c.nonterminalN, key)
	id := idFromNonterminalIndex(idx)
	c.nonterminals[key] = id
	c.produced++
	return id
}

// Type reports whether id is a terminal or a nonterminal.
func (c *Cache[T]) Type(id ID) Kind {
	if id.IsTerminal() {
		return Terminal
	}
	return Nonterminal
}

// TerminalValue returns the value carried by a terminal id. The
// caller must ensure id is terminal; calling this on a nonterminal id
// is a precondition violation (spec.md §7) and panics in this
// implementation.
func (c *Cache[T]) TerminalValue(id ID) T {
	if id.IsNonterminal() {
		panic(fmt.Sprintf("robdd: TerminalValue called on nonterminal id %d", id))
	}
	return c.terminalVals[id.terminalIndex()]
}

// NonterminalFields returns the (level, low, high) triple stored for
// a nonterminal id. The caller must ensure id is nonterminal.
func (c *Cache[T]) NonterminalFields(id ID) (level int32, low, high ID) {
	if id.IsTerminal() {
		panic(fmt.Sprintf("robdd: NonterminalFields called on terminal id %d", id))
	}
	n := c.nonterminalN[id.nonterminalIndex()]
	return n.level, n.low, n.high
}

// level returns the variable index of id, or varInfinity for a
// terminal, so that terminals sort after every real variable in the
// apply recursion.
func (c *Cache[T]) level(id ID) int32 {
	if id.IsTerminal() {
		return varInfinity
	}
	n := c.nonterminalN[id.nonterminalIndex()]
	return n.level
}

// branches returns id's low/high children for the given level: id's
// own branches if id is a nonterminal at exactly that level, or id on
// both branches otherwise (a terminal, or a nonterminal ordered
// after level).
func (c *Cache[T]) branches(id ID, level int32) (low, high ID) {
	if id.IsNonterminal() {
		if n := c.nonterminalN[id.nonterminalIndex()]; n.level == level {
			return n.low, n.high
		}
	}
	return id, id
}

// NonterminalCount returns the number of distinct nonterminal nodes
// ever produced by this Cache (a running total, not a reachable-from
// count; see ReachableCount in size.go for that).
func (c *Cache[T]) NonterminalCount() int {
	return len(c.nonterminalN)
}

// TerminalCount returns the number of distinct terminal values ever
// interned by this Cache.
func (c *Cache[T]) TerminalCount() int {
	return len(c.terminalVals)
}

// Stats returns a short human-readable summary of the cache and its
// operator memo, in the spirit of the teacher's diagnostic Stats.
func (c *Cache[T]) Stats() string {
	res := fmt.Sprintf("Nonterminals: %d (%s)\n", len(c.nonterminalN), humanSize(len(c.nonterminalN), unsafe.Sizeof(nonterminalNode{})))
	res += fmt.Sprintf("Terminals:    %d\n", len(c.terminalVals))
	res += fmt.Sprintf("Produced:     %d\n", c.produced)
	res += c.memo.stats()
	return res
}

func humanSize(n int, sz uintptr) string {
	bytes := float64(n) * float64(sz)
	const unit = 1024.0
	switch {
	case bytes < unit:
		return fmt.Sprintf("%.0f B", bytes)
	case bytes < unit*unit:
		return fmt.Sprintf("%.1f KiB", bytes/unit)
	default:
		return fmt.Sprintf("%.1f MiB", bytes/(unit*unit))
	}
}
