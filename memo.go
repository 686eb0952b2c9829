// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// binaryKey is the memo key for a binary Apply call.
type binaryKey struct {
	op   OpID
	a, b ID
}

// ternaryKey is the memo key for Ite.
type ternaryKey struct {
	op      OpID
	f, g, h ID
}

// memoStore is the pluggable storage behind the per-operator
// memoization table (C5 in spec.md). mapMemo is the default,
// unbounded implementation; lruMemo trades completeness for a bounded
// memory footprint.
type memoStore interface {
	getBinary(k binaryKey) (ID, bool)
	putBinary(k binaryKey, v ID)
	getTernary(k ternaryKey) (ID, bool)
	putTernary(k ternaryKey, v ID)
	stats() string
}

// mapMemo is a plain Go map, never evicted: entries remain valid for
// the lifetime of the Cache, matching spec.md's "never invalidated"
// default.
type mapMemo struct {
	binary  map[binaryKey]ID
	ternary map[ternaryKey]ID
	hits    int
	misses  int
}

func newMapMemo() *mapMemo {
	return &mapMemo{
		binary:  make(map[binaryKey]ID),
		ternary: make(map[ternaryKey]ID),
	}
}

func (m *mapMemo) getBinary(k binaryKey) (ID, bool) {
	v, ok := m.binary[k]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return v, ok
}

func (m *mapMemo) putBinary(k binaryKey, v ID) {
	m.binary[k] = v
}

func (m *mapMemo) getTernary(k ternaryKey) (ID, bool) {
	v, ok := m.ternary[k]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return v, ok
}

func (m *mapMemo) putTernary(k ternaryKey, v ID) {
	m.ternary[k] = v
}

func (m *mapMemo) stats() string {
	return fmt.Sprintf("Memo (map):   hits=%d misses=%d entries=%d/%d\n",
		m.hits, m.misses, len(m.binary), len(m.ternary))
}

// lruMemo bounds the operator memo to a fixed number of entries per
// arity using github.com/hashicorp/golang-lru/v2. Eviction is
// semantically transparent to every caller in this package: apply.go
// always falls back to recomputing a result it can't find in the
// memo, so an evicted entry is merely a forced recomputation, never a
// correctness issue.
type lruMemo struct {
	binary  *lru.Cache[binaryKey, ID]
	ternary *lru.Cache[ternaryKey, ID]
	hits    int
	misses  int
}

func newLRUMemo(size int) *lruMemo {
	binary, err := lru.New[binaryKey, ID](size)
	if err != nil {
		// size is caller-controlled and validated to be > 0 by
		// NewCache, newLRUMemo's only call site; this cannot happen.
		panic(err)
	}
	ternary, err := lru.New[ternaryKey, ID](size)
	if err != nil {
		panic(err)
	}
	return &lruMemo{binary: binary, ternary: ternary}
}

func (m *lruMemo) getBinary(k binaryKey) (ID, bool) {
	v, ok := m.binary.Get(k)
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return v, ok
}

func (m *lruMemo) putBinary(k binaryKey, v ID) {
	m.binary.Add(k, v)
}

func (m *lruMemo) getTernary(k ternaryKey) (ID, bool) {
	v, ok := m.ternary.Get(k)
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return v, ok
}

func (m *lruMemo) putTernary(k ternaryKey, v ID) {
	m.ternary.Add(k, v)
}

func (m *lruMemo) stats() string {
	return fmt.Sprintf("Memo (lru):   hits=%d misses=%d entries=%d/%d\n",
		m.hits, m.misses, m.binary.Len(), m.ternary.Len())
}
