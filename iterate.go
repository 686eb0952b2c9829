// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// iterFrame is one entry of the iterator's explicit stack: the
// nonterminal visited, the child to descend into once its low branch
// has been fully explored, and whether that flip has happened yet.
type iterFrame struct {
	level        int32
	high         ID
	highExplored bool
}

// Iterator enumerates every (assignment, terminal-value) pair covering
// a BDD's preimage exactly once, depth-first with the low branch
// before the high branch (spec.md §4.6, C10). It replaces a recursive
// generator with an explicit stack of frames so that Next is a bounded
// loop with no recursion and no goroutine.
//
// Usage:
//
//	it := NewIterator(cache, root)
//	for it.Next() {
//	    assignment, value := it.Assignment(), it.Value()
//	}
type Iterator[T comparable] struct {
	c     *Cache[T]
	stack []iterFrame
	bits  map[int32]Bit

	nextID  ID
	pending bool // true until the first descent has run

	value T
	done  bool
}

// NewIterator returns an iterator positioned before the first
// assignment covering root. Call Next to advance to each pair in turn.
func NewIterator[T comparable](c *Cache[T], root ID) *Iterator[T] {
	return &Iterator[T]{
		c:       c,
		bits:    make(map[int32]Bit),
		nextID:  root,
		pending: true,
	}
}

// Next advances the iterator to the next (assignment, value) pair and
// reports whether one was produced. Once Next returns false the
// iterator is exhausted and every subsequent call also returns false.
func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}
	if it.pending {
		it.pending = false
		it.value = it.descend(it.nextID)
		return true
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if !top.highExplored {
			top.highExplored = true
			it.bits[top.level] = One
			it.value = it.descend(top.high)
			return true
		}
		delete(it.bits, top.level)
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.done = true
	return false
}

// descend walks id's low branch, pushing a frame and recording a 0 bit
// at every nonterminal, until it reaches a terminal, whose value it
// returns.
func (it *Iterator[T]) descend(id ID) T {
	for id.IsNonterminal() {
		level, low, high := it.c.NonterminalFields(id)
		it.stack = append(it.stack, iterFrame{level: level, high: high})
		it.bits[level] = Zero
		id = low
	}
	return it.c.TerminalValue(id)
}

// Assignment returns a snapshot of the partial assignment for the
// pair most recently produced by Next. The returned value is a copy:
// mutating it has no effect on the iterator, and further calls to
// Next do not retroactively change it.
func (it *Iterator[T]) Assignment() Assignment {
	bits := make(map[int32]Bit, len(it.bits))
	for k, v := range it.bits {
		bits[k] = v
	}
	return Assignment{bits: bits}
}

// Value returns the terminal value for the pair most recently
// produced by Next.
func (it *Iterator[T]) Value() T {
	return it.value
}
