// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Bit is a single variable's value in an assignment: 0 or 1. Absence
// of a variable from an Assignment means "don't care" (spec.md §4.5).
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Assignment maps variable indices to a concrete Bit. A variable
// absent from the map is a don't-care: Evaluate follows the low
// branch for any nonterminal whose variable has no entry, matching
// the teacher's convention that an unset bit reads as 0.
type Assignment struct {
	bits map[int32]Bit
}

// NewAssignment returns an empty assignment (every variable a
// don't-care).
func NewAssignment() Assignment {
	return Assignment{bits: make(map[int32]Bit)}
}

// Set records the value of a variable in the assignment, returning
// the assignment for chaining.
func (a Assignment) Set(variable int32, value Bit) Assignment {
	a.bits[variable] = value
	return a
}

// Get reports the recorded value of a variable and whether it was
// set at all.
func (a Assignment) Get(variable int32) (Bit, bool) {
	v, ok := a.bits[variable]
	return v, ok
}

// Accessor answers, for a given variable index, the Bit to follow
// while walking a node. Evaluate goes through this indirection so
// callers can supply assignments backed by
// whatever structure is convenient: a map, a bit array, a CIDR prefix.
type Accessor func(variable int32) Bit

// FromAssignment adapts an Assignment into an Accessor, treating any
// variable absent from the assignment as 0 (low).
func FromAssignment(a Assignment) Accessor {
	return func(variable int32) Bit {
		v := a.bits[variable]
		return v
	}
}

// FromBitArray adapts a big-endian bit stream into an Accessor: bit i
// is byte i/8, with the most significant bit of each byte numbered 0
// (spec.md §6.2). A variable index past the end of the stream is
// treated as 0.
func FromBitArray(bits []byte) Accessor {
	return func(variable int32) Bit {
		byteIdx := variable / 8
		if int(byteIdx) >= len(bits) {
			return Zero
		}
		shift := 7 - uint(variable%8)
		if (bits[byteIdx]>>shift)&1 == 1 {
			return One
		}
		return Zero
	}
}

// FromBoolSlice adapts a dense []bool, indexed by variable, into an
// Accessor. A variable index past the end of bits is treated as 0.
func FromBoolSlice(bits []bool) Accessor {
	return func(variable int32) Bit {
		if int(variable) >= len(bits) {
			return Zero
		}
		if bits[variable] {
			return One
		}
		return Zero
	}
}

// Evaluate walks the node starting at root, following low or high
// according to get at every nonterminal, until it reaches a terminal,
// and returns that terminal's value (spec.md §4.3, C7). Evaluate never
// builds new nodes and performs no memoization: it is a single
// root-to-leaf walk, O(longest path).
func Evaluate[T comparable](c *Cache[T], root ID, get Accessor) T {
	id := root
	for id.IsNonterminal() {
		level, low, high := c.NonterminalFields(id)
		if get(level) == One {
			id = high
		} else {
			id = low
		}
	}
	return c.TerminalValue(id)
}
