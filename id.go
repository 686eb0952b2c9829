// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// ID is an opaque, copyable reference to a node in a Cache. Two ids
// compare equal iff they denote the same node; this equality is the
// canonicality contract the whole package is built on.
//
// Non-negative values index the terminal table; strictly negative
// values are the bit-complement of an index into the nonterminal
// table, so id -1 maps to nonterminal index 0, -2 to index 1, and so
// on. The same convention is reused, unmodified, as the backreference
// encoding of the on-disk format (see serialize.go).
type ID int32

// Kind distinguishes a terminal node from a nonterminal one.
type Kind int

const (
	// Terminal identifies a leaf node carrying a value from the cache's
	// terminal domain.
	Terminal Kind = iota
	// Nonterminal identifies an internal node with a variable and a
	// low/high branch.
	Nonterminal
)

func (k Kind) String() string {
	if k == Terminal {
		return "terminal"
	}
	return "nonterminal"
}

// IsTerminal reports whether id denotes a terminal node.
func (id ID) IsTerminal() bool {
	return id >= 0
}

// IsNonterminal reports whether id denotes a nonterminal node.
func (id ID) IsNonterminal() bool {
	return id < 0
}

// terminalIndex returns the terminal-table index for id. Undefined if
// id is not a terminal id.
func (id ID) terminalIndex() int {
	return int(id)
}

// nonterminalIndex returns the nonterminal-table index for id.
// Undefined if id is not a nonterminal id.
func (id ID) nonterminalIndex() int {
	return int(^id)
}

func idFromTerminalIndex(idx int) ID {
	return ID(idx)
}

func idFromNonterminalIndex(idx int) ID {
	return ID(^idx)
}

// varInfinity is the variable index used for terminal operands when
// computing min(var(a), var(b)) in the apply recursion: a terminal
// behaves as if it had a variable index past every real variable.
const varInfinity int32 = 1<<31 - 1
