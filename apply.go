// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// CombineFunc combines two terminal values under a binary operator.
// It is only ever invoked when both operands of Apply have reduced to
// terminals.
type CombineFunc[T any] func(a, b T) T

// Apply is the generic, memoized binary-operator recursion described
// in spec.md §4.2 (C6). op identifies the operator for memoization;
// commutative, when true, lets Apply normalize the operand order
// before consulting the memo so that Apply(op, a, b) and
// Apply(op, b, a) share one cache entry (spec.md: "key the memo by
// the sorted pair"). combine is consulted only once both operands are
// terminals.
func Apply[T comparable](c *Cache[T], op OpID, commutative bool, combine CombineFunc[T], a, b ID) ID {
	if commutative && a > b {
		a, b = b, a
	}
	return applyRec(c, op, commutative, combine, a, b)
}

func applyRec[T comparable](c *Cache[T], op OpID, commutative bool, combine CombineFunc[T], a, b ID) ID {
	if commutative && a > b {
		a, b = b, a
	}
	key := binaryKey{op, a, b}
	if res, ok := c.memo.getBinary(key); ok {
		return res
	}
	if a.IsTerminal() && b.IsTerminal() {
		res := c.Terminal(combine(c.TerminalValue(a), c.TerminalValue(b)))
		c.memo.putBinary(key, res)
		return res
	}
	v := min32(c.level(a), c.level(b))
	aLow, aHigh := c.branches(a, v)
	bLow, bHigh := c.branches(b, v)
	low := applyRec(c, op, commutative, combine, aLow, bLow)
	high := applyRec(c, op, commutative, combine, aHigh, bHigh)
	res := c.Nonterminal(v, low, high)
	c.memo.putBinary(key, res)
	return res
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func min3i32(a, b, c int32) int32 {
	return min32(a, min32(b, c))
}

// Ite is the generic, memoized if-then-else recursion (spec.md §4.2):
// it computes the BDD for "if f then g else h" in a single pass
// rather than three applies. f, g, h all live in the same Cache[T].
// Because node ids carry no built-in notion of "this terminal means
// true", the caller supplies trueValue/falseValue: the two terminal
// values of T that the *condition* operand f uses to mean true and
// false respectively. g and h may carry any value of T, which is what
// lets Ite serve as the engine behind multi-terminal results (spec.md
// §9's "ITE returning 0 or 2" example).
func Ite[T comparable](c *Cache[T], trueValue, falseValue T, f, g, h ID) ID {
	trueID := c.Terminal(trueValue)
	falseID := c.Terminal(falseValue)
	return iteRec(c, trueID, falseID, f, g, h)
}

func iteRec[T comparable](c *Cache[T], trueID, falseID, f, g, h ID) ID {
	switch {
	case f == trueID:
		return g
	case f == falseID:
		return h
	case g == h:
		return g
	case g == trueID && h == falseID:
		return f
	}
	key := ternaryKey{opIte, f, g, h}
	if res, ok := c.memo.getTernary(key); ok {
		return res
	}
	p, q, r := c.level(f), c.level(g), c.level(h)
	v := min3i32(p, q, r)
	fLow, fHigh := c.branches(f, v)
	gLow, gHigh := c.branches(g, v)
	hLow, hHigh := c.branches(h, v)
	low := iteRec(c, trueID, falseID, fLow, gLow, hLow)
	high := iteRec(c, trueID, falseID, fHigh, gHigh, hHigh)
	res := c.Nonterminal(v, low, high)
	c.memo.putTernary(key, res)
	return res
}

// ---------------------------------------------------------------
// Boolean convenience layer: spec.md §6.1's and/or/ite, specialized
// to Cache[bool] so callers don't have to spell out combine functions
// or true/false terminal values for the common case.

// True returns the id of the constant-true terminal.
func True(c *Cache[bool]) ID { return c.Terminal(true) }

// False returns the id of the constant-false terminal.
func False(c *Cache[bool]) ID { return c.Terminal(false) }

// From returns the terminal id for a boolean constant.
func From(c *Cache[bool], v bool) ID { return c.Terminal(v) }

// And returns the BDD for a ∧ b.
func And(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opAnd, a, b, func(x, y bool) bool { return x && y })
}

// Or returns the BDD for a ∨ b.
func Or(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opOr, a, b, func(x, y bool) bool { return x || y })
}

// Xor returns the BDD for a ⊕ b.
func Xor(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opXor, a, b, func(x, y bool) bool { return x != y })
}

// Nand returns the BDD for ¬(a ∧ b).
func Nand(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opNand, a, b, func(x, y bool) bool { return !(x && y) })
}

// Nor returns the BDD for ¬(a ∨ b).
func Nor(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opNor, a, b, func(x, y bool) bool { return !(x || y) })
}

// Imp returns the BDD for a ⇒ b.
func Imp(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opImp, a, b, func(x, y bool) bool { return !x || y })
}

// Biimp returns the BDD for a ⇔ b.
func Biimp(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opBiimp, a, b, func(x, y bool) bool { return x == y })
}

// Diff returns the BDD for a ∧ ¬b (set difference, reading a and b as
// characteristic functions).
func Diff(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opDiff, a, b, func(x, y bool) bool { return x && !y })
}

// Less returns the BDD for ¬a ∧ b.
func Less(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opLess, a, b, func(x, y bool) bool { return !x && y })
}

// Invimp returns the BDD for a ⇐ b (b ⇒ a).
func Invimp(c *Cache[bool], a, b ID) ID {
	return boolApply(c, opInvimp, a, b, func(x, y bool) bool { return x || !y })
}

// commutativeOps lists the built-in Boolean operators for which
// operand order does not affect the result, enabling memo-key
// normalization.
var commutativeOps = map[OpID]bool{
	opAnd:   true,
	opOr:    true,
	opXor:   true,
	opNand:  true,
	opNor:   true,
	opBiimp: true,
}

func boolApply(c *Cache[bool], op OpID, a, b ID, combine CombineFunc[bool]) ID {
	commutative := commutativeOps[op]
	if commutative && a > b {
		a, b = b, a
	}
	if a.IsTerminal() && b.IsTerminal() {
		table := boolOpTable[op]
		return c.Terminal(table[boolIndex(c.TerminalValue(a))][boolIndex(c.TerminalValue(b))])
	}
	return Apply(c, op, commutative, combine, a, b)
}

func boolIndex(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Not returns the negation of n.
func Not(c *Cache[bool], n ID) ID {
	key := binaryKey{opNot, n, n}
	if res, ok := c.memo.getBinary(key); ok {
		return res
	}
	var res ID
	if n.IsTerminal() {
		res = c.Terminal(!c.TerminalValue(n))
	} else {
		level, low, high := c.NonterminalFields(n)
		res = c.Nonterminal(level, Not(c, low), Not(c, high))
	}
	c.memo.putBinary(key, res)
	return res
}

// IteBool is the Cache[bool]-specialized Ite: f, g and h are all
// Boolean BDDs, matching spec.md's own worked examples.
func IteBool(c *Cache[bool], f, g, h ID) ID {
	return Ite(c, true, false, f, g, h)
}

// The variadic AndAll/OrAll helpers let callers fold a sequence of
// nodes, grounded in the teacher's Set.And/Set.Or.

// AndAll returns the conjunction of a sequence of nodes; the empty
// conjunction is True.
func AndAll(c *Cache[bool], nodes ...ID) ID {
	if len(nodes) == 0 {
		return True(c)
	}
	res := nodes[0]
	for _, n := range nodes[1:] {
		res = And(c, res, n)
	}
	return res
}

// OrAll returns the disjunction of a sequence of nodes; the empty
// disjunction is False.
func OrAll(c *Cache[bool], nodes ...ID) ID {
	if len(nodes) == 0 {
		return False(c)
	}
	res := nodes[0]
	for _, n := range nodes[1:] {
		res = Or(c, res, n)
	}
	return res
}
