// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "testing"

func TestAndCanonicality(t *testing.T) {
	c := NewCache[bool]()
	x0 := Ithvar(c, 0)
	x1 := Ithvar(c, 1)

	viaAnd := And(c, x0, x1)

	lo := c.Terminal(false)
	hi := x1
	viaNonterminal := c.Nonterminal(0, lo, hi)

	if viaAnd != viaNonterminal {
		t.Errorf("x0 ∧ x1 built two ways: got %d (And) and %d (Nonterminal), want equal", viaAnd, viaNonterminal)
	}
}

func TestApplyMemoizationStable(t *testing.T) {
	c := NewCache[bool]()
	x0, x1 := Ithvar(c, 0), Ithvar(c, 1)
	first := Or(c, x0, x1)
	second := Or(c, x0, x1)
	if first != second {
		t.Errorf("Or(x0, x1) not stable across calls: got %d then %d", first, second)
	}
}

func TestApplyCommutativeNormalization(t *testing.T) {
	c := NewCache[bool]()
	x0, x1 := Ithvar(c, 0), Ithvar(c, 1)
	if And(c, x0, x1) != And(c, x1, x0) {
		t.Errorf("And is not commutative at the id level")
	}
	if Xor(c, x0, x1) != Xor(c, x1, x0) {
		t.Errorf("Xor is not commutative at the id level")
	}
}

func TestEvaluateDistributesOverApply(t *testing.T) {
	c := NewCache[bool]()
	a := Ithvar(c, 0)
	b := NIthvar(c, 1)

	and := And(c, a, b)
	or := Or(c, a, b)
	xor := Xor(c, a, b)

	for _, x0 := range []bool{false, true} {
		for _, x1 := range []bool{false, true} {
			get := FromBoolSlice([]bool{x0, x1})
			va, vb := Evaluate(c, a, get), Evaluate(c, b, get)
			if got := Evaluate(c, and, get); got != (va && vb) {
				t.Errorf("evaluate(and(a,b)) = %v, want %v ∧ %v", got, va, vb)
			}
			if got := Evaluate(c, or, get); got != (va || vb) {
				t.Errorf("evaluate(or(a,b)) = %v, want %v ∨ %v", got, va, vb)
			}
			if got := Evaluate(c, xor, get); got != (va != vb) {
				t.Errorf("evaluate(xor(a,b)) = %v, want %v ⊕ %v", got, va, vb)
			}
		}
	}
}

func TestIteMatchesThreeApplies(t *testing.T) {
	c := NewCache[bool]()
	f, g, h := Ithvar(c, 0), Ithvar(c, 1), Ithvar(c, 2)

	ite := IteBool(c, f, g, h)
	expanded := Or(c, And(c, f, g), And(c, Not(c, f), h))

	if ite != expanded {
		t.Errorf("ite(f,g,h) = %d, want %d (= (f&g)|(!f&h))", ite, expanded)
	}
}

func TestIteIntTerminals(t *testing.T) {
	c := NewCache[int]()
	cond := c.Nonterminal(0, c.Terminal(0), c.Terminal(1))
	then := c.Terminal(2)
	els := c.Terminal(3)

	root := Ite(c, 1, 0, cond, then, els)

	if got := Evaluate(c, root, FromBoolSlice([]bool{false})); got != 3 {
		t.Errorf("ite with condition false: got %d, want 3", got)
	}
	if got := Evaluate(c, root, FromBoolSlice([]bool{true})); got != 2 {
		t.Errorf("ite with condition true: got %d, want 2", got)
	}
}

func TestNotInvolution(t *testing.T) {
	c := NewCache[bool]()
	x0 := Ithvar(c, 0)
	if got := Not(c, Not(c, x0)); got != x0 {
		t.Errorf("Not(Not(x0)) = %d, want %d", got, x0)
	}
}

func TestBoolOperatorsMatchTruthTables(t *testing.T) {
	c := NewCache[bool]()
	x0 := Ithvar(c, 0)
	x1 := Ithvar(c, 1)

	cases := []struct {
		name string
		fn   func(c *Cache[bool], a, b ID) ID
		want func(a, b bool) bool
	}{
		{"And", And, func(a, b bool) bool { return a && b }},
		{"Or", Or, func(a, b bool) bool { return a || b }},
		{"Xor", Xor, func(a, b bool) bool { return a != b }},
		{"Nand", Nand, func(a, b bool) bool { return !(a && b) }},
		{"Nor", Nor, func(a, b bool) bool { return !(a || b) }},
		{"Imp", Imp, func(a, b bool) bool { return !a || b }},
		{"Biimp", Biimp, func(a, b bool) bool { return a == b }},
		{"Diff", Diff, func(a, b bool) bool { return a && !b }},
		{"Less", Less, func(a, b bool) bool { return !a && b }},
		{"Invimp", Invimp, func(a, b bool) bool { return a || !b }},
	}

	for _, tc := range cases {
		root := tc.fn(c, x0, x1)
		for _, a := range []bool{false, true} {
			for _, b := range []bool{false, true} {
				get := FromBoolSlice([]bool{a, b})
				got := Evaluate(c, root, get)
				want := tc.want(a, b)
				if got != want {
					t.Errorf("%s(x0=%v, x1=%v) = %v, want %v", tc.name, a, b, got, want)
				}
			}
		}
	}
}

func TestBoolOpTableMatchesFormulas(t *testing.T) {
	c := NewCache[bool]()

	cases := []struct {
		op   OpID
		want func(a, b bool) bool
	}{
		{opAnd, func(a, b bool) bool { return a && b }},
		{opOr, func(a, b bool) bool { return a || b }},
		{opXor, func(a, b bool) bool { return a != b }},
		{opNand, func(a, b bool) bool { return !(a && b) }},
		{opNor, func(a, b bool) bool { return !(a || b) }},
		{opImp, func(a, b bool) bool { return !a || b }},
		{opBiimp, func(a, b bool) bool { return a == b }},
		{opDiff, func(a, b bool) bool { return a && !b }},
		{opLess, func(a, b bool) bool { return !a && b }},
		{opInvimp, func(a, b bool) bool { return a || !b }},
	}

	for _, tc := range cases {
		table, ok := boolOpTable[tc.op]
		if !ok {
			t.Errorf("boolOpTable has no entry for %s", tc.op)
			continue
		}
		for _, a := range []bool{false, true} {
			for _, b := range []bool{false, true} {
				got := table[boolIndex(a)][boolIndex(b)]
				want := tc.want(a, b)
				if got != want {
					t.Errorf("boolOpTable[%s][%v][%v] = %v, want %v", tc.op, a, b, got, want)
				}
				// cross-check against the same operator applied to
				// bare terminals, which is the only path that
				// actually consults boolOpTable at runtime.
				if applied := Evaluate(c, boolApply(c, tc.op, c.Terminal(a), c.Terminal(b), func(x, y bool) bool { return tc.want(x, y) }), FromBoolSlice(nil)); applied != want {
					t.Errorf("boolApply(%s, %v, %v) = %v, want %v", tc.op, a, b, applied, want)
				}
			}
		}
	}
}

func TestAndAllOrAllEmpty(t *testing.T) {
	c := NewCache[bool]()
	if got := AndAll(c); got != True(c) {
		t.Errorf("AndAll() = %d, want True", got)
	}
	if got := OrAll(c); got != False(c) {
		t.Errorf("OrAll() = %d, want False", got)
	}
}
