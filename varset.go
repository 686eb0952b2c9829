// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "math/big"

// Ithvar returns the BDD for the positive literal of variable i.
func Ithvar(c *Cache[bool], i int32) ID {
	return c.Nonterminal(i, False(c), True(c))
}

// NIthvar returns the BDD for the negative literal of variable i.
func NIthvar(c *Cache[bool], i int32) ID {
	return c.Nonterminal(i, True(c), False(c))
}

// Makeset returns the cube (conjunction of positive literals) for the
// given variables. Scanset(Makeset(c, vars)) reproduces vars in
// ascending order. Exist and AppEx take a cube built this way to
// identify the variables to quantify over.
func Makeset(c *Cache[bool], vars []int32) ID {
	sorted := append([]int32(nil), vars...)
	insertionSort(sorted)
	res := True(c)
	for i := len(sorted) - 1; i >= 0; i-- {
		res = c.Nonterminal(sorted[i], False(c), res)
	}
	return res
}

func insertionSort(s []int32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Scanset returns the variables found while following the high branch
// of a cube built by Makeset, in ascending order.
func Scanset(c *Cache[bool], cube ID) []int32 {
	var vars []int32
	for cube.IsNonterminal() {
		level, _, high := c.NonterminalFields(cube)
		vars = append(vars, level)
		cube = high
	}
	return vars
}

func inCube(c *Cache[bool], cube ID, level int32) bool {
	for cube.IsNonterminal() {
		cubeLevel, _, high := c.NonterminalFields(cube)
		if cubeLevel == level {
			return true
		}
		if cubeLevel > level {
			return false
		}
		cube = high
	}
	return false
}

// Exist returns the existential quantification of n over the
// variables named in varset (a cube built with Makeset): the
// disjunction of n's two cofactors for every quantified variable.
func Exist(c *Cache[bool], n, varset ID) ID {
	memo := make(map[ID]ID)
	var quant func(id ID) ID
	quant = func(id ID) ID {
		if id.IsTerminal() {
			return id
		}
		level, low, high := c.NonterminalFields(id)
		if res, ok := memo[id]; ok {
			return res
		}
		qlow := quant(low)
		qhigh := quant(high)
		var res ID
		if inCube(c, varset, level) {
			res = Or(c, qlow, qhigh)
		} else {
			res = c.Nonterminal(level, qlow, qhigh)
		}
		memo[id] = res
		return res
	}
	return quant(n)
}

// AppEx applies the binary operator named by op on left and right and
// then existentially quantifies the result over varset. It is
// expressed as Apply followed by Exist: simpler, and just as correct,
// as the teacher's single fused bottom-up recursion, at the cost of
// materializing the unquantified result as an intermediate BDD.
func AppEx(c *Cache[bool], op OpID, combine CombineFunc[bool], left, right, varset ID) ID {
	return Exist(c, boolApply(c, op, left, right, combine), varset)
}

// AndExist returns the relational composition of left and right with
// respect to varset: Exist(varset, And(left, right)).
func AndExist(c *Cache[bool], left, right, varset ID) ID {
	return Exist(c, And(c, left, right), varset)
}

// Renamer maps an old variable index to a new one. Replace uses it to
// rebuild a BDD under a variable substitution. A Renamer need not be
// defined for every variable: Rename reports false for any variable
// left unchanged.
type Renamer interface {
	Rename(level int32) (int32, bool)
}

// renamerFunc adapts a plain function to the Renamer interface.
type renamerFunc func(int32) (int32, bool)

func (f renamerFunc) Rename(level int32) (int32, bool) { return f(level) }

// NewRenamer builds a Renamer substituting oldvars[k] with newvars[k]
// for every k. It is an error for oldvars to contain a repeated
// variable, for newvars to contain a repeated variable (which would
// map two distinct variables onto the same new one), or for a
// variable in newvars to also appear in oldvars — each of these would
// make the substitution ambiguous.
func NewRenamer(oldvars, newvars []int32) (Renamer, error) {
	if len(oldvars) != len(newvars) {
		return nil, errNewRenamerLength
	}
	image := make(map[int32]int32, len(oldvars))
	for k, v := range oldvars {
		if _, dup := image[v]; dup {
			return nil, errNewRenamerDuplicate
		}
		image[v] = newvars[k]
	}
	seenTarget := make(map[int32]bool, len(newvars))
	for _, v := range newvars {
		if seenTarget[v] {
			return nil, errNewRenamerTargetClash
		}
		seenTarget[v] = true
		if _, clash := image[v]; clash {
			return nil, errNewRenamerOverlap
		}
	}
	return renamerFunc(func(level int32) (int32, bool) {
		v, ok := image[level]
		return v, ok
	}), nil
}

// Replace rebuilds n with every variable substituted according to r,
// restoring the strict variable ordering invariant via correctify
// whenever a substitution would otherwise place a node's variable at
// or below one of its children's. It returns errReplaceAmbiguous if r
// maps two variables that both appear on some path of n onto the same
// new variable, since that leaves no consistent place to insert the
// substituted node.
func Replace[T comparable](c *Cache[T], n ID, r Renamer) (ID, error) {
	memo := make(map[ID]ID)
	var replaceErr error
	var replace func(id ID) ID
	replace = func(id ID) ID {
		if id.IsTerminal() || replaceErr != nil {
			return id
		}
		level, low, high := c.NonterminalFields(id)
		newLevel, renamed := r.Rename(level)
		if !renamed {
			newLevel = level
		}
		if res, ok := memo[id]; ok {
			return res
		}
		newLow, newHigh := replace(low), replace(high)
		if replaceErr != nil {
			return id
		}
		res, err := correctify(c, newLevel, newLow, newHigh)
		if err != nil {
			replaceErr = err
			return id
		}
		memo[id] = res
		return res
	}
	res := replace(n)
	if replaceErr != nil {
		return 0, replaceErr
	}
	return res, nil
}

// correctify inserts a node at level above low/high, recursing through
// low and/or high first whenever their own level would otherwise
// violate the strictly-increasing variable order (spec.md §3,
// "ordering (weak)"). It returns errReplaceAmbiguous when level
// collides with low's or high's own level: that would require a node
// whose variable is not strictly less than one of its children's,
// which Replace's caller cannot resolve into a well-formed BDD.
func correctify[T comparable](c *Cache[T], level int32, low, high ID) (ID, error) {
	lowLevel, highLevel := c.level(low), c.level(high)
	if level < lowLevel && level < highLevel {
		return c.Nonterminal(level, low, high), nil
	}
	if level == lowLevel || level == highLevel {
		return 0, errReplaceAmbiguous
	}
	if lowLevel == highLevel {
		_, lowLow, lowHigh := c.NonterminalFields(low)
		_, highLow, highHigh := c.NonterminalFields(high)
		left, err := correctify(c, level, lowLow, highLow)
		if err != nil {
			return 0, err
		}
		right, err := correctify(c, level, lowHigh, highHigh)
		if err != nil {
			return 0, err
		}
		return c.Nonterminal(lowLevel, left, right), nil
	}
	if lowLevel < highLevel {
		_, lowLow, lowHigh := c.NonterminalFields(low)
		left, err := correctify(c, level, lowLow, high)
		if err != nil {
			return 0, err
		}
		right, err := correctify(c, level, lowHigh, high)
		if err != nil {
			return 0, err
		}
		return c.Nonterminal(lowLevel, left, right), nil
	}
	_, highLow, highHigh := c.NonterminalFields(high)
	left, err := correctify(c, level, low, highLow)
	if err != nil {
		return 0, err
	}
	right, err := correctify(c, level, low, highHigh)
	if err != nil {
		return 0, err
	}
	return c.Nonterminal(highLevel, left, right), nil
}

// levelOrVarnum returns id's variable level, or varnum if id is a
// terminal. Unlike Cache.level (which reports a terminal as sitting
// past every real variable, for the apply recursion's purposes),
// Satcount and Allsat need the exact number of variables a terminal
// leaves unconstrained below the last real variable on its path.
func levelOrVarnum[T comparable](c *Cache[T], id ID, varnum int32) int32 {
	if id.IsTerminal() {
		return varnum
	}
	level, _, _ := c.NonterminalFields(id)
	return level
}

// Satcount returns the number of variable assignments, over varnum
// variables, that evaluate n to true. The result uses arbitrary
// precision arithmetic since the count grows as 2^varnum.
func Satcount(c *Cache[bool], n ID, varnum int32) *big.Int {
	memo := make(map[ID]*big.Int)
	var count func(id ID) *big.Int
	count = func(id ID) *big.Int {
		if id == False(c) {
			return big.NewInt(0)
		}
		if id == True(c) {
			return big.NewInt(1)
		}
		if res, ok := memo[id]; ok {
			return res
		}
		level, low, high := c.NonterminalFields(id)
		lowLevel := levelOrVarnum(c, low, varnum)
		highLevel := levelOrVarnum(c, high, varnum)

		res := big.NewInt(0)
		lowTerm := new(big.Int).Lsh(count(low), uint(lowLevel-level-1))
		highTerm := new(big.Int).Lsh(count(high), uint(highLevel-level-1))
		res.Add(lowTerm, highTerm)
		memo[id] = res
		return res
	}
	res := count(n)
	return res.Lsh(res, uint(levelOrVarnum(c, n, varnum)))
}

// Allsat walks every satisfying path of n, calling f with a profile
// slice of length varnum where each entry is 0, 1, or -1 for a
// don't-care variable, in the order the paths are discovered (depth
// first, low branch before high). Iteration stops, and Allsat returns
// f's error, the first time f returns a non-nil error.
func Allsat(c *Cache[bool], n ID, varnum int32, f func(profile []int) error) error {
	profile := make([]int, varnum)
	for i := range profile {
		profile[i] = -1
	}
	return allsat(c, n, profile, f)
}

func allsat(c *Cache[bool], n ID, profile []int, f func(profile []int) error) error {
	if n == False(c) {
		return nil
	}
	if n == True(c) {
		return f(profile)
	}
	level, low, high := c.NonterminalFields(n)
	varnum := int32(len(profile))
	if low != False(c) {
		profile[level] = 0
		for v := levelOrVarnum(c, low, varnum) - 1; v > level; v-- {
			profile[v] = -1
		}
		if err := allsat(c, low, profile, f); err != nil {
			return err
		}
	}
	if high != False(c) {
		profile[level] = 1
		for v := levelOrVarnum(c, high, varnum) - 1; v > level; v-- {
			profile[v] = -1
		}
		if err := allsat(c, high, profile, f); err != nil {
			return err
		}
	}
	return nil
}
