// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd implements Reduced Ordered Binary Decision Diagrams
(ROBDDs), a canonical data structure for representing functions from an
assignment of variables to a terminal value (booleans, small integers,
or any comparable Go value).

Basics

A Cache owns a hash-consed table of nonterminal triples (variable,
low, high) and a table of interned terminal values. Every node is
referenced through an opaque ID: two ids compare equal if and only if
they denote the same function, which is the canonicality property the
rest of the package relies on. Cache is generic over its terminal
type, so the same engine backs both plain boolean BDDs and BDDs whose
leaves carry arbitrary values (as used by Ite's multi-terminal form).

Apply and Ite recompute a combined BDD from two or three operand ids
in time proportional to the product of their sizes, memoizing
intermediate results per operator in the Cache's operator memo
(see memo.go). Evaluate walks a single root-to-leaf path under a
caller-supplied accessor. ReachableCount and MemorySize report the
size of the DAG below a root. Iterator enumerates every
(partial-assignment, value) pair covering a root's preimage, and
Save/Load read and write the canonical binary encoding described in
the package's format documentation.

Concurrency

A Cache is not safe for concurrent mutation: it assumes a single
logical owner, matching the single-threaded model most BDD engines are
built around. Read-only traversals (Evaluate, ReachableCount,
Iterator, Save) may run concurrently with each other as long as no
goroutine is mutating the Cache at the same time.
*/
package robdd
