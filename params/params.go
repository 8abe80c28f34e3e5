// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package params implements the BDD-backed representation of sets of
// parameter valuations (BddParams), the encoder that maps every
// (parameter function, input row) pair onto a BDD variable
// (BddParameterEncoder), and the admissibility ("unit set") construction
// that restricts valuations to those compatible with a network's
// regulatory annotations.
package params

import "github.com/dalzilio/paranet/bdd"

// BddParams is an opaque symbolic set of parameter valuations, represented
// by a Bdd over the encoder's variable set. It implements the usual
// set-algebra contract: union, intersect, minus, subset, emptiness.
type BddParams struct {
	set *bdd.BddVariableSet
	bdd bdd.Bdd
}

// Union returns the set of valuations satisfying p or q.
func (p BddParams) Union(q BddParams) BddParams {
	return BddParams{set: p.set, bdd: p.set.Or(p.bdd, q.bdd)}
}

// Intersect returns the set of valuations satisfying both p and q.
func (p BddParams) Intersect(q BddParams) BddParams {
	return BddParams{set: p.set, bdd: p.set.And(p.bdd, q.bdd)}
}

// Minus returns the set of valuations satisfying p but not q.
func (p BddParams) Minus(q BddParams) BddParams {
	return BddParams{set: p.set, bdd: p.set.AndNot(p.bdd, q.bdd)}
}

// IsSubsetOf reports whether every valuation in p is also in q.
func (p BddParams) IsSubsetOf(q BddParams) bool {
	return p.set.IsSubset(p.bdd, q.bdd)
}

// IsEmpty reports whether p has no valuations at all.
//
// This corrects a bug present in the original source this package is
// ported from, where this check was written as the negation of the
// correct condition; the contract is IsEmpty ≡ Bdd.IsFalse.
func (p BddParams) IsEmpty() bool {
	return p.set.IsFalse(p.bdd)
}

// Equals reports whether p and q denote exactly the same set of
// valuations.
func (p BddParams) Equals(q BddParams) bool {
	return p.set.Equal(p.bdd, q.bdd)
}

// Bdd exposes the underlying Bdd handle, for callers (the symbolic package)
// that need to build new BddParams values from raw Bdd algebra.
func (p BddParams) Bdd() bdd.Bdd { return p.bdd }

// wrap builds a BddParams over set from a raw Bdd value.
func wrap(set *bdd.BddVariableSet, b bdd.Bdd) BddParams {
	return BddParams{set: set, bdd: b}
}
