// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallSet(t *testing.T) (*BddVariableSet, Var, Var, Var) {
	vb := NewVariableSetBuilder()
	a := vb.AddVariable("a")
	b := vb.AddVariable("b")
	c := vb.AddVariable("c")
	set, err := vb.Build()
	require.NoError(t, err)
	return set, a, b, c
}

func TestConstants(t *testing.T) {
	set, _, _, _ := smallSet(t)
	assert.True(t, set.IsTrue(set.True()))
	assert.True(t, set.IsFalse(set.False()))
	assert.False(t, set.IsFalse(set.True()))
}

func TestAndOrCommute(t *testing.T) {
	set, a, b, _ := smallSet(t)
	va, vb := set.Var(a), set.Var(b)
	assert.True(t, set.Equal(set.And(va, vb), set.And(vb, va)))
	assert.True(t, set.Equal(set.Or(va, vb), set.Or(vb, va)))
}

func TestNotInvolution(t *testing.T) {
	set, a, _, _ := smallSet(t)
	va := set.Var(a)
	assert.True(t, set.Equal(va, set.Not(set.Not(va))))
}

func TestAndNotIsSubset(t *testing.T) {
	set, a, b, _ := smallSet(t)
	va, vb := set.Var(a), set.Var(b)
	conj := set.And(va, vb)
	assert.True(t, set.IsSubset(conj, va))
	assert.False(t, set.IsSubset(va, conj))
}

func TestXorSelfIsFalse(t *testing.T) {
	set, a, _, _ := smallSet(t)
	va := set.Var(a)
	assert.True(t, set.IsFalse(set.Xor(va, va)))
}

func TestImpIffDeMorgan(t *testing.T) {
	set, a, b, _ := smallSet(t)
	va, vb := set.Var(a), set.Var(b)
	// a => b  ==  !a | b
	lhs := set.Imp(va, vb)
	rhs := set.Or(set.Not(va), vb)
	assert.True(t, set.Equal(lhs, rhs))
	// a <=> b == (a => b) & (b => a)
	iff := set.Iff(va, vb)
	both := set.And(set.Imp(va, vb), set.Imp(vb, va))
	assert.True(t, set.Equal(iff, both))
}

func TestAndManyOrMany(t *testing.T) {
	set, a, b, c := smallSet(t)
	conj := set.AndMany(set.Var(a), set.Var(b), set.Var(c))
	assert.True(t, set.IsSubset(conj, set.Var(a)))
	assert.True(t, set.IsSubset(conj, set.Var(b)))
	assert.True(t, set.IsSubset(conj, set.Var(c)))

	disj := set.OrMany()
	assert.True(t, set.IsFalse(disj))
}

func TestGCSurvivesLiveReferences(t *testing.T) {
	set, a, b, _ := smallSet(t)
	va, vb := set.Var(a), set.Var(b)
	conj := set.And(va, vb)
	// Force a collection; conj, va and vb are all still referenced from this
	// stack frame and must survive it.
	set.t.gbc(nil)
	assert.True(t, set.IsSubset(conj, va))
}
