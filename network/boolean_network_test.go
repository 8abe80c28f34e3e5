// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegulatoryGraphFromStrings(t *testing.T) {
	g, err := FromRegulationStrings([]string{"a", "b"}, []string{"a -> b", "b -| a"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumVars())
	a, _ := g.VariableId("a")
	b, _ := g.VariableId("b")
	r, ok := g.Regulation(a, b)
	require.True(t, ok)
	assert.Equal(t, Activation, r.Effect)
	assert.True(t, r.Observable)
}

func TestAddUpdateFunctionInvalid(t *testing.T) {
	g, err := FromRegulationStrings([]string{"a", "b"}, []string{"a -> b", "b -| a"})
	require.NoError(t, err)
	bn := NewBooleanNetwork(g)

	// unknown variable
	assert.Error(t, bn.AddUpdateFunction("c", "!a"))

	require.NoError(t, bn.AddUpdateFunction("a", "p => b"))

	// duplicate function
	assert.Error(t, bn.AddUpdateFunction("a", "!a"))

	// name clash between parameter and variable
	assert.Error(t, bn.AddUpdateFunction("b", "a & a(a)"))

	// cardinality clash: p was declared at arity 0, p(a) asks for arity 1
	assert.Error(t, bn.AddUpdateFunction("b", "p(a) => a"))

	// missing regulation: b does not regulate itself
	assert.Error(t, bn.AddUpdateFunction("b", "q(b) => a"))
}

func TestAddUpdateFunctionZeroArityParameter(t *testing.T) {
	g, err := FromRegulationStrings([]string{"a", "b"}, []string{"a -> b"})
	require.NoError(t, err)
	bn := NewBooleanNetwork(g)
	require.NoError(t, bn.AddUpdateFunction("b", "free & a"))
	params := bn.Parameters()
	require.Len(t, params, 1)
	assert.Equal(t, "free", params[0].Name)
	assert.Equal(t, 0, params[0].Arity)
}

func TestScenarioNoParameters(t *testing.T) {
	g, err := FromRegulationStrings([]string{"a", "b"},
		[]string{"a -> b", "a -> a", "b -| a", "b -| b"})
	require.NoError(t, err)
	bn := NewBooleanNetwork(g)
	require.NoError(t, bn.AddUpdateFunction("a", "a & !b"))
	require.NoError(t, bn.AddUpdateFunction("b", "a | !b"))
	assert.Len(t, bn.Parameters(), 0)
}
