// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdateFunctionRoundTrip(t *testing.T) {
	cases := []string{
		"var",
		"var1(a, b, c)",
		"!foo(a)",
		"(var(a, b) | x)",
		"(xyz123 & abc)",
		"(a ^ b)",
		"(a => b)",
		"(a <=> b)",
		"(a <=> !(f(a, b) => (c ^ d)))",
	}
	for _, c := range cases {
		tpl, err := ParseUpdateFunction(c)
		require.NoError(t, err, c)
		assert.Equal(t, c, tpl.String(), c)
	}
}

func TestParseUpdateFunctionAssociativity(t *testing.T) {
	// => and <=> are right-associative.
	tpl, err := ParseUpdateFunction("a => b => c")
	require.NoError(t, err)
	require.Equal(t, TplImp, tpl.Kind)
	assert.Equal(t, "a", tpl.Left.Name)
	require.Equal(t, TplImp, tpl.Right.Kind)
	assert.Equal(t, "b", tpl.Right.Left.Name)
	assert.Equal(t, "c", tpl.Right.Right.Name)

	// & is left-associative.
	tpl, err = ParseUpdateFunction("a & b & c")
	require.NoError(t, err)
	require.Equal(t, TplAnd, tpl.Kind)
	require.Equal(t, TplAnd, tpl.Left.Kind)
	assert.Equal(t, "a", tpl.Left.Left.Name)
	assert.Equal(t, "b", tpl.Left.Right.Name)
	assert.Equal(t, "c", tpl.Right.Name)
}

func TestParseUpdateFunctionPrecedence(t *testing.T) {
	tpl, err := ParseUpdateFunction("a | b & c ^ !d")
	require.NoError(t, err)
	require.Equal(t, TplOr, tpl.Kind)
	assert.Equal(t, "a", tpl.Left.Name)
	require.Equal(t, TplAnd, tpl.Right.Kind)
	assert.Equal(t, "b", tpl.Right.Left.Name)
	require.Equal(t, TplXor, tpl.Right.Right.Kind)
	assert.Equal(t, "c", tpl.Right.Right.Left.Name)
	require.Equal(t, TplNot, tpl.Right.Right.Right.Kind)
	assert.Equal(t, "d", tpl.Right.Right.Right.Inner.Name)
}

func TestParseUpdateFunctionErrors(t *testing.T) {
	bad := []string{
		"",
		"(a",
		"a)",
		"f(",
		"f()",
		"a &",
		"a $ b",
	}
	for _, b := range bad {
		_, err := ParseUpdateFunction(b)
		assert.Error(t, err, b)
	}
}

func TestParseRegulation(t *testing.T) {
	r, err := ParseRegulation("a -> b")
	require.NoError(t, err)
	assert.Equal(t, "a", r.Source)
	assert.Equal(t, "b", r.Target)
	assert.Equal(t, EffectActivation, r.Effect)
	assert.True(t, r.Observable)

	r, err = ParseRegulation("b -|? a")
	require.NoError(t, err)
	assert.Equal(t, EffectInhibition, r.Effect)
	assert.False(t, r.Observable)

	r, err = ParseRegulation("a -? b")
	require.NoError(t, err)
	assert.Equal(t, EffectUnknown, r.Effect)
	assert.True(t, r.Observable)

	_, err = ParseRegulation("not a line")
	assert.Error(t, err)
}
