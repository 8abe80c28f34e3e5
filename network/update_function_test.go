// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package network

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// TestUpdateFunctionStructuralEquality checks that two independently built
// UpdateFunction trees with the same shape compare equal structurally (via
// go-cmp, which walks exported fields recursively) even though they are
// distinct pointers.
func TestUpdateFunctionStructuralEquality(t *testing.T) {
	a, b := VariableId(0), VariableId(1)
	p := ParameterId(0)

	left := NewAnd(NewVar(a), NewNot(NewParam(p, []VariableId{a, b})))
	right := NewAnd(NewVar(a), NewNot(NewParam(p, []VariableId{a, b})))

	assert.NotSame(t, left, right)
	assert.Empty(t, cmp.Diff(left, right))
}

func TestUpdateFunctionStructuralInequality(t *testing.T) {
	a, b := VariableId(0), VariableId(1)
	left := NewAnd(NewVar(a), NewVar(b))
	right := NewOr(NewVar(a), NewVar(b))
	assert.NotEmpty(t, cmp.Diff(left, right))
}

func TestVariablesAndParametersTraversal(t *testing.T) {
	a, b, c := VariableId(0), VariableId(1), VariableId(2)
	p, q := ParameterId(0), ParameterId(1)
	fn := NewIff(
		NewAnd(NewVar(a), NewParam(p, []VariableId{b, c})),
		NewNot(NewParam(q, []VariableId{a})),
	)

	vars := fn.Variables()
	assert.ElementsMatch(t, []VariableId{a, b, c}, vars)

	params := fn.Parameters()
	assert.ElementsMatch(t, []Parameter{{Id: p, Arity: 2}, {Id: q, Arity: 1}}, params)
}
