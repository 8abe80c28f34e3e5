// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package network

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNetwork(t *testing.T) {
	text := `
a -> b
a -> a
b -| a
b -| b

$a: a & !b
$b: a | !b
`
	bn, err := LoadNetwork(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, 2, bn.Graph.NumVars())
	a, _ := bn.Graph.VariableId("a")
	assert.NotNil(t, bn.UpdateFunction(a))
	assert.Len(t, bn.Parameters(), 0)
}

func TestLoadNetworkMalformedFunctionLine(t *testing.T) {
	text := "a -> b\n$a a & b\n"
	_, err := LoadNetwork(strings.NewReader(text))
	assert.Error(t, err)
}
