// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"testing"

	"github.com/dalzilio/paranet/network"
	"github.com/dalzilio/paranet/params"
	"github.com/dalzilio/paranet/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func scenario1Graph(t *testing.T) *symbolic.SymbolicParametrizedGraph {
	t.Helper()
	g, err := network.FromRegulationStrings(
		[]string{"a", "b"},
		[]string{"a -> b", "a -> a", "b -| a", "b -| b"},
	)
	require.NoError(t, err)
	bn := network.NewBooleanNetwork(g)
	require.NoError(t, bn.AddUpdateFunction("a", "a & !b"))
	require.NoError(t, bn.AddUpdateFunction("b", "a | !b"))
	sg, err := symbolic.New(bn)
	require.NoError(t, err)
	return sg
}

func initVector(sg *symbolic.SymbolicParametrizedGraph, nonEmpty ...int) []params.BddParams {
	init := make([]params.BddParams, sg.NumStates())
	for i := range init {
		init[i] = sg.EmptyParams()
	}
	for _, i := range nonEmpty {
		init[i] = sg.UnitParams()
	}
	return init
}

// TestReachabilityStability mirrors scenario 6: forward reachability from
// state 0 on the no-parameters network reaches exactly 0b00 and 0b10 (the
// only enabled edges out of them are 0b00 -> 0b10 and 0b10 -> 0b00) with
// unit_params there and the empty set on 0b01 and 0b11, and the result must
// be identical for 1, 2, and 8 workers.
func TestReachabilityStability(t *testing.T) {
	sg := scenario1Graph(t)
	init := initVector(sg, 0)

	var results [][]params.BddParams
	for _, workers := range []int{1, 2, 8} {
		out := Reach(sg, sg.Fwd(), init, workers)
		results = append(results, out)
	}

	for i := 1; i < len(results); i++ {
		require.Len(t, results[i], len(results[0]))
		for s := range results[0] {
			assert.True(t, results[0][s].Equals(results[i][s]), "state %d differs across worker counts", s)
		}
	}

	// Only 0b00 and 0b10 are reachable from 0.
	for s, lbl := range results[0] {
		if s == 0b00 || s == 0b10 {
			assert.True(t, lbl.Equals(sg.UnitParams()), "state %d", s)
		} else {
			assert.True(t, lbl.IsEmpty(), "state %d", s)
		}
	}
}

func TestReachabilityMonotoneFixedPoint(t *testing.T) {
	sg := scenario1Graph(t)
	init := initVector(sg, 0)
	out := Reach(sg, sg.Fwd(), init, 4)

	for s, v := range init {
		assert.True(t, v.IsSubsetOf(out[s]))
	}

	fwd := sg.Fwd()
	for _, s := range sg.States() {
		for _, e := range fwd.Step(s) {
			transfer := out[s].Intersect(e.Label)
			assert.True(t, transfer.IsSubsetOf(out[e.Next]))
		}
	}
}

func TestReachabilitySingleWorkerCorrect(t *testing.T) {
	sg := scenario1Graph(t)
	init := initVector(sg, 0)
	out := Reach(sg, sg.Fwd(), init, 1)
	for s, lbl := range out {
		if s == 0b00 || s == 0b10 {
			assert.True(t, lbl.Equals(sg.UnitParams()), "state %d", s)
		} else {
			assert.True(t, lbl.IsEmpty(), "state %d", s)
		}
	}
}
