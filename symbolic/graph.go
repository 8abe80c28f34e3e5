// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package symbolic builds the parametrized transition graph over a
// BooleanNetwork: the admissible parameter set U, and the forward/backward
// evolution operators the reachability engine iterates over.
package symbolic

import (
	"fmt"

	"github.com/dalzilio/paranet/network"
	"github.com/dalzilio/paranet/params"
)

// maxVars bounds the number of variables a graph can represent: states are
// packed into a network.State (uint32), and the reachability engine sizes a
// 2^n label array and bit queue from it.
const maxVars = 32

// SymbolicParametrizedGraph owns the parameter encoder, a reference to the
// underlying network, and the unit set U computed once at construction.
type SymbolicParametrizedGraph struct {
	net     *network.BooleanNetwork
	enc     *params.BddParameterEncoder
	unitSet params.BddParams
}

// New builds the symbolic graph for net: it encodes every parameter and
// anonymous-variable row onto a BDD variable, then computes the admissible
// set U. It fails if net has more than 32 variables or if U is empty.
func New(net *network.BooleanNetwork) (*SymbolicParametrizedGraph, error) {
	if n := net.Graph.NumVars(); n > maxVars {
		return nil, fmt.Errorf("symbolic: network has %d variables, limit is %d", n, maxVars)
	}
	enc, err := params.NewBddParameterEncoder(net)
	if err != nil {
		return nil, err
	}
	u, err := params.ComputeUnitParams(enc, net)
	if err != nil {
		return nil, err
	}
	return &SymbolicParametrizedGraph{net: net, enc: enc, unitSet: u}, nil
}

// NumStates returns 2^n, where n is the number of declared variables.
func (g *SymbolicParametrizedGraph) NumStates() int {
	return 1 << uint(g.net.Graph.NumVars())
}

// NumVars returns the number of declared variables.
func (g *SymbolicParametrizedGraph) NumVars() int {
	return g.net.Graph.NumVars()
}

// States returns every state 0..2^n-1, in ascending order. The slice is
// freshly built on each call, so callers are free to mutate it.
func (g *SymbolicParametrizedGraph) States() []network.State {
	out := make([]network.State, g.NumStates())
	for i := range out {
		out[i] = network.State(i)
	}
	return out
}

// UnitParams returns U, the admissible parameter set.
func (g *SymbolicParametrizedGraph) UnitParams() params.BddParams { return g.unitSet }

// EmptyParams returns the empty parameter set, over the same BDD variable
// set as UnitParams.
func (g *SymbolicParametrizedGraph) EmptyParams() params.BddParams { return g.enc.False() }

// Edge is one outgoing (or incoming, for Bwd) transition: flipping Variable
// leads to Next, and is enabled exactly for the parameter valuations in
// Label.
type Edge struct {
	Variable network.VariableId
	Next     network.State
	Label    params.BddParams
}

// EvolutionOperator lazily produces, for a given state, the set of edges
// incident to it: Fwd for outgoing transitions, Bwd for incoming ones.
// Step always yields edges in ascending variable order.
type EvolutionOperator interface {
	Step(s network.State) []Edge
}

// edgeParams computes the symbolic set of parameter valuations under which
// flipping variable in state is a valid transition: the "function value"
// set if the bit is currently 0, or its complement within U if currently 1.
func (g *SymbolicParametrizedGraph) edgeParams(state network.State, variable network.VariableId) params.BddParams {
	phi := g.enc.Wrap(g.enc.EvalUpdateFunction(g.unitSet, state, variable))

	var raw params.BddParams
	if state.Test(variable) {
		raw = g.unitSet.Minus(phi)
	} else {
		raw = phi
	}
	return raw.Intersect(g.unitSet)
}

type fwdOperator struct{ g *SymbolicParametrizedGraph }

// Fwd returns the forward evolution operator: step(s) yields, for each
// variable v, (s XOR (1<<v), edge_params(s,v) ∩ U).
func (g *SymbolicParametrizedGraph) Fwd() EvolutionOperator { return fwdOperator{g} }

func (o fwdOperator) Step(s network.State) []Edge {
	n := o.g.net.Graph.NumVars()
	edges := make([]Edge, n)
	for v := 0; v < n; v++ {
		vid := network.VariableId(v)
		edges[v] = Edge{Variable: vid, Next: s.Flip(vid), Label: o.g.edgeParams(s, vid)}
	}
	return edges
}

type bwdOperator struct{ g *SymbolicParametrizedGraph }

// Bwd returns the backward evolution operator: step(s) yields, for each
// variable v, (s XOR (1<<v), edge_params(s XOR (1<<v), v) ∩ U).
func (g *SymbolicParametrizedGraph) Bwd() EvolutionOperator { return bwdOperator{g} }

func (o bwdOperator) Step(s network.State) []Edge {
	n := o.g.net.Graph.NumVars()
	edges := make([]Edge, n)
	for v := 0; v < n; v++ {
		vid := network.VariableId(v)
		next := s.Flip(vid)
		edges[v] = Edge{Variable: vid, Next: next, Label: o.g.edgeParams(next, vid)}
	}
	return edges
}
