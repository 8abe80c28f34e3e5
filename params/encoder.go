// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package params

import (
	"fmt"

	"github.com/dalzilio/paranet/bdd"
	"github.com/dalzilio/paranet/network"
)

// BddParameterEncoder owns the BDD variable set used to represent every
// parameter valuation, and the tables mapping (parameter, input row) and
// (anonymous variable, input row) to the BDD variable responsible for it.
// It is built once per network and is immutable thereafter.
type BddParameterEncoder struct {
	net    *network.BooleanNetwork
	set    *bdd.BddVariableSet
	named  map[network.ParameterId][]bdd.Var
	anon   map[network.VariableId][]bdd.Var
}

// NewBddParameterEncoder builds the encoder for net: every named
// parameter's 2^arity rows and every function-less variable's
// 2^|regulators| rows each get a fresh BDD variable.
func NewBddParameterEncoder(net *network.BooleanNetwork) (*BddParameterEncoder, error) {
	vb := bdd.NewVariableSetBuilder()
	named := make(map[network.ParameterId][]bdd.Var)
	anon := make(map[network.VariableId][]bdd.Var)

	for _, p := range net.Parameters() {
		rows := 1 << uint(p.Arity)
		table := make([]bdd.Var, rows)
		for r := 0; r < rows; r++ {
			table[r] = vb.AddVariable(fmt.Sprintf("%s[%d]", p.Name, r))
		}
		named[p.Id] = table
	}
	for v := 0; v < net.Graph.NumVars(); v++ {
		vid := network.VariableId(v)
		if net.UpdateFunction(vid) != nil {
			continue
		}
		regulators := net.Graph.Regulators(vid)
		rows := 1 << uint(len(regulators))
		table := make([]bdd.Var, rows)
		for r := 0; r < rows; r++ {
			table[r] = vb.AddVariable(fmt.Sprintf("{%s}[%d]", net.Graph.VariableName(vid), r))
		}
		anon[vid] = table
	}

	set, err := vb.Build()
	if err != nil {
		return nil, err
	}
	return &BddParameterEncoder{net: net, set: set, named: named, anon: anon}, nil
}

// VariableSet returns the underlying BDD variable set.
func (e *BddParameterEncoder) VariableSet() *bdd.BddVariableSet { return e.set }

// True returns the BddParams containing every valuation.
func (e *BddParameterEncoder) True() BddParams { return wrap(e.set, e.set.True()) }

// False returns the BddParams containing no valuation.
func (e *BddParameterEncoder) False() BddParams { return wrap(e.set, e.set.False()) }

// Wrap builds a BddParams from a raw Bdd handle produced by this encoder's
// variable set, for callers (package symbolic) that evaluate update
// functions directly via EvalUpdateFunction.
func (e *BddParameterEncoder) Wrap(b bdd.Bdd) BddParams { return wrap(e.set, b) }

// ComputeRowIndex computes the canonical row index for a tuple of input
// variables evaluated in state: args[0] contributes the highest-order bit,
// and there is no trailing shift after the last argument.
func ComputeRowIndex(state network.State, args []network.VariableId) int {
	idx := 0
	for i, a := range args {
		if state.Test(a) {
			idx++
		}
		if i < len(args)-1 {
			idx <<= 1
		}
	}
	return idx
}

// NamedParamValue returns the Bdd for the single variable responsible for
// parameter p's row selected by state and args.
func (e *BddParameterEncoder) NamedParamValue(state network.State, p network.ParameterId, args []network.VariableId) bdd.Bdd {
	row := ComputeRowIndex(state, args)
	return e.set.Var(e.named[p][row])
}

// AnonymousParamValue returns the Bdd for the single variable responsible
// for variable v's anonymous parameter, selected by state and v's
// regulators.
func (e *BddParameterEncoder) AnonymousParamValue(state network.State, v network.VariableId) bdd.Bdd {
	row := ComputeRowIndex(state, e.net.Graph.Regulators(v))
	return e.set.Var(e.anon[v][row])
}

// EvalUpdateFunction evaluates the (possibly absent) update function of
// variable v symbolically on state, returning the Bdd representing "the
// value of v's update function is true" as a function of the parameter
// valuation.
//
// Negation is implemented as unitParams.AndNot(inner) rather than a plain
// BDD complement: the result must only ever range over the admissible
// parameter space U, exactly as the original source's symbolic evaluator
// does (a plain complement would also include inadmissible valuations).
func (e *BddParameterEncoder) EvalUpdateFunction(unitParams BddParams, state network.State, v network.VariableId) bdd.Bdd {
	fn := e.net.UpdateFunction(v)
	if fn == nil {
		return e.AnonymousParamValue(state, v)
	}
	return e.evalNode(unitParams, state, fn)
}

func (e *BddParameterEncoder) evalNode(unitParams BddParams, state network.State, n *network.UpdateFunction) bdd.Bdd {
	switch n.Kind {
	case network.FnVar:
		if state.Test(n.Var) {
			return unitParams.Bdd()
		}
		return e.set.False()
	case network.FnParam:
		return e.NamedParamValue(state, n.Param, n.Args)
	case network.FnNot:
		inner := e.evalNode(unitParams, state, n.Inner)
		return e.set.AndNot(unitParams.Bdd(), inner)
	case network.FnAnd:
		return e.set.And(e.evalNode(unitParams, state, n.Left), e.evalNode(unitParams, state, n.Right))
	case network.FnOr:
		return e.set.Or(e.evalNode(unitParams, state, n.Left), e.evalNode(unitParams, state, n.Right))
	case network.FnXor:
		return e.set.Xor(e.evalNode(unitParams, state, n.Left), e.evalNode(unitParams, state, n.Right))
	case network.FnImp:
		return e.set.Imp(e.evalNode(unitParams, state, n.Left), e.evalNode(unitParams, state, n.Right))
	case network.FnIff:
		return e.set.Iff(e.evalNode(unitParams, state, n.Left), e.evalNode(unitParams, state, n.Right))
	default:
		return e.set.False()
	}
}
