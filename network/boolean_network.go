// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package network

import (
	"github.com/dalzilio/paranet/parser"
)

// BooleanNetwork combines a RegulatoryGraph with a list of named parameters
// and an optional update function per variable. A variable without an
// update function is governed entirely by an implicit anonymous parameter
// whose inputs are that variable's regulators.
type BooleanNetwork struct {
	Graph           *RegulatoryGraph
	parameters      []Parameter
	parameterIndex  map[string]ParameterId
	updateFunctions []*UpdateFunction // indexed by VariableId, nil if absent
}

// NewBooleanNetwork wraps graph with no update functions and no parameters
// yet declared.
func NewBooleanNetwork(graph *RegulatoryGraph) *BooleanNetwork {
	return &BooleanNetwork{
		Graph:           graph,
		parameterIndex:  make(map[string]ParameterId),
		updateFunctions: make([]*UpdateFunction, graph.NumVars()),
	}
}

// Parameters returns every parameter declared so far, in declaration order.
func (bn *BooleanNetwork) Parameters() []Parameter { return bn.parameters }

// ParameterId returns the id of the parameter named name, if declared.
func (bn *BooleanNetwork) ParameterId(name string) (ParameterId, bool) {
	id, ok := bn.parameterIndex[name]
	return id, ok
}

// Parameter returns the parameter with id id.
func (bn *BooleanNetwork) Parameter(id ParameterId) Parameter { return bn.parameters[id] }

// UpdateFunction returns the update function declared for v, or nil if v
// has none (and is therefore governed by an anonymous parameter).
func (bn *BooleanNetwork) UpdateFunction(v VariableId) *UpdateFunction {
	return bn.updateFunctions[v]
}

// AddUpdateFunction parses functionText and installs it as the update
// function for the variable named variable. Bare identifiers that are not
// declared variables are treated as zero-arity parameters (a deliberate
// convenience, ported from the builder's "swap unary parameters" step).
//
// It fails if variable is unknown, if it already has an update function, if
// a parameter name is used inconsistently with a prior declared arity, if a
// parameter name collides with a variable name, or if the function
// references a variable that is not a declared regulator of variable.
func (bn *BooleanNetwork) AddUpdateFunction(variable string, functionText string) error {
	const op = "AddUpdateFunction"
	target, ok := bn.Graph.VariableId(variable)
	if !ok {
		return validationErrorf(op, "unknown variable %q", variable)
	}
	if bn.updateFunctions[target] != nil {
		return validationErrorf(op, "update function for %q already set", variable)
	}
	tpl, err := parser.ParseUpdateFunction(functionText)
	if err != nil {
		return err
	}

	// Classify every bare identifier as a variable reference or a
	// (possibly fresh) zero-arity parameter.
	tpl = swapUnaryParameters(tpl, bn.Graph)

	paramArity := map[string]int{}
	if err := collectParameters(tpl, paramArity); err != nil {
		return &ValidationError{Op: op, Msg: err.Error()}
	}
	for name, arity := range paramArity {
		if bn.Graph.HasVariable(name) {
			return validationErrorf(op, "%q for %q can't be both a parameter and a variable", name, variable)
		}
		if id, ok := bn.ParameterId(name); ok {
			if bn.parameters[id].Arity != arity {
				return validationErrorf(op, "%q for %q appears with arity %d and %d", name, variable, arity, bn.parameters[id].Arity)
			}
		}
	}

	for _, v := range templateVariableNames(tpl) {
		regulator, ok := bn.Graph.VariableId(v)
		if !ok {
			return validationErrorf(op, "function for %q references unknown variable %q", variable, v)
		}
		if _, ok := bn.Graph.Regulation(regulator, target); !ok {
			return validationErrorf(op, "%q does not regulate %q", v, variable)
		}
	}

	// Everything checked out: register any new parameters and build the
	// resolved AST.
	for name, arity := range paramArity {
		if _, ok := bn.ParameterId(name); !ok {
			id := ParameterId(len(bn.parameters))
			bn.parameters = append(bn.parameters, Parameter{Id: id, Name: name, Arity: arity})
			bn.parameterIndex[name] = id
		}
	}

	fn, err := bn.resolve(tpl)
	if err != nil {
		return &ValidationError{Op: op, Msg: err.Error()}
	}
	bn.updateFunctions[target] = fn
	return nil
}

// swapUnaryParameters rewrites every bare-identifier Template node (TplVar)
// that does not name a declared variable into a zero-arity TplParam node.
func swapUnaryParameters(tpl *parser.Template, g *RegulatoryGraph) *parser.Template {
	if tpl == nil {
		return nil
	}
	switch tpl.Kind {
	case parser.TplVar:
		if g.HasVariable(tpl.Name) {
			return tpl
		}
		return &parser.Template{Kind: parser.TplParam, Name: tpl.Name, Args: nil}
	case parser.TplParam:
		return tpl
	case parser.TplNot:
		return &parser.Template{Kind: parser.TplNot, Inner: swapUnaryParameters(tpl.Inner, g)}
	default:
		return &parser.Template{
			Kind:  tpl.Kind,
			Left:  swapUnaryParameters(tpl.Left, g),
			Right: swapUnaryParameters(tpl.Right, g),
		}
	}
}

func collectParameters(tpl *parser.Template, out map[string]int) error {
	if tpl == nil {
		return nil
	}
	switch tpl.Kind {
	case parser.TplParam:
		if existing, ok := out[tpl.Name]; ok && existing != len(tpl.Args) {
			return validationErrorf("AddUpdateFunction", "%q used with arity %d and %d", tpl.Name, existing, len(tpl.Args))
		}
		out[tpl.Name] = len(tpl.Args)
		return nil
	case parser.TplNot:
		return collectParameters(tpl.Inner, out)
	case parser.TplVar:
		return nil
	default:
		if err := collectParameters(tpl.Left, out); err != nil {
			return err
		}
		return collectParameters(tpl.Right, out)
	}
}

// resolve converts a validated Template (every variable and parameter name
// already checked against bn) into the final, id-based UpdateFunction tree.
func (bn *BooleanNetwork) resolve(tpl *parser.Template) (*UpdateFunction, error) {
	switch tpl.Kind {
	case parser.TplVar:
		id, _ := bn.Graph.VariableId(tpl.Name)
		return NewVar(id), nil
	case parser.TplParam:
		pid, _ := bn.ParameterId(tpl.Name)
		args := make([]VariableId, len(tpl.Args))
		for i, a := range tpl.Args {
			id, _ := bn.Graph.VariableId(a)
			args[i] = id
		}
		return NewParam(pid, args), nil
	case parser.TplNot:
		inner, err := bn.resolve(tpl.Inner)
		if err != nil {
			return nil, err
		}
		return NewNot(inner), nil
	default:
		left, err := bn.resolve(tpl.Left)
		if err != nil {
			return nil, err
		}
		right, err := bn.resolve(tpl.Right)
		if err != nil {
			return nil, err
		}
		switch tpl.Kind {
		case parser.TplAnd:
			return NewAnd(left, right), nil
		case parser.TplOr:
			return NewOr(left, right), nil
		case parser.TplXor:
			return NewXor(left, right), nil
		case parser.TplImp:
			return NewImp(left, right), nil
		case parser.TplIff:
			return NewIff(left, right), nil
		}
		return nil, validationErrorf("AddUpdateFunction", "unknown template kind %d", tpl.Kind)
	}
}

// templateVariableNames returns every distinct identifier occurring as a
// bare variable reference or as a parameter argument in tpl.
func templateVariableNames(tpl *parser.Template) []string {
	seen := map[string]bool{}
	var out []string
	var walk func(n *parser.Template)
	walk = func(n *parser.Template) {
		if n == nil {
			return
		}
		switch n.Kind {
		case parser.TplVar:
			if !seen[n.Name] {
				seen[n.Name] = true
				out = append(out, n.Name)
			}
		case parser.TplParam:
			for _, a := range n.Args {
				if !seen[a] {
					seen[a] = true
					out = append(out, a)
				}
			}
		case parser.TplNot:
			walk(n.Inner)
		default:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(tpl)
	return out
}
