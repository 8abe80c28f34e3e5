// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package network

// UpdateFunctionKind tags the variant of an UpdateFunction node. The AST is
// a tagged sum type: a node's meaning is entirely determined by Kind plus
// the subset of the remaining fields it uses. Equality between two trees is
// structural, never pointer identity.
type UpdateFunctionKind int

const (
	FnVar UpdateFunctionKind = iota
	FnParam
	FnNot
	FnAnd
	FnOr
	FnXor
	FnImp
	FnIff
)

// UpdateFunction is an immutable Boolean expression tree over variables and
// uninterpreted parameter invocations.
type UpdateFunction struct {
	Kind UpdateFunctionKind

	Var   VariableId   // valid when Kind == FnVar
	Param ParameterId  // valid when Kind == FnParam
	Args  []VariableId // valid when Kind == FnParam, len(Args) == arity(Param)

	Left, Right *UpdateFunction // valid for binary kinds
	Inner       *UpdateFunction // valid when Kind == FnNot
}

// NewVar returns a leaf node referencing variable v.
func NewVar(v VariableId) *UpdateFunction { return &UpdateFunction{Kind: FnVar, Var: v} }

// NewParam returns a leaf node invoking parameter p with the given
// arguments.
func NewParam(p ParameterId, args []VariableId) *UpdateFunction {
	return &UpdateFunction{Kind: FnParam, Param: p, Args: args}
}

// NewNot, NewAnd, NewOr, NewXor, NewImp, NewIff build the corresponding
// interior nodes.
func NewNot(inner *UpdateFunction) *UpdateFunction {
	return &UpdateFunction{Kind: FnNot, Inner: inner}
}
func NewAnd(l, r *UpdateFunction) *UpdateFunction { return &UpdateFunction{Kind: FnAnd, Left: l, Right: r} }
func NewOr(l, r *UpdateFunction) *UpdateFunction  { return &UpdateFunction{Kind: FnOr, Left: l, Right: r} }
func NewXor(l, r *UpdateFunction) *UpdateFunction { return &UpdateFunction{Kind: FnXor, Left: l, Right: r} }
func NewImp(l, r *UpdateFunction) *UpdateFunction { return &UpdateFunction{Kind: FnImp, Left: l, Right: r} }
func NewIff(l, r *UpdateFunction) *UpdateFunction { return &UpdateFunction{Kind: FnIff, Left: l, Right: r} }

// Variables returns the set of variable ids referenced anywhere in f,
// deduplicated but unordered.
func (f *UpdateFunction) Variables() []VariableId {
	seen := map[VariableId]bool{}
	var out []VariableId
	var walk func(n *UpdateFunction)
	walk = func(n *UpdateFunction) {
		if n == nil {
			return
		}
		switch n.Kind {
		case FnVar:
			if !seen[n.Var] {
				seen[n.Var] = true
				out = append(out, n.Var)
			}
		case FnParam:
			for _, a := range n.Args {
				if !seen[a] {
					seen[a] = true
					out = append(out, a)
				}
			}
		case FnNot:
			walk(n.Inner)
		default:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(f)
	return out
}

// Parameters returns every distinct (ParameterId, arity) pair referenced
// anywhere in f.
func (f *UpdateFunction) Parameters() []Parameter {
	seen := map[ParameterId]bool{}
	var out []Parameter
	var walk func(n *UpdateFunction)
	walk = func(n *UpdateFunction) {
		if n == nil {
			return
		}
		switch n.Kind {
		case FnParam:
			if !seen[n.Param] {
				seen[n.Param] = true
				out = append(out, Parameter{Id: n.Param, Arity: len(n.Args)})
			}
		case FnNot:
			walk(n.Inner)
		case FnVar:
		default:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(f)
	return out
}
