// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"runtime"
	"sync"
)

// Var identifies a single declared boolean variable in a BddVariableSet, by
// its position in the variable order (0 is the top-most, tightest level).
type Var int

// node is an internal reference to a slot in the node table. It is boxed so
// that a finalizer can observe when the last external reference (a Bdd
// value) becomes unreachable and release the underlying table slot,
// matching a classic hash-consed BDD library's reference-counted node
// handles.
type node *int

// Bdd is an immutable reference to a ROBDD node within a BddVariableSet.
// Bdd values are only meaningful with respect to the set that produced
// them; mixing Bdd values from different sets is undefined.
type Bdd struct {
	n node
}

// BddVariableSet owns a fixed universe of boolean variables and the shared
// ROBDD node table used to represent boolean functions (or sets of
// variable assignments) over them.
type BddVariableSet struct {
	mu      sync.Mutex
	t       *table
	cache   *applycache
	varnum  int
	varset  [][2]int // varset[v] = {node id for !v, node id for v}
	names   []string
	err     error
	zero    int
	one     int
}

// VariableSetBuilder accumulates variable declarations before Build
// constructs the immutable BddVariableSet.
type VariableSetBuilder struct {
	names []string
	index map[string]Var
}

// NewVariableSetBuilder returns an empty builder.
func NewVariableSetBuilder() *VariableSetBuilder {
	return &VariableSetBuilder{index: make(map[string]Var)}
}

// AddVariable declares a new variable named name and returns its Var
// handle. Declaring the same name twice returns the existing handle.
func (vb *VariableSetBuilder) AddVariable(name string) Var {
	if v, ok := vb.index[name]; ok {
		return v
	}
	v := Var(len(vb.names))
	vb.names = append(vb.names, name)
	vb.index[name] = v
	return v
}

// Build constructs the BddVariableSet for all variables declared so far.
// Options configure the initial sizing of the underlying node table and
// operation cache; see Nodesize, Cachesize and friends.
func (vb *VariableSetBuilder) Build(options ...Option) (*BddVariableSet, error) {
	varnum := len(vb.names)
	if varnum < 0 || varnum > _MAXVAR {
		return nil, errTooManyVars
	}
	cfg := makeconfigs(varnum)
	for _, f := range options {
		f(cfg)
	}
	t := newTable(cfg)
	b := &BddVariableSet{
		t:      t,
		cache:  newApplycache(cfg.cachesize),
		varnum: varnum,
		varset: make([][2]int, varnum),
		names:  append([]string(nil), vb.names...),
		zero:   0,
		one:    1,
	}
	for k := 0; k < varnum; k++ {
		v0, err := t.makenode(int32(k), 0, 1, nil)
		if err != nil && err != errResize && err != errReset {
			return nil, fmt.Errorf("bdd: cannot allocate variable %d: %w", k, err)
		}
		pin(t, v0)
		v1, err := t.makenode(int32(k), 1, 0, nil)
		if err != nil && err != errResize && err != errReset {
			return nil, fmt.Errorf("bdd: cannot allocate variable %d: %w", k, err)
		}
		pin(t, v1)
		b.varset[k] = [2]int{v1, v0}
	}
	return b, nil
}

// Error returns the last error recorded by the set, or an empty string.
func (b *BddVariableSet) Error() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

func (b *BddVariableSet) seterror(format string, a ...interface{}) {
	if b.err != nil {
		b.err = fmt.Errorf(format+"; after: %w", append(a, b.err)...)
		return
	}
	b.err = fmt.Errorf(format, a...)
}

// NumVars returns the number of variables declared in this set.
func (b *BddVariableSet) NumVars() int { return b.varnum }

// VarName returns the declared name of variable v.
func (b *BddVariableSet) VarName(v Var) string { return b.names[v] }

func (b *BddVariableSet) retain(id int) Bdd {
	if id == b.zero || id == b.one {
		n := new(int)
		*n = id
		return Bdd{n: n}
	}
	n := new(int)
	*n = id
	b.mu.Lock()
	if b.t.nodes[id].refcou < _MAXREFCOUNT {
		b.t.nodes[id].refcou++
	}
	b.mu.Unlock()
	runtime.SetFinalizer(n, b.release)
	return Bdd{n: n}
}

func (b *BddVariableSet) release(n *int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := *n
	if id == b.zero || id == b.one {
		return
	}
	if b.t.nodes[id].refcou > 0 && b.t.nodes[id].refcou < _MAXREFCOUNT {
		b.t.nodes[id].refcou--
	}
}

// True returns the constant BDD representing the boolean value true.
func (b *BddVariableSet) True() Bdd { return b.retain(b.one) }

// False returns the constant BDD representing the boolean value false.
func (b *BddVariableSet) False() Bdd { return b.retain(b.zero) }

// FromBool returns True() if v, otherwise False().
func (b *BddVariableSet) FromBool(v bool) Bdd {
	if v {
		return b.True()
	}
	return b.False()
}

// Var returns the BDD for the positive literal of variable v.
func (b *BddVariableSet) Var(v Var) Bdd { return b.retain(b.varset[v][1]) }

// NVar returns the BDD for the negative literal of variable v.
func (b *BddVariableSet) NVar(v Var) Bdd { return b.retain(b.varset[v][0]) }

func idOf(x Bdd) int {
	if x.n == nil {
		return 0
	}
	return *x.n
}

// currentRoots lists the node ids that must survive a garbage collection
// triggered mid-recursion: nodes already referenced by live Bdd values are
// protected separately (their refcou is positive), so this only needs to
// cover the operands and partial results of the recursion in progress.
func (b *BddVariableSet) currentRoots(extra ...int) []int {
	return extra
}

// IsFalse reports whether x is the constant false function.
func (b *BddVariableSet) IsFalse(x Bdd) bool { return idOf(x) == b.zero }

// IsTrue reports whether x is the constant true function.
func (b *BddVariableSet) IsTrue(x Bdd) bool { return idOf(x) == b.one }

// Equal reports whether x and y denote the same boolean function. Because
// the node table is hash-consed this is a simple identity check.
func (b *BddVariableSet) Equal(x, y Bdd) bool { return idOf(x) == idOf(y) }

// And returns the conjunction of x and y.
func (b *BddVariableSet) And(x, y Bdd) Bdd { return b.applyOp(x, y, OPand) }

// Or returns the disjunction of x and y.
func (b *BddVariableSet) Or(x, y Bdd) Bdd { return b.applyOp(x, y, OPor) }

// Xor returns the exclusive-or of x and y.
func (b *BddVariableSet) Xor(x, y Bdd) Bdd { return b.applyOp(x, y, OPxor) }

// Imp returns the material implication x => y.
func (b *BddVariableSet) Imp(x, y Bdd) Bdd { return b.applyOp(x, y, OPimp) }

// Iff returns the bi-implication (equivalence) x <=> y.
func (b *BddVariableSet) Iff(x, y Bdd) Bdd { return b.applyOp(x, y, OPbiimp) }

// AndNot returns the set difference x &! y, i.e. x AND NOT y.
func (b *BddVariableSet) AndNot(x, y Bdd) Bdd { return b.applyOp(x, y, OPdiff) }

// AndMany returns the conjunction of a sequence of BDDs (True() if empty).
func (b *BddVariableSet) AndMany(xs ...Bdd) Bdd {
	res := b.True()
	for _, x := range xs {
		res = b.And(res, x)
	}
	return res
}

// OrMany returns the disjunction of a sequence of BDDs (False() if empty).
func (b *BddVariableSet) OrMany(xs ...Bdd) Bdd {
	res := b.False()
	for _, x := range xs {
		res = b.Or(res, x)
	}
	return res
}

// IsSubset reports whether the set of assignments satisfying x is a subset
// of those satisfying y, i.e. whether x &! y is empty.
func (b *BddVariableSet) IsSubset(x, y Bdd) bool {
	return b.IsFalse(b.AndNot(x, y))
}

func (b *BddVariableSet) applyOp(x, y Bdd, op Operator) Bdd {
	b.mu.Lock()
	defer b.mu.Unlock()
	res, err := b.apply(idOf(x), idOf(y), op)
	if err != nil {
		b.seterror("bdd: apply(%s) failed: %v", op, err)
		return b.False()
	}
	return b.retainLocked(res)
}

// retainLocked is retain, but for use while b.mu is already held.
func (b *BddVariableSet) retainLocked(id int) Bdd {
	n := new(int)
	*n = id
	if id != b.zero && id != b.one {
		if b.t.nodes[id].refcou < _MAXREFCOUNT {
			b.t.nodes[id].refcou++
		}
		runtime.SetFinalizer(n, b.release)
	}
	return Bdd{n: n}
}

// apply is the classic recursive BDD-apply algorithm: short-circuit on
// constant operands using the operator's truth table, otherwise recurse on
// the top variable of whichever operand has the lowest level, building the
// result bottom-up and memoizing in the apply cache, trimmed to the six
// operators this package needs.
func (b *BddVariableSet) apply(left, right int, op Operator) (int, error) {
	if left < 2 && right < 2 {
		return opres[op][left][right], nil
	}
	if cached, ok := b.cache.lookupApply(left, right, int(op)); ok {
		return cached, nil
	}
	// Both constants share the table's sentinel level (varnum), which is
	// greater than every real variable level, so taking the minimum of the
	// two operand levels works uniformly whether or not either side is a
	// terminal.
	ll, rl := b.t.level(left), b.t.level(right)
	lev := ll
	if rl < lev {
		lev = rl
	}

	leftLow, leftHigh := left, left
	if ll == lev {
		leftLow, leftHigh = b.t.low(left), b.t.high(left)
	}
	rightLow, rightHigh := right, right
	if rl == lev {
		rightLow, rightHigh = b.t.low(right), b.t.high(right)
	}

	lo, err := b.apply(leftLow, rightLow, op)
	if err != nil {
		return -1, err
	}
	hi, err := b.apply(leftHigh, rightHigh, op)
	if err != nil {
		return -1, err
	}
	res, err := b.t.makenode(lev, lo, hi, b.currentRoots(lo, hi, left, right))
	if err != nil && err != errResize && err != errReset {
		return -1, err
	}
	b.cache.storeApply(left, right, int(op), res)
	return res, nil
}

// Not returns the negation of x.
func (b *BddVariableSet) Not(x Bdd) Bdd {
	b.mu.Lock()
	defer b.mu.Unlock()
	res, err := b.not(idOf(x))
	if err != nil {
		b.seterror("bdd: not failed: %v", err)
		return b.False()
	}
	return b.retainLocked(res)
}

func (b *BddVariableSet) not(n int) (int, error) {
	if n == b.zero {
		return b.one, nil
	}
	if n == b.one {
		return b.zero, nil
	}
	if cached, ok := b.cache.lookupNot(n); ok {
		return cached, nil
	}
	lo, err := b.not(b.t.low(n))
	if err != nil {
		return -1, err
	}
	hi, err := b.not(b.t.high(n))
	if err != nil {
		return -1, err
	}
	res, err := b.t.makenode(b.t.level(n), lo, hi, b.currentRoots(lo, hi, n))
	if err != nil && err != errResize && err != errReset {
		return -1, err
	}
	b.cache.storeNot(n, res)
	return res, nil
}
