// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package params

import (
	"fmt"

	"github.com/dalzilio/paranet/network"
)

// ComputeUnitParams builds the admissibility set U: the conjunction, over
// every declared regulation, of its monotonicity constraint (if any
// Effect other than Unknown is declared) and its observability constraint
// (if Observable is set).
//
// It returns an error if the resulting set is empty.
func ComputeUnitParams(enc *BddParameterEncoder, net *network.BooleanNetwork) (BddParams, error) {
	u := enc.True()
	// Var(v) nodes are evaluated against the true constant while U is
	// still being built, not against the partially-built u: the
	// admissibility constraints themselves must not depend on the set
	// they are in the process of carving out. Once U is finalized,
	// callers evaluating update functions at reachability time pass the
	// real unit set instead.
	trueConst := enc.True()
	for t := 0; t < net.Graph.NumVars(); t++ {
		target := network.VariableId(t)
		regulators := net.Graph.Regulators(target)
		m := 1 << uint(len(regulators))
		pos := make(map[network.VariableId]int, len(regulators))
		for i, r := range regulators {
			pos[r] = i
		}
		for _, source := range regulators {
			reg, ok := net.Graph.Regulation(source, target)
			if !ok {
				continue
			}
			if reg.Effect == network.Unknown && !reg.Observable {
				continue
			}
			i := pos[source]
			mask := 1 << uint(i)

			var anyDiffer BddParams
			first := true
			for r := 0; r < m; r++ {
				if r&mask != 0 {
					continue
				}
				off := pack(r, regulators)
				on := off.Flip(source)

				phiOff := wrap(enc.set, enc.EvalUpdateFunction(trueConst, off, target))
				phiOn := wrap(enc.set, enc.EvalUpdateFunction(trueConst, on, target))

				switch reg.Effect {
				case network.Activation:
					// phiOff => phiOn
					u = u.Intersect(wrap(enc.set, enc.set.Imp(phiOff.Bdd(), phiOn.Bdd())))
				case network.Inhibition:
					// phiOn => phiOff
					u = u.Intersect(wrap(enc.set, enc.set.Imp(phiOn.Bdd(), phiOff.Bdd())))
				}

				if reg.Observable {
					differ := wrap(enc.set, enc.set.Xor(phiOff.Bdd(), phiOn.Bdd()))
					if first {
						anyDiffer = differ
						first = false
					} else {
						anyDiffer = anyDiffer.Union(differ)
					}
				}
			}
			if reg.Observable && !first {
				u = u.Intersect(anyDiffer)
			}
		}
	}
	if u.IsEmpty() {
		return u, fmt.Errorf("network: empty admissibility set")
	}
	return u, nil
}

// pack builds the state whose bits named in regulators follow the bit
// pattern of row r (regulators[j] gets bit j of r), with every other bit
// zero.
func pack(r int, regulators []network.VariableId) network.State {
	var s network.State
	for j, reg := range regulators {
		if (r>>uint(j))&1 != 0 {
			s |= 1 << uint(reg)
		}
	}
	return s
}
