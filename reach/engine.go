// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package reach implements the lock-free parallel fixed-point reachability
// engine: given a symbolic evolution operator and a per-state initial
// label vector, it iterates monotone unions across a pool of worker
// goroutines until no state has pending work, then returns the resulting
// per-state label vector.
package reach

import (
	"sync"

	"github.com/dalzilio/paranet/network"
	"github.com/dalzilio/paranet/params"
	"github.com/dalzilio/paranet/symbolic"
)

func networkState(i int) network.State { return network.State(i) }

// Graph is the subset of *symbolic.SymbolicParametrizedGraph the engine
// needs: state count and empty-set construction.
type Graph interface {
	NumStates() int
	EmptyParams() params.BddParams
}

// Reach computes the least fixed point of op starting from init: out[s]
// holds every parameter valuation for which some state with non-empty
// init is connected to s by a path of op-edges restricted to that
// valuation. workers goroutines share the work queue; workers < 1 is
// treated as 1.
func Reach(g Graph, op symbolic.EvolutionOperator, init []params.BddParams, workers int) []params.BddParams {
	if workers < 1 {
		workers = 1
	}
	n := g.NumStates()
	lb := newLabels(n, g.EmptyParams())
	q := newBitQueue(n)

	for i, v := range init {
		if !v.IsEmpty() {
			lb.set(i, v)
			q.set(i)
		}
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			runWorker(id, op, lb, q)
		}(w)
	}
	wg.Wait()

	log.Debugf("reach: fixed point reached with %d workers", workers)
	return lb.snapshot()
}

func runWorker(id int, op symbolic.EvolutionOperator, lb *labels, q *bitQueue) {
	log.Tracef("reach: worker %d starting", id)
	cur := 0
	for {
		workInProgress := false
		for {
			i, ok := q.pollFrom(cur)
			if !ok {
				break
			}
			cur = i + 1
			processState(i, op, lb, q, &workInProgress)
		}
		if !workInProgress {
			log.Tracef("reach: worker %d exiting", id)
			return
		}
		cur = 0
	}
}

// processState applies op's outgoing edges from state i, unioning the
// transferred label into every successor's cell, re-enqueuing i on a busy
// conflict and the successor on any growth.
func processState(i int, op symbolic.EvolutionOperator, lb *labels, q *bitQueue, workInProgress *bool) {
	src := lb.peek(i)
	for _, e := range op.Step(networkState(i)) {
		j := int(e.Next)
		transfer := src.Intersect(e.Label)
		if transfer.IsSubsetOf(lb.peek(j)) {
			continue
		}
		changed, acquired := lb.update(j, func(current params.BddParams) (params.BddParams, bool) {
			next := current.Union(transfer)
			return next, !next.IsSubsetOf(current)
		})
		switch {
		case !acquired:
			q.set(i)
			*workInProgress = true
		case changed:
			q.set(j)
			*workInProgress = true
		}
	}
}
