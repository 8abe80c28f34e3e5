// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package reach

import (
	"sync/atomic"

	"github.com/dalzilio/paranet/params"
)

// cell holds one state's current label plus a busy flag guarding mutation.
// Concurrent reads of value are permitted without synchronization: callers
// must treat them as a lower bound, corrected later by re-enqueuing.
type cell struct {
	busy  uint32
	value params.BddParams
}

// labels is the per-state array of symbolic parameter sets the
// reachability engine grows monotonically.
type labels struct {
	cells []cell
}

func newLabels(n int, empty params.BddParams) *labels {
	l := &labels{cells: make([]cell, n)}
	for i := range l.cells {
		l.cells[i].value = empty
	}
	return l
}

// peek reads a cell's current value without acquiring its busy flag: a
// possibly-stale lower bound, per the engine's concurrency contract.
func (l *labels) peek(i int) params.BddParams {
	return l.cells[i].value
}

// set writes i's value directly, without going through the busy flag. Only
// safe during single-threaded initialization, before workers start.
func (l *labels) set(i int, v params.BddParams) {
	l.cells[i].value = v
}

// updateFunc computes the unioned value for a cell and reports whether it
// grew.
type updateFunc func(current params.BddParams) (next params.BddParams, changed bool)

// update attempts to acquire cell i's busy flag; on success it applies fn
// under exclusion, stores the result, releases the flag, and returns
// (changed, true). On failure (another worker currently owns the cell) it
// returns (false, false) without touching the cell.
func (l *labels) update(i int, fn updateFunc) (changed bool, acquired bool) {
	c := &l.cells[i]
	if !atomic.CompareAndSwapUint32(&c.busy, 0, 1) {
		return false, false
	}
	next, ch := fn(c.value)
	c.value = next
	atomic.StoreUint32(&c.busy, 0)
	return ch, true
}

// snapshot copies out every cell's current value.
func (l *labels) snapshot() []params.BddParams {
	out := make([]params.BddParams, len(l.cells))
	for i := range l.cells {
		out[i] = l.cells[i].value
	}
	return out
}
