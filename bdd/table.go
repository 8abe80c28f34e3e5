// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math"
	"sync"
)

// huddnode is a single entry in the node table: a decision on variable
// level, with low (false) and high (true) successors, plus a reference
// count used to decide what mark/sweep GC can reclaim.
type huddnode struct {
	level  int32
	low    int
	high   int
	refcou int32
}

// table is the hashmap-based unique node table backing a BddVariableSet. It
// follows the "Hudd" style of unique table found in hash-consed BDD
// libraries: we trade a little extra memory for a table that can, if
// needed, be backed by a concurrency-safe map.
type table struct {
	sync.RWMutex
	nodes    []huddnode
	unique   map[[huddsize]byte]int
	freenum  int
	freepos  int
	produced int
	hbuff    [huddsize]byte

	gchistory []gcpoint
	configs
}

type gcpoint struct {
	nodes     int
	freenodes int
}

func newTable(cfg *configs) *table {
	t := &table{}
	t.configs = *cfg
	nodesize := cfg.nodesize
	t.nodes = make([]huddnode, nodesize)
	for k := range t.nodes {
		t.nodes[k] = huddnode{level: 0, low: -1, high: k + 1}
	}
	t.nodes[nodesize-1].high = 0
	t.unique = make(map[[huddsize]byte]int, nodesize)
	t.nodes[0] = huddnode{level: int32(cfg.varnum), low: 0, high: 0, refcou: _MAXREFCOUNT}
	t.nodes[1] = huddnode{level: int32(cfg.varnum), low: 1, high: 1, refcou: _MAXREFCOUNT}
	t.freepos = 2
	t.freenum = len(t.nodes) - 2
	t.gchistory = []gcpoint{}
	return t
}

func (t *table) ismarked(n int) bool {
	return (t.nodes[n].refcou & 0x200000) != 0
}

func (t *table) marknode(n int) {
	t.nodes[n].refcou |= 0x200000
}

func (t *table) unmarknode(n int) {
	t.nodes[n].refcou &= 0x1FFFFF
}

func (t *table) huddhash(level int32, low, high int) {
	t.hbuff[0] = byte(level)
	t.hbuff[1] = byte(level >> 8)
	t.hbuff[2] = byte(level >> 16)
	t.hbuff[3] = byte(level >> 24)
	t.hbuff[4] = byte(low)
	t.hbuff[5] = byte(low >> 8)
	t.hbuff[6] = byte(low >> 16)
	t.hbuff[7] = byte(low >> 24)
	if huddsize == 20 {
		t.hbuff[8] = byte(low >> 32)
		t.hbuff[9] = byte(low >> 40)
		t.hbuff[10] = byte(low >> 48)
		t.hbuff[11] = byte(low >> 56)
		t.hbuff[12] = byte(high)
		t.hbuff[13] = byte(high >> 8)
		t.hbuff[14] = byte(high >> 16)
		t.hbuff[15] = byte(high >> 24)
		t.hbuff[16] = byte(high >> 32)
		t.hbuff[17] = byte(high >> 40)
		t.hbuff[18] = byte(high >> 48)
		t.hbuff[19] = byte(high >> 56)
		return
	}
	t.hbuff[8] = byte(high)
	t.hbuff[9] = byte(high >> 8)
	t.hbuff[10] = byte(high >> 16)
	t.hbuff[11] = byte(high >> 24)
}

func (t *table) nodehash(level int32, low, high int) (int, bool) {
	t.huddhash(level, low, high)
	n, ok := t.unique[t.hbuff]
	return n, ok
}

func (t *table) setnode(level int32, low, high int, count int32) int {
	t.huddhash(level, low, high)
	t.freenum--
	t.unique[t.hbuff] = t.freepos
	res := t.freepos
	t.freepos = t.nodes[res].high
	t.nodes[res] = huddnode{level, low, high, count}
	return res
}

func (t *table) delnode(hn huddnode) {
	t.huddhash(hn.level, hn.low, hn.high)
	delete(t.unique, t.hbuff)
}

func (t *table) level(n int) int32 { return t.nodes[n].level }
func (t *table) low(n int) int     { return t.nodes[n].low }
func (t *table) high(n int) int    { return t.nodes[n].high }

// makenode returns the node for (level, low, high), reusing an existing one
// from the unique table when possible, garbage collecting or growing the
// table when the unique table has no free slot left. refstack lists node
// ids that must survive a garbage collection although their reference count
// may be zero (e.g. operands and partial results of the operation in
// progress); nodes held by live Bdd values survive through their reference
// count.
func (t *table) makenode(level int32, low, high int, refstack []int) (int, error) {
	if low == high {
		return low, nil
	}
	if res, ok := t.nodehash(level, low, high); ok {
		return res, nil
	}
	var err error
	if t.freepos == 0 {
		t.gbc(refstack)
		err = errReset
		if (t.freenum*100)/len(t.nodes) <= t.minfreenodes {
			err = t.noderesize()
			if err != errResize {
				return -1, errMemory
			}
		}
		if t.freepos == 0 {
			return -1, errMemory
		}
	}
	t.produced++
	return t.setnode(level, low, high, 0), err
}

// gbc performs a mark/sweep garbage collection: nodes reachable from
// refstack or with a positive reference count survive, everything else is
// reclaimed into the free list.
func (t *table) gbc(refstack []int) {
	t.gchistory = append(t.gchistory, gcpoint{nodes: len(t.nodes), freenodes: t.freenum})
	log.Tracef("bdd: gc starting, %d nodes, %d free", len(t.nodes), t.freenum)
	for _, r := range refstack {
		t.markrec(r)
	}
	for k := range t.nodes {
		if t.nodes[k].refcou > 0 {
			t.markrec(k)
		}
	}
	t.freepos = 0
	t.freenum = 0
	for n := len(t.nodes) - 1; n > 1; n-- {
		if t.ismarked(n) && t.nodes[n].low != -1 {
			t.unmarknode(n)
		} else {
			t.delnode(t.nodes[n])
			t.nodes[n].low = -1
			t.nodes[n].high = t.freepos
			t.freepos = n
			t.freenum++
		}
	}
	log.Tracef("bdd: gc done, %d free of %d", t.freenum, len(t.nodes))
}

func (t *table) markrec(n int) {
	if n < 2 || t.ismarked(n) || t.nodes[n].low == -1 {
		return
	}
	t.marknode(n)
	t.markrec(t.nodes[n].low)
	t.markrec(t.nodes[n].high)
}

// noderesize doubles the node table (bounded by maxnodesize/maxnodeincrease)
// when too few free nodes remain after a collection.
func (t *table) noderesize() error {
	oldsize := len(t.nodes)
	nodesize := oldsize
	if oldsize >= t.maxnodesize && t.maxnodesize > 0 {
		return errMemory
	}
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if t.maxnodeincrease > 0 && nodesize > oldsize+t.maxnodeincrease {
		nodesize = oldsize + t.maxnodeincrease
	}
	if nodesize > t.maxnodesize && t.maxnodesize > 0 {
		nodesize = t.maxnodesize
	}
	if nodesize <= oldsize {
		return errMemory
	}

	old := t.nodes
	t.nodes = make([]huddnode, nodesize)
	copy(t.nodes, old)
	for n := oldsize; n < nodesize; n++ {
		t.nodes[n] = huddnode{level: 0, low: -1, high: n + 1}
	}
	t.nodes[nodesize-1].high = t.freepos
	t.freepos = oldsize
	t.freenum += nodesize - oldsize
	log.Debugf("bdd: node table resized from %d to %d", oldsize, nodesize)
	return errResize
}

// stats reports the table size, the number of nodes produced and the number
// of free nodes, for diagnostics; it has no caller in this package and is not
// exposed as part of the exported BddVariableSet API.
func (t *table) stats() (nodes, produced, free int) {
	return len(t.nodes), t.produced, t.freenum
}

// pin makes sure the finalizer attached to a constant/variable node never
// fires by using the max reference count, matching the usual treatment of
// zero/one/var nodes in a hash-consed BDD table.
func pin(t *table, n int) {
	t.nodes[n].refcou = _MAXREFCOUNT
}
