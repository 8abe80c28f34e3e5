// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "errors"

// huddsize is the number of bytes used to hash a (level, low, high) triplet.
// It depends on the machine word size.
const huddsize = (2*(32<<(^uint(0)>>32&1)) + 32) / 8 // 12 (32 bits) or 20 (64 bits)

// _MINFREENODES is the minimal percentage of free nodes that has to be left
// after a garbage collection, below which we attempt a resize.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of variables (levels) supported by a
// BddVariableSet. We reserve a handful of high bits in refcou for marking.
const _MAXVAR int = 0x1FFFFF

// _MAXREFCOUNT is the maximal value of a node's reference counter. Nodes
// that reach it (constants, variables) are considered permanently pinned.
const _MAXREFCOUNT int32 = 0x3FF

// _DEFAULTMAXNODEINC is the default cap on how many nodes a single resize
// may add (approximately one million).
const _DEFAULTMAXNODEINC int = 1 << 20

var errMemory = errors.New("bdd: unable to free memory or resize node table")
var errResize = errors.New("bdd: should resize cache")
var errReset = errors.New("bdd: should reset cache")
var errTooManyVars = errors.New("bdd: too many variables requested")
