// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// configs holds the tunable parameters of a BddVariableSet, set through
// functional options passed to VariableSetBuilder.Build.
type configs struct {
	varnum          int // number of BDD variables
	nodesize        int // initial number of nodes in the table
	cachesize       int // initial size of the apply/not operation cache
	cacheratio      int // cache growth ratio (%) set by Cacheratio; not used on resize
	maxnodesize     int // maximum total number of nodes (0 if no limit)
	maxnodeincrease int // maximum number of nodes added at each resize (0 if no limit)
	minfreenodes    int // minimum percentage of free nodes to keep after GC before resizing
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	c.cachesize = 10000
	// we build enough nodes to include the two constants and every variable
	c.nodesize = 2*varnum + 2
	return c
}

// Option configures a BddVariableSet at construction time.
type Option func(*configs)

// Nodesize sets a preferred initial size for the node table. By default we
// create a table just large enough to hold the constants and the declared
// variables; the table grows automatically as needed.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize caps the number of nodes in the BDD. An operation that would
// grow the table past this limit fails instead. The default, zero, means no
// limit.
func Maxnodesize(size int) Option {
	return func(c *configs) { c.maxnodesize = size }
}

// Maxnodeincrease caps how many nodes a single resize may add. We normally
// double the table on resize; this bounds that growth. Zero means no limit.
func Maxnodeincrease(size int) Option {
	return func(c *configs) { c.maxnodeincrease = size }
}

// Minfreenodes sets the percentage of free nodes that must remain after a
// garbage collection before we resize the table. Default is 20%.
func Minfreenodes(ratio int) Option {
	return func(c *configs) { c.minfreenodes = ratio }
}

// Cachesize sets the initial number of entries in the apply/not operation
// cache.
func Cachesize(size int) Option {
	return func(c *configs) { c.cachesize = size }
}

// Cacheratio records a cache growth ratio (%) in the configuration. The
// ratio is not read anywhere: the operation cache keeps its initial size
// when the node table is resized, whatever the value.
func Cacheratio(ratio int) Option {
	return func(c *configs) { c.cacheratio = ratio }
}
