// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command paranet loads a parametrized asynchronous Boolean network from
// its text description format and runs forward or backward symbolic
// reachability from a given initial state, reporting the number of
// reachable states and whether the admissible parameter set is non-empty.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/dalzilio/paranet/bdd"
	"github.com/dalzilio/paranet/network"
	"github.com/dalzilio/paranet/params"
	"github.com/dalzilio/paranet/reach"
	"github.com/dalzilio/paranet/symbolic"
)

var (
	pathFlag      = flag.String("network", "", "path to a network description file")
	backwardFlag  = flag.Bool("backward", false, "run backward reachability instead of forward")
	workersFlag   = flag.Int("workers", 1, "number of reachability worker goroutines")
	initStateFlag = flag.Int("init", 0, "initial state (integer bit-encoding) to seed reachability from")
	verboseFlag   = flag.Bool("verbose", false, "enable debug logging")
)

func main() {
	flag.Parse()
	if *pathFlag == "" {
		fmt.Fprintln(os.Stderr, "paranet: -network is required")
		os.Exit(2)
	}

	if *verboseFlag {
		backend := btclog.NewBackend(os.Stderr)
		bddLog, reachLog := backend.Logger("BDD"), backend.Logger("RCH")
		bddLog.SetLevel(btclog.LevelDebug)
		reachLog.SetLevel(btclog.LevelDebug)
		bdd.UseLogger(bddLog)
		reach.UseLogger(reachLog)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "paranet: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	f, err := os.Open(*pathFlag)
	if err != nil {
		return err
	}
	defer f.Close()

	bn, err := network.LoadNetwork(f)
	if err != nil {
		return err
	}

	sg, err := symbolic.New(bn)
	if err != nil {
		return err
	}

	if *initStateFlag < 0 || *initStateFlag >= sg.NumStates() {
		return fmt.Errorf("init state %d out of range [0,%d)", *initStateFlag, sg.NumStates())
	}

	init := make([]params.BddParams, sg.NumStates())
	for i := range init {
		init[i] = sg.EmptyParams()
	}
	init[*initStateFlag] = sg.UnitParams()

	op := sg.Fwd()
	direction := "forward"
	if *backwardFlag {
		op = sg.Bwd()
		direction = "backward"
	}

	out := reach.Reach(sg, op, init, *workersFlag)

	reachable := 0
	for _, lbl := range out {
		if !lbl.IsEmpty() {
			reachable++
		}
	}

	fmt.Printf("network: %d variables, %d parameters, unit set non-empty: %v\n",
		bn.Graph.NumVars(), len(bn.Parameters()), !sg.UnitParams().IsEmpty())
	fmt.Printf("%s reachability from state %d with %d worker(s): %d/%d states reachable\n",
		direction, *initStateFlag, *workersFlag, reachable, sg.NumStates())
	return nil
}
