package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"wfst/internal/fst"
	"wfst/internal/grammarlang"
	"wfst/internal/replace"
	"wfst/internal/semiring"
)

func main() {
	root := flag.Int("root", -1, "component label to root the result at, overriding the grammar file's own root declaration (-1 to use the file's root)")
	epsilonOnReplace := flag.Bool("epsilon-on-replace", false, "epsilon both labels of call transitions instead of the default policy, which keeps the call's input label (return transitions carry epsilon labels either way)")
	materializeBound := flag.Int("materialize", -1, "stop after at most this many result states (-1 for unbounded)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: replace [-root N] [-epsilon-on-replace] [-materialize N] <file.repg>")
		os.Exit(1)
	}

	path := flag.Arg(0)
	program, err := grammarlang.ParseFile(path)
	if err != nil {
		// grammarlang.ParseFile already printed the error (a caret-style
		// diagnostic for syntax errors).
		os.Exit(1)
	}

	var engine *replace.Engine[semiring.Tropical]
	if *root >= 0 {
		engine, err = grammarlang.BuildWithRoot(program, *root, *epsilonOnReplace)
	} else {
		engine, err = grammarlang.Build(program, *epsilonOnReplace)
	}
	if err != nil {
		color.Red("construction failed: %s", err)
		os.Exit(1)
	}

	facade := replace.NewFacade(engine)
	var result *fst.MutableFst[semiring.Tropical]
	if *materializeBound >= 0 {
		result = facade.MaterializeBounded(*materializeBound)
	} else {
		result = facade.Materialize()
	}

	fmt.Printf("states: %d\n", result.NumStates())
	start, ok := result.Start()
	if !ok {
		color.Yellow("result has no reachable states")
		return
	}
	fmt.Printf("start: %d\n", start)

	color.Green("done: %s", path)
}
