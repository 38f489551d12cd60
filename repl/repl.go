// Package repl provides an interactive step-through of a Replace result's
// lazy state expansion: load a component-table file once, then walk its
// states one query at a time, watching the engine expand them on demand.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"wfst/internal/grammarlang"
	"wfst/internal/replace"
	"wfst/internal/semiring"
)

const prompt = ">> "

// Start loads path once, builds its Replace engine, and then accepts
// commands on in, printing results to out. Recognised commands:
//
//	<state>      show transitions and final weight for that result state
//	start        show the result's start state
//	quit         exit
func Start(in io.Reader, out io.Writer, path string, epsilonOnReplace bool) error {
	program, err := grammarlang.ParseFile(path)
	if err != nil {
		return err
	}

	engine, err := grammarlang.Build(program, epsilonOnReplace)
	if err != nil {
		return fmt.Errorf("construction failed: %w", err)
	}
	facade := replace.NewFacade(engine)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "quit" || line == "exit":
			return nil
		case line == "start":
			printState(out, facade, facadeStart(facade))
		default:
			state, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(out, "expected a state id, \"start\", or \"quit\": %s\n", err)
				continue
			}
			printState(out, facade, state)
		}
	}
}

func facadeStart(facade *replace.Facade[semiring.Tropical]) int {
	s, ok := facade.Start()
	if !ok {
		return -1
	}
	return s
}

func printState(out io.Writer, facade *replace.Facade[semiring.Tropical], state int) {
	if state < 0 {
		fmt.Fprintln(out, "no reachable start state")
		return
	}

	for _, t := range facade.Transitions(state) {
		fmt.Fprintf(out, "  %d --%d:%d/%v--> %d\n", state, t.ILabel, t.OLabel, t.Weight, t.Next)
	}
	if w, ok := facade.FinalWeight(state); ok {
		fmt.Fprintf(out, "  %d final, weight %v\n", state, w)
	}
}
