package main

import (
	"fmt"
	"os"

	"github.com/nfakit/automata"
	"github.com/nfakit/automata/export"
)

// writeOut renders a to stdout in the requested format.
func writeOut(format string, a *automata.Automaton) error {
	switch format {
	case "dot":
		return export.WriteDOT(os.Stdout, a)
	case "jflap":
		return export.WriteJFLAP(os.Stdout, a)
	case "triples":
		fmt.Printf("start: %s\n", a.Start())
		fmt.Printf("accept: %v\n", a.AcceptStates())
		for _, t := range a.Transitions() {
			fmt.Printf("%s %c %s\n", t.From, t.Symbol, t.To)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want dot, jflap or triples)", format)
	}
}
