// Package export serializes automata into external text formats. It
// consumes only the read-only query surface of the automata package and
// never renders anything itself.
package export

import (
	"fmt"
	"io"

	"github.com/nfakit/automata"
)

// WriteDOT writes a Graphviz digraph of a to w. Accepting states are
// drawn as double circles and an unlabeled point marks the start state.
func WriteDOT(w io.Writer, a *automata.Automaton) error {
	if _, err := fmt.Fprintln(w, "digraph automaton {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "    rankdir=LR;")

	for _, s := range a.States() {
		shape := "circle"
		if a.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    %q [shape=%s];\n", s, shape)
	}
	fmt.Fprintf(w, "    _start [shape=point];\n    _start -> %q;\n", a.Start())

	for _, t := range a.Transitions() {
		fmt.Fprintf(w, "    %q -> %q [label=%q];\n", t.From, t.To, string(t.Symbol))
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
