package automata

import "strconv"

// MakeEmpty returns a single-state automaton that accepts no strings.
func MakeEmpty() *Automaton {
	b := newBuilder()
	b.setStart(b.state("q0"))
	return b.finish()
}

// MakeEmptyString returns an automaton that accepts only the empty
// string.
func MakeEmptyString() *Automaton {
	b := newBuilder()
	s := b.state("q0")
	b.setStart(s)
	b.setAccept(s, true)
	return b.finish()
}

// MakeString returns a deterministic automaton that accepts exactly s.
func MakeString(s string) *Automaton {
	b := newBuilder()
	prev := b.state("q0")
	b.setStart(prev)
	n := 1
	for _, c := range s {
		next := b.state("q" + strconv.Itoa(n))
		b.addEdge(prev, c, next)
		prev = next
		n++
	}
	b.setAccept(prev, true)
	return b.finish()
}
