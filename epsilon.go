package automata

import "github.com/bits-and-blooms/bitset"

// epsilonClosure grows set in place until it is closed under epsilon
// transitions. Worklist based, so epsilon cycles terminate.
func (a *Automaton) epsilonClosure(set *bitset.BitSet) {
	if !a.hasEpsilon {
		return
	}
	work := make([]int, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		work = append(work, int(i))
	}
	for len(work) > 0 {
		s := work[0]
		work = work[1:]
		for _, d := range a.dests(s, Epsilon) {
			if !set.Test(uint(d)) {
				set.Set(uint(d))
				work = append(work, d)
			}
		}
	}
}

// closureOf returns the epsilon-closure of the single state i.
func (a *Automaton) closureOf(i int) *bitset.BitSet {
	set := bitset.New(uint(len(a.names)))
	set.Set(uint(i))
	a.epsilonClosure(set)
	return set
}

// RemoveEpsilons returns a language-equivalent automaton without epsilon
// transitions. For every state s and non-epsilon symbol c the result has
// a transition to each state reachable as closure(s) --c--> closure of
// the destination; s accepts in the result iff its closure intersects
// the original accepting set. No symbol outside the original alphabet is
// introduced. Already epsilon-free automata are returned unchanged.
func RemoveEpsilons(a *Automaton) *Automaton {
	if !a.hasEpsilon {
		return a
	}

	b := newBuilder()
	for _, name := range a.names {
		b.state(name)
	}
	b.setStart(a.start)

	for i := range a.names {
		cl := a.closureOf(i)
		if cl.IntersectionCardinality(a.accept) > 0 {
			b.setAccept(i, true)
		}
		for _, c := range a.alphabet {
			step := bitset.New(uint(len(a.names)))
			for s, ok := cl.NextSet(0); ok; s, ok = cl.NextSet(s + 1) {
				for _, d := range a.dests(int(s), c) {
					step.Set(uint(d))
				}
			}
			a.epsilonClosure(step)
			for t, ok := step.NextSet(0); ok; t, ok = step.NextSet(t + 1) {
				b.addEdge(i, c, int(t))
			}
		}
	}

	return b.finish()
}
