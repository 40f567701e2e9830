package automata

import (
	"slices"
	"strings"
)

// DeadState is the identifier reserved for the sink state the
// determinizer adds when a subset has no destination on some symbol.
// It is never accepting and loops to itself on every alphabet symbol,
// which keeps the result total without growing the subset space.
const DeadState = "∅"

// Determinize runs the subset construction and returns a deterministic,
// total automaton accepting the same language as a: for every state and
// every alphabet symbol the result has exactly one outgoing transition.
// Epsilon transitions are eliminated first when present. Subset states
// get composite identifiers built from their members ("{q0,q1}");
// singleton subsets keep the member's own name. Run Canonicalize
// afterwards for compact names.
func Determinize(a *Automaton) *Automaton {
	if a.hasEpsilon {
		a = RemoveEpsilons(a)
	}

	b := newBuilder()

	initial := NewStateSet()
	initial.Incr(a.start)

	start := b.state(subsetName(a, initial.GetArray()))
	b.setStart(start)
	b.setAccept(start, a.accept.Test(uint(a.start)))

	init := initial.Freeze(start)
	seen := NewHashMap[int](WithCapacity(4))
	seen.Set(init, start)

	worklist := []*FrozenIntSet{init}
	dead := -1

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for _, c := range a.alphabet {
			next := NewStateSet()
			for _, s := range cur.GetArray() {
				for _, d := range a.dests(s, c) {
					next.Incr(d)
				}
			}

			if next.Size() == 0 {
				if dead < 0 {
					dead = b.state(DeadState)
				}
				b.addEdge(cur.State(), c, dead)
				continue
			}

			idx, ok := seen.Get(next)
			if !ok {
				idx = b.state(subsetName(a, next.GetArray()))
				for _, s := range next.GetArray() {
					if a.accept.Test(uint(s)) {
						b.setAccept(idx, true)
						break
					}
				}
				frozen := next.Freeze(idx)
				seen.Set(frozen, idx)
				worklist = append(worklist, frozen)
			}
			b.addEdge(cur.State(), c, idx)
		}
	}

	if dead >= 0 {
		for _, c := range a.alphabet {
			b.addEdge(dead, c, dead)
		}
	}

	return b.finish()
}

// subsetName renders the composite identifier for a set of input
// states. Member names are sorted so the identifier is independent of
// discovery order.
func subsetName(a *Automaton, members []int) string {
	if len(members) == 1 {
		return a.names[members[0]]
	}
	names := make([]string, len(members))
	for i, s := range members {
		names[i] = a.names[s]
	}
	slices.Sort(names)
	return "{" + strings.Join(names, ",") + "}"
}
