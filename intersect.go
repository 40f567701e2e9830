package automata

import "slices"

// Intersect builds the product automaton of a and b: states are pairs,
// a pair accepts iff both components accept, and a transition on a
// symbol exists only where both operands define one (a string must be
// accepted by both, so absence in either kills the path). Operands must
// be epsilon-free and deterministic; Determinize nondeterministic input
// first. Violations are reported as a PreconditionError, never papered
// over.
func Intersect(a, b *Automaton) (*Automaton, error) {
	if a.hasEpsilon || b.hasEpsilon {
		return nil, &PreconditionError{Op: "intersect", Reason: "operands must be epsilon-free"}
	}
	if !a.deterministic || !b.deterministic {
		return nil, &PreconditionError{Op: "intersect", Reason: "operands must be deterministic"}
	}

	alphabet := unionAlphabet(a, b)

	type pair struct{ x, y int }
	name := func(p pair) string {
		return "(" + a.names[p.x] + "," + b.names[p.y] + ")"
	}
	accepting := func(p pair) bool {
		return a.accept.Test(uint(p.x)) && b.accept.Test(uint(p.y))
	}

	res := newBuilder()

	startPair := pair{a.start, b.start}
	start := res.state(name(startPair))
	res.setStart(start)
	res.setAccept(start, accepting(startPair))

	seen := map[pair]int{startPair: start}
	worklist := []pair{startPair}

	for len(worklist) > 0 {
		p := worklist[0]
		worklist = worklist[1:]
		from := seen[p]

		for _, c := range alphabet {
			dx := a.dests(p.x, c)
			dy := b.dests(p.y, c)
			if len(dx) == 0 || len(dy) == 0 {
				continue
			}
			np := pair{dx[0], dy[0]}
			to, ok := seen[np]
			if !ok {
				to = res.state(name(np))
				res.setAccept(to, accepting(np))
				seen[np] = to
				worklist = append(worklist, np)
			}
			res.addEdge(from, c, to)
		}
	}

	return res.finish(), nil
}

// unionAlphabet returns the sorted union of both operands' alphabets.
func unionAlphabet(a, b *Automaton) []rune {
	set := make(map[rune]struct{}, len(a.alphabet)+len(b.alphabet))
	for _, c := range a.alphabet {
		set[c] = struct{}{}
	}
	for _, c := range b.alphabet {
		set[c] = struct{}{}
	}
	out := make([]rune, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
