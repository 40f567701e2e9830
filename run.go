package automata

import "github.com/bits-and-blooms/bitset"

// Run simulates a against input and reports whether the final state set
// intersects the accepting set. Each step replaces the current state set
// with the union of destinations over the next input symbol, so the same
// walk handles deterministic and nondeterministic automata. When epsilon
// transitions are present the closure of the current set is taken before
// the first step and after every step.
func Run(a *Automaton, input string) bool {
	current := bitset.New(uint(len(a.names)))
	current.Set(uint(a.start))
	a.epsilonClosure(current)

	for _, c := range input {
		next := bitset.New(uint(len(a.names)))
		for i, ok := current.NextSet(0); ok; i, ok = current.NextSet(i + 1) {
			for _, d := range a.dests(int(i), c) {
				next.Set(uint(d))
			}
		}
		a.epsilonClosure(next)
		current = next
		if current.None() {
			return false
		}
	}

	return current.IntersectionCardinality(a.accept) > 0
}

// Check runs every string in accept and reject through a and returns an
// AssertionMismatchError for the first verdict that differs from the
// expectation. A mismatch means the automaton was built wrong; callers
// treat it as fatal, not as a condition to recover from.
func Check(a *Automaton, accept, reject []string) error {
	for _, w := range accept {
		if !Run(a, w) {
			return &AssertionMismatchError{Input: w, Want: true, Got: false}
		}
	}
	for _, w := range reject {
		if Run(a, w) {
			return &AssertionMismatchError{Input: w, Want: false, Got: true}
		}
	}
	return nil
}
