package automata

import "github.com/bits-and-blooms/bitset"

// Union returns an automaton accepting any string accepted by a or b.
// A fresh start state reaches both operands' starts over epsilon and a
// fresh accept state collects both operands' accepting states; operand
// state spaces are kept apart by prefixes, so identical identifiers in
// a and b never merge.
func Union(a, b *Automaton) *Automaton {
	res := newBuilder()
	start := res.state("u0")
	accept := res.state("u1")

	aStart, aAccepts := res.copyInto(a, "a.")
	bStart, bAccepts := res.copyInto(b, "b.")

	res.addEdge(start, Epsilon, aStart)
	res.addEdge(start, Epsilon, bStart)
	for _, s := range aAccepts {
		res.addEdge(s, Epsilon, accept)
	}
	for _, s := range bAccepts {
		res.addEdge(s, Epsilon, accept)
	}

	res.setStart(start)
	res.setAccept(accept, true)
	return res.finish()
}

// Concat returns an automaton accepting a's language followed by b's:
// every accepting state of a reaches b's start over epsilon and loses
// its own accepting status.
func Concat(a, b *Automaton) *Automaton {
	res := newBuilder()

	aStart, aAccepts := res.copyInto(a, "a.")
	bStart, bAccepts := res.copyInto(b, "b.")

	for _, s := range aAccepts {
		res.addEdge(s, Epsilon, bStart)
	}

	res.setStart(aStart)
	for _, s := range bAccepts {
		res.setAccept(s, true)
	}
	return res.finish()
}

// Star wraps a in the Kleene construction, accepting zero or more
// repetitions of a's language.
func Star(a *Automaton) *Automaton {
	res := newBuilder()
	start := res.state("k0")
	accept := res.state("k1")

	aStart, aAccepts := res.copyInto(a, "a.")

	res.addEdge(start, Epsilon, aStart)
	res.addEdge(start, Epsilon, accept)
	for _, s := range aAccepts {
		res.addEdge(s, Epsilon, aStart)
		res.addEdge(s, Epsilon, accept)
	}

	res.setStart(start)
	res.setAccept(accept, true)
	return res.finish()
}

// IsEmpty reports whether a accepts no strings at all, i.e. no
// accepting state is reachable from the start.
func IsEmpty(a *Automaton) bool {
	seen := bitset.New(uint(len(a.names)))
	seen.Set(uint(a.start))
	work := []int{a.start}

	for len(work) > 0 {
		s := work[0]
		work = work[1:]
		if a.accept.Test(uint(s)) {
			return false
		}
		for _, dests := range a.edges[s] {
			for _, d := range dests {
				if !seen.Test(uint(d)) {
					seen.Set(uint(d))
					work = append(work, d)
				}
			}
		}
	}
	return true
}

// RemoveDeadStates returns an automaton keeping only states that are
// reachable from the start and can reach an accepting state. The start
// state itself is always kept so the result stays well formed even when
// the language is empty.
func RemoveDeadStates(a *Automaton) *Automaton {
	live := a.reachableFromStart()
	live.InPlaceIntersection(a.reachingAccept())
	live.Set(uint(a.start))

	b := newBuilder()
	for i, name := range a.names {
		if live.Test(uint(i)) {
			b.state(name)
		}
	}
	for i := range a.names {
		if !live.Test(uint(i)) {
			continue
		}
		from := b.index[a.names[i]]
		for c, dests := range a.edges[i] {
			for _, d := range dests {
				if live.Test(uint(d)) {
					b.addEdge(from, c, b.index[a.names[d]])
				}
			}
		}
	}
	b.setStart(b.index[a.names[a.start]])
	for i, ok := a.accept.NextSet(0); ok; i, ok = a.accept.NextSet(i + 1) {
		if live.Test(i) {
			b.setAccept(b.index[a.names[i]], true)
		}
	}
	return b.finish()
}

func (a *Automaton) reachableFromStart() *bitset.BitSet {
	live := bitset.New(uint(len(a.names)))
	live.Set(uint(a.start))
	work := []int{a.start}

	for len(work) > 0 {
		s := work[0]
		work = work[1:]
		for _, dests := range a.edges[s] {
			for _, d := range dests {
				if !live.Test(uint(d)) {
					live.Set(uint(d))
					work = append(work, d)
				}
			}
		}
	}
	return live
}

func (a *Automaton) reachingAccept() *bitset.BitSet {
	rev := make([][]int, len(a.names))
	for i := range a.names {
		for _, dests := range a.edges[i] {
			for _, d := range dests {
				rev[d] = append(rev[d], i)
			}
		}
	}

	live := bitset.New(uint(len(a.names)))
	var work []int
	for i, ok := a.accept.NextSet(0); ok; i, ok = a.accept.NextSet(i + 1) {
		live.Set(i)
		work = append(work, int(i))
	}

	for len(work) > 0 {
		s := work[0]
		work = work[1:]
		for _, p := range rev[s] {
			if !live.Test(uint(p)) {
				live.Set(uint(p))
				work = append(work, p)
			}
		}
	}
	return live
}
