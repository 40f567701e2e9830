package automata

import "strconv"

// Canonicalize returns an equivalent automaton whose states are renamed
// q0, q1, ... in breadth-first discovery order from the start state,
// with symbols visited in sorted order so the numbering is stable across
// runs. States unreachable from the start keep their relative order
// after the reachable ones, so the mapping stays one-to-one. Start and
// accepting status and all transitions are preserved under the
// relabeling; the language is untouched.
func Canonicalize(a *Automaton) *Automaton {
	order := make([]int, 0, len(a.names))
	seen := make([]bool, len(a.names))

	queue := []int{a.start}
	seen[a.start] = true
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, c := range a.symbolsFrom(i) {
			for _, d := range a.edges[i][c] {
				if !seen[d] {
					seen[d] = true
					queue = append(queue, d)
				}
			}
		}
	}
	for i := range a.names {
		if !seen[i] {
			order = append(order, i)
		}
	}

	rename := make([]string, len(a.names))
	for n, i := range order {
		rename[i] = "q" + strconv.Itoa(n)
	}

	b := newBuilder()
	// Intern in discovery order so States() lists q0, q1, ... in order.
	for _, i := range order {
		b.state(rename[i])
	}
	for i := range a.names {
		from := b.index[rename[i]]
		for c, dests := range a.edges[i] {
			for _, d := range dests {
				b.addEdge(from, c, b.index[rename[d]])
			}
		}
	}
	b.setStart(b.index[rename[a.start]])
	for i, ok := a.accept.NextSet(0); ok; i, ok = a.accept.NextSet(i + 1) {
		b.setAccept(b.index[rename[int(i)]], true)
	}
	return b.finish()
}
