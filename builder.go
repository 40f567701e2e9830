package automata

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// builder accumulates interned states and raw edges for a new Automaton.
// finish sorts and de-duplicates the edge lists and derives the cached
// alphabet and determinism flags, so algorithms can append edges in any
// order.
type builder struct {
	names  []string
	index  map[string]int
	edges  []map[rune][]int
	accept *bitset.BitSet
	start  int
}

func newBuilder() *builder {
	return &builder{
		index:  make(map[string]int),
		accept: bitset.New(8),
	}
}

// state interns name and returns its internal number.
func (b *builder) state(name string) int {
	if i, ok := b.index[name]; ok {
		return i
	}
	i := len(b.names)
	b.names = append(b.names, name)
	b.index[name] = i
	b.edges = append(b.edges, make(map[rune][]int))
	return i
}

func (b *builder) addEdge(from int, symbol rune, to int) {
	b.edges[from][symbol] = append(b.edges[from][symbol], to)
}

func (b *builder) setAccept(i int, accept bool) {
	b.accept.SetTo(uint(i), accept)
}

func (b *builder) setStart(i int) {
	b.start = i
}

// copyInto interns every state of a under prefix and copies all edges.
// Returns a's start and accepting states as indexes into b. Accepting
// status is not carried over; the caller decides what accepts in the
// combined automaton.
func (b *builder) copyInto(a *Automaton, prefix string) (int, []int) {
	mapped := make([]int, len(a.names))
	for i, name := range a.names {
		mapped[i] = b.state(prefix + name)
	}
	for i := range a.names {
		for c, dests := range a.edges[i] {
			for _, d := range dests {
				b.addEdge(mapped[i], c, mapped[d])
			}
		}
	}
	var accepts []int
	for i, ok := a.accept.NextSet(0); ok; i, ok = a.accept.NextSet(i + 1) {
		accepts = append(accepts, mapped[i])
	}
	return mapped[a.start], accepts
}

func (b *builder) finish() *Automaton {
	alphabet := make(map[rune]struct{})
	deterministic := true
	hasEpsilon := false

	for _, m := range b.edges {
		for c, dests := range m {
			slices.Sort(dests)
			m[c] = slices.Compact(dests)
			if c == Epsilon {
				hasEpsilon = true
				deterministic = false
				continue
			}
			alphabet[c] = struct{}{}
			if len(m[c]) > 1 {
				deterministic = false
			}
		}
	}

	sorted := make([]rune, 0, len(alphabet))
	for c := range alphabet {
		sorted = append(sorted, c)
	}
	slices.Sort(sorted)

	return &Automaton{
		names:         b.names,
		index:         b.index,
		edges:         b.edges,
		start:         b.start,
		accept:        b.accept,
		alphabet:      sorted,
		deterministic: deterministic,
		hasEpsilon:    hasEpsilon,
	}
}
