package automata

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the reserved symbol for transitions that consume no input.
const Epsilon rune = 'ε'

// Triple is one entry of the construction input. Label is a string of
// symbols; each character expands into its own single-symbol transition
// sharing From and To. The epsilon marker must be the only character of
// its label.
type Triple struct {
	From  string
	Label string
	To    string
}

// Transition is a single-symbol edge between two states.
type Transition struct {
	From   string
	Symbol rune
	To     string
}

// Automaton is a nondeterministic finite automaton over single-rune
// symbols. A DFA is the special case where no state has two transitions
// on the same symbol and no epsilon transitions exist, so everything in
// this package runs on both. Values are immutable once constructed;
// every algorithm returns a freshly built Automaton.
type Automaton struct {
	// State identifiers in first-mention order. The slice index is the
	// internal state number the algorithms work with; the identifier is
	// the state's public identity.
	names []string
	index map[string]int

	// Per state: symbol to sorted, de-duplicated destination indexes.
	edges []map[rune][]int

	start    int
	accept   *bitset.BitSet
	alphabet []rune

	deterministic bool
	hasEpsilon    bool
}

type options struct {
	start     string
	hasStart  bool
	accept    []string
	hasAccept bool
}

// Option configures New.
type Option func(*options)

// WithStart overrides the default start state (the source of the first
// transition listed).
func WithStart(state string) Option {
	return func(o *options) {
		o.start = state
		o.hasStart = true
	}
}

// WithAccept overrides the default accepting set (the destination of the
// last transition listed). Calling it with no states yields an automaton
// that accepts nothing.
func WithAccept(states ...string) Option {
	return func(o *options) {
		o.accept = states
		o.hasAccept = true
	}
}

// New builds an automaton from an ordered transition list. Multi-rune
// labels are expanded into one transition per rune before anything else
// sees the automaton. The state set is whatever the transitions mention,
// plus the explicit start of a transitionless one-state automaton.
func New(triples []Triple, opts ...Option) (*Automaton, error) {
	opt := &options{}
	for _, fn := range opts {
		fn(opt)
	}

	if len(triples) == 0 && !opt.hasStart {
		return nil, &MalformedAutomatonError{Reason: "empty transition list and no explicit start state"}
	}

	b := newBuilder()
	for _, tr := range triples {
		label := []rune(tr.Label)
		if len(label) == 0 {
			return nil, &MalformedAutomatonError{
				Reason: fmt.Sprintf("transition %s -> %s carries no symbol", tr.From, tr.To),
			}
		}
		if len(label) > 1 && slices.Contains(label, Epsilon) {
			return nil, &MalformedAutomatonError{
				Reason: fmt.Sprintf("transition %s -> %s mixes %c with regular symbols", tr.From, tr.To, Epsilon),
			}
		}
		from := b.state(tr.From)
		to := b.state(tr.To)
		for _, c := range label {
			b.addEdge(from, c, to)
		}
	}

	if opt.hasStart {
		i, ok := b.index[opt.start]
		if !ok {
			if len(triples) > 0 {
				return nil, &MalformedAutomatonError{
					Reason: fmt.Sprintf("start state %q appears in no transition", opt.start),
				}
			}
			i = b.state(opt.start)
		}
		b.setStart(i)
	} else {
		b.setStart(0)
	}

	if opt.hasAccept {
		for _, name := range opt.accept {
			i, ok := b.index[name]
			if !ok {
				return nil, &MalformedAutomatonError{
					Reason: fmt.Sprintf("accepting state %q appears in no transition", name),
				}
			}
			b.setAccept(i, true)
		}
	} else if len(triples) > 0 {
		b.setAccept(b.index[triples[len(triples)-1].To], true)
	}

	return b.finish(), nil
}

// NumStates reports how many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.names)
}

// NumTransitions reports how many single-symbol transitions this
// automaton has.
func (a *Automaton) NumTransitions() int {
	count := 0
	for _, m := range a.edges {
		for _, dests := range m {
			count += len(dests)
		}
	}
	return count
}

// States returns every state identifier in first-mention order.
func (a *Automaton) States() []string {
	return slices.Clone(a.names)
}

// Start returns the start state identifier.
func (a *Automaton) Start() string {
	return a.names[a.start]
}

// IsAccept reports whether state is accepting. Unknown identifiers are
// not accepting.
func (a *Automaton) IsAccept(state string) bool {
	i, ok := a.index[state]
	return ok && a.accept.Test(uint(i))
}

// AcceptStates returns the accepting states in first-mention order.
func (a *Automaton) AcceptStates() []string {
	out := make([]string, 0, a.accept.Count())
	for i, ok := a.accept.NextSet(0); ok; i, ok = a.accept.NextSet(i + 1) {
		out = append(out, a.names[i])
	}
	return out
}

// Alphabet returns the sorted set of non-epsilon symbols appearing on
// any transition.
func (a *Automaton) Alphabet() []rune {
	return slices.Clone(a.alphabet)
}

// Transitions returns every transition, grouped by source state in
// first-mention order and sorted by symbol within a state.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, a.NumTransitions())
	for i := range a.names {
		out = append(out, a.transitionsFrom(i)...)
	}
	return out
}

// TransitionsFrom returns the outgoing transitions of one state, sorted
// by symbol.
func (a *Automaton) TransitionsFrom(state string) []Transition {
	i, ok := a.index[state]
	if !ok {
		return nil
	}
	return a.transitionsFrom(i)
}

// Destinations returns the states reachable from state over a single
// transition on symbol.
func (a *Automaton) Destinations(state string, symbol rune) []string {
	i, ok := a.index[state]
	if !ok {
		return nil
	}
	dests := a.edges[i][symbol]
	out := make([]string, len(dests))
	for k, d := range dests {
		out[k] = a.names[d]
	}
	return out
}

// IsDeterministic reports whether no state has two transitions on the
// same symbol and no transition carries the epsilon marker.
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

// HasEpsilon reports whether any transition carries the epsilon marker.
func (a *Automaton) HasEpsilon() bool {
	return a.hasEpsilon
}

func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "start=%s accept=%v\n", a.Start(), a.AcceptStates())
	for _, t := range a.Transitions() {
		fmt.Fprintf(&sb, "  %s -%c-> %s\n", t.From, t.Symbol, t.To)
	}
	return sb.String()
}

func (a *Automaton) transitionsFrom(i int) []Transition {
	var out []Transition
	for _, c := range a.symbolsFrom(i) {
		for _, d := range a.edges[i][c] {
			out = append(out, Transition{From: a.names[i], Symbol: c, To: a.names[d]})
		}
	}
	return out
}

// dests returns the internal destination indexes of (i, symbol).
func (a *Automaton) dests(i int, symbol rune) []int {
	return a.edges[i][symbol]
}

// symbolsFrom returns the sorted symbols leaving state i, epsilon
// included.
func (a *Automaton) symbolsFrom(i int) []rune {
	syms := make([]rune, 0, len(a.edges[i]))
	for c := range a.edges[i] {
		syms = append(syms, c)
	}
	slices.Sort(syms)
	return syms
}
