package automata

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The restricted regular-expression grammar:
//
//	expr   := term ('+' term)*
//	term   := factor factor*
//	factor := atom '*'?
//	atom   := '(' expr ')' | literal | epsilon
//
// '+' is union, juxtaposition is concatenation, '*' is the postfix
// Kleene star and '!' (or 'ε') is the explicit empty-string literal.
// Any other non-whitespace rune is a literal of the alphabet.
var (
	regexLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Epsilon", Pattern: `[!ε]`},
		{Name: "Star", Pattern: `\*`},
		{Name: "Union", Pattern: `\+`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "Literal", Pattern: `[^()+*!ε\s]`},
	})

	regexParser = participle.MustBuild[reExpr](participle.Lexer(regexLexer))
)

type reExpr struct {
	First *reTerm   `parser:"@@"`
	Rest  []*reTerm `parser:"( Union @@ )*"`
}

type reTerm struct {
	Factors []*reFactor `parser:"@@+"`
}

type reFactor struct {
	Atom *reAtom `parser:"@@"`
	Star bool    `parser:"@Star?"`
}

type reAtom struct {
	Group   *reExpr `parser:"LParen @@ RParen"`
	Epsilon bool    `parser:"| @Epsilon"`
	Literal string  `parser:"| @Literal"`
}

// CompileRegex compiles pattern into an automaton via Thompson's
// construction. The result generally contains epsilon transitions and
// nondeterminism; run RemoveEpsilons or Determinize afterwards when that
// matters. The empty pattern compiles to the empty-string language.
// Unbalanced groups, dangling operators and unrecognized input surface
// as a RegexSyntaxError.
func CompileRegex(pattern string) (*Automaton, error) {
	rc := &regexCompiler{b: newBuilder()}

	if pattern == "" {
		return rc.finish(rc.epsilon()), nil
	}

	ast, err := regexParser.ParseString("", pattern)
	if err != nil {
		return nil, &RegexSyntaxError{Pattern: pattern, Reason: err.Error()}
	}
	return rc.finish(rc.expr(ast)), nil
}

// regexCompiler folds a parse tree into automaton fragments, allocating
// state names that are unique across the whole compiled automaton so
// unrelated sub-expressions can never merge.
type regexCompiler struct {
	b    *builder
	next int
}

// frag is a partial automaton: one entry state and the accepting states
// of its sub-expression.
type frag struct {
	start   int
	accepts []int
}

func (rc *regexCompiler) fresh() int {
	i := rc.b.state("s" + strconv.Itoa(rc.next))
	rc.next++
	return i
}

func (rc *regexCompiler) finish(f frag) *Automaton {
	rc.b.setStart(f.start)
	for _, s := range f.accepts {
		rc.b.setAccept(s, true)
	}
	return rc.b.finish()
}

// literal builds two fresh states joined by one transition on c.
func (rc *regexCompiler) literal(c rune) frag {
	from, to := rc.fresh(), rc.fresh()
	rc.b.addEdge(from, c, to)
	return frag{start: from, accepts: []int{to}}
}

func (rc *regexCompiler) epsilon() frag {
	from, to := rc.fresh(), rc.fresh()
	rc.b.addEdge(from, Epsilon, to)
	return frag{start: from, accepts: []int{to}}
}

// concat wires every accepting state of a to the start of b via
// epsilon; a's accepting states lose accepting status because only
// b's accepts survive in the fragment.
func (rc *regexCompiler) concat(a, b frag) frag {
	for _, s := range a.accepts {
		rc.b.addEdge(s, Epsilon, b.start)
	}
	return frag{start: a.start, accepts: b.accepts}
}

// union adds a fresh start with epsilons into both operands and a fresh
// accept fed by both operands' accepting states.
func (rc *regexCompiler) union(a, b frag) frag {
	start, accept := rc.fresh(), rc.fresh()
	rc.b.addEdge(start, Epsilon, a.start)
	rc.b.addEdge(start, Epsilon, b.start)
	for _, s := range a.accepts {
		rc.b.addEdge(s, Epsilon, accept)
	}
	for _, s := range b.accepts {
		rc.b.addEdge(s, Epsilon, accept)
	}
	return frag{start: start, accepts: []int{accept}}
}

// star wraps a in the Kleene construction: skip it entirely, or loop
// its accepting states back to its start any number of times.
func (rc *regexCompiler) star(a frag) frag {
	start, accept := rc.fresh(), rc.fresh()
	rc.b.addEdge(start, Epsilon, a.start)
	rc.b.addEdge(start, Epsilon, accept)
	for _, s := range a.accepts {
		rc.b.addEdge(s, Epsilon, a.start)
		rc.b.addEdge(s, Epsilon, accept)
	}
	return frag{start: start, accepts: []int{accept}}
}

func (rc *regexCompiler) expr(e *reExpr) frag {
	f := rc.term(e.First)
	for _, t := range e.Rest {
		f = rc.union(f, rc.term(t))
	}
	return f
}

func (rc *regexCompiler) term(t *reTerm) frag {
	f := rc.factor(t.Factors[0])
	for _, fa := range t.Factors[1:] {
		f = rc.concat(f, rc.factor(fa))
	}
	return f
}

func (rc *regexCompiler) factor(f *reFactor) frag {
	a := rc.atom(f.Atom)
	if f.Star {
		a = rc.star(a)
	}
	return a
}

func (rc *regexCompiler) atom(a *reAtom) frag {
	switch {
	case a.Group != nil:
		return rc.expr(a.Group)
	case a.Epsilon:
		return rc.epsilon()
	default:
		return rc.literal([]rune(a.Literal)[0])
	}
}
