package automata

import "fmt"

// MalformedAutomatonError reports structurally invalid construction
// input: dangling state references, a missing start state, or a
// transition without a symbol.
type MalformedAutomatonError struct {
	Reason string
}

func (e *MalformedAutomatonError) Error() string {
	return "malformed automaton: " + e.Reason
}

// RegexSyntaxError reports an unparseable regular expression.
type RegexSyntaxError struct {
	Pattern string
	Reason  string
}

func (e *RegexSyntaxError) Error() string {
	return fmt.Sprintf("regex %q: %s", e.Pattern, e.Reason)
}

// PreconditionError reports an algorithm invoked on an automaton that
// violates the algorithm's documented precondition.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Reason
}

// AssertionMismatchError reports a string whose acceptance verdict
// differed from the expectation handed to Check.
type AssertionMismatchError struct {
	Input string
	Want  bool
	Got   bool
}

func (e *AssertionMismatchError) Error() string {
	verdict := "rejected"
	if e.Got {
		verdict = "accepted"
	}
	return fmt.Sprintf("input %q: want accept=%v, automaton %s it", e.Input, e.Want, verdict)
}
