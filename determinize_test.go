package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func emailValidator(t *testing.T) *Automaton {
	t.Helper()

	const word = "abcdefghijklmnopqrstuvwxyz0123456789"
	a, err := New([]Triple{
		{"start", word, "username"},
		{"username", word, "username"},
		{"username", "@", "@"},
		{"@", word, "domain"},
		{"domain", word, "domain"},
		{"domain", ".", "tld length 0"},
		{"tld length 0", word, "tld length 1"},
		{"tld length 1", word, "tld length 2"},
		{"tld length 1", ".", "tld length 0"},
		{"tld length 2", word, "tld length 3"},
		{"tld length 2", ".", "tld length 0"},
		{"tld length 3", word, "domain"},
		{"tld length 3", ".", "tld length 0"},
	}, WithAccept("tld length 2", "tld length 3"))
	assert.Nil(t, err)
	return a
}

// assertTotal checks that every state has exactly one outgoing
// transition per alphabet symbol.
func assertTotal(t *testing.T, a *Automaton) {
	t.Helper()

	assert.True(t, a.IsDeterministic())
	assert.False(t, a.HasEpsilon())
	for _, s := range a.States() {
		for _, sym := range a.Alphabet() {
			assert.Lenf(t, a.Destinations(s, sym), 1, "state %q symbol %q", s, sym)
		}
	}
}

func TestDeterminize(t *testing.T) {
	t.Run("subsetConstruction", func(t *testing.T) {
		a, err := New([]Triple{
			{"q0", "ab", "q0"},
			{"q0", "a", "q1"},
			{"q1", "b", "q2"},
		}, WithAccept("q2"))
		assert.Nil(t, err)

		d := Determinize(a)
		assertTotal(t, d)
		for _, w := range allStrings([]rune{'a', 'b'}, 6) {
			assert.Equalf(t, Run(a, w), Run(d, w), "input %q", w)
		}
	})

	t.Run("compositeNames", func(t *testing.T) {
		a, err := New([]Triple{
			{"q0", "a", "q0"},
			{"q0", "a", "q1"},
		}, WithAccept("q1"))
		assert.Nil(t, err)

		d := Determinize(a)
		assert.Contains(t, d.States(), "{q0,q1}")
	})

	t.Run("deadStateLooping", func(t *testing.T) {
		// "ab" has no move on 'b' from the start, so the subset
		// construction reaches the empty set.
		a, err := New([]Triple{
			{"q0", "a", "q1"},
			{"q1", "b", "q2"},
		}, WithAccept("q2"))
		assert.Nil(t, err)

		d := Determinize(a)
		assertTotal(t, d)
		assert.Contains(t, d.States(), DeadState)
		assert.False(t, d.IsAccept(DeadState))
		for _, sym := range d.Alphabet() {
			assert.Equal(t, []string{DeadState}, d.Destinations(DeadState, sym))
		}
		assert.Nil(t, Check(d, []string{"ab"}, []string{"", "a", "b", "ba", "abb"}))
	})

	t.Run("alreadyDeterministic", func(t *testing.T) {
		a := threeAs(t)
		d := Determinize(a)
		assertTotal(t, d)
		assert.Nil(t, Check(d, []string{"aaa", "abababa"}, []string{"aa", "bbbbb"}))
	})

	t.Run("eliminatesEpsilonsFirst", func(t *testing.T) {
		a, err := New([]Triple{
			{"q0", "a", "q0"},
			{"q0", "ε", "q1"},
			{"q1", "b", "q1"},
		}, WithAccept("q1"))
		assert.Nil(t, err)

		d := Determinize(a)
		assertTotal(t, d)
		assert.Nil(t, Check(d,
			[]string{"a", "ab", "abbbb", ""},
			[]string{"ba", "aba"}))
	})

	t.Run("emailValidator", func(t *testing.T) {
		ev := emailValidator(t)
		d := Canonicalize(Determinize(ev))
		assertTotal(t, d)
		assert.Nil(t, Check(d,
			[]string{"abc@dsu.edu", "abc@pluto.dsu.edu", "11@123.com"},
			[]string{"a.b.ab", "ab@ab", "ab@ab.abcd"}))
	})
}
