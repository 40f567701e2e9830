package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	t.Run("renamesInVisitOrder", func(t *testing.T) {
		a, err := New([]Triple{
			{"start", "b", "middle"},
			{"start", "a", "end"},
			{"middle", "a", "end"},
		}, WithAccept("end"))
		assert.Nil(t, err)

		c := Canonicalize(a)
		// BFS explores symbols in sorted order, so 'a' is followed
		// before 'b'.
		assert.Equal(t, "q0", c.Start())
		assert.Equal(t, []string{"q0", "q1", "q2"}, c.States())
		assert.True(t, c.IsAccept("q1"))
	})

	t.Run("preservesShape", func(t *testing.T) {
		a := Determinize(emailValidator(t))
		c := Canonicalize(a)
		assert.Equal(t, a.NumStates(), c.NumStates())
		assert.Equal(t, a.NumTransitions(), c.NumTransitions())
		assert.Equal(t, a.Alphabet(), c.Alphabet())
	})

	t.Run("preservesLanguage", func(t *testing.T) {
		a, err := New([]Triple{
			{"{s0}", "a", "{s1,s2}"},
			{"{s1,s2}", "b", "{s1,s2}"},
		}, WithAccept("{s1,s2}"))
		assert.Nil(t, err)

		c := Canonicalize(a)
		for _, w := range allStrings([]rune{'a', 'b'}, 5) {
			assert.Equalf(t, Run(a, w), Run(c, w), "input %q", w)
		}
	})

	t.Run("stableAcrossRuns", func(t *testing.T) {
		a := Determinize(emailValidator(t))
		first := Canonicalize(a).String()
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Canonicalize(a).String())
		}
	})

	t.Run("unreachableStatesKept", func(t *testing.T) {
		a, err := New([]Triple{
			{"q0", "a", "q1"},
			{"island", "a", "island"},
		}, WithStart("q0"), WithAccept("q1"))
		assert.Nil(t, err)

		c := Canonicalize(a)
		assert.Equal(t, 3, c.NumStates())
		assert.Equal(t, "q0", c.Start())
	})

	t.Run("doesNotMutateInput", func(t *testing.T) {
		a, err := New([]Triple{{"first", "a", "second"}}, WithAccept("second"))
		assert.Nil(t, err)

		_ = Canonicalize(a)
		assert.Equal(t, []string{"first", "second"}, a.States())
	})
}
