package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfakit/automata"
)

func sample(t *testing.T) *automata.Automaton {
	t.Helper()
	a, err := automata.New([]automata.Triple{
		{From: "q0", Label: "a", To: "q1"},
		{From: "q1", Label: "ε", To: "q2"},
		{From: "q2", Label: "b", To: "q2"},
	}, automata.WithAccept("q2"))
	assert.Nil(t, err)
	return a
}

func TestWriteDOT(t *testing.T) {
	var sb strings.Builder
	assert.Nil(t, WriteDOT(&sb, sample(t)))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "digraph automaton {"))
	assert.Contains(t, out, `"q0" [shape=circle];`)
	assert.Contains(t, out, `"q2" [shape=doublecircle];`)
	assert.Contains(t, out, `_start -> "q0";`)
	assert.Contains(t, out, `"q0" -> "q1" [label="a"];`)
	assert.Contains(t, out, `"q1" -> "q2" [label="ε"];`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
}

func TestWriteJFLAP(t *testing.T) {
	var sb strings.Builder
	assert.Nil(t, WriteJFLAP(&sb, sample(t)))
	out := sb.String()

	assert.Contains(t, out, "<type>fa</type>")
	assert.Contains(t, out, `<state id="0" name="q0">`)
	assert.Contains(t, out, "<initial>")
	assert.Contains(t, out, "<final>")
	// The epsilon edge serializes as an empty read element.
	assert.Contains(t, out, "<read></read>")
	assert.Contains(t, out, "<from>0</from>")
	assert.Contains(t, out, "<read>a</read>")
}
