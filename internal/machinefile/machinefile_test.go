package machinefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfakit/automata"
)

const threeAsDoc = `name: at least three a's
start: "0"
accept: ["3"]
transitions:
  - {from: "0", label: b, to: "0"}
  - {from: "0", label: a, to: "1"}
  - {from: "1", label: b, to: "1"}
  - {from: "1", label: a, to: "2"}
  - {from: "2", label: b, to: "2"}
  - {from: "2", label: a, to: "3"}
  - {from: "3", label: ab, to: "3"}
expect:
  accept: [aaa, abababa]
  reject: [aa, bbbbb]
`

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine.yaml")
	assert.Nil(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestLoadAndBuild(t *testing.T) {
	def, err := Load(writeDoc(t, threeAsDoc))
	assert.Nil(t, err)
	assert.Equal(t, "at least three a's", def.Name)
	assert.Equal(t, "0", def.Start)
	assert.Len(t, def.Transitions, 7)

	a, err := def.Build()
	assert.Nil(t, err)
	assert.Equal(t, "0", a.Start())
	assert.True(t, a.IsAccept("3"))
	assert.Nil(t, automata.Check(a, def.Expect.Accept, def.Expect.Reject))
}

func TestBuildDefaults(t *testing.T) {
	// Without start/accept the construction defaults apply: start is
	// the first source, accepting is the last destination.
	def, err := Load(writeDoc(t, `transitions:
  - {from: q0, label: a, to: q1}
  - {from: q1, label: b, to: q2}
`))
	assert.Nil(t, err)

	a, err := def.Build()
	assert.Nil(t, err)
	assert.Equal(t, "q0", a.Start())
	assert.Equal(t, []string{"q2"}, a.AcceptStates())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)

	_, err = Load(writeDoc(t, "transitions: {not: a, list: here}"))
	assert.NotNil(t, err)
}

func TestBuildRejectsMalformed(t *testing.T) {
	def, err := Load(writeDoc(t, `start: nowhere
transitions:
  - {from: q0, label: a, to: q1}
`))
	assert.Nil(t, err)

	_, err = def.Build()
	var merr *automata.MalformedAutomatonError
	assert.ErrorAs(t, err, &merr)
}
