// Package machinefile loads automaton definitions from YAML documents.
// A definition carries the ordered transition list, optional start and
// accepting-state overrides, and the expectation lists the batch
// self-check runs against.
package machinefile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nfakit/automata"
)

// Definition mirrors one automaton document.
type Definition struct {
	Name        string       `yaml:"name"`
	Start       string       `yaml:"start"`
	Accept      []string     `yaml:"accept"`
	Transitions []Transition `yaml:"transitions"`
	Expect      Expect       `yaml:"expect"`
}

// Transition is one construction triple. Label may hold several
// symbols; the automata package expands them.
type Transition struct {
	From  string `yaml:"from"`
	Label string `yaml:"label"`
	To    string `yaml:"to"`
}

// Expect lists strings the automaton must accept and reject.
type Expect struct {
	Accept []string `yaml:"accept"`
	Reject []string `yaml:"reject"`
}

// Load reads and decodes the definition at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse definition %s: %w", path, err)
	}
	return &def, nil
}

// Build constructs the automaton the definition describes.
func (d *Definition) Build() (*automata.Automaton, error) {
	triples := make([]automata.Triple, len(d.Transitions))
	for i, t := range d.Transitions {
		triples[i] = automata.Triple{From: t.From, Label: t.Label, To: t.To}
	}

	var opts []automata.Option
	if d.Start != "" {
		opts = append(opts, automata.WithStart(d.Start))
	}
	if len(d.Accept) > 0 {
		opts = append(opts, automata.WithAccept(d.Accept...))
	}
	return automata.New(triples, opts...)
}
