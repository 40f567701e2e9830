package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfakit/automata"
	"github.com/nfakit/automata/internal/machinefile"
)

var dfaFormat string

var dfaCmd = &cobra.Command{
	Use:   "dfa FILE",
	Short: "Convert a definition into a canonical DFA",
	Long: `Loads a YAML automaton definition, eliminates epsilon transitions,
determinizes via the subset construction, canonicalizes the state names
and writes the result to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDFA(args[0])
	},
}

func init() {
	dfaCmd.Flags().StringVar(&dfaFormat, "format", "dot", "output format: dot, jflap or triples")
	rootCmd.AddCommand(dfaCmd)
}

func runDFA(path string) error {
	def, err := machinefile.Load(path)
	if err != nil {
		return err
	}

	m, err := def.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	dfa := automata.Canonicalize(automata.Determinize(m))
	logger.Debug("determinized",
		"file", path,
		"nfa_states", m.NumStates(),
		"dfa_states", dfa.NumStates())

	return writeOut(dfaFormat, dfa)
}
