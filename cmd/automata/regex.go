package main

import (
	"github.com/spf13/cobra"

	"github.com/nfakit/automata"
)

var (
	regexFormat string
	regexToDFA  bool
)

var regexCmd = &cobra.Command{
	Use:   "regex PATTERN",
	Short: "Compile a restricted regular expression to an automaton",
	Long: `Compiles PATTERN ('+' union, '*' star, '(...)' grouping, '!' the
empty-string literal) into an NFA via Thompson's construction and writes
it to stdout. With --dfa the result is determinized and canonicalized
first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegex(args[0])
	},
}

func init() {
	regexCmd.Flags().StringVar(&regexFormat, "format", "dot", "output format: dot, jflap or triples")
	regexCmd.Flags().BoolVar(&regexToDFA, "dfa", false, "determinize and canonicalize the result")
	rootCmd.AddCommand(regexCmd)
}

func runRegex(pattern string) error {
	m, err := automata.CompileRegex(pattern)
	if err != nil {
		return err
	}
	logger.Debug("compiled", "pattern", pattern, "states", m.NumStates())

	if regexToDFA {
		m = automata.Canonicalize(automata.Determinize(m))
	}
	return writeOut(regexFormat, m)
}
