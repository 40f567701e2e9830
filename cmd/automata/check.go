package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfakit/automata"
	"github.com/nfakit/automata/internal/machinefile"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Verify automaton definitions against their expectation lists",
	Long: `Builds each YAML definition and runs its expect.accept and
expect.reject strings through the acceptance engine. Any mismatch is
reported with the offending string and makes the command fail.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(paths []string) error {
	failed := false
	for _, path := range paths {
		def, err := machinefile.Load(path)
		if err != nil {
			return err
		}

		m, err := def.Build()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if err := automata.Check(m, def.Expect.Accept, def.Expect.Reject); err != nil {
			logger.Error("expectation mismatch", "file", path, "err", err)
			failed = true
			continue
		}
		logger.Info("ok",
			"file", path,
			"states", m.NumStates(),
			"transitions", m.NumTransitions(),
			"deterministic", m.IsDeterministic())
	}

	if failed {
		return errors.New("one or more definitions failed their expectations")
	}
	return nil
}
