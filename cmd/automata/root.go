package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nfakit/automata/internal/logging"
)

var (
	verbose bool
	logger  = logging.New(slog.LevelInfo)
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Build, convert and test finite automata",
	Long: `automata compiles restricted regular expressions to NFAs, eliminates
epsilon transitions, determinizes via the subset construction, intersects
languages and checks acceptance against expectation lists.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = logging.New(slog.LevelDebug)
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
