package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cargo-recent [command] [args...]",
		Short: "Show and operate on the most recently changed crate",
		Long: `cargo-recent resolves the crate most recently touched by uncommitted
edits. Use "path" or "show" to print it, or any cargo command
(e.g. "cargo-recent test --release") to run cargo scoped to that crate
via an appended --package flag.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runForward,
	}

	cmd.PersistentFlags().String("root", ".", "Directory from which the repository root is resolved")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug diagnostics to stderr")

	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose || os.Getenv("CARGO_RECENT_DEBUG") != "" {
			log.SetLevel(log.DebugLevel)
		}
	}

	// Forwarded cargo commands carry their own flags (e.g. `test --release`);
	// stop flag parsing at the first non-flag argument so they pass through.
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(
		newPathCmd(),
		newShowCmd(),
		newStatusCmd(),
		newDoctorCmd(),
	)

	return cmd
}
