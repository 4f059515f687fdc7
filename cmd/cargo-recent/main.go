package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	args := os.Args[1:]
	// Invoked as a cargo external subcommand (`cargo recent ...`), cargo
	// passes "recent" through as the first argument. Strip it.
	if len(args) > 0 && args[0] == "recent" {
		args = args[1:]
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// A forwarded cargo command failed; it already wrote its own
			// diagnostics on the inherited stderr. Propagate its exit code.
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
