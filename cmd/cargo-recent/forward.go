package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/poi2/cargo-recent/internal/workspace"
	"github.com/spf13/cobra"
)

// runForward handles any command cargo-recent does not recognize itself: it
// resolves the most recently changed crate and re-invokes cargo with
// --package appended, so `cargo-recent test --release` becomes
// `cargo test --release --package <crate>`.
func runForward(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	root, _ := cmd.Flags().GetString("root")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}
	sel, err := ctx.Recent()
	if err != nil {
		return err
	}
	if sel == nil {
		// No uncommitted changes: forwarding is a no-op, not an error.
		return nil
	}

	cargoArgs := buildCargoArgs(args, sel.Name)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "run: cargo "+strings.Join(cargoArgs, " "))

	c := exec.Command("cargo", cargoArgs...)
	c.Dir = ctx.Root
	c.Stdin = os.Stdin
	// Inherit stdout/stderr so cargo keeps its color output and progress bars.
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}

// buildCargoArgs appends the package selector after the user's arguments.
func buildCargoArgs(args []string, name string) []string {
	out := make([]string, 0, len(args)+2)
	out = append(out, args...)
	out = append(out, "--package", name)
	return out
}
