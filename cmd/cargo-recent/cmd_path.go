package main

import (
	"fmt"

	"github.com/poi2/cargo-recent/internal/workspace"
	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the directory of the most recently changed crate",
		Args:  cobra.NoArgs,
		RunE:  runPath,
	}
}

func runPath(cmd *cobra.Command, _ []string) error {
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
		// No uncommitted changes: empty output, success.
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), sel.Dir)
	return err
}
