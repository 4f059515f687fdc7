package main

import (
	"fmt"

	"github.com/poi2/cargo-recent/internal/workspace"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the name of the most recently changed crate",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, _ []string) error {
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
		return nil
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), sel.Name)
	return err
}
