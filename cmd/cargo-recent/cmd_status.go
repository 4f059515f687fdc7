package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/poi2/cargo-recent/internal/recency"
	"github.com/poi2/cargo-recent/internal/ui"
	"github.com/poi2/cargo-recent/internal/workspace"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var selectedStyle = lipgloss.NewStyle().Bold(true)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List changed files, their crates, and the current selection",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type fileStatus struct {
	File     string    `json:"file"`
	Crate    string    `json:"crate"`
	Dir      string    `json:"dir"`
	Modified time.Time `json:"modified"`
}

type statusReport struct {
	Root     string       `json:"root"`
	Selected string       `json:"selected,omitempty"`
	Dir      string       `json:"selected_dir,omitempty"`
	Files    []fileStatus `json:"files"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := workspace.Load(root)
	if err != nil {
		return err
	}
	cands, err := ctx.Changed()
	if err != nil {
		return err
	}
	sel := recency.Select(cands)

	report := statusReport{Root: ctx.Root, Files: make([]fileStatus, 0, len(cands))}
	if sel != nil {
		report.Selected = sel.Name
		report.Dir = sel.Dir
	}
	for _, c := range cands {
		rel, relErr := filepath.Rel(ctx.Root, c.Path)
		if relErr != nil {
			rel = c.Path
		}
		report.Files = append(report.Files, fileStatus{
			File:     rel,
			Crate:    c.Crate.Name,
			Dir:      c.Crate.Dir,
			Modified: c.ModTime,
		})
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	_, _ = fmt.Fprintf(out, "Workspace root: %s\n", report.Root)
	if len(report.Files) == 0 {
		_, _ = fmt.Fprintln(out, "No uncommitted changes.")
		return nil
	}

	now := time.Now()
	tbl := ui.NewTable(out, "FILE", "CRATE", "MODIFIED")
	for _, f := range report.Files {
		tbl.Row(f.File, f.Crate, ui.RelTime(now, f.Modified))
	}
	if err := tbl.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, emphasize(out, fmt.Sprintf("Selected: %s (%s)", report.Selected, report.Dir)))
	return nil
}

// emphasize applies bold styling only when writing to a terminal, so piped
// output stays plain.
func emphasize(out io.Writer, s string) string {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return selectedStyle.Render(s)
	}
	return s
}
