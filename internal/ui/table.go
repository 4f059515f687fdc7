package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders string cells in aligned columns via a tab writer.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table writer and emits the header row immediately.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return &Table{w: tw}
}

// Row appends a row of cells. The number of cells should match the header.
func (t *Table) Row(cells ...string) {
	_, _ = fmt.Fprintln(t.w, strings.Join(cells, "\t"))
}

// Flush writes the buffered output with final column widths.
func (t *Table) Flush() error {
	return t.w.Flush()
}
