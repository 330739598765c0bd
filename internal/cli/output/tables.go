package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/leapbasic/pkg/interp"
)

// RenderVars writes the variable environment as a table sorted by name.
func RenderVars(w io.Writer, env interp.Env) {
	if len(env) == 0 {
		_, _ = fmt.Fprintln(w, "(no variables)")
		return
	}

	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Value"})
	for _, name := range names {
		t.AppendRow(table.Row{name, env[name]})
	}
	t.Render()
}

// RenderLines writes the stored program lines as a table, lowest index
// first.
func RenderLines(w io.Writer, lines interp.Lines) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(w, "(no lines)")
		return
	}

	indices := interp.SortedIndices(lines)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Line", "Text"})
	for i := len(indices) - 1; i >= 0; i-- {
		idx := indices[i]
		t.AppendRow(table.Row{idx, lines[idx]})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d lines)\n", len(lines))
}
