package reporter

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/satyammistari/text2sql-ai/internal/executor"
)

// RenderResult writes an execution result to w: a table for row results,
// a single line of text otherwise.
func RenderResult(w io.Writer, res executor.Result) {
	switch res.Kind {
	case executor.KindRows:
		renderRows(w, res.Columns, res.Rows)
	default:
		fmt.Fprintln(w, res.Message)
	}
}

func renderRows(w io.Writer, cols []string, rows [][]any) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = formatValue(v)
		}
		t.AppendRow(row)
	}

	t.Render()
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprint(v)
}
