package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/wdm0006/datacleaner/pkg/io/csvio"
	"github.com/wdm0006/datacleaner/pkg/profile"
	"github.com/wdm0006/datacleaner/pkg/tabular"
)

const missingMark = "NA"

func newWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// renderTable prints a table with a leading row-position column.
func renderTable(w io.Writer, tbl *tabular.Table) error {
	if tbl.Cols() == 0 {
		_, _ = fmt.Fprintln(w, "(0 columns)")
		return nil
	}
	t := newWriter(w)
	header := table.Row{""}
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignRight}}
	for i, c := range tbl.Columns() {
		header = append(header, c.Name())
		if c.Kind().IsNumeric() {
			configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
		}
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)
	for r := 0; r < tbl.Rows(); r++ {
		row := table.Row{r}
		for _, c := range tbl.Columns() {
			if c.IsNull(r) {
				row = append(row, missingMark)
				continue
			}
			row = append(row, csvio.FormatCell(c, r))
		}
		t.AppendRow(row)
	}
	t.SetCaption("%d rows x %d columns", tbl.Rows(), tbl.Cols())
	t.Render()
	return nil
}

func renderMissing(w io.Writer, counts []profile.MissingCount) error {
	t := newWriter(w)
	t.AppendHeader(table.Row{"column", "missing"})
	total := 0
	for _, c := range counts {
		t.AppendRow(table.Row{c.Column, c.Count})
		total += c.Count
	}
	t.AppendFooter(table.Row{"total", total})
	t.Render()
	return nil
}

func renderSummary(w io.Writer, c *profile.Collector) error {
	t := newWriter(w)
	t.AppendHeader(table.Row{"column", "kind", "count", "missing", "min", "max", "mean", "std", "top"})
	for _, cp := range c.Columns() {
		switch {
		case cp.Num != nil:
			if cp.Num.Count == 0 {
				t.AppendRow(table.Row{cp.Name, cp.Kind, 0, cp.Num.Nulls, "", "", "", "", ""})
				continue
			}
			t.AppendRow(table.Row{cp.Name, cp.Kind, cp.Num.Count, cp.Num.Nulls,
				short(cp.Num.Min), short(cp.Num.Max), short(cp.Num.Mean), short(cp.Num.StdDev), ""})
		case cp.Bool != nil:
			top := fmt.Sprintf("true=%d false=%d", cp.Bool.True, cp.Bool.False)
			t.AppendRow(table.Row{cp.Name, cp.Kind, cp.Bool.Count, cp.Bool.Nulls, "", "", "", "", top})
		default:
			top := ""
			for i, kv := range c.Top(cp) {
				if i > 0 {
					top += ", "
				}
				top += fmt.Sprintf("%s (%d)", kv.Value, kv.Count)
			}
			t.AppendRow(table.Row{cp.Name, cp.Kind, cp.Str.Count, cp.Str.Nulls, "", "", "", "", top})
		}
	}
	t.Render()
	return nil
}

func short(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
