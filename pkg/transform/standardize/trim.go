package standardize

import (
	"context"
	"strings"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Trim removes leading and trailing whitespace from every value of a text
// column.
type Trim struct{ Column string }

func (t *Trim) Name() string { return "strip_spaces" }

func (t *Trim) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	src, err := tbl.Text(t.Column)
	if err != nil {
		return nil, err
	}
	return tbl.WithColumn(mapText(src, strings.TrimSpace))
}

// mapText returns a copy of c with fn applied to each non-missing value.
func mapText(c *tabular.StringColumn, fn func(string) string) *tabular.StringColumn {
	out := c.Clone().(*tabular.StringColumn)
	for i := 0; i < out.Len(); i++ {
		if out.IsNull(i) {
			continue
		}
		v, _ := out.Get(i)
		out.Set(i, fn(v))
	}
	return out
}
