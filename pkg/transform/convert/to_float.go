package convert

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// ToFloat casts a column to float. Text is parsed after trimming spaces;
// bools become 1 and 0. Any unparseable value fails the whole cast.
type ToFloat struct{ Column string }

func (t *ToFloat) Name() string { return "to_float" }

func (t *ToFloat) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Column(t.Column)
	if err != nil {
		return nil, err
	}
	if col.Kind() == tabular.KindFloat {
		return tbl, nil
	}
	out := tabular.NewFloatColumn(col.Name(), col.Len())
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			out.SetNull(i)
			continue
		}
		switch c := col.(type) {
		case *tabular.IntColumn:
			v, _ := c.Get(i)
			out.Set(i, float64(v))
		case *tabular.BoolColumn:
			if v, _ := c.Get(i); v {
				out.Set(i, 1)
			} else {
				out.Set(i, 0)
			}
		case *tabular.StringColumn:
			s, _ := c.Get(i)
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("to_float %q row %d: %q: %w", t.Column, i, s, tabular.ErrConversion)
			}
			out.Set(i, f)
		default:
			return nil, fmt.Errorf("to_float %q: %w", t.Column, tabular.ErrTypeMismatch)
		}
	}
	return tbl.WithColumn(out)
}
