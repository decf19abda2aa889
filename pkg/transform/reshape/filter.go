package reshape

import (
	"context"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Filter keeps the rows whose Column equals Value. Numbers compare by value
// across Go numeric types; text and bools only match their own type. Missing
// cells never match.
type Filter struct {
	Column string
	Value  any
}

func (t *Filter) Name() string { return "filter" }

func (t *Filter) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Column(t.Column)
	if err != nil {
		return nil, err
	}
	match := matcher(col, t.Value)
	keep := make([]int, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if !col.IsNull(i) && match(i) {
			keep = append(keep, i)
		}
	}
	return tbl.Take(keep), nil
}

func matcher(c tabular.Column, v any) func(int) bool {
	never := func(int) bool { return false }
	switch col := c.(type) {
	case *tabular.IntColumn:
		if n, ok := tabular.ToInt(v); ok {
			return func(i int) bool { x, _ := col.Get(i); return x == n }
		}
	case *tabular.FloatColumn:
		if f, ok := tabular.ToNumber(v); ok {
			return func(i int) bool { x, _ := col.Get(i); return x == f }
		}
	case *tabular.StringColumn:
		if s, ok := v.(string); ok {
			return func(i int) bool { x, _ := col.Get(i); return x == s }
		}
	case *tabular.BoolColumn:
		if b, ok := v.(bool); ok {
			return func(i int) bool { x, _ := col.Get(i); return x == b }
		}
	}
	return never
}
