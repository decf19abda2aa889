package impute

import (
	"fmt"
	"math"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// fillNulls returns a copy of c with every missing cell set to v. Int
// columns are promoted to float when v has a fractional part.
func fillNulls(c tabular.Column, v any) (tabular.Column, error) {
	switch col := c.(type) {
	case *tabular.FloatColumn:
		f, ok := tabular.ToNumber(v)
		if !ok {
			return nil, fmt.Errorf("fill %q with %v: %w", c.Name(), v, tabular.ErrTypeMismatch)
		}
		out := col.Clone().(*tabular.FloatColumn)
		for i := 0; i < out.Len(); i++ {
			if out.IsNull(i) {
				out.Set(i, f)
			}
		}
		return out, nil
	case *tabular.IntColumn:
		f, ok := tabular.ToNumber(v)
		if !ok {
			return nil, fmt.Errorf("fill %q with %v: %w", c.Name(), v, tabular.ErrTypeMismatch)
		}
		if f != math.Trunc(f) {
			return fillNulls(toFloat(col), f)
		}
		out := col.Clone().(*tabular.IntColumn)
		for i := 0; i < out.Len(); i++ {
			if out.IsNull(i) {
				out.Set(i, int64(f))
			}
		}
		return out, nil
	case *tabular.StringColumn:
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		out := col.Clone().(*tabular.StringColumn)
		for i := 0; i < out.Len(); i++ {
			if out.IsNull(i) {
				out.Set(i, s)
			}
		}
		return out, nil
	case *tabular.BoolColumn:
		var b bool
		switch x := v.(type) {
		case bool:
			b = x
		default:
			f, ok := tabular.ToNumber(v)
			if !ok {
				return nil, fmt.Errorf("fill %q with %v: %w", c.Name(), v, tabular.ErrTypeMismatch)
			}
			b = f != 0
		}
		out := col.Clone().(*tabular.BoolColumn)
		for i := 0; i < out.Len(); i++ {
			if out.IsNull(i) {
				out.Set(i, b)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("fill %q: %w", c.Name(), tabular.ErrTypeMismatch)
}

func toFloat(c *tabular.IntColumn) *tabular.FloatColumn {
	out := tabular.NewFloatColumn(c.Name(), c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			out.Set(i, float64(v))
		} else {
			out.SetNull(i)
		}
	}
	return out
}
