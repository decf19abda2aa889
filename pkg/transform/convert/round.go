package convert

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Round rounds a numeric column to Decimals places, ties to even. A negative
// Decimals rounds to tens, hundreds and so on; int columns only change then.
type Round struct {
	Column   string
	Decimals int
}

func (t *Round) Name() string { return "round" }

func (t *Round) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Numeric(t.Column)
	if err != nil {
		return nil, err
	}
	switch c := col.(type) {
	case *tabular.FloatColumn:
		out := c.Clone().(*tabular.FloatColumn)
		for i := 0; i < out.Len(); i++ {
			if v, ok := out.Get(i); ok {
				out.Set(i, floats.RoundEven(v, t.Decimals))
			}
		}
		return tbl.WithColumn(out)
	case *tabular.IntColumn:
		if t.Decimals >= 0 {
			return tbl, nil
		}
		out := c.Clone().(*tabular.IntColumn)
		for i := 0; i < out.Len(); i++ {
			if v, ok := out.Get(i); ok {
				out.Set(i, int64(math.Round(floats.RoundEven(float64(v), t.Decimals))))
			}
		}
		return tbl.WithColumn(out)
	}
	return nil, fmt.Errorf("round %q: %w", t.Column, tabular.ErrTypeMismatch)
}
