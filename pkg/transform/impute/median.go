package impute

import (
	"context"
	"sort"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

type Median struct{ Column string }

func (t *Median) Name() string { return "impute_median" }

func (t *Median) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Numeric(t.Column)
	if err != nil {
		return nil, err
	}
	med, ok := MedianOf(tabular.Floats(col))
	if !ok {
		return tbl, nil
	}
	filled, err := fillNulls(col, med)
	if err != nil {
		return nil, err
	}
	return tbl.WithColumn(filled)
}

// MedianOf returns the middle value of vals, averaging the two middle values
// for an even count. vals is sorted in place.
func MedianOf(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 0 {
		return (vals[mid-1] + vals[mid]) / 2, true
	}
	return vals[mid], true
}
