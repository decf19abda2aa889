package impute

import (
	"context"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Mode fills missing values with the most frequent present value. Ties go
// to the value that reached the top count first.
type Mode struct{ Column string }

func (t *Mode) Name() string { return "impute_mode" }

func (t *Mode) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Column(t.Column)
	if err != nil {
		return nil, err
	}
	counts := map[any]int{}
	var best any
	var bestc int
	for i := 0; i < col.Len(); i++ {
		v := col.Value(i)
		if v == nil {
			continue
		}
		counts[v]++
		if counts[v] > bestc {
			bestc = counts[v]
			best = v
		}
	}
	if best == nil {
		return tbl, nil
	}
	filled, err := fillNulls(col, best)
	if err != nil {
		return nil, err
	}
	return tbl.WithColumn(filled)
}
