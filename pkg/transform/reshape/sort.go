package reshape

import (
	"context"
	"slices"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Sort reorders rows by one column. The sort is stable and missing values
// go last in both directions.
type Sort struct {
	Column    string
	Ascending bool
}

func (t *Sort) Name() string { return "sort" }

func (t *Sort) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Column(t.Column)
	if err != nil {
		return nil, err
	}
	rows := make([]int, tbl.Rows())
	for i := range rows {
		rows[i] = i
	}
	slices.SortStableFunc(rows, func(i, j int) int {
		ni, nj := col.IsNull(i), col.IsNull(j)
		if ni || nj {
			return compareNullsLast(col, i, j)
		}
		if t.Ascending {
			return compareRows(col, i, j)
		}
		return compareRows(col, j, i)
	})
	return tbl.Take(rows), nil
}
