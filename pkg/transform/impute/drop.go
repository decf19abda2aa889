package impute

import (
	"context"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Drop removes every row where Column is missing. Remaining rows keep their
// relative order and are renumbered from 0.
type Drop struct{ Column string }

func (t *Drop) Name() string { return "drop_missing" }

func (t *Drop) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Column(t.Column)
	if err != nil {
		return nil, err
	}
	keep := make([]int, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if !col.IsNull(i) {
			keep = append(keep, i)
		}
	}
	if len(keep) == tbl.Rows() {
		return tbl, nil
	}
	return tbl.Take(keep), nil
}
