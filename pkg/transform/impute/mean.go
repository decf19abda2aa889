package impute

import (
	"context"

	"gonum.org/v1/gonum/stat"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Mean fills missing values with the arithmetic mean of the present ones.
// Int columns become float columns so the filled value is exact.
type Mean struct{ Column string }

func (t *Mean) Name() string { return "impute_mean" }

func (t *Mean) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Numeric(t.Column)
	if err != nil {
		return nil, err
	}
	vals := tabular.Floats(col)
	if len(vals) == 0 {
		return tbl, nil
	}
	if ic, ok := col.(*tabular.IntColumn); ok {
		col = toFloat(ic)
	}
	filled, err := fillNulls(col, stat.Mean(vals, nil))
	if err != nil {
		return nil, err
	}
	return tbl.WithColumn(filled)
}
