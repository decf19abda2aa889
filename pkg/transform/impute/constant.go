package impute

import (
	"context"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

type Constant struct {
	Column string
	// use any; will be coerced per column kind
	Value any
}

func (t *Constant) Name() string { return "impute_constant" }

func (t *Constant) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tbl.Column(t.Column)
	if err != nil {
		return nil, err
	}
	filled, err := fillNulls(col, t.Value)
	if err != nil {
		return nil, err
	}
	return tbl.WithColumn(filled)
}

// Zero fills missing values with the zero of the column's kind: 0, 0.0,
// "0" or false.
func Zero(column string) *Constant { return &Constant{Column: column, Value: 0} }
