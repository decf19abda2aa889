package reshape

import (
	"context"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// NewColumn adds a column built from Values, one per row. An existing column
// with the same name is replaced where it stands.
type NewColumn struct {
	Column string
	Values []any
}

func (t *NewColumn) Name() string { return "new_column" }

func (t *NewColumn) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	col, err := tabular.ColumnOf(t.Column, t.Values)
	if err != nil {
		return nil, err
	}
	return tbl.WithColumn(col)
}
