package reshape

import (
	"context"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// DropColumns removes columns by name. If any name is absent nothing is
// removed.
type DropColumns struct{ Columns []string }

func (t *DropColumns) Name() string { return "drop_columns" }

func (t *DropColumns) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	return tbl.WithoutColumns(t.Columns...)
}
