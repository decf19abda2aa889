package profile

import "github.com/wdm0006/datacleaner/pkg/tabular"

// MissingCount is the number of missing cells in one column.
type MissingCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// CountMissing returns one entry per column, in column order.
func CountMissing(t *tabular.Table) []MissingCount {
	out := make([]MissingCount, 0, t.Cols())
	for _, c := range t.Columns() {
		n := 0
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				n++
			}
		}
		out = append(out, MissingCount{Column: c.Name(), Count: n})
	}
	return out
}
