package reshape

import (
	"cmp"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// compareRows orders two present cells of c. Bools order false before true.
func compareRows(c tabular.Column, i, j int) int {
	switch col := c.(type) {
	case *tabular.IntColumn:
		a, _ := col.Get(i)
		b, _ := col.Get(j)
		return cmp.Compare(a, b)
	case *tabular.FloatColumn:
		a, _ := col.Get(i)
		b, _ := col.Get(j)
		return cmp.Compare(a, b)
	case *tabular.StringColumn:
		a, _ := col.Get(i)
		b, _ := col.Get(j)
		return cmp.Compare(a, b)
	case *tabular.BoolColumn:
		a, _ := col.Get(i)
		b, _ := col.Get(j)
		switch {
		case a == b:
			return 0
		case !a:
			return -1
		}
		return 1
	}
	return 0
}

// compareNullsLast orders cells with missing values after every present one.
func compareNullsLast(c tabular.Column, i, j int) int {
	ni, nj := c.IsNull(i), c.IsNull(j)
	switch {
	case ni && nj:
		return 0
	case ni:
		return 1
	case nj:
		return -1
	}
	return compareRows(c, i, j)
}
