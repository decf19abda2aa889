package reshape

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/wdm0006/datacleaner/pkg/tabular"
	"github.com/wdm0006/datacleaner/pkg/transform/impute"
)

// AggMethod is the reduction applied to every non-group column.
type AggMethod int

const (
	AggMean AggMethod = iota
	AggMin
	AggMax
	AggSum
	AggCount
	AggMedian
)

var aggNames = map[AggMethod]string{
	AggMean:   "mean",
	AggMin:    "min",
	AggMax:    "max",
	AggSum:    "sum",
	AggCount:  "count",
	AggMedian: "median",
}

func (m AggMethod) String() string {
	if s, ok := aggNames[m]; ok {
		return s
	}
	return fmt.Sprintf("AggMethod(%d)", int(m))
}

// numericOnly reports whether the method drops non-numeric columns.
func (m AggMethod) numericOnly() bool {
	return m == AggMean || m == AggSum || m == AggMedian
}

// ParseAggMethod maps a keyword to its method, ignoring case. Unrecognized
// keywords map to AggMean and ok is false.
func ParseAggMethod(s string) (AggMethod, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range aggNames {
		if name == key {
			return m, true
		}
	}
	return AggMean, false
}

// Aggregate groups rows by equal values of GroupBy and reduces every other
// column with Method. Repeated group columns count once. Groups come out in ascending key order and rows with a
// missing key are left out. Under mean, sum and median non-numeric columns
// are dropped from the result.
type Aggregate struct {
	GroupBy []string
	Method  AggMethod
	Logger  *slog.Logger
}

func (t *Aggregate) Name() string { return "aggregate" }

func (t *Aggregate) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	if len(t.GroupBy) == 0 {
		return nil, fmt.Errorf("aggregate needs at least one group column: %w", tabular.ErrNotFound)
	}
	keys := make([]tabular.Column, 0, len(t.GroupBy))
	isKey := make(map[string]bool, len(t.GroupBy))
	for _, name := range t.GroupBy {
		if isKey[name] {
			continue
		}
		c, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, c)
		isKey[name] = true
	}
	log := t.Logger
	if log == nil {
		log = slog.Default()
	}

	groups := groupRows(tbl.Rows(), keys)
	first := make([]int, len(groups))
	for g, rows := range groups {
		first[g] = rows[0]
	}
	out := make([]tabular.Column, 0, tbl.Cols())
	for _, k := range keys {
		out = append(out, k.Take(first))
	}
	for _, c := range tbl.Columns() {
		if isKey[c.Name()] {
			continue
		}
		if t.Method.numericOnly() && !c.Kind().IsNumeric() {
			log.DebugContext(ctx, "aggregate dropped non-numeric column",
				slog.String("column", c.Name()), slog.String("kind", c.Kind().String()),
				slog.String("method", t.Method.String()))
			continue
		}
		out = append(out, reduce(c, groups, t.Method))
	}
	return tabular.FromColumns(out...)
}

// groupRows partitions the rows with no missing key into groups of equal
// keys, ordered by key. Rows within a group keep their original order.
func groupRows(n int, keys []tabular.Column) [][]int {
	rows := make([]int, 0, n)
	for r := 0; r < n; r++ {
		present := true
		for _, k := range keys {
			if k.IsNull(r) {
				present = false
				break
			}
		}
		if present {
			rows = append(rows, r)
		}
	}
	byKey := func(i, j int) int {
		for _, k := range keys {
			if c := compareRows(k, i, j); c != 0 {
				return c
			}
		}
		return 0
	}
	slices.SortStableFunc(rows, byKey)

	var groups [][]int
	for i, r := range rows {
		if i == 0 || byKey(rows[i-1], r) != 0 {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], r)
	}
	return groups
}

func reduce(c tabular.Column, groups [][]int, m AggMethod) tabular.Column {
	switch m {
	case AggCount:
		out := tabular.NewIntColumn(c.Name(), len(groups))
		for g, rows := range groups {
			n := 0
			for _, r := range rows {
				if !c.IsNull(r) {
					n++
				}
			}
			out.Set(g, int64(n))
		}
		return out
	case AggMin, AggMax:
		pick := make([]int, len(groups))
		for g, rows := range groups {
			pick[g] = extreme(c, rows, m == AggMax)
		}
		out, _ := tabular.NewColumn(c.Name(), c.Kind(), len(groups))
		for g, r := range pick {
			if r >= 0 {
				copyCell(out, g, c, r)
			}
		}
		return out
	case AggSum:
		if ic, ok := c.(*tabular.IntColumn); ok {
			out := tabular.NewIntColumn(c.Name(), len(groups))
			for g, rows := range groups {
				var s int64
				for _, r := range rows {
					v, _ := ic.Get(r)
					s += v
				}
				out.Set(g, s)
			}
			return out
		}
	}
	out := tabular.NewFloatColumn(c.Name(), len(groups))
	for g, rows := range groups {
		vals := tabular.Floats(c.Take(rows))
		switch {
		case m == AggSum:
			out.Set(g, floats.Sum(vals))
		case len(vals) == 0:
			out.SetNull(g)
		case m == AggMedian:
			med, _ := impute.MedianOf(vals)
			out.Set(g, med)
		default:
			out.Set(g, stat.Mean(vals, nil))
		}
	}
	return out
}

// extreme returns the row holding the smallest (or largest) present value,
// or -1 when every value is missing.
func extreme(c tabular.Column, rows []int, largest bool) int {
	best := -1
	for _, r := range rows {
		if c.IsNull(r) {
			continue
		}
		if best < 0 {
			best = r
			continue
		}
		cmp := compareRows(c, r, best)
		if (largest && cmp > 0) || (!largest && cmp < 0) {
			best = r
		}
	}
	return best
}

func copyCell(dst tabular.Column, i int, src tabular.Column, j int) {
	switch d := dst.(type) {
	case *tabular.IntColumn:
		v, _ := src.(*tabular.IntColumn).Get(j)
		d.Set(i, v)
	case *tabular.FloatColumn:
		v, _ := src.(*tabular.FloatColumn).Get(j)
		d.Set(i, v)
	case *tabular.StringColumn:
		v, _ := src.(*tabular.StringColumn).Get(j)
		d.Set(i, v)
	case *tabular.BoolColumn:
		v, _ := src.(*tabular.BoolColumn).Get(j)
		d.Set(i, v)
	}
}
