package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

type NumStats struct {
	Count  int     `json:"count"`
	Nulls  int     `json:"nulls"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Sum    float64 `json:"sum"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`

	values []float64
}

type BoolStats struct {
	Count int `json:"count"`
	Nulls int `json:"nulls"`
	True  int `json:"true"`
	False int `json:"false"`
}

type StringStats struct {
	Count int
	Nulls int
	TopK  int
	Freqs map[string]int
}

type ColumnProfile struct {
	Name string
	Kind tabular.Kind
	Num  *NumStats
	Bool *BoolStats
	Str  *StringStats
}

// Collector accumulates per-column statistics over one or more tables that
// share a schema.
type Collector struct {
	cols  []ColumnProfile
	index map[string]int
	topK  int
}

func NewCollector(schema tabular.Schema, topK int) *Collector {
	c := &Collector{index: make(map[string]int), topK: topK}
	c.cols = make([]ColumnProfile, len(schema.Columns))
	for i, cs := range schema.Columns {
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type}
		switch cs.Type {
		case tabular.KindFloat, tabular.KindInt:
			cp.Num = &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
		case tabular.KindBool:
			cp.Bool = &BoolStats{}
		default:
			cp.Str = &StringStats{TopK: topK, Freqs: make(map[string]int)}
		}
		c.cols[i] = cp
		c.index[cs.Name] = i
	}
	return c
}

// Summarize profiles a single table.
func Summarize(t *tabular.Table, topK int) *Collector {
	c := NewCollector(t.Schema(), topK)
	c.ConsumeTable(t)
	return c
}

func (c *Collector) ConsumeTable(t *tabular.Table) {
	for _, col := range t.Columns() {
		idx, ok := c.index[col.Name()]
		if !ok {
			continue
		}
		cp := &c.cols[idx]
		switch typed := col.(type) {
		case *tabular.FloatColumn, *tabular.IntColumn:
			if cp.Num == nil {
				continue
			}
			for i := 0; i < col.Len(); i++ {
				v, ok := tabular.Float(col, i)
				if !ok {
					cp.Num.Nulls++
					continue
				}
				cp.Num.Count++
				cp.Num.Min = math.Min(cp.Num.Min, v)
				cp.Num.Max = math.Max(cp.Num.Max, v)
				cp.Num.Sum += v
				cp.Num.values = append(cp.Num.values, v)
			}
			if cp.Num.Count > 0 {
				cp.Num.Mean, cp.Num.StdDev = stat.MeanStdDev(cp.Num.values, nil)
			}
			if cp.Num.Count < 2 {
				cp.Num.StdDev = 0
			}
		case *tabular.BoolColumn:
			if cp.Bool == nil {
				continue
			}
			for i := 0; i < typed.Len(); i++ {
				v, ok := typed.Get(i)
				if !ok {
					cp.Bool.Nulls++
					continue
				}
				cp.Bool.Count++
				if v {
					cp.Bool.True++
				} else {
					cp.Bool.False++
				}
			}
		case *tabular.StringColumn:
			if cp.Str == nil {
				continue
			}
			for i := 0; i < typed.Len(); i++ {
				v, ok := typed.Get(i)
				if !ok {
					cp.Str.Nulls++
					continue
				}
				cp.Str.Count++
				if c.topK > 0 {
					cp.Str.Freqs[v]++
				}
			}
		}
	}
}

// Columns returns the collected profiles in schema order.
func (c *Collector) Columns() []ColumnProfile { return c.cols }

// Top returns up to the collector's topK most frequent values of a text
// column, most frequent first and ties by value.
func (c *Collector) Top(cp ColumnProfile) []ValueCount {
	if cp.Str == nil || len(cp.Str.Freqs) == 0 {
		return nil
	}
	arr := make([]ValueCount, 0, len(cp.Str.Freqs))
	for k, v := range cp.Str.Freqs {
		arr = append(arr, ValueCount{Value: k, Count: v})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].Count != arr[j].Count {
			return arr[i].Count > arr[j].Count
		}
		return arr[i].Value < arr[j].Value
	})
	if c.topK > 0 && c.topK < len(arr) {
		arr = arr[:c.topK]
	}
	return arr
}

type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

func (c *Collector) ReportText() string {
	var b strings.Builder
	b.WriteString("Profile Summary\n")
	for _, cp := range c.cols {
		fmt.Fprintf(&b, "- %s (%v): ", cp.Name, cp.Kind)
		switch {
		case cp.Num != nil:
			if cp.Num.Count == 0 {
				fmt.Fprintf(&b, "count=0 nulls=%d\n", cp.Num.Nulls)
				continue
			}
			fmt.Fprintf(&b, "count=%d nulls=%d min=%.6g max=%.6g mean=%.6g std=%.6g\n",
				cp.Num.Count, cp.Num.Nulls, cp.Num.Min, cp.Num.Max, cp.Num.Mean, cp.Num.StdDev)
		case cp.Bool != nil:
			fmt.Fprintf(&b, "count=%d nulls=%d true=%d false=%d\n", cp.Bool.Count, cp.Bool.Nulls, cp.Bool.True, cp.Bool.False)
		default:
			fmt.Fprintf(&b, "count=%d nulls=%d\n", cp.Str.Count, cp.Str.Nulls)
			for _, kv := range c.Top(cp) {
				fmt.Fprintf(&b, "  * %q: %d\n", kv.Value, kv.Count)
			}
		}
	}
	return b.String()
}

type JSONProfile struct {
	Columns []JSONColumn `json:"columns"`
}

type JSONColumn struct {
	Name string     `json:"name"`
	Kind string     `json:"kind"`
	Num  *NumStats  `json:"num,omitempty"`
	Bool *BoolStats `json:"bool,omitempty"`
	Str  *JSONText  `json:"str,omitempty"`
}

type JSONText struct {
	Count int          `json:"count"`
	Nulls int          `json:"nulls"`
	Top   []ValueCount `json:"top,omitempty"`
}

func (c *Collector) ReportJSON() JSONProfile {
	out := JSONProfile{Columns: make([]JSONColumn, 0, len(c.cols))}
	for _, cp := range c.cols {
		jc := JSONColumn{Name: cp.Name, Kind: cp.Kind.String()}
		switch {
		case cp.Num != nil:
			n := *cp.Num
			if n.Count == 0 {
				// JSON has no encoding for the infinite sentinels
				n.Min, n.Max = 0, 0
			}
			jc.Num = &n
		case cp.Bool != nil:
			jc.Bool = cp.Bool
		case cp.Str != nil:
			jc.Str = &JSONText{Count: cp.Str.Count, Nulls: cp.Str.Nulls, Top: c.Top(cp)}
		}
		out.Columns = append(out.Columns, jc)
	}
	return out
}
