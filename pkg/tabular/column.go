package tabular

import "math"

// Kind enumerates supported logical types.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// IsNumeric reports whether values of kind k take part in arithmetic.
func (k Kind) IsNumeric() bool { return k == KindInt || k == KindFloat }

// Column is a typed, nullable column abstraction.
type Column interface {
	Name() string
	Kind() Kind
	Len() int
	IsNull(i int) bool
	SetNull(i int)
	// Value returns the cell as a Go value, or nil when it is missing.
	Value(i int) any
	// Take returns a new column holding the given rows in the given order.
	Take(rows []int) Column
	Clone() Column
	Rename(name string) Column
}

// series carries the storage shared by every typed column.
type series[T any] struct {
	name  string
	data  []T
	nulls []bool
}

func newSeries[T any](name string, n int) series[T] {
	return series[T]{name: name, data: make([]T, n), nulls: make([]bool, n)}
}

func (s *series[T]) Name() string      { return s.name }
func (s *series[T]) Len() int          { return len(s.data) }
func (s *series[T]) IsNull(i int) bool { return s.nulls[i] }
func (s *series[T]) SetNull(i int) {
	var zero T
	s.data[i] = zero
	s.nulls[i] = true
}
func (s *series[T]) Get(i int) (T, bool) { return s.data[i], !s.nulls[i] }
func (s *series[T]) Set(i int, v T)      { s.data[i] = v; s.nulls[i] = false }
func (s *series[T]) Append(v T)          { s.data = append(s.data, v); s.nulls = append(s.nulls, false) }
func (s *series[T]) AppendNull() {
	var zero T
	s.data = append(s.data, zero)
	s.nulls = append(s.nulls, true)
}

// NullCount returns the number of missing cells.
func (s *series[T]) NullCount() int {
	n := 0
	for _, null := range s.nulls {
		if null {
			n++
		}
	}
	return n
}

// Values returns every cell as a Go value, nil for missing cells.
func (s *series[T]) Values() []any {
	out := make([]any, len(s.data))
	for i := range s.data {
		out[i] = s.value(i)
	}
	return out
}

func (s *series[T]) value(i int) any {
	if s.nulls[i] {
		return nil
	}
	return s.data[i]
}

func (s *series[T]) take(rows []int) series[T] {
	out := series[T]{name: s.name, data: make([]T, len(rows)), nulls: make([]bool, len(rows))}
	for i, r := range rows {
		out.data[i] = s.data[r]
		out.nulls[i] = s.nulls[r]
	}
	return out
}

func (s *series[T]) clone() series[T] {
	return series[T]{
		name:  s.name,
		data:  append([]T(nil), s.data...),
		nulls: append([]bool(nil), s.nulls...),
	}
}

func (s *series[T]) renamed(name string) series[T] {
	c := s.clone()
	c.name = name
	return c
}

type BoolColumn struct{ series[bool] }

func NewBoolColumn(name string, n int) *BoolColumn {
	return &BoolColumn{newSeries[bool](name, n)}
}
func (c *BoolColumn) Kind() Kind                { return KindBool }
func (c *BoolColumn) Value(i int) any           { return c.value(i) }
func (c *BoolColumn) Take(rows []int) Column    { return &BoolColumn{c.take(rows)} }
func (c *BoolColumn) Clone() Column             { return &BoolColumn{c.clone()} }
func (c *BoolColumn) Rename(name string) Column { return &BoolColumn{c.renamed(name)} }

type IntColumn struct{ series[int64] }

func NewIntColumn(name string, n int) *IntColumn {
	return &IntColumn{newSeries[int64](name, n)}
}
func (c *IntColumn) Kind() Kind                { return KindInt }
func (c *IntColumn) Value(i int) any           { return c.value(i) }
func (c *IntColumn) Take(rows []int) Column    { return &IntColumn{c.take(rows)} }
func (c *IntColumn) Clone() Column             { return &IntColumn{c.clone()} }
func (c *IntColumn) Rename(name string) Column { return &IntColumn{c.renamed(name)} }

type FloatColumn struct{ series[float64] }

func NewFloatColumn(name string, n int) *FloatColumn {
	return &FloatColumn{newSeries[float64](name, n)}
}
// Set stores v at row i. NaN is stored as a missing value.
func (c *FloatColumn) Set(i int, v float64) {
	if math.IsNaN(v) {
		c.SetNull(i)
		return
	}
	c.series.Set(i, v)
}

// Append adds v as a new row, missing when v is NaN.
func (c *FloatColumn) Append(v float64) {
	if math.IsNaN(v) {
		c.AppendNull()
		return
	}
	c.series.Append(v)
}

func (c *FloatColumn) Kind() Kind                { return KindFloat }
func (c *FloatColumn) Value(i int) any           { return c.value(i) }
func (c *FloatColumn) Take(rows []int) Column    { return &FloatColumn{c.take(rows)} }
func (c *FloatColumn) Clone() Column             { return &FloatColumn{c.clone()} }
func (c *FloatColumn) Rename(name string) Column { return &FloatColumn{c.renamed(name)} }

type StringColumn struct{ series[string] }

func NewStringColumn(name string, n int) *StringColumn {
	return &StringColumn{newSeries[string](name, n)}
}
func (c *StringColumn) Kind() Kind                { return KindString }
func (c *StringColumn) Value(i int) any           { return c.value(i) }
func (c *StringColumn) Take(rows []int) Column    { return &StringColumn{c.take(rows)} }
func (c *StringColumn) Clone() Column             { return &StringColumn{c.clone()} }
func (c *StringColumn) Rename(name string) Column { return &StringColumn{c.renamed(name)} }

// NewColumn allocates an all-null column of the given kind.
func NewColumn(name string, k Kind, n int) (Column, error) {
	var c Column
	switch k {
	case KindBool:
		c = NewBoolColumn(name, n)
	case KindInt:
		c = NewIntColumn(name, n)
	case KindFloat:
		c = NewFloatColumn(name, n)
	case KindString:
		c = NewStringColumn(name, n)
	default:
		return nil, ErrTypeMismatch
	}
	for i := 0; i < n; i++ {
		c.SetNull(i)
	}
	return c, nil
}

// Float returns the cell of a numeric column as float64.
func Float(c Column, i int) (float64, bool) {
	switch col := c.(type) {
	case *FloatColumn:
		return col.Get(i)
	case *IntColumn:
		v, ok := col.Get(i)
		return float64(v), ok
	}
	return 0, false
}
