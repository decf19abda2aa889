package tabular

import "fmt"

// Schema describes the logical shape of a dataset.
type Schema struct {
	Columns []ColumnSchema
}

type ColumnSchema struct {
	Name     string
	Type     Kind
	Nullable bool
}

// Table is a columnar container for tabular data. Rows are addressed by
// dense position 0..Rows()-1; there is no stored index column.
type Table struct {
	cols  []Column
	index map[string]int // name -> col index
	nrows int
}

// NewTable builds an empty table with one column per schema entry.
func NewTable(s Schema) *Table {
	t := &Table{cols: make([]Column, len(s.Columns)), index: make(map[string]int)}
	for i, cs := range s.Columns {
		c, err := NewColumn(cs.Name, cs.Type, 0)
		if err != nil {
			panic("invalid column kind")
		}
		t.cols[i] = c
		t.index[cs.Name] = i
	}
	return t
}

// FromColumns assembles a table from equally sized, uniquely named columns.
func FromColumns(cols ...Column) (*Table, error) {
	t := &Table{index: make(map[string]int)}
	for i, c := range cols {
		if _, dup := t.index[c.Name()]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name())
		}
		if i > 0 && c.Len() != t.nrows {
			return nil, fmt.Errorf("column %q has %d rows, want %d: %w", c.Name(), c.Len(), t.nrows, ErrLengthMismatch)
		}
		t.nrows = c.Len()
		t.index[c.Name()] = i
		t.cols = append(t.cols, c)
	}
	return t, nil
}

func (t *Table) Schema() Schema {
	s := Schema{Columns: make([]ColumnSchema, len(t.cols))}
	for i, c := range t.cols {
		s.Columns[i] = ColumnSchema{Name: c.Name(), Type: c.Kind(), Nullable: true}
	}
	return s
}

func (t *Table) Rows() int { return t.nrows }
func (t *Table) Cols() int { return len(t.cols) }

// Columns returns the columns in table order. The slice must not be modified.
func (t *Table) Columns() []Column { return t.cols }

func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}
	return names
}

func (t *Table) ColumnByName(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Column is ColumnByName with an ErrNotFound error for absent names.
func (t *Table) Column(name string) (Column, error) {
	c, ok := t.ColumnByName(name)
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrNotFound)
	}
	return c, nil
}

// SetColumn replaces the column with the same name, keeping its position,
// or appends c when the name is new.
func (t *Table) SetColumn(c Column) error {
	if len(t.cols) > 0 && c.Len() != t.nrows {
		return fmt.Errorf("column %q has %d values for %d rows: %w", c.Name(), c.Len(), t.nrows, ErrLengthMismatch)
	}
	if i, ok := t.index[c.Name()]; ok {
		t.cols[i] = c
		return nil
	}
	t.nrows = c.Len()
	t.index[c.Name()] = len(t.cols)
	t.cols = append(t.cols, c)
	return nil
}

// DropColumns removes the named columns. Nothing is removed unless every
// name exists.
func (t *Table) DropColumns(names ...string) error {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := t.index[n]; !ok {
			return fmt.Errorf("drop column %q: %w", n, ErrNotFound)
		}
		drop[n] = struct{}{}
	}
	kept := make([]Column, 0, len(t.cols))
	for _, c := range t.cols {
		if _, ok := drop[c.Name()]; !ok {
			kept = append(kept, c)
		}
	}
	t.cols = kept
	t.reindex()
	if len(t.cols) == 0 {
		t.nrows = 0
	}
	return nil
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.cols))
	for i, c := range t.cols {
		t.index[c.Name()] = i
	}
}

// Take returns a new table holding the given rows in the given order.
func (t *Table) Take(rows []int) *Table {
	out := &Table{cols: make([]Column, len(t.cols)), nrows: len(rows)}
	for i, c := range t.cols {
		out.cols[i] = c.Take(rows)
	}
	out.reindex()
	return out
}

// Head returns the first n rows. A negative n returns all rows except the
// last |n|.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = t.nrows + n
	}
	n = max(0, min(n, t.nrows))
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return t.Take(rows)
}

func (t *Table) Clone() *Table {
	out := &Table{cols: make([]Column, len(t.cols)), nrows: t.nrows}
	for i, c := range t.cols {
		out.cols[i] = c.Clone()
	}
	out.reindex()
	return out
}

// AppendNullRow appends a row with all-null values.
func (t *Table) AppendNullRow() {
	for _, c := range t.cols {
		c.(interface{ AppendNull() }).AppendNull()
	}
	t.nrows++
}

// SetCell sets a single cell value by name (row must exist).
func (t *Table) SetCell(row int, name string, v any) error {
	c, err := t.Column(name)
	if err != nil {
		return err
	}
	if v == nil {
		c.SetNull(row)
		return nil
	}
	switch col := c.(type) {
	case *BoolColumn:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("column %s expects bool: %w", name, ErrTypeMismatch)
		}
		col.Set(row, b)
	case *IntColumn:
		switch x := v.(type) {
		case int:
			col.Set(row, int64(x))
		case int64:
			col.Set(row, x)
		case float64:
			col.Set(row, int64(x))
		default:
			return fmt.Errorf("column %s expects int/int64: %w", name, ErrTypeMismatch)
		}
	case *FloatColumn:
		switch x := v.(type) {
		case float32:
			col.Set(row, float64(x))
		case float64:
			col.Set(row, x)
		case int:
			col.Set(row, float64(x))
		case int64:
			col.Set(row, float64(x))
		default:
			return fmt.Errorf("column %s expects float64: %w", name, ErrTypeMismatch)
		}
	case *StringColumn:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("column %s expects string: %w", name, ErrTypeMismatch)
		}
		col.Set(row, s)
	default:
		return fmt.Errorf("unknown column kind")
	}
	return nil
}

// Row returns the values of one row in column order, nil for missing cells.
func (t *Table) Row(i int) []any {
	out := make([]any, len(t.cols))
	for c, col := range t.cols {
		out[c] = col.Value(i)
	}
	return out
}

func (t *Table) shallow() *Table {
	out := &Table{cols: append([]Column(nil), t.cols...), nrows: t.nrows}
	out.reindex()
	return out
}

// WithColumn returns a copy of t with c set as by SetColumn. Columns are
// shared with t, which is left unchanged.
func (t *Table) WithColumn(c Column) (*Table, error) {
	out := t.shallow()
	if err := out.SetColumn(c); err != nil {
		return nil, err
	}
	return out, nil
}

// WithoutColumns returns a copy of t without the named columns.
func (t *Table) WithoutColumns(names ...string) (*Table, error) {
	out := t.shallow()
	if err := out.DropColumns(names...); err != nil {
		return nil, err
	}
	return out, nil
}
