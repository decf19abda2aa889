package tabular

import "fmt"

// Text returns the named column if it holds text.
func (t *Table) Text(name string) (*StringColumn, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	sc, ok := c.(*StringColumn)
	if !ok {
		return nil, fmt.Errorf("column %q is %v, not text: %w", name, c.Kind(), ErrTypeMismatch)
	}
	return sc, nil
}

// Numeric returns the named column if it holds ints or floats.
func (t *Table) Numeric(name string) (Column, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !c.Kind().IsNumeric() {
		return nil, fmt.Errorf("column %q is %v, not numeric: %w", name, c.Kind(), ErrTypeMismatch)
	}
	return c, nil
}

// Floats collects the non-missing values of a numeric column.
func Floats(c Column) []float64 {
	out := make([]float64, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := Float(c, i); ok {
			out = append(out, v)
		}
	}
	return out
}
