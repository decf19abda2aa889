// Package golearn converts between tabular Tables and
// github.com/sjwhitworth/golearn/base DenseInstances.
package golearn

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sjwhitworth/golearn/base"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// ToDenseInstances converts a Table into golearn DenseInstances. Numeric
// columns become float attributes with missing cells as NaN; every other
// column becomes categorical. The last column is marked as the class.
func ToDenseInstances(t *tabular.Table) (*base.DenseInstances, error) {
	cols := t.Columns()
	attrs := make([]base.Attribute, len(cols))
	for i, c := range cols {
		if c.Kind().IsNumeric() {
			attrs[i] = base.NewFloatAttribute(c.Name())
			continue
		}
		ca := new(base.CategoricalAttribute)
		ca.SetName(c.Name())
		attrs[i] = ca
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(t.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < t.Rows(); r++ {
		for c, col := range cols {
			switch typed := col.(type) {
			case *tabular.FloatColumn, *tabular.IntColumn:
				v, ok := tabular.Float(col, r)
				if !ok {
					v = math.NaN()
				}
				inst.Set(specs[c], r, base.PackFloatToBytes(v))
			case *tabular.BoolColumn:
				if v, ok := typed.Get(r); ok {
					inst.Set(specs[c], r, attrs[c].GetSysValFromString(strconv.FormatBool(v)))
				}
			case *tabular.StringColumn:
				if v, ok := typed.Get(r); ok {
					inst.Set(specs[c], r, attrs[c].GetSysValFromString(v))
				}
			}
		}
	}
	if len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, fmt.Errorf("class attribute %q: %w", attrs[len(attrs)-1].GetName(), err)
		}
	}
	return inst, nil
}

// FromDenseInstances converts golearn DenseInstances into a Table. Float
// attributes become float columns with NaN read as missing; everything else
// is read back as text.
func FromDenseInstances(inst *base.DenseInstances) (*tabular.Table, error) {
	attrs := inst.AllAttributes()
	schema := tabular.Schema{Columns: make([]tabular.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := tabular.KindString
		if a.GetType() == base.Float64Type {
			k = tabular.KindFloat
		}
		schema.Columns[i] = tabular.ColumnSchema{Name: a.GetName(), Type: k, Nullable: true}
		spec, err := inst.GetAttribute(a)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}
	t := tabular.NewTable(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		t.AppendNullRow()
		for c, cs := range schema.Columns {
			var v any
			raw := inst.Get(specs[c], r)
			if cs.Type == tabular.KindFloat {
				if f := base.UnpackBytesToFloat(raw); !math.IsNaN(f) {
					v = f
				}
			} else {
				v = specs[c].GetAttribute().GetStringFromSysVal(raw)
			}
			if err := t.SetCell(r, cs.Name, v); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}
