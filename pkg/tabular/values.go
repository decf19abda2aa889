package tabular

import (
	"encoding/json"
	"fmt"
	"math"
)

// ColumnOf builds a column from Go values, inferring its kind. nil entries are
// missing. Ints and floats mix into a float column; text and bools never mix
// with anything else. A column of only nils is float.
func ColumnOf(name string, values []any) (Column, error) {
	kind := KindInvalid
	for i, v := range values {
		k, err := kindOf(v)
		if err != nil {
			return nil, fmt.Errorf("column %q value %d (%T): %w", name, i, v, err)
		}
		switch {
		case k == KindInvalid || k == kind:
		case kind == KindInvalid:
			kind = k
		case k.IsNumeric() && kind.IsNumeric():
			kind = KindFloat
		default:
			return nil, fmt.Errorf("column %q mixes %v and %v values: %w", name, kind, k, ErrTypeMismatch)
		}
	}
	if kind == KindInvalid {
		kind = KindFloat
	}
	c, err := NewColumn(name, kind, len(values))
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		switch col := c.(type) {
		case *BoolColumn:
			col.Set(i, v.(bool))
		case *StringColumn:
			col.Set(i, v.(string))
		case *IntColumn:
			n, _ := toInt(v)
			col.Set(i, n)
		case *FloatColumn:
			f, _ := ToNumber(v)
			col.Set(i, f)
		}
	}
	return c, nil
}

func kindOf(v any) (Kind, error) {
	switch x := v.(type) {
	case nil:
		return KindInvalid, nil
	case bool:
		return KindBool, nil
	case string:
		return KindString, nil
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return KindInt, nil
	case uint, uint64, uintptr:
		if _, ok := toInt(v); ok {
			return KindInt, nil
		}
		return KindInvalid, ErrConversion
	case float32, float64:
		return KindFloat, nil
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return KindInt, nil
		}
		if _, err := x.Float64(); err == nil {
			return KindFloat, nil
		}
		return KindInvalid, ErrConversion
	}
	return KindInvalid, ErrTypeMismatch
}

// ToNumber converts any Go numeric value to float64.
func ToNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uintptr:
		return float64(x), true
	}
	if n, ok := toInt(v); ok {
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	case uintptr:
		return fromUint(uint64(x))
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	}
	return 0, false
}

func fromUint(x uint64) (int64, bool) {
	if x > math.MaxInt64 {
		return 0, false
	}
	return int64(x), true
}

// ToInt reports v as an int64 when it is a Go integer, or a float with no
// fractional part.
func ToInt(v any) (int64, bool) {
	if n, ok := toInt(v); ok {
		return n, true
	}
	if f, ok := ToNumber(v); ok && f >= math.MinInt64 && f < math.MaxInt64 && f == math.Trunc(f) {
		return int64(f), true
	}
	return 0, false
}
