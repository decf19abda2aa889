package parquetio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	parquet "github.com/segmentio/parquet-go"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[map[string]any]
	names  []string
}

func OpenReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := parquet.NewGenericReader[map[string]any](f)
	var names []string
	for _, field := range r.Schema().Fields() {
		names = append(names, field.Name())
	}
	return &Reader{file: f, reader: r, names: names}, nil
}

func (r *Reader) Close() error {
	_ = r.reader.Close()
	return r.file.Close()
}

// ReadAll loads every row, inferring column kinds from the decoded values.
func (r *Reader) ReadAll() (*tabular.Table, error) {
	var rows []map[string]any
	buf := make([]map[string]any, 1024)
	for {
		for i := range buf {
			buf[i] = nil
		}
		n, err := r.reader.Read(buf)
		rows = append(rows, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	t := tabular.NewTable(inferSchema(r.names, rows))
	for _, m := range rows {
		t.AppendNullRow()
		if err := setRow(t, t.Rows()-1, m); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ReadFile opens path and loads it.
func ReadFile(path string) (*tabular.Table, error) {
	r, err := OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return r.ReadAll()
}

func inferSchema(names []string, rows []map[string]any) tabular.Schema {
	schema := tabular.Schema{Columns: make([]tabular.ColumnSchema, len(names))}
	for i, k := range names {
		seen, nNum, nInt, nBool := 0, 0, 0, 0
		for _, m := range rows {
			v, ok := m[k]
			if !ok || v == nil {
				continue
			}
			seen++
			switch x := v.(type) {
			case float32, float64:
				nNum++
			case int, int32, int64:
				nNum++
				nInt++
			case bool:
				nBool++
			case string:
				if _, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
					nNum++
					nInt++
				} else if _, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
					nNum++
				}
			}
		}
		kind := tabular.KindString
		switch {
		case seen == 0:
			kind = tabular.KindFloat
		case nInt == seen:
			kind = tabular.KindInt
		case nNum == seen:
			kind = tabular.KindFloat
		case nBool == seen:
			kind = tabular.KindBool
		}
		schema.Columns[i] = tabular.ColumnSchema{Name: k, Type: kind, Nullable: true}
	}
	return schema
}

func setRow(t *tabular.Table, row int, m map[string]any) error {
	for _, cs := range t.Schema().Columns {
		v, ok := m[cs.Name]
		if !ok || v == nil {
			continue
		}
		var cell any
		switch cs.Type {
		case tabular.KindFloat:
			switch x := v.(type) {
			case float64:
				cell = x
			case float32:
				cell = float64(x)
			case int:
				cell = float64(x)
			case int32:
				cell = float64(x)
			case int64:
				cell = float64(x)
			case string:
				f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
				if err != nil {
					return fmt.Errorf("column %q value %q: %w", cs.Name, x, tabular.ErrConversion)
				}
				cell = f
			}
		case tabular.KindInt:
			switch x := v.(type) {
			case int64:
				cell = x
			case int32:
				cell = int64(x)
			case int:
				cell = int64(x)
			case string:
				n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
				if err != nil {
					return fmt.Errorf("column %q value %q: %w", cs.Name, x, tabular.ErrConversion)
				}
				cell = n
			}
		case tabular.KindBool:
			cell, _ = v.(bool)
		default:
			switch x := v.(type) {
			case string:
				cell = x
			case []byte:
				cell = string(x)
			default:
				cell = fmt.Sprintf("%v", x)
			}
		}
		if err := t.SetCell(row, cs.Name, cell); err != nil {
			return err
		}
	}
	return nil
}
