package jsonlio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	iox "github.com/wdm0006/datacleaner/pkg/io/ioutils"
	"github.com/wdm0006/datacleaner/pkg/tabular"
)

type ReaderOptions struct {
	SampleRows int // 0 = all rows
}

// Reader decodes one JSON object per line. Columns follow the order in
// which keys are first seen.
type Reader struct {
	r      *bufio.Reader
	closer io.Closer
	opt    ReaderOptions
	buf    []map[string]any
	keys   []string
}

func Open(path string, opt ReaderOptions) (*Reader, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	return &Reader{r: bufio.NewReader(rc), closer: rc, opt: opt}, nil
}

func NewReaderFrom(src io.Reader, opt ReaderOptions) *Reader {
	return &Reader{r: bufio.NewReader(src), opt: opt}
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func (r *Reader) InferSchema() (tabular.Schema, error) {
	dec := json.NewDecoder(r.r)
	seen := map[string]struct{}{}
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if err == io.EOF {
				break
			}
			return tabular.Schema{}, err
		}
		keys, err := objectKeys(raw)
		if err != nil {
			return tabular.Schema{}, fmt.Errorf("jsonl record %d: %w", len(r.buf)+1, err)
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			return tabular.Schema{}, err
		}
		for _, k := range keys {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				r.keys = append(r.keys, k)
			}
		}
		r.buf = append(r.buf, m)
	}
	sample := r.buf
	if r.opt.SampleRows > 0 && len(sample) > r.opt.SampleRows {
		sample = sample[:r.opt.SampleRows]
	}
	kinds := inferKinds(sample, r.keys)
	schema := tabular.Schema{Columns: make([]tabular.ColumnSchema, len(r.keys))}
	for i, k := range r.keys {
		schema.Columns[i] = tabular.ColumnSchema{Name: k, Type: kinds[i], Nullable: true}
	}
	return schema, nil
}

func (r *Reader) ReadAll(schema tabular.Schema) (*tabular.Table, error) {
	t := tabular.NewTable(schema)
	for n, m := range r.buf {
		t.AppendNullRow()
		if err := setRowFromMap(t, t.Rows()-1, m); err != nil {
			return nil, fmt.Errorf("jsonl record %d: %w", n+1, err)
		}
	}
	r.buf = nil
	return t, nil
}

// ReadFile opens path, infers its schema and loads it.
func ReadFile(path string, opt ReaderOptions) (*tabular.Table, error) {
	r, err := Open(path, opt)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	schema, err := r.InferSchema()
	if err != nil {
		return nil, err
	}
	return r.ReadAll(schema)
}

// objectKeys lists the keys of a JSON object in document order.
func objectKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object")
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func setRowFromMap(t *tabular.Table, row int, m map[string]any) error {
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
			case string:
				f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
				if err != nil {
					return fmt.Errorf("column %q value %q: %w", cs.Name, x, tabular.ErrConversion)
				}
				cell = f
			default:
				return fmt.Errorf("column %q value %v: %w", cs.Name, x, tabular.ErrConversion)
			}
		case tabular.KindInt:
			x, ok := v.(float64)
			if !ok {
				return fmt.Errorf("column %q value %v: %w", cs.Name, v, tabular.ErrConversion)
			}
			cell = int64(x)
		case tabular.KindBool:
			x, ok := v.(bool)
			if !ok {
				return fmt.Errorf("column %q value %v: %w", cs.Name, v, tabular.ErrConversion)
			}
			cell = x
		default:
			switch x := v.(type) {
			case string:
				cell = x
			default:
				// fallback to JSON encoding
				b, _ := json.Marshal(x)
				cell = string(b)
			}
		}
		if err := t.SetCell(row, cs.Name, cell); err != nil {
			return err
		}
	}
	return nil
}

func inferKinds(sample []map[string]any, keys []string) []tabular.Kind {
	kinds := make([]tabular.Kind, len(keys))
	for i, k := range keys {
		seen, nInt, nNum, nBool := 0, 0, 0, 0
		for _, m := range sample {
			v, ok := m[k]
			if !ok || v == nil {
				continue
			}
			seen++
			switch x := v.(type) {
			case float64:
				nNum++
				if x == float64(int64(x)) {
					nInt++
				}
			case bool:
				nBool++
			}
		}
		switch {
		case seen == 0:
			kinds[i] = tabular.KindFloat
		case nInt == seen:
			kinds[i] = tabular.KindInt
		case nNum == seen:
			kinds[i] = tabular.KindFloat
		case nBool == seen:
			kinds[i] = tabular.KindBool
		default:
			kinds[i] = tabular.KindString
		}
	}
	return kinds
}
