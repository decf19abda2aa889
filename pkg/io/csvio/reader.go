package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	iox "github.com/wdm0006/datacleaner/pkg/io/ioutils"
	"github.com/wdm0006/datacleaner/pkg/tabular"
)

type ReaderOptions struct {
	HasHeader  bool
	Delimiter  rune // default ','
	Sniff      bool // guess the delimiter from the first line when Delimiter is 0
	SampleRows int  // rows used for inference; 0 = all rows
	Strict     bool // if true, error on short records
	LazyQuotes bool
	// NAValues replaces the default set of tokens read as missing.
	NAValues []string
}

// DefaultNAValues are the cell contents read as missing values.
var DefaultNAValues = []string{"", "NA", "N/A", "n/a", "NaN", "nan", "null", "NULL", "None", "<NA>", "#N/A"}

var (
	numericRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	integerRe = regexp.MustCompile(`^[+-]?\d+$`)
	infRe     = regexp.MustCompile(`(?i)^[+-]?inf(inity)?$`)
)

type Reader struct {
	r      *csv.Reader
	closer io.Closer
	opt    ReaderOptions
	na     map[string]struct{}
	buf    [][]string
	// repair/warning counters
	shortRecords int
}

// Open opens a CSV file (or stdin for "-") and returns a Reader. Gzip input
// is decompressed transparently.
func Open(path string, opt ReaderOptions) (*Reader, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	r := NewReaderFrom(rc, opt)
	r.closer = rc
	return r, nil
}

// NewReaderFrom constructs a Reader from an arbitrary io.Reader (stdin, pipe).
func NewReaderFrom(src io.Reader, opt ReaderOptions) *Reader {
	br := bufio.NewReader(src)
	delim := opt.Delimiter
	switch {
	case delim != 0:
	case opt.Sniff:
		delim = sniffDelimiter(br)
	default:
		delim = ','
	}
	rr := csv.NewReader(br)
	rr.Comma = delim
	rr.LazyQuotes = opt.LazyQuotes
	rr.FieldsPerRecord = -1
	na := opt.NAValues
	if na == nil {
		na = DefaultNAValues
	}
	set := make(map[string]struct{}, len(na))
	for _, v := range na {
		set[v] = struct{}{}
	}
	return &Reader{r: rr, opt: opt, na: set}
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// InferSchema reads the header (if present) and every record, then decides
// each column's kind from its non-missing values.
func (r *Reader) InferSchema() (tabular.Schema, error) {
	var names []string
	if r.opt.HasHeader {
		rec, err := r.r.Read()
		if err == io.EOF {
			return tabular.Schema{}, fmt.Errorf("empty input: no header row")
		}
		if err != nil {
			return tabular.Schema{}, err
		}
		names = headerNames(rec)
	}
	for {
		rec, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tabular.Schema{}, err
		}
		r.buf = append(r.buf, append([]string(nil), rec...))
	}
	if names == nil {
		width := 0
		if len(r.buf) > 0 {
			width = len(r.buf[0])
		}
		names = make([]string, width)
		for i := range names {
			names[i] = "col_" + strconv.Itoa(i)
		}
	}

	sample := r.buf
	if r.opt.SampleRows > 0 && len(sample) > r.opt.SampleRows {
		sample = sample[:r.opt.SampleRows]
	}
	kinds := r.inferKinds(sample, len(names))
	schema := tabular.Schema{Columns: make([]tabular.ColumnSchema, len(names))}
	for i := range names {
		schema.Columns[i] = tabular.ColumnSchema{Name: names[i], Type: kinds[i], Nullable: true}
	}
	return schema, nil
}

// ReadAll loads the buffered records into a Table with the given schema.
func (r *Reader) ReadAll(schema tabular.Schema) (*tabular.Table, error) {
	t := tabular.NewTable(schema)
	for n, rec := range r.buf {
		line := n + 1
		if r.opt.HasHeader {
			line++
		}
		if len(rec) > len(schema.Columns) {
			return nil, fmt.Errorf("csv line %d: expected %d fields, saw %d", line, len(schema.Columns), len(rec))
		}
		if len(rec) < len(schema.Columns) {
			r.shortRecords++
			if r.opt.Strict {
				return nil, fmt.Errorf("csv line %d: short record, need %d fields, got %d", line, len(schema.Columns), len(rec))
			}
		}
		t.AppendNullRow()
		row := t.Rows() - 1
		for i, cs := range schema.Columns {
			if i >= len(rec) || r.isNA(rec[i]) {
				continue
			}
			v, err := parseCell(rec[i], cs.Type)
			if err != nil {
				return nil, fmt.Errorf("csv line %d, column %q: %w", line, cs.Name, err)
			}
			if err := t.SetCell(row, cs.Name, v); err != nil {
				return nil, err
			}
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

func (r *Reader) isNA(v string) bool {
	_, ok := r.na[v]
	return ok
}

func parseCell(raw string, k tabular.Kind) (any, error) {
	switch k {
	case tabular.KindInt:
		x, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse int %q: %w", raw, tabular.ErrConversion)
		}
		return x, nil
	case tabular.KindFloat:
		x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("parse float %q: %w", raw, tabular.ErrConversion)
		}
		return x, nil
	case tabular.KindBool:
		x, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(raw)))
		if err != nil {
			return nil, fmt.Errorf("parse bool %q: %w", raw, tabular.ErrConversion)
		}
		return x, nil
	default:
		return strings.ToValidUTF8(raw, "?"), nil
	}
}

func (r *Reader) inferKinds(rows [][]string, ncol int) []tabular.Kind {
	kinds := make([]tabular.Kind, ncol)
	for c := 0; c < ncol; c++ {
		seen, integer, float, boolean := 0, 0, 0, 0
		for _, row := range rows {
			if c >= len(row) || r.isNA(row[c]) {
				continue
			}
			seen++
			v := strings.TrimSpace(row[c])
			switch {
			case integerRe.MatchString(v):
				if _, err := strconv.ParseInt(v, 10, 64); err == nil {
					integer++
				} else {
					float++
				}
			case numericRe.MatchString(v), infRe.MatchString(v):
				float++
			default:
				if lv := strings.ToLower(v); lv == "true" || lv == "false" {
					boolean++
				}
			}
		}
		switch {
		case seen == 0:
			// an all-missing column behaves like an empty numeric one
			kinds[c] = tabular.KindFloat
		case integer == seen:
			kinds[c] = tabular.KindInt
		case integer+float == seen:
			kinds[c] = tabular.KindFloat
		case boolean == seen:
			kinds[c] = tabular.KindBool
		default:
			kinds[c] = tabular.KindString
		}
	}
	return kinds
}

// headerNames cleans header cells and makes duplicates unique ("a", "a.1").
func headerNames(rec []string) []string {
	names := make([]string, len(rec))
	seen := make(map[string]int, len(rec))
	for i := range rec {
		n := strings.ToValidUTF8(rec[i], "?")
		if i == 0 {
			// strip BOM on first header cell if present
			n = strings.TrimPrefix(n, "\ufeff")
		}
		if k, dup := seen[n]; dup {
			seen[n] = k + 1
			n = n + "." + strconv.Itoa(k+1)
		} else {
			seen[n] = 0
		}
		names[i] = n
	}
	return names
}

// sniffDelimiter picks the candidate that occurs most often in the first line.
func sniffDelimiter(br *bufio.Reader) rune {
	sample, _ := br.Peek(4096)
	if i := strings.IndexByte(string(sample), '\n'); i >= 0 {
		sample = sample[:i]
	}
	best, bestCount := ',', 0
	for _, c := range []rune{',', '\t', ';', '|'} {
		if n := strings.Count(string(sample), string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

// Warnings returns a summary string of any repairs encountered.
func (r *Reader) Warnings() string {
	if r.shortRecords == 0 {
		return ""
	}
	return fmt.Sprintf("short_records=%d", r.shortRecords)
}
