package csvio

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

func TestInferAndRead(t *testing.T) {
	p := filepath.FromSlash("../../../testdata/people.csv")
	r, err := Open(p, ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = r.Close() }()
	schema, err := r.InferSchema()
	if err != nil {
		t.Fatal(err)
	}
	want := []tabular.Kind{tabular.KindString, tabular.KindInt, tabular.KindString, tabular.KindFloat}
	if len(schema.Columns) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(schema.Columns))
	}
	for i, k := range want {
		if schema.Columns[i].Type != k {
			t.Fatalf("column %s: expected %v, got %v", schema.Columns[i].Name, k, schema.Columns[i].Type)
		}
	}
	tb, err := r.ReadAll(schema)
	if err != nil {
		t.Fatal(err)
	}
	if tb.Rows() != 4 {
		t.Fatalf("expected 4 rows, got %d", tb.Rows())
	}
	name, _ := tb.ColumnByName("name")
	if v, _ := name.(*tabular.StringColumn).Get(0); v != " Alice " {
		t.Fatalf("text values must keep surrounding spaces, got %q", v)
	}
	city, _ := tb.ColumnByName("city")
	if v, _ := city.(*tabular.StringColumn).Get(2); v != "New York, NY" {
		t.Fatalf("quoted field not honored, got %q", v)
	}
	age, _ := tb.ColumnByName("age")
	if !age.IsNull(1) {
		t.Fatal("empty field should be missing")
	}
	score, _ := tb.ColumnByName("score")
	if !score.IsNull(2) {
		t.Fatal("NA token should be missing")
	}
}

func TestSniffDelimiter(t *testing.T) {
	tb, err := ReadFile(filepath.FromSlash("../../../testdata/semicolon.csv"), ReaderOptions{HasHeader: true, Sniff: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(tb.Names(), ","); got != "id,label" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestDefaultDelimiterIsComma(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("note; remark\nhello; world\nfoo\n"), ReaderOptions{HasHeader: true})
	schema, err := r.InferSchema()
	if err != nil {
		t.Fatal(err)
	}
	tb, err := r.ReadAll(schema)
	if err != nil {
		t.Fatal(err)
	}
	if got := tb.Names(); len(got) != 1 || got[0] != "note; remark" {
		t.Fatalf("expected a single column, got %q", got)
	}
	note, _ := tb.ColumnByName("note; remark")
	if v, _ := note.(*tabular.StringColumn).Get(0); v != "hello; world" {
		t.Fatalf("unexpected cell %q", v)
	}
}

func TestInfinityIsFloat(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("y\ninf\n-Infinity\n+INF\n2.5\n"), ReaderOptions{HasHeader: true})
	schema, err := r.InferSchema()
	if err != nil {
		t.Fatal(err)
	}
	if schema.Columns[0].Type != tabular.KindFloat {
		t.Fatalf("expected float, got %v", schema.Columns[0].Type)
	}
	tb, err := r.ReadAll(schema)
	if err != nil {
		t.Fatal(err)
	}
	y, _ := tb.ColumnByName("y")
	if v, _ := y.(*tabular.FloatColumn).Get(1); !math.IsInf(v, -1) {
		t.Fatalf("expected -Inf, got %v", v)
	}
}

func TestShortAndLongRecords(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("a,b\n1,2\n3\n"), ReaderOptions{HasHeader: true, Delimiter: ','})
	schema, err := r.InferSchema()
	if err != nil {
		t.Fatal(err)
	}
	tb, err := r.ReadAll(schema)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := tb.ColumnByName("b")
	if !b.IsNull(1) {
		t.Fatal("short record should be padded with missing values")
	}
	if r.Warnings() != "short_records=1" {
		t.Fatalf("unexpected warnings %q", r.Warnings())
	}

	r = NewReaderFrom(strings.NewReader("a,b\n1,2,3\n"), ReaderOptions{HasHeader: true, Delimiter: ','})
	schema, err = r.InferSchema()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadAll(schema); err == nil {
		t.Fatal("expected an error for a long record")
	}
}

func TestSampledInferenceRejectsLaterText(t *testing.T) {
	r := NewReaderFrom(strings.NewReader("x\n1\n2\nthree\n"), ReaderOptions{HasHeader: true, Delimiter: ',', SampleRows: 2})
	schema, err := r.InferSchema()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadAll(schema); !errors.Is(err, tabular.ErrConversion) {
		t.Fatalf("expected conversion error, got %v", err)
	}
}

func TestDuplicateHeaders(t *testing.T) {
	got := headerNames([]string{"\ufeffa", "a", "b", "a"})
	want := []string{"a", "a.1", "b", "a.2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("header %d: want %q, got %q", i, want[i], got[i])
		}
	}
}
