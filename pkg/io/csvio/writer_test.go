package csvio

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

func TestWriteOmitsIndexAndBlanksMissing(t *testing.T) {
	x := tabular.NewFloatColumn("x", 3)
	x.Set(0, 1.25)
	x.Set(1, 3)
	x.SetNull(2)
	s := tabular.NewStringColumn("s", 3)
	s.Set(0, "a,b")
	s.Set(1, "c")
	s.Set(2, "d")
	tb, err := tabular.FromColumns(x, s)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, tb, WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	want := "x,s\n1.25,\"a,b\"\n3.0,c\n,d\n"
	if buf.String() != want {
		t.Fatalf("want %q, got %q", want, buf.String())
	}
}

func TestRoundTripGzip(t *testing.T) {
	tb, err := ReadFile(filepath.FromSlash("../../../testdata/people.csv"), ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(t.TempDir(), "people.csv.gz")
	if err := WriteAll(p, tb, WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	back, err := ReadFile(p, ReaderOptions{HasHeader: true})
	if err != nil {
		t.Fatal(err)
	}
	if back.Rows() != tb.Rows() || back.Cols() != tb.Cols() {
		t.Fatalf("shape changed: %dx%d -> %dx%d", tb.Rows(), tb.Cols(), back.Rows(), back.Cols())
	}
	score, _ := back.ColumnByName("score")
	if v, _ := score.(*tabular.FloatColumn).Get(1); v != 92.25 {
		t.Fatalf("float did not survive the round trip: %v", v)
	}
}

func TestInfinityRoundTrip(t *testing.T) {
	y := tabular.NewFloatColumn("y", 2)
	y.Set(0, math.Inf(1))
	y.Set(1, 2)
	tb, err := tabular.FromColumns(y)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, tb, WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	r := NewReaderFrom(&buf, ReaderOptions{HasHeader: true})
	schema, err := r.InferSchema()
	if err != nil {
		t.Fatal(err)
	}
	back, err := r.ReadAll(schema)
	if err != nil {
		t.Fatal(err)
	}
	col, _ := back.ColumnByName("y")
	fc, ok := col.(*tabular.FloatColumn)
	if !ok {
		t.Fatalf("expected a float column, got %v", col.Kind())
	}
	if v, _ := fc.Get(0); !math.IsInf(v, 1) {
		t.Fatalf("expected +Inf, got %v", v)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{1: "1.0", 0.1: "0.1", 2.675: "2.675", 1e20: "1e+20", -0.5: "-0.5"}
	for in, want := range cases {
		if got := FormatFloat(in); got != want {
			t.Fatalf("FormatFloat(%v): want %q, got %q", in, want, got)
		}
	}
}
