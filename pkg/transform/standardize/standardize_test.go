package standardize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

func makeTable() *tabular.Table {
	s := tabular.NewStringColumn("s", 4)
	s.Set(0, "  Foo$  ")
	s.Set(1, "$BAR$")
	s.Set(2, "baz\t")
	// row 3 null
	n := tabular.NewIntColumn("n", 4)
	t, _ := tabular.FromColumns(s, n)
	return t
}

func text(t *testing.T, tbl *tabular.Table, row int) string {
	t.Helper()
	c, err := tbl.Text("s")
	if err != nil {
		t.Fatal(err)
	}
	v, _ := c.Get(row)
	return v
}

func TestTrim(t *testing.T) {
	in := makeTable()
	out, err := (&Trim{Column: "s"}).Apply(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if v := text(t, out, 0); v != "Foo$" {
		t.Fatalf("trim failed, got %q", v)
	}
	if v := text(t, out, 2); v != "baz" {
		t.Fatalf("trim failed, got %q", v)
	}
	if v := text(t, in, 0); v != "  Foo$  " {
		t.Fatalf("input table was modified: %q", v)
	}
	c, _ := out.ColumnByName("s")
	if !c.IsNull(3) {
		t.Fatal("missing value should stay missing")
	}

	again, err := (&Trim{Column: "s"}).Apply(context.Background(), out)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if text(t, again, i) != text(t, out, i) {
			t.Fatalf("trim is not idempotent at row %d", i)
		}
	}
}

func TestRemoveTextLiteral(t *testing.T) {
	out, err := (&RemoveText{Column: "s", Pattern: "$"}).Apply(context.Background(), makeTable())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if v := text(t, out, i); strings.Contains(v, "$") {
			t.Fatalf("row %d still contains the pattern: %q", i, v)
		}
	}
	if v := text(t, out, 1); v != "BAR" {
		t.Fatalf("got %q", v)
	}
}

func TestRemoveTextRegex(t *testing.T) {
	out, err := (&RemoveText{Column: "s", Pattern: `[A-Z]+`, Regex: true}).Apply(context.Background(), makeTable())
	if err != nil {
		t.Fatal(err)
	}
	if v := text(t, out, 1); v != "$$" {
		t.Fatalf("got %q", v)
	}
	if _, err := (&RemoveText{Column: "s", Pattern: "(", Regex: true}).Apply(context.Background(), makeTable()); err == nil {
		t.Fatal("expected an invalid pattern error")
	}
}

func TestTextOperationsRejectNumericColumns(t *testing.T) {
	tbl := makeTable()
	if _, err := (&Trim{Column: "n"}).Apply(context.Background(), tbl); !errors.Is(err, tabular.ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	if _, err := (&RemoveText{Column: "n", Pattern: "1"}).Apply(context.Background(), tbl); !errors.Is(err, tabular.ErrTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	if _, err := (&Trim{Column: "nope"}).Apply(context.Background(), tbl); !errors.Is(err, tabular.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
