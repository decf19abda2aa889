package tabular_test

import (
	"context"
	"errors"
	"testing"

	imp "github.com/wdm0006/datacleaner/pkg/transform/impute"
	std "github.com/wdm0006/datacleaner/pkg/transform/standardize"
	tb "github.com/wdm0006/datacleaner/pkg/tabular"
)

func TestPipeline(t *testing.T) {
	s := tb.Schema{Columns: []tb.ColumnSchema{{Name: "x", Type: tb.KindFloat, Nullable: true}, {Name: "s", Type: tb.KindString, Nullable: true}}}
	f := tb.NewTable(s)
	for i := 0; i < 2; i++ {
		f.AppendNullRow()
	}
	_ = f.SetCell(0, "x", 1.0)
	_ = f.SetCell(0, "s", " Foo ")
	// row 1 left nulls

	p := tb.NewPipeline().Add(&imp.Mean{Column: "x"}).Add(&std.Trim{Column: "s"})
	out, err := p.Run(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	colX, _ := out.ColumnByName("x")
	fx := colX.(*tb.FloatColumn)
	if fx.IsNull(1) {
		t.Fatal("imputer failed to fill null")
	}
	colS, _ := out.ColumnByName("s")
	ss := colS.(*tb.StringColumn)
	s0, _ := ss.Get(0)
	if s0 != "Foo" {
		t.Fatalf("trim failed, got %q", s0)
	}
}

func TestPipelineStopsOnError(t *testing.T) {
	f, _ := tb.FromColumns(tb.NewStringColumn("s", 1))
	p := tb.NewPipeline().Add(&imp.Mean{Column: "s"}).Add(&std.Trim{Column: "s"})
	if _, err := p.Run(context.Background(), f); !errors.Is(err, tb.ErrTypeMismatch) {
		t.Fatalf("err=%v, want ErrTypeMismatch", err)
	}
}

func TestPipelineCanceled(t *testing.T) {
	f, _ := tb.FromColumns(tb.NewStringColumn("s", 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := tb.NewPipeline().Add(&std.Trim{Column: "s"}).Run(ctx, f); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}
