package golearn

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

func TestDenseInstancesRoundTrip(t *testing.T) {
	Convey("Given a table with numeric and text columns", t, func() {
		x, _ := tabular.ColumnOf("x", []any{1.5, nil, 3.0})
		n, _ := tabular.ColumnOf("n", []any{1, 2, 3})
		label, _ := tabular.ColumnOf("label", []any{"a", "b", "a"})
		tbl, err := tabular.FromColumns(x, n, label)
		So(err, ShouldBeNil)

		Convey("When it is converted to DenseInstances", func() {
			inst, err := ToDenseInstances(tbl)
			So(err, ShouldBeNil)

			Convey("Its shape matches the table", func() {
				cols, rows := inst.Size()
				So(cols, ShouldEqual, 3)
				So(rows, ShouldEqual, 3)
				So(inst.AllClassAttributes()[0].GetName(), ShouldEqual, "label")
			})

			Convey("Converting back restores values and missing cells", func() {
				back, err := FromDenseInstances(inst)
				So(err, ShouldBeNil)
				So(back.Names(), ShouldResemble, []string{"x", "n", "label"})

				xs, _ := back.ColumnByName("x")
				So(xs.Value(0), ShouldEqual, 1.5)
				So(xs.IsNull(1), ShouldBeTrue)

				ns, _ := back.ColumnByName("n")
				So(ns.Kind(), ShouldEqual, tabular.KindFloat)
				So(ns.Value(2), ShouldEqual, 3.0)

				ls, _ := back.ColumnByName("label")
				So(ls.Value(1), ShouldEqual, "b")
			})
		})
	})
}
