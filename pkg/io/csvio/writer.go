package csvio

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	iox "github.com/wdm0006/datacleaner/pkg/io/ioutils"
	"github.com/wdm0006/datacleaner/pkg/tabular"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteAll writes a Table to a CSV file with headers and no index column.
// A ".gz" path is gzip compressed.
func WriteAll(path string, t *tabular.Table, opt WriterOptions) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := Write(out, t, opt); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write encodes t as CSV onto w.
func Write(w io.Writer, t *tabular.Table, opt WriterOptions) error {
	cw := csv.NewWriter(w)
	if opt.Delimiter != 0 {
		cw.Comma = opt.Delimiter
	}
	if err := cw.Write(t.Names()); err != nil {
		return err
	}
	row := make([]string, t.Cols())
	for r := 0; r < t.Rows(); r++ {
		for c, col := range t.Columns() {
			row[c] = FormatCell(col, r)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatCell renders one cell the way it is written to CSV; missing cells
// render as the empty string.
func FormatCell(col tabular.Column, r int) string {
	switch c := col.(type) {
	case *tabular.FloatColumn:
		if v, ok := c.Get(r); ok {
			return FormatFloat(v)
		}
	case *tabular.IntColumn:
		if v, ok := c.Get(r); ok {
			return strconv.FormatInt(v, 10)
		}
	case *tabular.BoolColumn:
		if v, ok := c.Get(r); ok {
			return strconv.FormatBool(v)
		}
	case *tabular.StringColumn:
		if v, ok := c.Get(r); ok {
			return v
		}
	}
	return ""
}

// FormatFloat renders v with the fewest digits that read back to the same
// float64. Integral values keep a ".0" so they reload as floats.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
