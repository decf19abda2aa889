package jsonlio

import (
	"bytes"
	"encoding/json"
	"io"
	"math"

	iox "github.com/wdm0006/datacleaner/pkg/io/ioutils"
	"github.com/wdm0006/datacleaner/pkg/tabular"
)

func WriteAll(path string, t *tabular.Table) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if err := Write(out, t); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write emits one object per row with keys in column order. Missing cells
// are written as null.
func Write(w io.Writer, t *tabular.Table) error {
	names := t.Names()
	keys := make([][]byte, len(names))
	for i, n := range names {
		keys[i], _ = json.Marshal(n)
	}
	var line bytes.Buffer
	for r := 0; r < t.Rows(); r++ {
		line.Reset()
		line.WriteByte('{')
		for c, col := range t.Columns() {
			if c > 0 {
				line.WriteByte(',')
			}
			line.Write(keys[c])
			line.WriteByte(':')
			v := col.Value(r)
			if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
				v = nil
			}
			b, err := json.Marshal(v)
			if err != nil {
				return err
			}
			line.Write(b)
		}
		line.WriteString("}\n")
		if _, err := w.Write(line.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
