package parquetio

import (
	"encoding/json"
	"fmt"
	"math"

	pw "github.com/xitongsys/parquet-go/writer"
	local "github.com/xitongsys/parquet-go-source/local"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

func parquetSchemaJSON(s tabular.Schema) string {
	// Build a minimal JSON schema for parquet-go JSONWriter
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, cs := range s.Columns {
		tag := "name=" + cs.Name + ", repetitiontype=OPTIONAL, type="
		switch cs.Type {
		case tabular.KindFloat:
			tag += "DOUBLE"
		case tabular.KindInt:
			tag += "INT64"
		case tabular.KindBool:
			tag += "BOOLEAN"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// WriteAll writes a Table to a Parquet file using parquet-go JSONWriter.
func WriteAll(path string, t *tabular.Table) (err error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	writer, err := pw.NewJSONWriter(parquetSchemaJSON(t.Schema()), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet writer init: %w", err)
	}
	defer func() {
		if stopErr := writer.WriteStop(); stopErr != nil && err == nil {
			err = fmt.Errorf("parquet write stop: %w", stopErr)
		}
		if closeErr := fw.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	for r := 0; r < t.Rows(); r++ {
		rec := make(map[string]any, t.Cols())
		for _, col := range t.Columns() {
			v := col.Value(r)
			if f, ok := v.(float64); ok && math.IsNaN(f) {
				continue
			}
			if v != nil {
				rec[col.Name()] = v
			}
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := writer.Write(string(b)); err != nil {
			return fmt.Errorf("parquet write row: %w", err)
		}
	}
	return nil
}
