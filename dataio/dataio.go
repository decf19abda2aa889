// Package dataio loads and saves tables, choosing the file format from the
// path's extension. A trailing ".gz" is handled transparently for the text
// formats.
package dataio

import (
	"fmt"

	"github.com/wdm0006/datacleaner/pkg/io/csvio"
	iox "github.com/wdm0006/datacleaner/pkg/io/ioutils"
	"github.com/wdm0006/datacleaner/pkg/io/jsonlio"
	"github.com/wdm0006/datacleaner/pkg/io/parquetio"
	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Format identifies an on-disk table encoding.
type Format int

const (
	FormatCSV Format = iota
	FormatJSONL
	FormatParquet
)

func (f Format) String() string {
	switch f {
	case FormatJSONL:
		return "jsonl"
	case FormatParquet:
		return "parquet"
	default:
		return "csv"
	}
}

// Options tune reading and writing. The zero value reads and writes
// comma-separated CSV with a header row.
type Options struct {
	Format    *Format // overrides detection by extension
	Delimiter rune
	Sniff     bool // read only: guess the delimiter when Delimiter is 0
	NoHeader  bool
	Strict    bool
}

// DetectFormat maps a path to its format. Unknown extensions are CSV.
func DetectFormat(path string) Format {
	switch iox.BaseExt(path) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".parquet", ".pq":
		return FormatParquet
	default:
		return FormatCSV
	}
}

// ParseFormat maps a format name ("csv", "jsonl", "parquet") to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "csv":
		return FormatCSV, nil
	case "jsonl", "ndjson":
		return FormatJSONL, nil
	case "parquet":
		return FormatParquet, nil
	}
	return FormatCSV, fmt.Errorf("unsupported format %q", name)
}

func (o Options) format(path string) Format {
	if o.Format != nil {
		return *o.Format
	}
	return DetectFormat(path)
}

// Load reads the table stored at path. Every failure wraps tabular.ErrIO.
func Load(path string, opt Options) (*tabular.Table, error) {
	var (
		t   *tabular.Table
		err error
	)
	switch opt.format(path) {
	case FormatJSONL:
		t, err = jsonlio.ReadFile(path, jsonlio.ReaderOptions{})
	case FormatParquet:
		t, err = parquetio.ReadFile(path)
	default:
		t, err = csvio.ReadFile(path, csvio.ReaderOptions{
			HasHeader: !opt.NoHeader,
			Delimiter: opt.Delimiter,
			Sniff:     opt.Sniff,
			Strict:    opt.Strict,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", path, tabular.ErrIO, err)
	}
	return t, nil
}

// Save writes t to path. Every failure wraps tabular.ErrIO.
func Save(path string, t *tabular.Table, opt Options) error {
	var err error
	switch opt.format(path) {
	case FormatJSONL:
		err = jsonlio.WriteAll(path, t)
	case FormatParquet:
		err = parquetio.WriteAll(path, t)
	default:
		err = csvio.WriteAll(path, t, csvio.WriterOptions{Delimiter: opt.Delimiter})
	}
	if err != nil {
		return fmt.Errorf("save %s: %w: %w", path, tabular.ErrIO, err)
	}
	return nil
}
