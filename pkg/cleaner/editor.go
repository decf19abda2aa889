// Package cleaner provides Editor, which owns one table and applies cleaning
// operations to it. Every operation either fully succeeds or leaves the
// table as it was.
package cleaner

import (
	"context"
	"log/slog"

	"github.com/sjwhitworth/golearn/base"

	adapters "github.com/wdm0006/datacleaner/adapters/golearn"
	"github.com/wdm0006/datacleaner/dataio"
	"github.com/wdm0006/datacleaner/pkg/profile"
	"github.com/wdm0006/datacleaner/pkg/tabular"
	"github.com/wdm0006/datacleaner/pkg/transform/convert"
	"github.com/wdm0006/datacleaner/pkg/transform/impute"
	"github.com/wdm0006/datacleaner/pkg/transform/reshape"
	std "github.com/wdm0006/datacleaner/pkg/transform/standardize"
)

// Editor holds a table exclusively. Methods replace the held table with the
// result of each operation.
type Editor struct {
	tbl  *tabular.Table
	log  *slog.Logger
	data dataio.Options
	topK int
}

type Option func(*Editor)

// WithLogger sets the logger used for load, save and policy messages.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithDataOptions sets the options used by Load and Save.
func WithDataOptions(o dataio.Options) Option {
	return func(e *Editor) { e.data = o }
}

// WithTopK sets how many frequent values Summary keeps per text column.
func WithTopK(k int) Option {
	return func(e *Editor) { e.topK = k }
}

func newEditor(opts []Option) *Editor {
	e := &Editor{log: slog.Default(), topK: 5}
	for _, o := range opts {
		o(e)
	}
	return e
}

// New wraps an existing table.
func New(t *tabular.Table, opts ...Option) *Editor {
	e := newEditor(opts)
	e.tbl = t
	return e
}

// Load reads the file at path, inferring each column's kind. The format
// follows the extension unless set with WithDataOptions.
func Load(path string, opts ...Option) (*Editor, error) {
	e := newEditor(opts)
	t, err := dataio.Load(path, e.data)
	if err != nil {
		e.log.Error("load failed", slog.String("path", path), slog.Any("error", err))
		return nil, err
	}
	e.tbl = t
	e.log.Info("loaded", slog.String("path", path), slog.Int("rows", t.Rows()), slog.Int("cols", t.Cols()))
	return e, nil
}

// Table returns the held table. Callers must not modify it.
func (e *Editor) Table() *tabular.Table { return e.tbl }

// Apply runs transforms in order and keeps the result only if all succeed.
func (e *Editor) Apply(ctx context.Context, transforms ...tabular.Transform) error {
	p := tabular.NewPipeline()
	for _, t := range transforms {
		p.Add(t)
	}
	out, err := p.Run(ctx, e.tbl)
	if err != nil {
		return err
	}
	e.tbl = out
	for _, t := range transforms {
		e.log.Debug("applied", slog.String("op", t.Name()), slog.Int("rows", out.Rows()), slog.Int("cols", out.Cols()))
	}
	return nil
}

func (e *Editor) apply(t tabular.Transform) error {
	return e.Apply(context.Background(), t)
}

// RemoveText deletes every occurrence of pattern from a text column. With
// useRegex the pattern is a regular expression.
func (e *Editor) RemoveText(column, pattern string, useRegex bool) error {
	return e.apply(&std.RemoveText{Column: column, Pattern: pattern, Regex: useRegex})
}

// StripSpaces trims leading and trailing whitespace in a text column.
func (e *Editor) StripSpaces(column string) error {
	return e.apply(&std.Trim{Column: column})
}

// HandleMissing fills or drops the missing values of a column. Strategies
// are mean, zero, drop, median and mode.
func (e *Editor) HandleMissing(column, strategy string) error {
	t, err := impute.ForStrategy(column, strategy)
	if err != nil {
		return err
	}
	return e.apply(t)
}

func (e *Editor) DropColumns(columns ...string) error {
	return e.apply(&reshape.DropColumns{Columns: columns})
}

func (e *Editor) ToFloat(column string) error {
	return e.apply(&convert.ToFloat{Column: column})
}

func (e *Editor) Round(column string, decimals int) error {
	return e.apply(&convert.Round{Column: column, Decimals: decimals})
}

// NewColumn adds or replaces a column. values needs one entry per row; nil
// entries are missing.
func (e *Editor) NewColumn(name string, values []any) error {
	return e.apply(&reshape.NewColumn{Column: name, Values: values})
}

func (e *Editor) Sort(column string, ascending bool) error {
	return e.apply(&reshape.Sort{Column: column, Ascending: ascending})
}

// Aggregate groups by groupColumns and reduces the other columns with
// method. An unrecognized method aggregates by mean.
func (e *Editor) Aggregate(groupColumns []string, method string) error {
	m, ok := reshape.ParseAggMethod(method)
	if !ok {
		e.log.Warn("unknown aggregation method, using mean", slog.String("method", method))
	}
	return e.apply(&reshape.Aggregate{GroupBy: groupColumns, Method: m, Logger: e.log})
}

// Filter keeps the rows whose column equals value.
func (e *Editor) Filter(column string, value any) error {
	return e.apply(&reshape.Filter{Column: column, Value: value})
}

// CountMissing reports the missing cells per column without changing the
// table.
func (e *Editor) CountMissing() []profile.MissingCount {
	return profile.CountMissing(e.tbl)
}

// Preview returns the first n rows, or all but the last -n rows when n is
// negative.
func (e *Editor) Preview(n int) *tabular.Table {
	return e.tbl.Head(n)
}

// Summary profiles every column of the held table.
func (e *Editor) Summary() *profile.Collector {
	return profile.Summarize(e.tbl, e.topK)
}

// Instances hands the table to golearn.
func (e *Editor) Instances() (*base.DenseInstances, error) {
	return adapters.ToDenseInstances(e.tbl)
}

// Save writes the table to path without an index column. Failures are
// logged and returned.
func (e *Editor) Save(path string) error {
	if err := dataio.Save(path, e.tbl, e.data); err != nil {
		e.log.Error("save failed", slog.String("path", path), slog.Any("error", err))
		return err
	}
	e.log.Info("saved", slog.String("path", path), slog.Int("rows", e.tbl.Rows()))
	return nil
}
