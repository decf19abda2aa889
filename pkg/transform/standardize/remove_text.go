package standardize

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// RemoveText deletes every occurrence of Pattern from a text column. Pattern
// is a literal substring unless Regex is set.
type RemoveText struct {
	Column  string
	Pattern string
	Regex   bool
	re      *regexp.Regexp
}

func (t *RemoveText) Name() string { return "remove_text" }

func (t *RemoveText) Apply(ctx context.Context, tbl *tabular.Table) (*tabular.Table, error) {
	src, err := tbl.Text(t.Column)
	if err != nil {
		return nil, err
	}
	if !t.Regex {
		if t.Pattern == "" {
			return tbl, nil
		}
		return tbl.WithColumn(mapText(src, func(s string) string {
			return strings.ReplaceAll(s, t.Pattern, "")
		}))
	}
	if t.re == nil {
		re, err := regexp.Compile(t.Pattern)
		if err != nil {
			return nil, fmt.Errorf("remove_text pattern %q: %w", t.Pattern, err)
		}
		t.re = re
	}
	return tbl.WithColumn(mapText(src, func(s string) string {
		return t.re.ReplaceAllString(s, "")
	}))
}
