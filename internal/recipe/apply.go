package recipe

import (
	"fmt"
	"log/slog"

	"github.com/wdm0006/datacleaner/pkg/cleaner"
)

// Apply replays the steps on e in order and stops at the first failure.
// Steps before the failure stay applied.
func (r *Recipe) Apply(e *cleaner.Editor, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	for i, s := range r.Steps {
		if err := applyStep(e, s); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, s.Op, err)
		}
		log.Debug("step done", slog.Int("step", i), slog.String("op", s.Op), slog.Int("rows", e.Table().Rows()))
	}
	return nil
}

func applyStep(e *cleaner.Editor, s Step) error {
	a := args(s.Args)
	switch s.Op {
	case "remove_text":
		col, err := a.str("column")
		if err != nil {
			return err
		}
		pat, err := a.str("pattern")
		if err != nil {
			return err
		}
		regex, err := a.optBool("regex", false)
		if err != nil {
			return err
		}
		return e.RemoveText(col, pat, regex)
	case "strip_spaces":
		col, err := a.str("column")
		if err != nil {
			return err
		}
		return e.StripSpaces(col)
	case "handle_missing":
		col, err := a.str("column")
		if err != nil {
			return err
		}
		strategy, err := a.str("strategy")
		if err != nil {
			return err
		}
		return e.HandleMissing(col, strategy)
	case "drop_columns":
		cols, err := a.strings("columns")
		if err != nil {
			return err
		}
		return e.DropColumns(cols...)
	case "to_float":
		col, err := a.str("column")
		if err != nil {
			return err
		}
		return e.ToFloat(col)
	case "round":
		col, err := a.str("column")
		if err != nil {
			return err
		}
		dec, err := a.optInt("decimals", 0)
		if err != nil {
			return err
		}
		return e.Round(col, dec)
	case "new_column":
		name, err := a.str("name")
		if err != nil {
			return err
		}
		vals, err := a.list("values")
		if err != nil {
			return err
		}
		return e.NewColumn(name, vals)
	case "sort":
		col, err := a.str("column")
		if err != nil {
			return err
		}
		asc, err := a.optBool("ascending", true)
		if err != nil {
			return err
		}
		return e.Sort(col, asc)
	case "aggregate":
		cols, err := a.strings("columns")
		if err != nil {
			return err
		}
		method, err := a.optString("method")
		if err != nil {
			return err
		}
		if method == "" {
			method = "mean"
		}
		return e.Aggregate(cols, method)
	case "filter":
		col, err := a.str("column")
		if err != nil {
			return err
		}
		v, ok := a["value"]
		if !ok {
			return fmt.Errorf("missing %q", "value")
		}
		return e.Filter(col, v)
	}
	return fmt.Errorf("unknown step %q", s.Op)
}
