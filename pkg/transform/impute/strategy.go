package impute

import (
	"fmt"
	"strings"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// Strategy names a way of handling missing values in one column.
type Strategy string

const (
	StrategyMean   Strategy = "mean"
	StrategyZero   Strategy = "zero"
	StrategyDrop   Strategy = "drop"
	StrategyMedian Strategy = "median"
	StrategyMode   Strategy = "mode"
)

// ForStrategy returns the transform implementing strategy on column.
// Unrecognized strategies are an error rather than a silent no-op.
func ForStrategy(column string, strategy string) (tabular.Transform, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(strategy))) {
	case StrategyMean:
		return &Mean{Column: column}, nil
	case StrategyZero:
		return Zero(column), nil
	case StrategyDrop:
		return &Drop{Column: column}, nil
	case StrategyMedian:
		return &Median{Column: column}, nil
	case StrategyMode:
		return &Mode{Column: column}, nil
	}
	return nil, fmt.Errorf("handle_missing %q: %w", strategy, tabular.ErrUnknownStrategy)
}
