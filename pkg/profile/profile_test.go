package profile

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

func sample(t *testing.T) *tabular.Table {
	t.Helper()
	mk := func(name string, vals ...any) tabular.Column {
		c, err := tabular.ColumnOf(name, vals)
		require.NoError(t, err)
		return c
	}
	tbl, err := tabular.FromColumns(
		mk("x", 1.0, nil, 3.0, nil),
		mk("n", 2, 4, 6, 8),
		mk("s", "a", "b", "a", nil),
		mk("b", true, nil, false, true),
	)
	require.NoError(t, err)
	return tbl
}

func TestCountMissing(t *testing.T) {
	got := CountMissing(sample(t))
	assert.Equal(t, []MissingCount{
		{Column: "x", Count: 2},
		{Column: "n", Count: 0},
		{Column: "s", Count: 1},
		{Column: "b", Count: 1},
	}, got)
}

func TestCountMissingEmpty(t *testing.T) {
	tbl, err := tabular.FromColumns()
	require.NoError(t, err)
	assert.Empty(t, CountMissing(tbl))
}

func TestSummarize(t *testing.T) {
	c := Summarize(sample(t), 1)
	cols := c.Columns()
	require.Len(t, cols, 4)

	x := cols[0].Num
	require.NotNil(t, x)
	assert.Equal(t, 2, x.Count)
	assert.Equal(t, 2, x.Nulls)
	assert.Equal(t, 2.0, x.Mean)
	assert.Equal(t, 1.0, x.Min)
	assert.Equal(t, 3.0, x.Max)

	n := cols[1].Num
	assert.Equal(t, 20.0, n.Sum)
	assert.InDelta(t, 2.581988897, n.StdDev, 1e-9)

	assert.Equal(t, []ValueCount{{Value: "a", Count: 2}}, c.Top(cols[2]))
	assert.Equal(t, 2, cols[3].Bool.True)

	text := c.ReportText()
	assert.True(t, strings.HasPrefix(text, "Profile Summary\n"))
	assert.Contains(t, text, `"a": 2`)
}

func TestReportJSONAllMissingNumeric(t *testing.T) {
	col := tabular.NewFloatColumn("x", 1)
	col.SetNull(0)
	tbl, err := tabular.FromColumns(col)
	require.NoError(t, err)

	rep := Summarize(tbl, 0).ReportJSON()
	_, err = json.Marshal(rep)
	require.NoError(t, err, "infinite min/max must not reach the encoder")
	assert.Equal(t, "float", rep.Columns[0].Kind)
}
