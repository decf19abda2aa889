package recipe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/datacleaner/internal/testutil"
	"github.com/wdm0006/datacleaner/pkg/cleaner"
)

const jsonRecipe = `{
  "input": {"path": "people.csv"},
  "output": {"path": "out.jsonl", "format": "jsonl"},
  "steps": [
    {"strip_spaces": {"column": "name"}},
    {"handle_missing": {"column": "age", "strategy": "zero"}},
    {"new_column": {"name": "rank", "values": [2, 1, 4, 3]}},
    {"sort": {"column": "rank"}},
    {"filter": {"column": "city", "value": "LA"}},
    {"drop_columns": {"columns": ["score"]}}
  ]
}`

const yamlRecipe = `
input:
  path: people.csv
output:
  path: out.csv
steps:
  - strip_spaces: {column: name}
  - handle_missing: {column: age, strategy: zero}
  - new_column: {name: rank, values: [2, 1, 4, 3]}
  - sort: {column: rank}
  - filter: {column: city, value: LA}
  - drop_columns: {columns: score}
`

const tomlRecipe = `
[input]
path = "people.csv"

[output]
path = "out.csv"

[[steps]]
[steps.strip_spaces]
column = "name"

[[steps]]
[steps.handle_missing]
column = "age"
strategy = "zero"

[[steps]]
[steps.new_column]
name = "rank"
values = [2, 1, 4, 3]

[[steps]]
[steps.sort]
column = "rank"

[[steps]]
[steps.filter]
column = "city"
value = "LA"

[[steps]]
[steps.drop_columns]
columns = ["score"]
`

func loadPeople(t *testing.T) *cleaner.Editor {
	t.Helper()
	e, err := cleaner.Load(filepath.Join("..", "..", "testdata", "people.csv"), cleaner.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	return e
}

func TestDecodeAndApplyAllEncodings(t *testing.T) {
	for ext, body := range map[string]string{".json": jsonRecipe, ".yaml": yamlRecipe, ".toml": tomlRecipe} {
		t.Run(ext, func(t *testing.T) {
			r, err := Decode([]byte(body), ext)
			require.NoError(t, err)
			assert.Equal(t, "people.csv", r.Input.Path)
			require.Len(t, r.Steps, 6)
			assert.Equal(t, "strip_spaces", r.Steps[0].Op)

			e := loadPeople(t)
			require.NoError(t, r.Apply(e, testutil.NewTestLogger(t)))
			tbl := e.Table()
			assert.Equal(t, []string{"name", "age", "city", "rank"}, tbl.Names())
			require.Equal(t, 2, tbl.Rows())
			assert.Equal(t, []any{"Bob", int64(0), "LA", int64(1)}, tbl.Row(0))
			assert.Equal(t, []any{"Dave", int64(41), "LA", int64(3)}, tbl.Row(1))
		})
	}
}

func TestReadFileByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlRecipe), 0o600))
	r, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out.csv", r.Output.Path)

	_, err = Decode([]byte("x"), ".ini")
	require.Error(t, err)
}

func TestUnknownStepFails(t *testing.T) {
	r, err := Decode([]byte(`{"steps": [{"strip_spaces": {"column": "name"}}, {"explode": {}}]}`), ".json")
	require.NoError(t, err)
	e := loadPeople(t)
	err = r.Apply(e, nil)
	require.ErrorContains(t, err, `unknown step "explode"`)
	v, _ := e.Table().Columns()[0].(interface{ Get(int) (string, bool) }).Get(0)
	assert.Equal(t, "Alice", v, "earlier steps stay applied")
}

func TestMalformedSteps(t *testing.T) {
	_, err := Decode([]byte(`{"steps": {"sort": {}}}`), ".json")
	require.Error(t, err)
	_, err = Decode([]byte(`{"steps": [{"sort": {}, "round": {}}]}`), ".json")
	require.Error(t, err)

	r, err := Decode([]byte(`{"steps": [{"round": {"column": "score", "decimals": 1.5}}]}`), ".json")
	require.NoError(t, err)
	require.Error(t, r.Apply(loadPeople(t), nil))
}

func TestAggregateAndRoundSteps(t *testing.T) {
	r, err := Decode([]byte(`{"steps": [
		{"aggregate": {"columns": ["city"], "method": "MAX"}},
		{"to_float": {"column": "age"}},
		{"round": {"column": "score", "decimals": 0}}
	]}`), ".json")
	require.NoError(t, err)
	e := loadPeople(t)
	require.NoError(t, r.Apply(e, nil))
	tbl := e.Table()
	assert.Equal(t, []string{"city", "name", "age", "score"}, tbl.Names())
	assert.Equal(t, []any{"LA", "Dave", 41.0, 92.0}, tbl.Row(0))
}
