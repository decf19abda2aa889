package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var people = filepath.Join("..", "..", "testdata", "people.csv")

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "datacleaner "+Version+"\n", out)
}

func TestPreview(t *testing.T) {
	out, _, err := execute(t, "preview", people, "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "NA")
	assert.NotContains(t, out, "Carol")
	assert.Contains(t, out, "2 rows x 4 columns")
}

func TestMissing(t *testing.T) {
	out, _, err := execute(t, "missing", people)
	require.NoError(t, err)
	assert.Regexp(t, `age\s+│\s+1`, out)
	assert.Regexp(t, `(?i)total\s+│\s+2`, out)
}

func TestSummaryJSON(t *testing.T) {
	out, _, err := execute(t, "summary", "--json", people)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "score"`)
	assert.Contains(t, out, `"kind": "float"`)
}

func TestRunRecipe(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "clean.csv")
	rec := filepath.Join(dir, "clean.yaml")
	abs, err := filepath.Abs(people)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(rec, []byte(`
input:
  path: `+abs+`
output:
  path: `+out+`
steps:
  - strip_spaces: {column: name}
  - handle_missing: {column: score, strategy: drop}
  - sort: {column: age, ascending: false}
`), 0o600))

	_, stderr, err := execute(t, "run", "--recipe", rec, "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"saved"`)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "name,age,city,score\nDave,41,LA,70.0\nAlice,30,NYC,88.5\nBob,,LA,92.25\n", string(got))
}

func TestRunFailsOnBadStep(t *testing.T) {
	dir := t.TempDir()
	rec := filepath.Join(dir, "bad.json")
	abs, err := filepath.Abs(people)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(rec, []byte(`{"input": {"path": "`+filepath.ToSlash(abs)+`"},
		"output": {"path": "`+filepath.ToSlash(filepath.Join(dir, "o.csv"))+`"},
		"steps": [{"handle_missing": {"column": "age", "strategy": "guess"}}]}`), 0o600))

	_, _, err = execute(t, "run", "-r", rec)
	require.ErrorContains(t, err, "unknown strategy")
	_, statErr := os.Stat(filepath.Join(dir, "o.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunRequiresRecipe(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)
}

func TestRunDelimiterAppliesToInputOnly(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "clean.csv")
	rec := filepath.Join(dir, "clean.yaml")
	abs, err := filepath.Abs(filepath.Join("..", "..", "testdata", "semicolon.csv"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(rec, []byte(`
input:
  path: `+abs+`
output:
  path: `+out+`
steps:
  - sort: {column: id, ascending: false}
`), 0o600))

	_, _, err = execute(t, "run", "-r", rec, "-d", ";")
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "id,label\n2,b\n1,a\n", string(got))
}

func TestPreviewAutoDelimiter(t *testing.T) {
	semicolon := filepath.Join("..", "..", "testdata", "semicolon.csv")
	out, _, err := execute(t, "preview", semicolon, "--delimiter", "auto")
	require.NoError(t, err)
	assert.Contains(t, out, "2 rows x 2 columns")

	out, _, err = execute(t, "preview", semicolon)
	require.NoError(t, err)
	assert.Contains(t, out, "2 rows x 1 columns")
}
