package dataio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatCSV, DetectFormat("a.csv"))
	assert.Equal(t, FormatCSV, DetectFormat("a.csv.gz"))
	assert.Equal(t, FormatCSV, DetectFormat("a.txt"))
	assert.Equal(t, FormatJSONL, DetectFormat("a.JSONL"))
	assert.Equal(t, FormatJSONL, DetectFormat("a.ndjson.gz"))
	assert.Equal(t, FormatParquet, DetectFormat("a.parquet"))
}

func TestLoadMissingFileWrapsErrIO(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, tabular.ErrIO))
}

func TestSaveAndReloadJSONL(t *testing.T) {
	tb, err := Load(filepath.FromSlash("../testdata/people.csv"), Options{})
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "people.jsonl")
	require.NoError(t, Save(p, tb, Options{}))

	back, err := Load(p, Options{})
	require.NoError(t, err)
	assert.Equal(t, tb.Names(), back.Names())
	assert.Equal(t, tb.Rows(), back.Rows())
}

func TestSaveToMissingDirWrapsErrIO(t *testing.T) {
	tb, err := Load(filepath.FromSlash("../testdata/people.csv"), Options{})
	require.NoError(t, err)
	err = Save(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), tb, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, tabular.ErrIO)
}

func TestLoadDefaultsToComma(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.csv")
	require.NoError(t, os.WriteFile(p, []byte("note; remark\nhello; world\nfoo\n"), 0o600))

	tb, err := Load(p, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"note; remark"}, tb.Names())
	assert.Equal(t, 2, tb.Rows())

	tb, err = Load(filepath.FromSlash("../testdata/semicolon.csv"), Options{Sniff: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "label"}, tb.Names())
}
