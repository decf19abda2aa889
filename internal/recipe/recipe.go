// Package recipe decodes cleaning recipes and replays them on an Editor. A
// recipe names an input, an output and a list of single-key steps:
//
//	{"input": {"path": "in.csv"}, "output": {"path": "out.csv"},
//	 "steps": [{"strip_spaces": {"column": "name"}}]}
//
// JSON, YAML and TOML encodings are accepted, chosen by file extension.
package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

type Endpoint struct {
	Path      string
	Format    string // csv|jsonl|parquet; empty detects by extension
	Delimiter string
	NoHeader  bool
}

// Step is one operation: its keyword and its arguments.
type Step struct {
	Op   string
	Args map[string]any
}

type Recipe struct {
	Input  Endpoint
	Output Endpoint
	Steps  []Step
}

// ReadFile decodes the recipe at path.
func ReadFile(path string) (*Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(b, strings.ToLower(filepath.Ext(path)))
}

// Decode parses b in the encoding named by ext (".json", ".yaml", ".yml",
// ".toml"). An empty ext means JSON.
func Decode(b []byte, ext string) (*Recipe, error) {
	var doc map[string]any
	switch ext {
	case "", ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		// keep integers exact so new_column can infer int columns
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json recipe: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml recipe: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("decode toml recipe: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported recipe format %q", ext)
	}
	return fromDoc(doc)
}

func fromDoc(doc map[string]any) (*Recipe, error) {
	r := &Recipe{}
	var err error
	if r.Input, err = endpoint(doc, "input"); err != nil {
		return nil, err
	}
	if r.Output, err = endpoint(doc, "output"); err != nil {
		return nil, err
	}
	raw, ok := doc["steps"]
	if !ok {
		return r, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("steps: expected a list, got %T", raw)
	}
	for i, item := range list {
		m, ok := asMap(item)
		if !ok || len(m) != 1 {
			return nil, fmt.Errorf("step %d: expected an object with exactly one key", i)
		}
		for op, v := range m {
			args, ok := asMap(v)
			if !ok && v != nil {
				return nil, fmt.Errorf("step %d (%s): arguments must be an object", i, op)
			}
			r.Steps = append(r.Steps, Step{Op: op, Args: args})
		}
	}
	return r, nil
}

func endpoint(doc map[string]any, key string) (Endpoint, error) {
	var e Endpoint
	raw, ok := doc[key]
	if !ok {
		return e, nil
	}
	m, ok := asMap(raw)
	if !ok {
		return e, fmt.Errorf("%s: expected an object", key)
	}
	a := args(m)
	var err error
	if e.Path, err = a.optString("path"); err != nil {
		return e, fmt.Errorf("%s: %w", key, err)
	}
	if e.Format, err = a.optString("format"); err != nil {
		return e, fmt.Errorf("%s: %w", key, err)
	}
	if e.Delimiter, err = a.optString("delimiter"); err != nil {
		return e, fmt.Errorf("%s: %w", key, err)
	}
	if e.NoHeader, err = a.optBool("no_header", false); err != nil {
		return e, fmt.Errorf("%s: %w", key, err)
	}
	return e, nil
}

// asMap accepts both map[string]any (json, yaml.v3, toml) and the
// map[any]any shape older yaml decoders produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	}
	return nil, false
}
