package recipe

import (
	"fmt"

	"github.com/wdm0006/datacleaner/pkg/tabular"
)

// args reads typed step arguments out of a decoded map.
type args map[string]any

func (a args) optString(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got %T", key, v)
	}
	return s, nil
}

func (a args) str(key string) (string, error) {
	if _, ok := a[key]; !ok {
		return "", fmt.Errorf("missing %q", key)
	}
	return a.optString(key)
}

func (a args) optBool(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s: expected true or false, got %T", key, v)
	}
	return b, nil
}

func (a args) optInt(key string, def int) (int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	n, ok := tabular.ToInt(v)
	if !ok {
		return 0, fmt.Errorf("%s: expected an integer, got %v", key, v)
	}
	return int(n), nil
}

func (a args) list(key string) ([]any, error) {
	v, ok := a[key]
	if !ok {
		return nil, fmt.Errorf("missing %q", key)
	}
	switch l := v.(type) {
	case []any:
		return l, nil
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: expected a list, got %T", key, v)
}

// strings accepts a list of names or a single name.
func (a args) strings(key string) ([]string, error) {
	if s, ok := a[key].(string); ok {
		return []string{s}, nil
	}
	l, err := a.list(key)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(l))
	for i, v := range l {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d]: expected a string, got %T", key, i, v)
		}
		out[i] = s
	}
	return out, nil
}
