// Package config loads CLI settings with koanf. Precedence, highest first:
// flags, DATACLEANER_* environment variables, the settings file, defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix       = "DATACLEANER_"
	DefaultFile     = ".datacleaner.yaml"
	DefaultLogLevel = "info"
	DefaultFormat   = "text"
	DefaultPreview  = 5
)

// Settings holds the options shared by every command.
type Settings struct {
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
	Delimiter   string `koanf:"delimiter"`
	NoHeader    bool   `koanf:"no_header"`
	Strict      bool   `koanf:"strict"`
	PreviewRows int    `koanf:"rows"`
	TopK        int    `koanf:"top"`

	// FileUsed is the settings file that was read, if any.
	FileUsed string `koanf:"-"`
}

// Load reads settings from defaults, the settings file, the environment and
// the flags that were explicitly set. An empty cfgFile falls back to
// DefaultFile when it exists.
func Load(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"log_level":  DefaultLogLevel,
		"log_format": DefaultFormat,
		"delimiter":  "",
		"no_header":  false,
		"strict":     false,
		"rows":       DefaultPreview,
		"top":        5,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			used = DefaultFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", used, err)
		}
	}

	// DATACLEANER_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	s.FileUsed = used
	return &s, nil
}

// AutoDelimiter asks the CSV reader to guess the delimiter.
const AutoDelimiter = "auto"

// DelimiterRune returns the configured delimiter, 0 for the comma default or
// AutoDelimiter. "tab" and "\t" both mean a tab.
func (s *Settings) DelimiterRune() (rune, error) {
	switch s.Delimiter {
	case "", AutoDelimiter:
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	r := []rune(s.Delimiter)
	if len(r) != 1 {
		return 0, fmt.Errorf("delimiter %q must be a single character", s.Delimiter)
	}
	return r[0], nil
}
