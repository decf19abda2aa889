// Package cli provides the datacleaner command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdm0006/datacleaner/dataio"
	"github.com/wdm0006/datacleaner/internal/config"
	"github.com/wdm0006/datacleaner/internal/logging"
	"github.com/wdm0006/datacleaner/pkg/cleaner"
)

// Version is set at build time.
var Version = "0.1.0-dev"

type settingsKey struct{}
type loggerKey struct{}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:   "datacleaner",
		Short: "Clean tabular data files",
		Long: `datacleaner loads a CSV, JSONL or Parquet file, applies cleaning steps
(text removal, whitespace stripping, missing-value handling, casting,
rounding, sorting, grouping, filtering) and writes the result.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			s, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			log := logging.Setup(s.LogLevel, s.LogFormat, cmd.ErrOrStderr())
			if s.FileUsed != "" {
				log.Debug("using settings file", slog.String("path", s.FileUsed))
			}
			ctx := context.WithValue(cmd.Context(), settingsKey{}, s)
			ctx = context.WithValue(ctx, loggerKey{}, log)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: ./"+config.DefaultFile+")")
	root.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().String("log-format", "", "log format (text|json)")
	root.PersistentFlags().StringP("delimiter", "d", "", "input CSV delimiter (default \",\"; \"auto\" guesses it from the header)")
	root.PersistentFlags().Bool("no-header", false, "CSV input has no header row")
	root.PersistentFlags().Bool("strict", false, "reject CSV records with missing fields")

	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(newRunCommand())
	root.AddCommand(newPreviewCommand())
	root.AddCommand(newMissingCommand())
	root.AddCommand(newSummaryCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func settingsFrom(ctx context.Context) *config.Settings {
	if s, ok := ctx.Value(settingsKey{}).(*config.Settings); ok {
		return s
	}
	return &config.Settings{LogLevel: config.DefaultLogLevel, LogFormat: config.DefaultFormat, PreviewRows: config.DefaultPreview}
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// inputOptions turns settings plus per-file overrides into options for
// reading. The global delimiter applies only when the file names none.
func inputOptions(s *config.Settings, format, delimiter string, noHeader bool) (dataio.Options, error) {
	if delimiter == "" {
		delimiter = s.Delimiter
	}
	opt, err := fileOptions(format, delimiter)
	if err != nil {
		return opt, err
	}
	opt.NoHeader = s.NoHeader || noHeader
	opt.Strict = s.Strict
	return opt, nil
}

// outputOptions builds options for writing. Output is comma-separated unless
// the file names its own delimiter.
func outputOptions(format, delimiter string) (dataio.Options, error) {
	opt, err := fileOptions(format, delimiter)
	opt.Sniff = false
	return opt, err
}

func fileOptions(format, delimiter string) (dataio.Options, error) {
	var opt dataio.Options
	r, err := (&config.Settings{Delimiter: delimiter}).DelimiterRune()
	if err != nil {
		return opt, err
	}
	opt.Delimiter = r
	opt.Sniff = delimiter == config.AutoDelimiter
	if format != "" {
		f, err := dataio.ParseFormat(format)
		if err != nil {
			return opt, err
		}
		opt.Format = &f
	}
	return opt, nil
}

// openEditor loads path with the command's settings.
func openEditor(cmd *cobra.Command, path string) (*cleaner.Editor, error) {
	s := settingsFrom(cmd.Context())
	opt, err := inputOptions(s, "", "", false)
	if err != nil {
		return nil, err
	}
	return cleaner.Load(path,
		cleaner.WithLogger(loggerFrom(cmd.Context())),
		cleaner.WithDataOptions(opt),
		cleaner.WithTopK(s.TopK),
	)
}
