package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wdm0006/datacleaner/internal/recipe"
	"github.com/wdm0006/datacleaner/pkg/cleaner"
)

func newRunCommand() *cobra.Command {
	var (
		recipePath string
		input      string
		output     string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Apply a cleaning recipe",
		Long: `Load the recipe's input, apply its steps in order and save the output.
The recipe may be JSON, YAML or TOML. --input and --output override the
paths named in the recipe.`,
		Example: `  datacleaner run --recipe clean.yaml
  datacleaner run --recipe clean.json --input raw.csv --output clean.csv.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := recipe.ReadFile(recipePath)
			if err != nil {
				return err
			}
			if input != "" {
				r.Input.Path = input
			}
			if output != "" {
				r.Output.Path = output
			}
			if r.Input.Path == "" {
				return errors.New("no input path: set input.path in the recipe or pass --input")
			}

			s := settingsFrom(cmd.Context())
			log := loggerFrom(cmd.Context())
			inOpt, err := inputOptions(s, r.Input.Format, r.Input.Delimiter, r.Input.NoHeader)
			if err != nil {
				return fmt.Errorf("input: %w", err)
			}
			e, err := cleaner.Load(r.Input.Path, cleaner.WithLogger(log), cleaner.WithDataOptions(inOpt))
			if err != nil {
				return err
			}
			if err := r.Apply(e, log); err != nil {
				return err
			}
			if r.Output.Path == "" {
				return renderTable(cmd.OutOrStdout(), e.Table())
			}

			outOpt, err := outputOptions(r.Output.Format, r.Output.Delimiter)
			if err != nil {
				return fmt.Errorf("output: %w", err)
			}
			out := cleaner.New(e.Table(), cleaner.WithLogger(log), cleaner.WithDataOptions(outOpt))
			if err := out.Save(r.Output.Path); err != nil {
				return err
			}
			log.Info("recipe applied", slog.Int("steps", len(r.Steps)), slog.String("output", r.Output.Path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&recipePath, "recipe", "r", "", "recipe file (.json, .yaml, .toml)")
	cmd.Flags().StringVar(&input, "input", "", "input file, overrides the recipe")
	cmd.Flags().StringVar(&output, "output", "", "output file, overrides the recipe")
	_ = cmd.MarkFlagRequired("recipe")
	return cmd
}
