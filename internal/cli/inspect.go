package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Show the first rows of a file",
		Long:  `Show the first --rows rows. A negative count shows all rows except the last |n|.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(cmd, args[0])
			if err != nil {
				return err
			}
			n := settingsFrom(cmd.Context()).PreviewRows
			return renderTable(cmd.OutOrStdout(), e.Preview(n))
		},
	}
	cmd.Flags().IntP("rows", "n", 0, "number of rows to show (default 5)")
	return cmd
}

func newMissingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "missing FILE",
		Short: "Count missing values per column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(cmd, args[0])
			if err != nil {
				return err
			}
			return renderMissing(cmd.OutOrStdout(), e.CountMissing())
		},
	}
}

func newSummaryCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Profile every column of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEditor(cmd, args[0])
			if err != nil {
				return err
			}
			sum := e.Summary()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum.ReportJSON())
			}
			return renderSummary(cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")
	cmd.Flags().Int("top", 0, "frequent values kept per text column (default 5)")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = cmd.OutOrStdout().Write([]byte("datacleaner " + Version + "\n"))
		},
	}
}
