package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadpipe-cli/internal/config"
	"github.com/sells-group/leadpipe-cli/internal/export"
	"github.com/sells-group/leadpipe-cli/internal/pipeline"
)

var (
	cleanInput  string
	cleanOutput string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalize, filter, and standardize a raw lead export",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input := cleanInput
		if input == "" {
			input = cfg.Paths.RawCSV
		}
		output := cleanOutput
		if output == "" {
			output = cfg.Paths.CleanedCSV
		}

		schema, err := config.LoadSchema()
		if err != nil {
			return err
		}
		cutoff, err := cfg.CutoffDate()
		if err != nil {
			return err
		}

		stats := pipeline.NewBatchStats()
		leads, err := loadLeads(input, schema.ColumnMapping, rawExpectedColumns(), stats)
		if err != nil {
			return err
		}

		kept := pipeline.Clean(leads, schema, cutoff, stats)
		if err := export.WriteCleaned(output, kept); err != nil {
			return err
		}

		zap.L().Info("clean complete",
			zap.String("output", output),
			zap.Int("loaded", stats.Loaded),
			zap.Int("dropped", stats.BlacklistDropped),
			zap.Int("written", len(kept)),
		)
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanInput, "input", "", "path to raw export (.csv or .xlsx); defaults to paths.raw_csv")
	cleanCmd.Flags().StringVar(&cleanOutput, "output", "", "path for the cleaned CSV; defaults to paths.cleaned_csv")
	rootCmd.AddCommand(cleanCmd)
}
