package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadpipe-cli/internal/config"
	"github.com/sells-group/leadpipe-cli/internal/export"
	"github.com/sells-group/leadpipe-cli/internal/pipeline"
)

var (
	enrichInput  string
	enrichOutput string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Classify digital presence, derive journey stages, and deduplicate a cleaned dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input := enrichInput
		if input == "" {
			input = cfg.Paths.CleanedCSV
		}
		output := enrichOutput
		if output == "" {
			output = cfg.Paths.EnrichedCSV
		}

		schema, err := config.LoadSchema()
		if err != nil {
			return err
		}

		stats := pipeline.NewBatchStats()
		// Cleaned files already carry canonical headers; no mapping needed.
		leads, err := loadLeads(input, nil, export.CleanedColumns(), stats)
		if err != nil {
			return err
		}
		stats.Loaded = len(leads)

		enriched := pipeline.Enrich(leads, schema, stats)
		if err := export.WriteEnriched(output, enriched); err != nil {
			return err
		}

		zap.L().Info("enrich complete",
			zap.String("output", output),
			zap.Int("loaded", stats.Loaded),
			zap.Int("written", stats.Final),
		)
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInput, "input", "", "path to cleaned CSV; defaults to paths.cleaned_csv")
	enrichCmd.Flags().StringVar(&enrichOutput, "output", "", "path for the enriched CSV; defaults to paths.enriched_csv")
	rootCmd.AddCommand(enrichCmd)
}
