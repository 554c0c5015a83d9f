package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadpipe-cli/internal/config"
	"github.com/sells-group/leadpipe-cli/internal/export"
	"github.com/sells-group/leadpipe-cli/internal/model"
	"github.com/sells-group/leadpipe-cli/internal/pipeline"
	"github.com/sells-group/leadpipe-cli/internal/store"
)

var (
	runInput  string
	runOutput string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline (clean + enrich) and record the batch in the ledger",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		input := runInput
		if input == "" {
			input = cfg.Paths.RawCSV
		}
		output := runOutput
		if output == "" {
			output = cfg.Paths.EnrichedCSV
		}

		schema, err := config.LoadSchema()
		if err != nil {
			return err
		}
		cutoff, err := cfg.CutoffDate()
		if err != nil {
			return err
		}

		st, err := store.NewSQLite(cfg.Ledger.Path)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		batch, err := st.CreateBatch(ctx, input, output)
		if err != nil {
			return err
		}

		stats := pipeline.NewBatchStats()
		fail := func(err error) error {
			if finishErr := st.FinishBatch(ctx, batch.ID, model.BatchStatusFailed, stats); finishErr != nil {
				zap.L().Warn("run: recording failed batch", zap.Error(finishErr))
			}
			return err
		}

		leads, err := loadLeads(input, schema.ColumnMapping, rawExpectedColumns(), stats)
		if err != nil {
			return fail(err)
		}

		kept := pipeline.Clean(leads, schema, cutoff, stats)
		if err := export.WriteCleaned(cfg.Paths.CleanedCSV, kept); err != nil {
			return fail(err)
		}

		enriched := pipeline.Enrich(kept, schema, stats)
		if err := export.WriteEnriched(output, enriched); err != nil {
			return fail(err)
		}

		if err := st.FinishBatch(ctx, batch.ID, model.BatchStatusComplete, stats); err != nil {
			return err
		}

		zap.L().Info("run complete",
			zap.String("batch_id", batch.ID),
			zap.String("output", output),
			zap.Int("loaded", stats.Loaded),
			zap.Int("blacklist_dropped", stats.BlacklistDropped),
			zap.Int("mobile_dupes", stats.MobileDupes),
			zap.Int("email_dupes", stats.EmailDupes),
			zap.Int("final", stats.Final),
		)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "path to raw export (.csv or .xlsx); defaults to paths.raw_csv")
	runCmd.Flags().StringVar(&runOutput, "output", "", "path for the enriched CSV; defaults to paths.enriched_csv")
	rootCmd.AddCommand(runCmd)
}
