package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/leadpipe-cli/internal/store"
)

var batchesLimit int

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List recent pipeline batches from the ledger",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := store.NewSQLite(cfg.Ledger.Path)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		batches, err := st.ListBatches(ctx, batchesLimit)
		if err != nil {
			return err
		}
		if len(batches) == 0 {
			fmt.Println("no batches recorded")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTARTED\tSTATUS\tLOADED\tDROPPED\tDUPES\tFINAL\tINPUT")
		for _, b := range batches {
			loaded, dropped, dupes, final := "-", "-", "-", "-"
			if b.Stats != nil {
				loaded = fmt.Sprintf("%d", b.Stats.Loaded)
				dropped = fmt.Sprintf("%d", b.Stats.BlacklistDropped)
				dupes = fmt.Sprintf("%d", b.Stats.MobileDupes+b.Stats.EmailDupes)
				final = fmt.Sprintf("%d", b.Stats.Final)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				b.ID[:8],
				b.StartedAt.Format("2006-01-02 15:04"),
				b.Status,
				loaded, dropped, dupes, final,
				b.InputPath,
			)
		}
		return w.Flush()
	},
}

func init() {
	batchesCmd.Flags().IntVar(&batchesLimit, "limit", 20, "max batches to list")
	rootCmd.AddCommand(batchesCmd)
}
