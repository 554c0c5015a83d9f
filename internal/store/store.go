// Package store persists batch run summaries in a local ledger. Only
// aggregate counters are recorded; lead records themselves never outlive a
// run.
package store

import (
	"context"

	"github.com/sells-group/leadpipe-cli/internal/model"
)

// Store records and lists pipeline batch summaries.
type Store interface {
	Migrate(ctx context.Context) error
	CreateBatch(ctx context.Context, inputPath, outputPath string) (*model.Batch, error)
	FinishBatch(ctx context.Context, id string, status model.BatchStatus, stats *model.BatchStats) error
	ListBatches(ctx context.Context, limit int) ([]*model.Batch, error)
	Close() error
}
