package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/leadpipe-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS batches (
	id          TEXT PRIMARY KEY,
	input_path  TEXT NOT NULL,
	output_path TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'running',
	stats       TEXT,
	started_at  DATETIME NOT NULL DEFAULT (datetime('now')),
	finished_at DATETIME
);

CREATE INDEX IF NOT EXISTS idx_batches_status ON batches(status);
CREATE INDEX IF NOT EXISTS idx_batches_started_at ON batches(started_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateBatch(ctx context.Context, inputPath, outputPath string) (*model.Batch, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO batches (id, input_path, output_path, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		id, inputPath, outputPath, string(model.BatchStatusRunning), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert batch")
	}

	return &model.Batch{
		ID:         id,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Status:     model.BatchStatusRunning,
		StartedAt:  now,
	}, nil
}

func (s *SQLiteStore) FinishBatch(ctx context.Context, id string, status model.BatchStatus, stats *model.BatchStats) error {
	var statsJSON any
	if stats != nil {
		b, err := json.Marshal(stats)
		if err != nil {
			return eris.Wrap(err, "sqlite: marshal stats")
		}
		statsJSON = string(b)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE batches SET status = ?, stats = ?, finished_at = ? WHERE id = ?`,
		string(status), statsJSON, time.Now().UTC(), id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: finish batch %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return eris.Errorf("sqlite: batch %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) ListBatches(ctx context.Context, limit int) ([]*model.Batch, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, output_path, status, stats, started_at, finished_at
		 FROM batches ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list batches")
	}
	defer rows.Close() //nolint:errcheck

	var batches []*model.Batch
	for rows.Next() {
		var (
			b          model.Batch
			statsJSON  sql.NullString
			finishedAt sql.NullTime
			status     string
		)
		if err := rows.Scan(&b.ID, &b.InputPath, &b.OutputPath, &status, &statsJSON, &b.StartedAt, &finishedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan batch")
		}
		b.Status = model.BatchStatus(status)
		if statsJSON.Valid && statsJSON.String != "" {
			var stats model.BatchStats
			if err := json.Unmarshal([]byte(statsJSON.String), &stats); err != nil {
				return nil, eris.Wrapf(err, "sqlite: unmarshal stats for batch %s", b.ID)
			}
			b.Stats = &stats
		}
		if finishedAt.Valid {
			t := finishedAt.Time
			b.FinishedAt = &t
		}
		batches = append(batches, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate batches")
	}
	return batches, nil
}
