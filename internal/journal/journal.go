// Package journal keeps a local sqlite audit trail of committed stage
// transitions. It records after a batch commits and is never consulted
// for rollback or retry; the backend stays the only system of record.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ayaanshkk/switchboard/internal/models"
)

// Entry is one committed stage transition.
type Entry struct {
	ID        int
	ItemID    string
	Pipeline  models.PipelineType
	FromStage models.Stage
	ToStage   models.Stage
	MovedBy   string
	MovedAt   time.Time
}

// Journal wraps the sqlite database holding the transition log.
type Journal struct {
	db      *sql.DB
	movedBy string
}

// Open opens (or creates) the journal database at path and runs
// migrations. The movedBy identity is stamped on every recorded entry.
func Open(path, movedBy string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return &Journal{db: db, movedBy: movedBy}, nil
}

// DefaultPath returns the journal location under the user's home
// directory.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".switchboard", "journal.db"), nil
}

// RecordBatch inserts one entry per change in a single transaction.
// Implements board.Recorder.
func (j *Journal) RecordBatch(ctx context.Context, pipeline models.PipelineType, changes []models.StageChange) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, change := range changes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transitions (item_id, pipeline, from_stage, to_stage, moved_by)
			VALUES (?, ?, ?, ?, ?)`,
			change.ItemID.String(), string(pipeline), string(change.From), string(change.To), j.movedBy,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Recent returns the most recent entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, item_id, pipeline, from_stage, to_stage, moved_by, moved_at
		FROM transitions
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var pipeline, from, to string
		if err := rows.Scan(&e.ID, &e.ItemID, &pipeline, &from, &to, &e.MovedBy, &e.MovedAt); err != nil {
			return nil, err
		}
		e.Pipeline = models.PipelineType(pipeline)
		e.FromStage = models.Stage(from)
		e.ToStage = models.Stage(to)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
