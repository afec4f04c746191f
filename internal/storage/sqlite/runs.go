package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// ImportRun records one import of a collection file.
type ImportRun struct {
	ID        string      `json:"id"`
	Kind      domain.Kind `json:"kind"`
	Source    string      `json:"source"`
	ItemCount int         `json:"item_count"`
	CreatedAt time.Time   `json:"created_at"`
}

// ImportRuns returns the most recent import runs, newest first.
// A non-positive limit returns every run.
func (s *Store) ImportRuns(ctx context.Context, limit int) ([]ImportRun, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, source, item_count, created_at
		FROM import_runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list import runs: %w", err)
	}
	defer rows.Close()

	var runs []ImportRun
	for rows.Next() {
		var (
			run     ImportRun
			kind    string
			created string
		)
		if err := rows.Scan(&run.ID, &kind, &run.Source, &run.ItemCount, &created); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan import run: %w", err)
		}
		run.Kind = domain.Kind(kind)
		run.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: parse import run time: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list import runs: %w", err)
	}
	return runs, nil
}
