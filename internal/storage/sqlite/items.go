package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/google/uuid"
)

// ImportItems upserts items of kind in one transaction and records the
// import run. Imported items are placed after every stored item, in input
// order. Returns the run ID.
func (s *Store) ImportItems(ctx context.Context, kind domain.Kind, source string, items []domain.Item) (string, error) {
	runID, _, err := s.importItems(ctx, kind, source, items, false)
	return runID, err
}

// ReplaceItems swaps the stored collection of kind for items. The delete and
// the import share one transaction, so a failed import keeps the old items.
// Returns the run ID and how many stored items were removed.
func (s *Store) ReplaceItems(ctx context.Context, kind domain.Kind, source string, items []domain.Item) (string, int64, error) {
	return s.importItems(ctx, kind, source, items, true)
}

func (s *Store) importItems(ctx context.Context, kind domain.Kind, source string, items []domain.Item, replace bool) (string, int64, error) {
	schema, err := domain.SchemaFor(kind)
	if err != nil {
		return "", 0, fmt.Errorf("sqlite storage: %w", err)
	}
	for _, it := range items {
		if err := it.Validate(schema); err != nil {
			return "", 0, fmt.Errorf("sqlite storage: item %d: %w", it.ID, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", 0, fmt.Errorf("sqlite storage: begin import: %w", err)
	}
	defer tx.Rollback()

	var removed int64
	if replace {
		res, err := tx.ExecContext(ctx, `DELETE FROM items WHERE kind = ?`, kind.String())
		if err != nil {
			return "", 0, fmt.Errorf("sqlite storage: clear %s: %w", kind, err)
		}
		if removed, err = res.RowsAffected(); err != nil {
			return "", 0, fmt.Errorf("sqlite storage: clear %s: %w", kind, err)
		}
	}

	var base int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM items WHERE kind = ?`, kind.String(),
	).Scan(&base); err != nil {
		return "", 0, fmt.Errorf("sqlite storage: read positions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (kind, id, position, attributes, score, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (kind, id) DO UPDATE SET
			position = excluded.position,
			attributes = excluded.attributes,
			score = excluded.score,
			updated_at = excluded.updated_at`)
	if err != nil {
		return "", 0, fmt.Errorf("sqlite storage: prepare import: %w", err)
	}
	defer stmt.Close()

	now := s.timestamp()
	for i, it := range items {
		attrs, err := json.Marshal(it.Attributes)
		if err != nil {
			return "", 0, fmt.Errorf("sqlite storage: encode item %d: %w", it.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, kind.String(), it.ID, base+int64(i), string(attrs), nullScore(it.Score), now); err != nil {
			return "", 0, fmt.Errorf("sqlite storage: import item %d: %w", it.ID, err)
		}
	}

	runID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO import_runs (id, kind, source, item_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		runID, kind.String(), source, len(items), now,
	); err != nil {
		return "", 0, fmt.Errorf("sqlite storage: record import run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", 0, fmt.Errorf("sqlite storage: commit import: %w", err)
	}
	return runID, removed, nil
}

// LoadItems returns every item of kind in stored order.
func (s *Store) LoadItems(ctx context.Context, kind domain.Kind) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, attributes, score FROM items WHERE kind = ? ORDER BY position, id`, kind.String())
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: load items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var (
			id    int
			raw   string
			score sql.NullFloat64
		)
		if err := rows.Scan(&id, &raw, &score); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan item: %w", err)
		}
		it, err := decodeItem(id, raw, score)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: load items: %w", err)
	}
	return items, nil
}

// GetItem returns one item.
func (s *Store) GetItem(ctx context.Context, kind domain.Kind, id int) (domain.Item, error) {
	var (
		raw   string
		score sql.NullFloat64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT attributes, score FROM items WHERE kind = ? AND id = ?`, kind.String(), id,
	).Scan(&raw, &score)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, ErrItemNotFound
	}
	if err != nil {
		return domain.Item{}, fmt.Errorf("sqlite storage: get item: %w", err)
	}
	return decodeItem(id, raw, score)
}

func decodeItem(id int, raw string, score sql.NullFloat64) (domain.Item, error) {
	var attrs map[string]any
	if err := json.Unmarshal([]byte(raw), &attrs); err != nil {
		return domain.Item{}, fmt.Errorf("sqlite storage: decode item %d: %w", id, err)
	}
	var sc *float64
	if score.Valid {
		sc = domain.Float(score.Float64)
	}
	return domain.NewItem(id, attrs, sc), nil
}

// UpdateStatus sets the status attribute of one item. The status must
// belong to the collection's workflow.
func (s *Store) UpdateStatus(ctx context.Context, kind domain.Kind, id int, status string) error {
	schema, err := domain.SchemaFor(kind)
	if err != nil {
		return fmt.Errorf("sqlite storage: %w", err)
	}
	if id <= 0 {
		return ErrInvalidItemID
	}
	if !schema.AllowsStatus(status) {
		return fmt.Errorf("%w: %q for %s", domain.ErrInvalidStatus, status, kind)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE items SET attributes = json_set(attributes, '$.status', ?), updated_at = ? WHERE kind = ? AND id = ?`,
		status, s.timestamp(), kind.String(), id)
	if err != nil {
		return fmt.Errorf("sqlite storage: update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite storage: update status: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Counts returns the number of stored items per kind. Kinds without items
// are reported as zero.
func (s *Store) Counts(ctx context.Context) (map[domain.Kind]int, error) {
	counts := make(map[domain.Kind]int, len(domain.Kinds))
	for _, k := range domain.Kinds {
		counts[k] = 0
	}

	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM items GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: count items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("sqlite storage: scan count: %w", err)
		}
		counts[domain.Kind(kind)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: count items: %w", err)
	}
	return counts, nil
}

func nullScore(score *float64) sql.NullFloat64 {
	if score == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *score, Valid: true}
}
