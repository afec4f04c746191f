// Package storage selects and opens the collection store.
package storage

import (
	"context"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/storage/sqlite"
)

// Store defines the collection storage operations used by commands, the TUI and the HTTP API.
type Store interface {
	ImportItems(ctx context.Context, kind domain.Kind, source string, items []domain.Item) (string, error)
	ReplaceItems(ctx context.Context, kind domain.Kind, source string, items []domain.Item) (string, int64, error)
	LoadItems(ctx context.Context, kind domain.Kind) ([]domain.Item, error)
	GetItem(ctx context.Context, kind domain.Kind, id int) (domain.Item, error)
	UpdateStatus(ctx context.Context, kind domain.Kind, id int, status string) error
	Counts(ctx context.Context) (map[domain.Kind]int, error)
	ImportRuns(ctx context.Context, limit int) ([]sqlite.ImportRun, error)
	Close() error
}

var _ Store = (*sqlite.Store)(nil)

// Errors returned by every backend.
var (
	ErrItemNotFound  = sqlite.ErrItemNotFound
	ErrInvalidItemID = sqlite.ErrInvalidItemID
)
