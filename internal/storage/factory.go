package storage

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/jobdeck/internal/colors"
	"github.com/cristianoliveira/jobdeck/internal/config"
	"github.com/cristianoliveira/jobdeck/internal/storage/sqlite"
)

const (
	// BackendSQLite stores collections in the database file at db_path.
	BackendSQLite = "sqlite"
	// BackendMemory keeps collections in a private in-memory database that
	// is discarded on Close.
	BackendMemory = "memory"

	memoryDSN = ":memory:"
)

// NewFromConfig opens the store selected by the storage_backend setting.
func NewFromConfig() (Store, error) {
	config.Load()
	return NewForBackend(config.Get("storage_backend", BackendSQLite), config.Get("db_path", ""))
}

// NewForBackend opens a store for the provided backend name. dbPath is only
// used by the sqlite backend.
func NewForBackend(backend, dbPath string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		colors.Debug("opening sqlite store: " + dbPath)
		return sqlite.Open(dbPath)
	case BackendMemory:
		return sqlite.Open(memoryDSN)
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to sqlite", backend))
		return sqlite.Open(dbPath)
	}
}
