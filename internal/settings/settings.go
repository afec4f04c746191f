// Package settings provides TUI user preferences persistence.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// File permission constants
const (
	FileModeDir  os.FileMode = 0755
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML files.
	FileExtTOML = ".toml"
)

// View mode constants.
const (
	ViewModeTable   = "table"
	ViewModeCompact = "compact"
)

// ListSettings is the saved query of one collection.
type ListSettings struct {
	// Search is the last search term.
	Search string `toml:"search,omitempty"`
	// Filters maps filter fields to their active value.
	Filters map[string]string `toml:"filters,omitempty"`
	// Sort is the sort key. Empty means the collection default.
	Sort string `toml:"sort,omitempty"`
	// PageSize overrides the configured page size when positive.
	PageSize int `toml:"page_size,omitempty"`
}

// Settings holds TUI user preferences persisted to disk.
//
//	active_kind = "candidates"
//	view_mode = "table"
//
//	[lists.candidates]
//	sort = "score"
//	filters = { status = "shortlisted" }
type Settings struct {
	// ActiveKind is the collection shown on start.
	ActiveKind string `toml:"active_kind"`
	// ViewMode is the row layout: "table" or "compact".
	ViewMode string `toml:"view_mode"`
	// Lists holds the saved query of each collection, keyed by kind.
	Lists map[string]ListSettings `toml:"lists"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		ActiveKind: DefaultKind().String(),
		ViewMode:   ViewModeTable,
		Lists:      map[string]ListSettings{},
	}
}

// Load reads settings from path. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}
	if s.Lists == nil {
		s.Lists = map[string]ListSettings{}
	}
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Save validates s and writes it to path, creating the directory if needed.
func Save(path string, s *Settings) error {
	if err := Validate(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
