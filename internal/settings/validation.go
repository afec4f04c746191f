package settings

import (
	"fmt"

	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// Validate checks that settings values are valid.
func Validate(s *Settings) error {
	if s == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if s.ActiveKind != "" {
		if _, err := domain.ParseKind(s.ActiveKind); err != nil {
			return err
		}
	}
	if err := validateViewMode(s.ViewMode); err != nil {
		return err
	}
	for name, list := range s.Lists {
		kind, err := domain.ParseKind(name)
		if err != nil {
			return fmt.Errorf("invalid list %q: %w", name, err)
		}
		if err := validateList(domain.MustSchema(kind), list); err != nil {
			return fmt.Errorf("invalid list %q: %w", name, err)
		}
	}
	return nil
}

func validateViewMode(mode string) error {
	switch mode {
	case "", ViewModeTable, ViewModeCompact:
		return nil
	default:
		return fmt.Errorf("invalid view_mode value: %s", mode)
	}
}

func validateList(schema domain.Schema, list ListSettings) error {
	if list.Sort != "" && !schema.SupportsSort(domain.SortKey(list.Sort)) {
		return fmt.Errorf("invalid sort value: %s", list.Sort)
	}
	for field := range list.Filters {
		if !schema.IsFilterField(field) {
			return fmt.Errorf("invalid filter field: %s", field)
		}
	}
	if list.PageSize < 0 {
		return fmt.Errorf("invalid page_size value: %d", list.PageSize)
	}
	return nil
}
