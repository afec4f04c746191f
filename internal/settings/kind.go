package settings

import (
	"github.com/cristianoliveira/jobdeck/internal/config"
	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// DefaultKind returns the collection shown when none is saved: the
// default_kind setting, or candidates.
func DefaultKind() domain.Kind {
	if kind, err := domain.ParseKind(config.Get("default_kind", "")); err == nil {
		return kind
	}
	return domain.KindCandidates
}

// NormalizeKind converts persisted input to a valid collection.
// Missing or invalid values resolve to the default.
func NormalizeKind(raw string) domain.Kind {
	kind, err := domain.ParseKind(raw)
	if err != nil {
		return DefaultKind()
	}
	return kind
}
