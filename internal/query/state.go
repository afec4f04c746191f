// Package query implements the list query pipeline: a pure function from a
// collection and a query state to the visible page, plus a small stateful
// holder for UIs that mutate the state one event at a time.
package query

import (
	"sort"
	"strings"

	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 9

// State is the query state of one list view. It is a value: the With
// helpers return modified copies and never share the Filters map.
type State struct {
	Search   string            `json:"search" toml:"search"`
	Filters  map[string]string `json:"filters" toml:"filters"`
	Sort     domain.SortKey    `json:"sort" toml:"sort"`
	Page     int               `json:"page" toml:"page"`
	PageSize int               `json:"page_size" toml:"page_size"`
}

// NewState returns the initial state of a collection: no search, no
// filters, the default sort, first page.
func NewState(schema domain.Schema, pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		Filters:  map[string]string{},
		Sort:     schema.DefaultSort(),
		Page:     1,
		PageSize: pageSize,
	}
}

// WithSearch sets the search term and returns to the first page.
func (s State) WithSearch(term string) State {
	s.Search = term
	s.Filters = s.cloneFilters()
	s.Page = 1
	return s
}

// WithFilterToggled applies toggle semantics to field: the active value is
// cleared, any other value replaces it. Returns to the first page.
func (s State) WithFilterToggled(field, value string) State {
	filters := s.cloneFilters()
	if current, ok := filters[field]; ok && strings.EqualFold(current, value) {
		delete(filters, field)
	} else {
		filters[field] = value
	}
	s.Filters = filters
	s.Page = 1
	return s
}

// WithSort sets the sort key. The page is kept.
func (s State) WithSort(key domain.SortKey) State {
	s.Sort = key
	s.Filters = s.cloneFilters()
	return s
}

// WithPage sets the requested page without validating it.
func (s State) WithPage(page int) State {
	s.Page = page
	s.Filters = s.cloneFilters()
	return s
}

// WithPageSize sets the page size and returns to the first page.
func (s State) WithPageSize(size int) State {
	s.PageSize = size
	s.Filters = s.cloneFilters()
	s.Page = 1
	return s
}

// Cleared drops the search term and every filter and returns to the first page.
func (s State) Cleared() State {
	s.Search = ""
	s.Filters = map[string]string{}
	s.Page = 1
	return s
}

// HasConstraints reports whether a search term or filter is active.
func (s State) HasConstraints() bool {
	return s.Search != "" || len(s.Filters) > 0
}

// FilterFields returns the filtered fields in a stable order.
func (s State) FilterFields() []string {
	fields := make([]string, 0, len(s.Filters))
	for f := range s.Filters {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Normalize drops whatever the schema does not recognize: filters on unknown
// fields, empty filter values, an unsupported sort key, a non-positive page
// size or page.
func (s State) Normalize(schema domain.Schema) State {
	filters := make(map[string]string, len(s.Filters))
	for field, value := range s.Filters {
		if value == "" || !schema.IsFilterField(field) {
			continue
		}
		filters[field] = value
	}
	s.Filters = filters
	if !schema.SupportsSort(s.Sort) {
		s.Sort = schema.DefaultSort()
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}

func (s State) cloneFilters() map[string]string {
	out := make(map[string]string, len(s.Filters))
	for k, v := range s.Filters {
		out[k] = v
	}
	return out
}
