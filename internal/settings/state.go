package settings

import (
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/query"
)

// ListState returns the saved query of kind as a pipeline state, falling
// back to pageSize when the list has no page size of its own.
func (s *Settings) ListState(kind domain.Kind, pageSize int) query.State {
	schema := domain.MustSchema(kind)
	st := query.NewState(schema, pageSize)
	if s == nil {
		return st
	}
	list, ok := s.Lists[kind.String()]
	if !ok {
		return st
	}
	st.Search = list.Search
	for field, value := range list.Filters {
		st.Filters[field] = value
	}
	if list.Sort != "" {
		st.Sort = domain.SortKey(list.Sort)
	}
	if list.PageSize > 0 {
		st.PageSize = list.PageSize
	}
	return st.Normalize(schema)
}

// SetListState records the query of kind. The page is not persisted.
// A page size equal to defaultPageSize is left unset so later config
// changes still apply.
func (s *Settings) SetListState(kind domain.Kind, st query.State, defaultPageSize int) {
	if s.Lists == nil {
		s.Lists = map[string]ListSettings{}
	}
	list := ListSettings{
		Search: st.Search,
		Sort:   st.Sort.String(),
	}
	if len(st.Filters) > 0 {
		list.Filters = make(map[string]string, len(st.Filters))
		for field, value := range st.Filters {
			list.Filters[field] = value
		}
	}
	if st.PageSize != defaultPageSize {
		list.PageSize = st.PageSize
	}
	s.Lists[kind.String()] = list
}
