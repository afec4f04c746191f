package query

import (
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/search"
)

// View is the visible page of a collection plus pagination metadata.
type View struct {
	// Items from Recompute or Paginate share attribute maps with their
	// source; treat them as read-only. Pipeline.View returns copies.
	Items []domain.Item
	// TotalPages is zero when nothing matches.
	TotalPages int
	// CurrentPage is 1-based and always within [1, max(1, TotalPages)].
	CurrentPage int
	// TotalCount is the number of items matching the query across all pages.
	TotalCount int
}

// IsEmpty reports whether no item matches the query.
func (v View) IsEmpty() bool {
	return v.TotalCount == 0
}

// Recompute derives the view of items under st. It applies, in order, the
// filters (AND across fields), the search term, the stable sort and the page
// slice. The returned state is st normalized against the schema with its
// page clamped to the available pages. items is not modified.
func Recompute(items []domain.Item, schema domain.Schema, st State, provider search.Provider) (View, State) {
	st = st.Normalize(schema)
	return Paginate(Order(items, schema, st, provider), st)
}

// Order returns the filtered, searched and sorted sequence of items.
// A nil provider searches the schema's fields by case-insensitive substring.
func Order(items []domain.Item, schema domain.Schema, st State, provider search.Provider) []domain.Item {
	matched := domain.FilterItems(items, st.Filters)

	if st.Search != "" {
		if provider == nil {
			provider = search.NewSubstringProvider(search.ForSchema(schema))
		}
		found := make([]domain.Item, 0, len(matched))
		for _, it := range matched {
			if provider.Match(it, st.Search) {
				found = append(found, it)
			}
		}
		matched = found
	}

	return schema.SortItems(matched, st.Sort)
}

// Paginate slices an ordered sequence to the page requested by st, clamping
// the page to [1, max(1, TotalPages)].
func Paginate(ordered []domain.Item, st State) (View, State) {
	if st.PageSize <= 0 {
		st.PageSize = DefaultPageSize
	}
	total := len(ordered)
	pages := TotalPages(total, st.PageSize)
	st.Page = clamp(st.Page, 1, max(1, pages))

	start := (st.Page - 1) * st.PageSize
	end := min(start+st.PageSize, total)
	page := make([]domain.Item, 0, end-start)
	if start < end {
		page = append(page, ordered[start:end]...)
	}

	return View{
		Items:       page,
		TotalPages:  pages,
		CurrentPage: st.Page,
		TotalCount:  total,
	}, st
}

// TotalPages returns ceil(count/pageSize), zero for an empty collection.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
