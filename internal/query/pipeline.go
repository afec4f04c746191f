package query

import (
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/search"
)

// Pipeline holds the query state of one list view and its derived view.
// Every mutator leaves the view consistent with the state; malformed input
// leaves both untouched. A Pipeline is not safe for concurrent use.
type Pipeline struct {
	schema   domain.Schema
	provider search.Provider

	items   []domain.Item // owned copy, source order
	ordered []domain.Item // filtered, searched and sorted
	state   State
	view    View
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProvider sets the search provider.
func WithProvider(p search.Provider) Option {
	return func(pl *Pipeline) {
		if p != nil {
			pl.provider = p
		}
	}
}

// WithPageSize sets the initial page size.
func WithPageSize(size int) Option {
	return func(pl *Pipeline) {
		if size > 0 {
			pl.state.PageSize = size
		}
	}
}

// WithState starts the pipeline from a saved state. Parts the schema does
// not recognize are dropped.
func WithState(st State) Option {
	return func(pl *Pipeline) {
		pl.state = st.Normalize(pl.schema)
	}
}

// New creates a pipeline over an empty collection.
func New(schema domain.Schema, opts ...Option) *Pipeline {
	p := &Pipeline{
		schema:   schema,
		provider: search.NewSubstringProvider(search.ForSchema(schema)),
		state:    NewState(schema, DefaultPageSize),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.recompute()
	return p
}

// Load replaces the collection. The pipeline keeps its own copy, so later
// changes to items do not leak into the view. The query state is kept and
// the page is clamped to the new page count.
func (p *Pipeline) Load(items []domain.Item) {
	p.items = make([]domain.Item, len(items))
	for i, it := range items {
		p.items[i] = it.Clone()
	}
	p.recompute()
}

// SetSearchTerm replaces the search term and returns to the first page.
// A term the provider rejects is ignored.
func (p *Pipeline) SetSearchTerm(term string) {
	if v, ok := p.provider.(search.Validator); ok {
		if err := v.Validate(term); err != nil {
			return
		}
	}
	p.state = p.state.WithSearch(term)
	p.recompute()
}

// ToggleFilter sets field to value, or clears it when value is already
// active, and returns to the first page. Unknown fields and empty values
// are ignored.
func (p *Pipeline) ToggleFilter(field, value string) {
	if value == "" || !p.schema.IsFilterField(field) {
		return
	}
	p.state = p.state.WithFilterToggled(field, value)
	p.recompute()
}

// SetSort changes the sort key. The page is kept when still in range.
// Keys the collection does not support are ignored.
func (p *Pipeline) SetSort(key domain.SortKey) {
	if !p.schema.SupportsSort(key) {
		return
	}
	p.state = p.state.WithSort(key)
	p.recompute()
}

// ChangePage moves to target when it is within [1, TotalPages] and does
// nothing otherwise. Only the page slice is recomputed.
func (p *Pipeline) ChangePage(target int) {
	if target < 1 || target > p.view.TotalPages {
		return
	}
	p.view, p.state = Paginate(p.ordered, p.state.WithPage(target))
}

// ClearFilters drops the search term and every filter and returns to the
// first page. The sort key is kept.
func (p *Pipeline) ClearFilters() {
	p.state = p.state.Cleared()
	p.recompute()
}

// SetPageSize changes the page size and returns to the first page.
// Non-positive sizes are ignored.
func (p *Pipeline) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.state = p.state.WithPageSize(size)
	p.recompute()
}

// SetStatus updates the status of the item with the given ID and
// recomputes the view, since the item may no longer match a status filter.
// It reports false when the item is missing or the status is not allowed.
func (p *Pipeline) SetStatus(id int, status string) bool {
	if !p.schema.AllowsStatus(status) {
		return false
	}
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i].SetStatus(status)
			p.recompute()
			return true
		}
	}
	return false
}

// Item returns a copy of the item with the given ID.
func (p *Pipeline) Item(id int) (domain.Item, bool) {
	for _, it := range p.items {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return domain.Item{}, false
}

// Len returns the size of the loaded collection.
func (p *Pipeline) Len() int {
	return len(p.items)
}

// Schema returns the collection schema.
func (p *Pipeline) Schema() domain.Schema {
	return p.schema
}

// State returns a copy of the current query state.
func (p *Pipeline) State() State {
	return p.state.WithPage(p.state.Page)
}

// View returns the current view. Its items are copies, so callers may
// change them without affecting the pipeline.
func (p *Pipeline) View() View {
	v := p.view
	v.Items = make([]domain.Item, len(p.view.Items))
	for i, it := range p.view.Items {
		v.Items[i] = it.Clone()
	}
	return v
}

// Facets returns the values offered for a filter field, drawn from the
// whole collection.
func (p *Pipeline) Facets(field string) []string {
	if !p.schema.IsFilterField(field) {
		return nil
	}
	return domain.FacetValues(p.items, field)
}

func (p *Pipeline) recompute() {
	p.ordered = Order(p.items, p.schema, p.state, p.provider)
	p.view, p.state = Paginate(p.ordered, p.state)
}
