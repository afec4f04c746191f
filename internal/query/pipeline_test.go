package query

import (
	"strings"
	"testing"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/fixtures"
	"github.com/cristianoliveira/jobdeck/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []domain.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func candidates() domain.Schema {
	return domain.MustSchema(domain.KindCandidates)
}

func newPipeline(t *testing.T, items []domain.Item, opts ...Option) *Pipeline {
	t.Helper()
	p := New(candidates(), opts...)
	p.Load(items)
	return p
}

func TestPipeline_ShortlistedFilterScenario(t *testing.T) {
	statuses := make([]string, 12)
	for i := range statuses {
		statuses[i] = "new"
	}
	statuses[2], statuses[6], statuses[11] = "shortlisted", "shortlisted", "shortlisted"
	p := newPipeline(t, fixtures.Candidates(nil, statuses), WithPageSize(9))

	require.Equal(t, 2, p.View().TotalPages)

	p.ToggleFilter("status", "shortlisted")

	v := p.View()
	assert.Len(t, v.Items, 3)
	assert.Equal(t, 3, v.TotalCount)
	assert.Equal(t, 1, v.TotalPages)
	assert.Equal(t, 1, v.CurrentPage)
	for _, it := range v.Items {
		assert.Equal(t, "shortlisted", it.Status())
	}
}

func TestPipeline_ToggleFilterTwiceClears(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates(nil, []string{"new", "shortlisted", "new"}))

	p.ToggleFilter("status", "shortlisted")
	assert.Equal(t, 1, p.View().TotalCount)

	p.ToggleFilter("status", "Shortlisted")
	assert.Equal(t, 3, p.View().TotalCount)
	assert.Empty(t, p.State().Filters)
}

func TestPipeline_ToggleFilterReplacesValue(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates(nil, []string{"new", "shortlisted", "rejected"}))

	p.ToggleFilter("status", "shortlisted")
	p.ToggleFilter("status", "rejected")

	assert.Equal(t, map[string]string{"status": "rejected"}, p.State().Filters)
	assert.Equal(t, []int{3}, ids(p.View().Items))
}

func TestPipeline_StableScoreSortScenario(t *testing.T) {
	scores := []float64{50, 90, 90, 70, 60, 90, 10, 70, 85, 40}
	p := newPipeline(t, fixtures.Candidates(scores, nil), WithPageSize(10))

	p.SetSort(domain.SortByScore)

	assert.Equal(t, []int{2, 3, 6, 9, 4, 8, 5, 1, 10, 7}, ids(p.View().Items))
}

func TestPipeline_ChangePageOutOfRangeIsNoop(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates(make([]float64, 18), nil), WithPageSize(9))
	require.Equal(t, 2, p.View().TotalPages)

	p.ChangePage(2)
	require.Equal(t, 2, p.View().CurrentPage)
	before := ids(p.View().Items)

	for _, target := range []int{99, 0, -1, 3} {
		p.ChangePage(target)
		assert.Equal(t, 2, p.View().CurrentPage, "target %d", target)
		assert.Equal(t, before, ids(p.View().Items))
	}
}

func TestPipeline_PaginationCoversViewExactlyOnce(t *testing.T) {
	items := fixtures.Generate(domain.KindCandidates, 47, 7)
	p := newPipeline(t, items, WithPageSize(9))
	p.SetSort(domain.SortByName)
	ordered := Order(p.items, p.schema, p.State(), p.provider)

	var seen []int
	for page := 1; page <= p.View().TotalPages; page++ {
		p.ChangePage(page)
		require.Equal(t, page, p.View().CurrentPage)
		seen = append(seen, ids(p.View().Items)...)
	}

	assert.Equal(t, 6, p.View().TotalPages)
	assert.Equal(t, ids(ordered), seen)
}

func TestPipeline_FilterSoundAndComplete(t *testing.T) {
	items := fixtures.Generate(domain.KindCandidates, 60, 3)
	p := newPipeline(t, items, WithPageSize(100))

	p.ToggleFilter("location", "Berlin")
	p.ToggleFilter("skills", "go")

	included := make(map[int]bool)
	for _, it := range p.View().Items {
		included[it.ID] = true
		assert.True(t, it.MatchesFilters(p.State().Filters))
	}
	for _, it := range items {
		if !included[it.ID] {
			assert.False(t, it.MatchesFilters(p.State().Filters), "item %d excluded but matches", it.ID)
		}
	}
}

func TestPipeline_SearchIsSubsetOfFilterView(t *testing.T) {
	items := fixtures.Generate(domain.KindCandidates, 200, 11)
	p := newPipeline(t, items, WithPageSize(500))
	p.ToggleFilter("experienceLevel", "senior")
	filtered := make(map[int]bool)
	for _, it := range p.View().Items {
		filtered[it.ID] = true
	}

	p.SetSearchTerm("GO")
	require.NotZero(t, p.View().TotalCount)
	for _, it := range p.View().Items {
		assert.True(t, filtered[it.ID])
		found := false
		for _, v := range it.SearchValues(candidates().SearchFields) {
			if strings.Contains(strings.ToLower(v), "go") {
				found = true
			}
		}
		assert.True(t, found, "item %d does not contain the term", it.ID)
	}
}

func TestPipeline_SetSortIsIdempotent(t *testing.T) {
	p := newPipeline(t, fixtures.Generate(domain.KindCandidates, 30, 5))

	p.SetSort(domain.SortByExperience)
	once := p.View()
	p.SetSort(domain.SortByExperience)

	assert.Equal(t, once, p.View())
}

func TestPipeline_PageResets(t *testing.T) {
	p := newPipeline(t, fixtures.Generate(domain.KindCandidates, 40, 1), WithPageSize(5))

	p.ChangePage(3)
	p.SetSort(domain.SortByName)
	assert.Equal(t, 3, p.View().CurrentPage, "sort keeps the page")

	p.SetSearchTerm("a")
	assert.Equal(t, 1, p.View().CurrentPage)

	p.ChangePage(2)
	p.ToggleFilter("status", "new")
	assert.Equal(t, 1, p.View().CurrentPage)

	p.ChangePage(p.View().TotalPages)
	p.ClearFilters()
	assert.Equal(t, 1, p.View().CurrentPage)
	assert.Equal(t, domain.SortByName, p.State().Sort, "clear keeps the sort")

	p.ChangePage(4)
	p.SetPageSize(10)
	assert.Equal(t, 1, p.View().CurrentPage)
	assert.Equal(t, 4, p.View().TotalPages)
}

func TestPipeline_EmptyResult(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates([]float64{1, 2, 3}, nil))

	p.SetSearchTerm("nobody-matches-this")

	v := p.View()
	assert.True(t, v.IsEmpty())
	assert.Empty(t, v.Items)
	assert.Equal(t, 0, v.TotalPages)
	assert.Equal(t, 1, v.CurrentPage)

	p.ChangePage(1)
	assert.Equal(t, 1, p.View().CurrentPage)
}

func TestPipeline_MalformedInputIsIgnored(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates([]float64{1, 2, 3}, nil))
	p.SetSort(domain.SortByName)
	p.ToggleFilter("status", "new")
	before := p.State()

	p.SetSort(domain.SortKey("popularity"))
	p.SetSort(domain.SortBySalary)
	p.ToggleFilter("favoriteColor", "blue")
	p.ToggleFilter("status", "")
	p.SetPageSize(0)
	p.SetPageSize(-3)

	assert.Equal(t, before, p.State())
}

func TestPipeline_InvalidRegexSearchIsIgnored(t *testing.T) {
	provider := search.NewRegexProvider(search.ForSchema(candidates()))
	p := newPipeline(t, fixtures.Candidates([]float64{1, 2, 3}, nil), WithProvider(provider))

	p.SetSearchTerm("^Candidate 0[12]$")
	require.Equal(t, 2, p.View().TotalCount)

	p.SetSearchTerm("[unclosed")
	assert.Equal(t, "^Candidate 0[12]$", p.State().Search)
	assert.Equal(t, 2, p.View().TotalCount)
}

func TestPipeline_LoadCopiesAndClamps(t *testing.T) {
	items := fixtures.Candidates(make([]float64, 20), nil)
	p := newPipeline(t, items, WithPageSize(5))
	p.ChangePage(4)

	items[0].SetStatus("rejected")
	got, ok := p.Item(1)
	require.True(t, ok)
	assert.Equal(t, "new", got.Status(), "pipeline keeps its own copy")

	p.Load(items[:7])
	assert.Equal(t, 2, p.View().TotalPages)
	assert.Equal(t, 2, p.View().CurrentPage)
	assert.Equal(t, 7, p.Len())
}

func TestPipeline_SetStatusRecomputes(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates(nil, []string{"shortlisted", "shortlisted", "new"}))
	p.ToggleFilter("status", "shortlisted")
	require.Equal(t, 2, p.View().TotalCount)

	assert.True(t, p.SetStatus(1, "rejected"))
	assert.Equal(t, []int{2}, ids(p.View().Items))

	assert.False(t, p.SetStatus(99, "rejected"), "unknown item")
	assert.False(t, p.SetStatus(2, "open"), "status not in workflow")
	assert.Equal(t, 1, p.View().TotalCount)
}

func TestPipeline_WithStateNormalizes(t *testing.T) {
	saved := State{
		Search:   "ada",
		Filters:  map[string]string{"status": "new", "salary": "lots"},
		Sort:     domain.SortBySalary,
		Page:     -2,
		PageSize: 0,
	}
	p := New(candidates(), WithState(saved))

	st := p.State()
	assert.Equal(t, "ada", st.Search)
	assert.Equal(t, map[string]string{"status": "new"}, st.Filters)
	assert.Equal(t, domain.SortByScore, st.Sort)
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, DefaultPageSize, st.PageSize)
}

func TestPipeline_StateIsACopy(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates(nil, []string{"new", "shortlisted"}))
	p.ToggleFilter("status", "new")

	st := p.State()
	st.Filters["status"] = "shortlisted"

	assert.Equal(t, "new", p.State().Filters["status"])
	assert.Equal(t, []int{1}, ids(p.View().Items))
}

func TestPipeline_ViewIsACopy(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates([]float64{80, 70}, []string{"new", "new"}))

	v := p.View()
	v.Items[0].SetStatus("rejected")
	*v.Items[0].Score = 1
	v.Items[1] = domain.Item{ID: 99}

	again := p.View()
	assert.Equal(t, []int{1, 2}, ids(again.Items))
	assert.Equal(t, "new", again.Items[0].Status())
	assert.Equal(t, float64(80), *again.Items[0].Score)

	p.ToggleFilter("status", "new")
	assert.Equal(t, 2, p.View().TotalCount, "the pipeline's items were not changed")
}

func TestPipeline_Facets(t *testing.T) {
	p := newPipeline(t, fixtures.Candidates(nil, []string{"new", "shortlisted", "new"}))
	assert.Equal(t, []string{"new", "shortlisted"}, p.Facets("status"))
	assert.Nil(t, p.Facets("email"))
}
