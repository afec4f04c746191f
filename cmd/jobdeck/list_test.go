package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/feedback"
	"github.com/cristianoliveira/jobdeck/internal/fixtures"
	"github.com/cristianoliveira/jobdeck/internal/format"
	"github.com/cristianoliveira/jobdeck/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listJSON(t *testing.T, args ...string) format.ViewDocument {
	t.Helper()
	open, store := memoryOpener(t)
	seedCandidates(t, store)

	out, err := execute(NewListCmd(open), append([]string{"candidates", "--format", "json"}, args...)...)
	require.NoError(t, err)
	var doc format.ViewDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func docIDs(doc format.ViewDocument) []int {
	ids := make([]int, len(doc.Items))
	for i, it := range doc.Items {
		ids[i] = it.ID
	}
	return ids
}

func TestListTable(t *testing.T) {
	captureColors(t)
	open, store := memoryOpener(t)
	seedCandidates(t, store)

	out, err := execute(NewListCmd(open), "candidates")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12, "header, separator, nine rows and the footer")
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[2], "Candidate 06")
	assert.Equal(t, "Page 1/2 (12 items)", lines[11])
}

func TestListQueries(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		ids   []int
		page  int
		pages int
	}{
		{"default order", nil, []int{6, 2, 3, 9, 8, 12, 4, 11, 7}, 1, 2},
		{"filter", []string{"--filter", "status=shortlisted"}, []int{6, 2, 9}, 1, 1},
		{"repeated filter stays active", []string{"--filter", "status=shortlisted", "--filter", "status=Shortlisted"}, []int{6, 2, 9}, 1, 1},
		{"second page", []string{"--page", "2"}, []int{1, 5, 10}, 2, 2},
		{"page size", []string{"--page-size", "5", "--page", "3"}, []int{5, 10}, 3, 3},
		{"sort by name", []string{"--sort", "name", "--page-size", "3"}, []int{1, 2, 3}, 1, 4},
		{"search", []string{"--search", "candidate1"}, []int{12, 11, 10}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureColors(t)
			doc := listJSON(t, tt.args...)
			assert.Equal(t, tt.ids, docIDs(doc))
			assert.Equal(t, tt.page, doc.CurrentPage)
			assert.Equal(t, tt.pages, doc.TotalPages)
		})
	}
}

func TestListPageOutOfRangeIsIgnored(t *testing.T) {
	_, stderr := captureColors(t)

	doc := listJSON(t, "--page", "99")
	assert.Equal(t, 1, doc.CurrentPage)
	assert.Equal(t, []int{6, 2, 3, 9, 8, 12, 4, 11, 7}, docIDs(doc))
	assert.Contains(t, stderr.String(), "page 99 out of range (1-2), showing page 1")
}

func TestListUnsupportedValuesWarn(t *testing.T) {
	_, stderr := captureColors(t)

	doc := listJSON(t, "--filter", "salary=100", "--sort", "salary")
	assert.Equal(t, 12, doc.TotalCount)
	assert.Equal(t, domain.SortByScore, doc.State.Sort)
	assert.Contains(t, stderr.String(), "candidates cannot be filtered by salary")
	assert.Contains(t, stderr.String(), "candidates cannot be sorted by salary")
}

func TestListWarningsGoThroughMessageHandler(t *testing.T) {
	_, stderr := captureColors(t)
	got := recordMessages(t)

	listJSON(t, "--sort", "salary")
	require.Len(t, *got, 1)
	assert.Equal(t, feedback.LevelWarning, (*got)[0].Level)
	assert.Equal(t, "candidates cannot be sorted by salary, ignoring", (*got)[0].Text)
	assert.Empty(t, stderr.String(), "the console is bypassed")
}

func TestListErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"malformed filter", []string{"candidates", "--filter", "status"}, `invalid filter "status"`},
		{"unknown format", []string{"candidates", "--format", "xml"}, "xml"},
		{"unknown kind", []string{"offers"}, domain.ErrUnknownKind.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureColors(t)
			open, _ := memoryOpener(t)
			_, err := execute(NewListCmd(open), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestListEmptyCollection(t *testing.T) {
	captureColors(t)
	open, _ := memoryOpener(t)

	out, err := execute(NewListCmd(open), "jobs")
	require.NoError(t, err)
	assert.Equal(t, "No matching items\n", out)
}

func TestBuildPipelineRejectsInvalidRegex(t *testing.T) {
	_, stderr := captureColors(t)
	items := fixtures.Candidates(testScores, testStatuses)

	p, err := BuildPipeline(items, ListOptions{
		Kind:       domain.KindCandidates,
		Search:     "(unclosed",
		Page:       1,
		PageSize:   9,
		SearchMode: search.ModeRegex,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, p.View().TotalCount)
	assert.Empty(t, p.State().Search)
	assert.Contains(t, stderr.String(), `ignoring search "(unclosed"`)
}

func TestBuildPipelineUnknownSearchMode(t *testing.T) {
	_, stderr := captureColors(t)

	p, err := BuildPipeline(fixtures.Candidates(testScores, testStatuses), ListOptions{
		Kind:       domain.KindCandidates,
		Search:     "Candidate 0",
		Page:       1,
		SearchMode: "fuzzy",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, p.View().TotalCount)
	assert.Contains(t, stderr.String(), "using substring search")
}
