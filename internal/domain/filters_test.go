package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func filterFixture() []Item {
	return []Item{
		NewItem(1, map[string]any{"status": "new", "location": "Berlin", "skills": []string{"go", "sql"}}, nil),
		NewItem(2, map[string]any{"status": "shortlisted", "location": "Lisbon", "skills": []string{"react"}}, nil),
		NewItem(3, map[string]any{"status": "Shortlisted", "location": "Berlin"}, nil),
		NewItem(4, map[string]any{"location": "Berlin", "skills": []string{"Go"}}, nil),
		NewItem(5, map[string]any{"status": "rejected", "remote": true}, nil),
	}
}

func TestFilterItems(t *testing.T) {
	tests := []struct {
		name    string
		filters map[string]string
		want    []int
	}{
		{"no filters keeps all", nil, []int{1, 2, 3, 4, 5}},
		{"single field case-insensitive", map[string]string{"status": "shortlisted"}, []int{2, 3}},
		{"and across fields", map[string]string{"status": "shortlisted", "location": "berlin"}, []int{3}},
		{"sequence matches any element", map[string]string{"skills": "go"}, []int{1, 4}},
		{"missing field excludes item", map[string]string{"skills": "react"}, []int{2}},
		{"bool rendered as text", map[string]string{"remote": "true"}, []int{5}},
		{"no match", map[string]string{"status": "hired"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterItems(filterFixture(), tt.filters)))
		})
	}
}

func TestSearchValues(t *testing.T) {
	it := NewItem(1, map[string]any{"name": "Ada", "skills": []string{"go", ""}, "email": ""}, nil)
	assert.Equal(t, []string{"Ada", "go"}, it.SearchValues([]string{"name", "email", "skills", "missing"}))
}

func TestFacetValues(t *testing.T) {
	got := FacetValues(filterFixture(), "status")
	assert.Equal(t, []string{"new", "shortlisted", "rejected"}, got)

	got = FacetValues(filterFixture(), "skills")
	assert.Equal(t, []string{"go", "sql", "react"}, got)
}
