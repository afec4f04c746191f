package domain

import "strings"

// MatchesFilters reports whether the item satisfies every field=value
// constraint. A constraint on a field the item lacks is not satisfied.
// Sequence attributes match when any element equals the value.
func (it Item) MatchesFilters(filters map[string]string) bool {
	for field, want := range filters {
		if !it.matchesFilter(field, want) {
			return false
		}
	}
	return true
}

func (it Item) matchesFilter(field, want string) bool {
	values, ok := it.Strings(field)
	if !ok {
		return false
	}
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// FilterItems returns the items matching all filters, keeping their order.
func FilterItems(items []Item, filters map[string]string) []Item {
	if len(filters) == 0 {
		return items
	}
	result := make([]Item, 0, len(items))
	for _, it := range items {
		if it.MatchesFilters(filters) {
			result = append(result, it)
		}
	}
	return result
}

// SearchValues returns the values of the schema's search fields, flattening
// sequences, for search providers to match against.
func (it Item) SearchValues(fields []string) []string {
	var values []string
	for _, field := range fields {
		list, ok := it.Strings(field)
		if !ok {
			continue
		}
		for _, v := range list {
			if v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

// FacetValues returns the distinct values of field across items, in first
// seen order. Used to offer filter choices.
func FacetValues(items []Item, field string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, it := range items {
		list, ok := it.Strings(field)
		if !ok {
			continue
		}
		for _, v := range list {
			key := strings.ToLower(v)
			if v == "" || seen[key] {
				continue
			}
			seen[key] = true
			values = append(values, v)
		}
	}
	return values
}
