package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SortKey specifies how a collection is ordered. The key implies the direction.
type SortKey string

const (
	SortByScore      SortKey = "score"      // derived score, highest first
	SortByName       SortKey = "name"       // name or title, A to Z
	SortByDate       SortKey = "date"       // date field, earliest first
	SortByRecent     SortKey = "recent"     // date field, latest first
	SortBySalary     SortKey = "salary"     // salaryMax (or salaryMin), highest first
	SortByExperience SortKey = "experience" // experienceYears, highest first
)

// Numeric attribute names used by sort keys.
const (
	FieldSalaryMin       = "salaryMin"
	FieldSalaryMax       = "salaryMax"
	FieldExperienceYears = "experienceYears"
)

// IsValid checks if the sort key is known.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByScore, SortByName, SortByDate, SortByRecent, SortBySalary, SortByExperience:
		return true
	default:
		return false
	}
}

// String returns the string representation of the sort key.
func (k SortKey) String() string {
	return string(k)
}

// Descending reports whether the key orders from high to low.
func (k SortKey) Descending() bool {
	switch k {
	case SortByScore, SortByRecent, SortBySalary, SortByExperience:
		return true
	default:
		return false
	}
}

// ParseSortKey parses a string into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid sort key: %s", s)
	}
	return k, nil
}

// dateLayouts are the accepted date forms. Dates without a zone are read
// as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate parses a date attribute. Values in none of the accepted layouts
// report false and sort as missing.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// sortValue is the comparable projection of one item under a sort key.
type sortValue struct {
	ok   bool
	num  float64
	text string
}

func (s Schema) sortValueOf(it Item, key SortKey) sortValue {
	switch key {
	case SortByScore:
		if it.Score != nil {
			if !IsFinite(*it.Score) {
				return sortValue{}
			}
			return sortValue{ok: true, num: *it.Score}
		}
		if n, ok := it.Number(FieldMatchScore); ok {
			return sortValue{ok: true, num: n}
		}
	case SortByName:
		if t, ok := it.Text(s.NameField); ok && t != "" {
			return sortValue{ok: true, text: strings.ToLower(t)}
		}
	case SortByDate, SortByRecent:
		t, ok := it.Text(s.DateField)
		if !ok || t == "" {
			return sortValue{}
		}
		if ts, ok := ParseDate(t); ok {
			return sortValue{ok: true, num: float64(ts.UnixNano())}
		}
	case SortBySalary:
		if n, ok := it.Number(FieldSalaryMax); ok {
			return sortValue{ok: true, num: n}
		}
		if n, ok := it.Number(FieldSalaryMin); ok {
			return sortValue{ok: true, num: n}
		}
	case SortByExperience:
		if n, ok := it.Number(FieldExperienceYears); ok {
			return sortValue{ok: true, num: n}
		}
	}
	return sortValue{}
}

func compareSortValues(a, b sortValue) int {
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	}
	return strings.Compare(a.text, b.text)
}

// SortItems returns a stably sorted copy of items under key.
// Items lacking the key's attribute keep their relative order after all
// items that have it. The input slice is not modified.
func (s Schema) SortItems(items []Item, key SortKey) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	if len(sorted) < 2 || !s.SupportsSort(key) {
		return sorted
	}

	type keyed struct {
		item  Item
		value sortValue
	}
	rows := make([]keyed, len(sorted))
	for i, it := range sorted {
		rows[i] = keyed{item: it, value: s.sortValueOf(it, key)}
	}
	desc := key.Descending()

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].value, rows[j].value
		if !a.ok || !b.ok {
			return a.ok && !b.ok
		}
		c := compareSortValues(a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})

	for i := range rows {
		sorted[i] = rows[i].item
	}
	return sorted
}
