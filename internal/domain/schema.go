package domain

import "errors"

// ErrInvalidStatus indicates a status outside the collection's allowed set.
var ErrInvalidStatus = errors.New("invalid status")

// Schema describes how a collection is searched, filtered and sorted.
type Schema struct {
	Kind Kind
	// SearchFields are matched by free-text search.
	SearchFields []string
	// FilterFields are the categorical fields a filter may constrain.
	FilterFields []string
	// SortKeys are the supported sort keys, the first one is the default.
	SortKeys []SortKey
	// NameField is used by SortByName.
	NameField string
	// DateField is used by SortByDate and SortByRecent (see ParseDate).
	DateField string
	// Statuses is the allowed status set, in workflow order.
	Statuses []string
}

var schemas = map[Kind]Schema{
	KindCandidates: {
		Kind:         KindCandidates,
		SearchFields: []string{"name", "email", "skills"},
		FilterFields: []string{"status", "location", "experienceLevel", "skills"},
		SortKeys:     []SortKey{SortByScore, SortByName, SortByDate, SortByRecent, SortByExperience},
		NameField:    "name",
		DateField:    "appliedAt",
		Statuses:     []string{"new", "reviewed", "shortlisted", "interviewing", "rejected", "hired"},
	},
	KindJobs: {
		Kind:         KindJobs,
		SearchFields: []string{"title", "company", "skills"},
		FilterFields: []string{"status", "location", "jobType", "remote", "skills"},
		SortKeys:     []SortKey{SortByScore, SortByName, SortByDate, SortByRecent, SortBySalary},
		NameField:    "title",
		DateField:    "postedAt",
		Statuses:     []string{"open", "paused", "closed"},
	},
	KindInterviews: {
		Kind:         KindInterviews,
		SearchFields: []string{"candidate", "position", "interviewer"},
		FilterFields: []string{"status", "stage", "mode"},
		SortKeys:     []SortKey{SortByDate, SortByRecent, SortByName, SortByScore},
		NameField:    "candidate",
		DateField:    "scheduledAt",
		Statuses:     []string{"scheduled", "completed", "cancelled", "no_show"},
	},
	KindApplications: {
		Kind:         KindApplications,
		SearchFields: []string{"candidate", "job", "email"},
		FilterFields: []string{"status", "source"},
		SortKeys:     []SortKey{SortByRecent, SortByDate, SortByScore, SortByName},
		NameField:    "candidate",
		DateField:    "appliedAt",
		Statuses:     []string{"applied", "viewed", "shortlisted", "rejected", "hired"},
	},
}

// SchemaFor returns the schema of a collection.
func SchemaFor(kind Kind) (Schema, error) {
	s, ok := schemas[kind]
	if !ok {
		return Schema{}, ErrUnknownKind
	}
	return s, nil
}

// MustSchema is SchemaFor for kinds known to be valid.
func MustSchema(kind Kind) Schema {
	s, err := SchemaFor(kind)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultSort returns the collection's default sort key.
func (s Schema) DefaultSort() SortKey {
	if len(s.SortKeys) == 0 {
		return ""
	}
	return s.SortKeys[0]
}

// SupportsSort reports whether key applies to this collection.
func (s Schema) SupportsSort(key SortKey) bool {
	return contains(s.SortKeys, key)
}

// IsFilterField reports whether field can be filtered on.
func (s Schema) IsFilterField(field string) bool {
	return contains(s.FilterFields, field)
}

// AllowsStatus reports whether status belongs to the collection's workflow.
func (s Schema) AllowsStatus(status string) bool {
	return contains(s.Statuses, status)
}

// NextSort returns the sort key after key, wrapping around.
func (s Schema) NextSort(key SortKey) SortKey {
	for i, k := range s.SortKeys {
		if k == key {
			return s.SortKeys[(i+1)%len(s.SortKeys)]
		}
	}
	return s.DefaultSort()
}

func contains[T comparable](list []T, v T) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
