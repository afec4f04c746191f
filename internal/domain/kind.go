// Package domain provides the domain layer for job-matching collections.
// It contains the item model, per-collection schemas and the pure filter,
// search-field and sort rules shared by every list view.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a collection name is not recognized.
var ErrUnknownKind = errors.New("unknown collection kind")

// Kind identifies one of the collections a list view can show.
type Kind string

const (
	KindCandidates   Kind = "candidates"
	KindJobs         Kind = "jobs"
	KindInterviews   Kind = "interviews"
	KindApplications Kind = "applications"
)

// Kinds lists every collection in display order.
var Kinds = []Kind{KindCandidates, KindJobs, KindInterviews, KindApplications}

// IsValid checks if the kind is one of the known collections.
func (k Kind) IsValid() bool {
	switch k {
	case KindCandidates, KindJobs, KindInterviews, KindApplications:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind parses a collection name. Singular forms are accepted.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name != "" && !strings.HasSuffix(name, "s") {
		name += "s"
	}
	k := Kind(name)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Next returns the collection after k, wrapping around.
func (k Kind) Next() Kind {
	for i, kind := range Kinds {
		if kind == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Kinds[0]
}
