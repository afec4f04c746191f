package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Common attribute names.
const (
	FieldStatus     = "status"
	FieldMatchScore = "matchScore"
)

// Item is one record of a collection: a candidate, job, interview or application.
type Item struct {
	ID int
	// Attributes maps field names to string, float64, bool or []string values.
	Attributes map[string]any
	// Score is the optional derived score (match score for candidates).
	Score *float64
}

// NewItem builds an item with normalized attributes.
func NewItem(id int, attrs map[string]any, score *float64) Item {
	return Item{ID: id, Attributes: NormalizeAttributes(attrs), Score: score}
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float returns a pointer to v, for building scores.
func Float(v float64) *float64 {
	return &v
}

// Clone returns a deep copy so callers can mutate it without aliasing.
func (it Item) Clone() Item {
	out := Item{ID: it.ID}
	if it.Score != nil {
		s := *it.Score
		out.Score = &s
	}
	if it.Attributes != nil {
		out.Attributes = make(map[string]any, len(it.Attributes))
		for k, v := range it.Attributes {
			if list, ok := v.([]string); ok {
				v = append([]string(nil), list...)
			}
			out.Attributes[k] = v
		}
	}
	return out
}

// Has reports whether the attribute is present.
func (it Item) Has(field string) bool {
	_, ok := it.Attributes[field]
	return ok
}

// Text returns a scalar attribute rendered as a string.
// Sequence attributes are not scalars and return false.
func (it Item) Text(field string) (string, bool) {
	v, ok := it.Attributes[field]
	if !ok {
		return "", false
	}
	return scalarString(v)
}

// Strings returns the attribute as a list of strings.
// Scalars are returned as a one-element list.
func (it Item) Strings(field string) ([]string, bool) {
	v, ok := it.Attributes[field]
	if !ok {
		return nil, false
	}
	if list, ok := v.([]string); ok {
		return list, true
	}
	s, ok := scalarString(v)
	if !ok {
		return nil, false
	}
	return []string{s}, true
}

// Number returns a numeric attribute.
func (it Item) Number(field string) (float64, bool) {
	switch n := it.Attributes[field].(type) {
	case float64:
		return n, IsFinite(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || !IsFinite(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Status returns the status attribute, or "" when absent.
func (it Item) Status() string {
	s, _ := it.Text(FieldStatus)
	return s
}

// SetStatus updates the status attribute in place.
func (it *Item) SetStatus(status string) {
	if it.Attributes == nil {
		it.Attributes = make(map[string]any)
	}
	it.Attributes[FieldStatus] = status
}

// NormalizeAttributes converts decoded values into the supported attribute
// types. Integers become float64 and lists become []string. Nil values,
// NaN or infinite numbers and nested maps are dropped.
func NormalizeAttributes(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if nv, ok := normalizeValue(v); ok {
			out[k] = nv
		}
	}
	return out
}

func normalizeValue(v any) (any, bool) {
	switch t := v.(type) {
	case string, bool:
		return t, true
	case float64:
		return t, IsFinite(t)
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), IsFinite(float64(t))
	case []string:
		return append([]string(nil), t...), true
	case []any:
		list := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := scalarString(e)
			if !ok {
				continue
			}
			list = append(list, s)
		}
		return list, true
	default:
		return nil, false
	}
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		if !IsFinite(t) {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// Validate checks the item against the collection schema.
func (it Item) Validate(schema Schema) error {
	if it.ID <= 0 {
		return fmt.Errorf("invalid item ID: %d", it.ID)
	}
	if it.Score != nil && !IsFinite(*it.Score) {
		return fmt.Errorf("item %d: score must be a finite number", it.ID)
	}
	if status := it.Status(); status != "" && !schema.AllowsStatus(status) {
		return fmt.Errorf("%w: %q for %s", ErrInvalidStatus, status, schema.Kind)
	}
	return nil
}
