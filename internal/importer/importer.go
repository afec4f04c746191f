// Package importer decodes collection files into domain items.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a collection file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

const (
	fieldID    = "id"
	fieldScore = "score"
	itemsKey   = "items"
)

var (
	// ErrUnsupportedFormat is returned for encodings other than json, yaml and toml.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrInvalidRecord is returned for records that cannot become items.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrDuplicateID is returned when two records share an ID.
	ErrDuplicateID = errors.New("duplicate item ID")
)

// ParseFormat parses a format name. "yml" is accepted as yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath returns the format matching the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ReadFile decodes the collection file at path, picking the format from its extension.
func ReadFile(path string, kind domain.Kind) ([]domain.Item, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	items, err := Decode(f, format, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Decode reads a collection of kind encoded as format. The document is either
// a list of records or a table whose "items" key holds the list. Every record
// needs a positive unique "id"; "score" is optional and the remaining keys
// become attributes. Candidates without a score use their matchScore.
func Decode(r io.Reader, format Format, kind domain.Kind) ([]domain.Item, error) {
	schema, err := domain.SchemaFor(kind)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}

	root, err := unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	records, err := recordsOf(root)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(records))
	seen := make(map[int]struct{}, len(records))
	for i, rec := range records {
		it, err := itemFromRecord(rec, kind)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("record %d: %w: %d", i+1, ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
		if err := it.Validate(schema); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func unmarshal(data []byte, format Format) (any, error) {
	var root any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if len(bytes.TrimSpace(data)) == 0 {
			return []any{}, nil
		}
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		root = doc
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return root, nil
}

func recordsOf(root any) ([]any, error) {
	switch t := root.(type) {
	case []any:
		return t, nil
	case map[string]any:
		list, ok := t[itemsKey]
		if !ok {
			return []any{}, nil
		}
		records, ok := list.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a list", ErrInvalidRecord, itemsKey)
		}
		return records, nil
	case nil:
		return []any{}, nil
	default:
		return nil, fmt.Errorf("%w: document must be a list or a table with %q", ErrInvalidRecord, itemsKey)
	}
}

func itemFromRecord(raw any, kind domain.Kind) (domain.Item, error) {
	rec, ok := raw.(map[string]any)
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: expected a table, got %T", ErrInvalidRecord, raw)
	}

	id, ok := toInt(rec[fieldID])
	if !ok || id <= 0 {
		return domain.Item{}, fmt.Errorf("%w: id must be a positive integer, got %v", ErrInvalidRecord, rec[fieldID])
	}

	var score *float64
	if v, present := rec[fieldScore]; present && v != nil {
		f, ok := toFloat(v)
		if !ok {
			return domain.Item{}, fmt.Errorf("%w: score must be a number, got %v", ErrInvalidRecord, v)
		}
		score = domain.Float(f)
	}

	attrs := make(map[string]any, len(rec))
	for k, v := range rec {
		if k == fieldID || k == fieldScore {
			continue
		}
		if !finite(v) {
			return domain.Item{}, fmt.Errorf("%w: %s of item %d must be a finite number", ErrInvalidRecord, k, id)
		}
		attrs[k] = plain(v)
	}
	if score == nil && kind == domain.KindCandidates {
		if f, ok := toFloat(attrs[domain.FieldMatchScore]); ok {
			score = domain.Float(f)
		}
	}
	return domain.NewItem(id, attrs, score), nil
}

// plain converts decoder-specific values into attribute values.
func plain(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	case fmt.Stringer:
		return t.String()
	default:
		return v
	}
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case uint64:
		if t > math.MaxInt {
			return 0, false
		}
		return int(t), true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	default:
		return 0, false
	}
}

// finite reports false for NaN or infinite numbers, including inside lists.
func finite(v any) bool {
	switch t := v.(type) {
	case float64:
		return domain.IsFinite(t)
	case []any:
		for _, e := range t {
			if !finite(e) {
				return false
			}
		}
	}
	return true
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, domain.IsFinite(t)
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil && domain.IsFinite(f)
	default:
		return 0, false
	}
}
