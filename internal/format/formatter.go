// Package format renders list views and collection statistics for CLI commands.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/query"
)

// Formatter writes one page of a collection.
type Formatter interface {
	FormatView(w io.Writer, kind domain.Kind, view query.View, state query.State) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeTable displays items in columns with a header and page footer.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeCompact displays one short line per item.
	FormatterTypeCompact FormatterType = "compact"

	// FormatterTypeJSON displays the view and query state as JSON.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a formatter of the given type. Unknown types fall back to table.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeCompact:
		return &CompactFormatter{}
	case FormatterTypeJSON:
		return &JSONFormatter{}
	default:
		return &TableFormatter{}
	}
}

// ParseFormatterType validates a formatter name.
func ParseFormatterType(s string) (FormatterType, error) {
	switch t := FormatterType(strings.ToLower(strings.TrimSpace(s))); t {
	case FormatterTypeTable, FormatterTypeCompact, FormatterTypeJSON:
		return t, nil
	default:
		return "", fmt.Errorf("invalid format %q: expected table, compact or json", s)
	}
}

// Footer returns the pagination line of a view.
func Footer(view query.View) string {
	if view.IsEmpty() {
		return "No matching items"
	}
	return fmt.Sprintf("Page %d/%d (%d items)", view.CurrentPage, view.TotalPages, view.TotalCount)
}

// TableFormatter renders items in aligned columns.
type TableFormatter struct{}

// FormatView implements Formatter.
func (f *TableFormatter) FormatView(w io.Writer, kind domain.Kind, view query.View, _ query.State) error {
	columns := ColumnsFor(kind)
	if !view.IsEmpty() {
		if _, err := fmt.Fprintln(w, headerStyle.Render(HeaderLine(columns))); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, headerStyle.Render(separatorLine(columns))); err != nil {
			return err
		}
		for _, it := range view.Items {
			if _, err := fmt.Fprintln(w, Row(columns, it)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, footerStyle.Render(Footer(view)))
	return err
}

// HeaderLine renders the column titles aligned like Row.
func HeaderLine(columns []Column) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = formatString(col.Name, col.Width, col.Alignment)
	}
	return strings.Join(cells, "  ")
}

func separatorLine(columns []Column) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = strings.Repeat("-", col.Width)
	}
	return strings.Join(cells, "  ")
}

// Row renders one item as aligned, styled cells.
func Row(columns []Column, it domain.Item) string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cell := formatString(truncateString(col.Extractor(it), col.Width), col.Width, col.Alignment)
		if col.Style != nil {
			cell = col.Style(it).Render(cell)
		}
		cells[i] = cell
	}
	return strings.Join(cells, "  ")
}

// CompactFormatter renders one line per item: ID, name, score and status.
type CompactFormatter struct{}

// FormatView implements Formatter.
func (f *CompactFormatter) FormatView(w io.Writer, kind domain.Kind, view query.View, _ query.State) error {
	schema, _ := domain.SchemaFor(kind)
	for _, it := range view.Items {
		if _, err := fmt.Fprintln(w, CompactLine(schema, it)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, Footer(view))
	return err
}

// CompactLine renders "#ID name [score] status".
func CompactLine(schema domain.Schema, it domain.Item) string {
	name, _ := it.Text(schema.NameField)
	line := fmt.Sprintf("#%d %s", it.ID, name)
	if it.Score != nil {
		line += " " + ScoreStyle(it.Score).Render("["+scoreText(it)+"]")
	}
	if status := it.Status(); status != "" {
		line += " " + StatusStyle(status).Render(status)
	}
	return line
}

// ItemDocument is the JSON form of an item.
type ItemDocument struct {
	ID         int              `json:"id"`
	Score      *float64         `json:"score,omitempty"`
	Tier       domain.ScoreTier `json:"tier,omitempty"`
	Attributes map[string]any   `json:"attributes"`
}

// ViewDocument is the JSON form of a view.
type ViewDocument struct {
	Kind        domain.Kind    `json:"kind"`
	Items       []ItemDocument `json:"items"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
	TotalCount  int            `json:"total_count"`
	State       query.State    `json:"state"`
}

// NewViewDocument builds the JSON form of a view.
func NewViewDocument(kind domain.Kind, view query.View, state query.State) ViewDocument {
	items := make([]ItemDocument, 0, len(view.Items))
	for _, it := range view.Items {
		attrs := it.Attributes
		if attrs == nil {
			attrs = map[string]any{}
		}
		items = append(items, ItemDocument{
			ID:         it.ID,
			Score:      it.Score,
			Tier:       domain.ScoreTierFor(it.Score),
			Attributes: attrs,
		})
	}
	return ViewDocument{
		Kind:        kind,
		Items:       items,
		TotalPages:  view.TotalPages,
		CurrentPage: view.CurrentPage,
		TotalCount:  view.TotalCount,
		State:       state,
	}
}

// JSONFormatter renders the view document as indented JSON.
type JSONFormatter struct{}

// FormatView implements Formatter.
func (f *JSONFormatter) FormatView(w io.Writer, kind domain.Kind, view query.View, state query.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewViewDocument(kind, view, state))
}
