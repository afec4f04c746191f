package format

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// Column is one table column.
type Column struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extractor extracts the cell text from an item.
	Extractor func(domain.Item) string

	// Style colors the cell. Columns without one are rendered as is.
	Style func(domain.Item) lipgloss.Style
}

// ColumnsFor returns the table columns of a collection.
func ColumnsFor(kind domain.Kind) []Column {
	id := Column{Name: "ID", Width: 5, Alignment: "right", Extractor: func(it domain.Item) string {
		return strconv.Itoa(it.ID)
	}}
	score := Column{Name: "SCORE", Width: 6, Alignment: "right", Extractor: scoreText, Style: func(it domain.Item) lipgloss.Style {
		return ScoreStyle(it.Score)
	}}
	status := Column{Name: "STATUS", Width: 13, Extractor: attr(domain.FieldStatus), Style: func(it domain.Item) lipgloss.Style {
		return StatusStyle(it.Status())
	}}

	switch kind {
	case domain.KindCandidates:
		return []Column{
			id,
			{Name: "NAME", Width: 22, Extractor: attr("name")},
			score,
			status,
			{Name: "LOCATION", Width: 14, Extractor: attr("location")},
			{Name: "EXP", Width: 4, Alignment: "right", Extractor: attr(domain.FieldExperienceYears)},
			{Name: "SKILLS", Width: 28, Extractor: list("skills")},
		}
	case domain.KindJobs:
		return []Column{
			id,
			{Name: "TITLE", Width: 24, Extractor: attr("title")},
			{Name: "COMPANY", Width: 16, Extractor: attr("company")},
			score,
			status,
			{Name: "LOCATION", Width: 14, Extractor: attr("location")},
			{Name: "SALARY", Width: 15, Alignment: "right", Extractor: salaryText},
		}
	case domain.KindInterviews:
		return []Column{
			id,
			{Name: "CANDIDATE", Width: 20, Extractor: attr("candidate")},
			{Name: "POSITION", Width: 20, Extractor: attr("position")},
			{Name: "STAGE", Width: 10, Extractor: attr("stage")},
			status,
			{Name: "SCHEDULED", Width: 16, Extractor: dateText("scheduledAt")},
		}
	case domain.KindApplications:
		return []Column{
			id,
			{Name: "CANDIDATE", Width: 20, Extractor: attr("candidate")},
			{Name: "JOB", Width: 22, Extractor: attr("job")},
			score,
			status,
			{Name: "APPLIED", Width: 16, Extractor: dateText("appliedAt")},
		}
	default:
		return []Column{id, score, status}
	}
}

func attr(field string) func(domain.Item) string {
	return func(it domain.Item) string {
		s, _ := it.Text(field)
		return s
	}
}

func list(field string) func(domain.Item) string {
	return func(it domain.Item) string {
		values, _ := it.Strings(field)
		return strings.Join(values, ", ")
	}
}

func dateText(field string) func(domain.Item) string {
	return func(it domain.Item) string {
		s, _ := it.Text(field)
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return s
		}
		return t.UTC().Format("2006-01-02 15:04")
	}
}

func scoreText(it domain.Item) string {
	if it.Score == nil {
		return "-"
	}
	return strconv.FormatFloat(*it.Score, 'f', 0, 64)
}

func salaryText(it domain.Item) string {
	lo, hasLo := it.Number(domain.FieldSalaryMin)
	hi, hasHi := it.Number(domain.FieldSalaryMax)
	switch {
	case hasLo && hasHi:
		return compactNumber(lo) + "-" + compactNumber(hi)
	case hasHi:
		return "≤" + compactNumber(hi)
	case hasLo:
		return "≥" + compactNumber(lo)
	default:
		return ""
	}
}

func compactNumber(n float64) string {
	if n >= 1000 {
		return strconv.FormatFloat(n/1000, 'f', -1, 64) + "k"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// formatString pads or cuts s to width with the given alignment.
func formatString(s string, width int, alignment string) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return string([]rune(s)[:width])
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-n) + s
	case "center":
		left := (width - n) / 2
		right := width - n - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-n)
	}
}

// truncateString cuts s to width, adding "..." if truncated.
func truncateString(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n <= width {
		return s
	}
	if width < 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}
