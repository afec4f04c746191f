package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" toml ", FormatTOML, false},
		{"csv", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeJSONList(t *testing.T) {
	doc := `[
		{"id": 1, "name": "Ada", "skills": ["go", "sql"], "status": "new", "matchScore": 88},
		{"id": 2, "name": "Grace", "score": 71.5, "remote": true},
		{"id": 3, "name": "Linus"}
	]`
	items, err := Decode(strings.NewReader(doc), FormatJSON, domain.KindCandidates)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 1, items[0].ID)
	require.NotNil(t, items[0].Score)
	assert.Equal(t, 88.0, *items[0].Score, "matchScore is the candidate score")
	skills, _ := items[0].Strings("skills")
	assert.Equal(t, []string{"go", "sql"}, skills)
	assert.False(t, items[0].Has("id"))

	require.NotNil(t, items[1].Score)
	assert.Equal(t, 71.5, *items[1].Score)
	assert.False(t, items[1].Has("score"))
	assert.Equal(t, true, items[1].Attributes["remote"])

	assert.Nil(t, items[2].Score)
}

func TestDecodeMatchScoreOnlyForCandidates(t *testing.T) {
	doc := `[{"id": 1, "candidate": "Ada", "matchScore": 80}]`
	items, err := Decode(strings.NewReader(doc), FormatJSON, domain.KindApplications)
	require.NoError(t, err)
	assert.Nil(t, items[0].Score)
}

func TestDecodeYAMLTable(t *testing.T) {
	doc := `
items:
  - id: 10
    title: Platform Engineer
    company: Acme
    postedAt: 2026-02-01T10:00:00Z
    salaryMax: 120000
    skills: [go, k8s]
    status: open
  - id: "11"
    title: Data Engineer
    score: 64
`
	items, err := Decode(strings.NewReader(doc), FormatYAML, domain.KindJobs)
	require.NoError(t, err)
	require.Len(t, items, 2)

	posted, ok := items[0].Text("postedAt")
	require.True(t, ok)
	assert.Equal(t, "2026-02-01T10:00:00Z", posted)
	salary, ok := items[0].Number("salaryMax")
	require.True(t, ok)
	assert.Equal(t, 120000.0, salary)

	assert.Equal(t, 11, items[1].ID)
	assert.Equal(t, 64.0, *items[1].Score)
}

func TestDecodeTOML(t *testing.T) {
	doc := `
[[items]]
id = 1
candidate = "Ada"
position = "SRE"
scheduledAt = 2026-03-02T15:00:00Z
stage = "onsite"

[[items]]
id = 2
candidate = "Grace"
scheduledAt = 2026-03-04
status = "scheduled"

[[items]]
id = 3
candidate = "Linus"
scheduledAt = 2026-03-03T09:00:00
`
	items, err := Decode(strings.NewReader(doc), FormatTOML, domain.KindInterviews)
	require.NoError(t, err)
	require.Len(t, items, 3)

	at, _ := items[0].Text("scheduledAt")
	assert.Equal(t, "2026-03-02T15:00:00Z", at)
	day, _ := items[1].Text("scheduledAt")
	assert.Equal(t, "2026-03-04", day)
	assert.Equal(t, "scheduled", items[1].Status())
	local, _ := items[2].Text("scheduledAt")
	assert.Equal(t, "2026-03-03T09:00:00", local)

	schema := domain.MustSchema(domain.KindInterviews)
	sorted := schema.SortItems(items, domain.SortByDate)
	assert.Equal(t, []int{1, 3, 2}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID}, "local dates sort with zoned ones")
}

func TestDecodeRejectsNonFiniteNumbers(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{"yaml nan score", FormatYAML, "- id: 1\n  score: .nan\n"},
		{"yaml infinite score", FormatYAML, "- id: 1\n  score: -.inf\n"},
		{"string nan score", FormatJSON, `[{"id": 1, "score": "NaN"}]`},
		{"string inf score", FormatJSON, `[{"id": 1, "score": "Inf"}]`},
		{"yaml nan attribute", FormatYAML, "- id: 1\n  salaryMin: .nan\n"},
		{"yaml infinite list element", FormatYAML, "- id: 1\n  ratings: [4, .inf]\n"},
		{"toml nan attribute", FormatTOML, "[[items]]\nid = 1\nexperienceYears = nan\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), tt.format, domain.KindCandidates)
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestDecodeIgnoresNonFiniteMatchScore(t *testing.T) {
	items, err := Decode(strings.NewReader(`[{"id": 1, "matchScore": "NaN"}]`), FormatJSON, domain.KindCandidates)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Score)
}

func TestDecodeEmptyDocuments(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{"json list", FormatJSON, `[]`},
		{"json null", FormatJSON, `null`},
		{"json table without items", FormatJSON, `{"other": 1}`},
		{"yaml empty", FormatYAML, ""},
		{"toml empty", FormatTOML, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Decode(strings.NewReader(tt.doc), tt.format, domain.KindJobs)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestDecodeRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"missing id", `[{"name": "Ada"}]`, ErrInvalidRecord},
		{"zero id", `[{"id": 0}]`, ErrInvalidRecord},
		{"negative id", `[{"id": -4}]`, ErrInvalidRecord},
		{"fractional id", `[{"id": 1.5}]`, ErrInvalidRecord},
		{"non-numeric score", `[{"id": 1, "score": "high"}]`, ErrInvalidRecord},
		{"record is not a table", `[1, 2]`, ErrInvalidRecord},
		{"items is not a list", `{"items": {"id": 1}}`, ErrInvalidRecord},
		{"scalar document", `"hello"`, ErrInvalidRecord},
		{"duplicate id", `[{"id": 1}, {"id": 2}, {"id": 1}]`, ErrDuplicateID},
		{"status outside workflow", `[{"id": 1, "status": "open"}]`, domain.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), FormatJSON, domain.KindCandidates)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`[`), FormatJSON, domain.KindJobs)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`[]`), FormatJSON, domain.Kind("offers"))
	assert.ErrorIs(t, err, domain.ErrUnknownKind)

	_, err = Decode(strings.NewReader(`[]`), Format("csv"), domain.KindJobs)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apps.yml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 1\n  candidate: Ada\n  status: applied\n"), 0o600))

	items, err := ReadFile(path, domain.KindApplications)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "applied", items[0].Status())

	_, err = ReadFile(filepath.Join(dir, "apps.csv"), domain.KindApplications)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadFile(filepath.Join(dir, "missing.json"), domain.KindApplications)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
