package fixtures

import (
	"testing"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_IsDeterministic(t *testing.T) {
	for _, kind := range domain.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			a := Generate(kind, 25, 42)
			b := Generate(kind, 25, 42)
			assert.Equal(t, a, b)
		})
	}
}

func TestGenerate_ItemsFitSchema(t *testing.T) {
	for _, kind := range domain.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			schema := domain.MustSchema(kind)
			items := Generate(kind, 30, 1)
			require.Len(t, items, 30)
			for i, it := range items {
				assert.Equal(t, i+1, it.ID)
				require.NoError(t, it.Validate(schema))
				_, ok := it.Text(schema.NameField)
				assert.True(t, ok, "name field %q missing", schema.NameField)
				_, ok = it.Text(schema.DateField)
				assert.True(t, ok, "date field %q missing", schema.DateField)
			}
		})
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	assert.NotEqual(t, Generate(domain.KindJobs, 10, 1), Generate(domain.KindJobs, 10, 2))
}

func TestCandidates(t *testing.T) {
	items := Candidates([]float64{50, 90}, []string{"new", "shortlisted", "rejected"})
	require.Len(t, items, 3)

	assert.Equal(t, float64(50), *items[0].Score)
	assert.Nil(t, items[2].Score)
	assert.Equal(t, "shortlisted", items[1].Status())
	assert.Equal(t, "Candidate 03", items[2].Attributes["name"])
}
