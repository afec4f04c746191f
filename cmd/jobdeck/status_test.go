package main

import (
	"context"
	"testing"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/fixtures"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCommands(t *testing.T) {
	tests := []struct {
		name   string
		newCmd func(storeOpener) *cobra.Command
		args   []string
		id     int
		status string
	}{
		{"status", NewStatusCmd, []string{"candidates", "4", "Reviewed"}, 4, "reviewed"},
		{"shortlist", func(open storeOpener) *cobra.Command {
			return newStatusShortcut(open, "shortlist", "shortlisted")
		}, []string{"candidates", "1"}, 1, "shortlisted"},
		{"reject", func(open storeOpener) *cobra.Command {
			return newStatusShortcut(open, "reject", "rejected")
		}, []string{"candidates", "2"}, 2, "rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := captureColors(t)
			open, store := memoryOpener(t)
			seedCandidates(t, store)

			_, err := execute(tt.newCmd(open), tt.args...)
			require.NoError(t, err)

			it, err := store.GetItem(context.Background(), domain.KindCandidates, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.status, it.Status())
			assert.Contains(t, stdout.String(), "is now "+tt.status)
		})
	}
}

func TestStatusErrors(t *testing.T) {
	captureColors(t)
	open, store := memoryOpener(t)
	seedCandidates(t, store)
	_, err := store.ImportItems(context.Background(), domain.KindJobs, "seed", fixtures.Generate(domain.KindJobs, 2, 3))
	require.NoError(t, err)

	_, err = execute(newStatusShortcut(open, "shortlist", "shortlisted"), "jobs", "1")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	assert.Contains(t, err.Error(), "allowed: open, paused, closed")

	_, err = execute(NewStatusCmd(open), "candidates", "99", "hired")
	require.Error(t, err)
	assert.Equal(t, "candidates #99 not found", err.Error())

	_, err = execute(NewStatusCmd(open), "candidates", "abc", "hired")
	require.Error(t, err)
	assert.Equal(t, "invalid id: abc", err.Error())

	_, err = execute(NewStatusCmd(open), "offers", "1", "hired")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}
