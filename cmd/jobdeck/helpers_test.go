package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/cristianoliveira/jobdeck/internal/colors"
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/feedback"
	"github.com/cristianoliveira/jobdeck/internal/fixtures"
	"github.com/cristianoliveira/jobdeck/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

var (
	testScores   = []float64{50, 90, 90, 70, 40, 95, 60, 80, 85, 30, 65, 75}
	testStatuses = []string{"new", "shortlisted", "new", "new", "new", "shortlisted", "new", "new", "shortlisted", "new", "new", "new"}
)

// sharedStore keeps the test store open across commands.
type sharedStore struct {
	storage.Store
}

func (sharedStore) Close() error { return nil }

func memoryOpener(t *testing.T) (storeOpener, storage.Store) {
	t.Helper()
	store, err := storage.NewForBackend(storage.BackendMemory, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return func() (storage.Store, error) { return sharedStore{store}, nil }, store
}

func seedCandidates(t *testing.T, store storage.Store) {
	t.Helper()
	_, err := store.ImportItems(context.Background(), domain.KindCandidates, "seed", fixtures.Candidates(testScores, testStatuses))
	require.NoError(t, err)
}

func captureColors(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	colors.SetOutput(stdout, stderr)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return stdout, stderr
}

// recordMessages swaps the command message handler for one that records
// every message.
func recordMessages(t *testing.T) *[]feedback.Message {
	t.Helper()
	var got []feedback.Message
	prev := messages
	messages = feedback.NewStatusLine(func(m feedback.Message) { got = append(got, m) })
	t.Cleanup(func() { messages = prev })
	return &got
}

func execute(c *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SilenceUsage = true
	c.SilenceErrors = true
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}
