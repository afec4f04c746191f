package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/jobdeck/internal/config"
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICommandBuildsModel(t *testing.T) {
	captureColors(t)
	config.Set("tui_settings_path", filepath.Join(t.TempDir(), "tui.toml"))
	t.Cleanup(func() { config.Set("tui_settings_path", "") })

	open, store := memoryOpener(t)
	seedCandidates(t, store)

	var got *tui.Model
	run := func(m tea.Model) error {
		got = m.(*tui.Model)
		return nil
	}

	_, err := execute(NewTUICmd(open, run))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.KindCandidates, got.Kind())
	assert.Equal(t, 12, got.CurrentView().TotalCount)

	_, err = execute(NewTUICmd(open, run), "applications")
	require.NoError(t, err)
	assert.Equal(t, domain.KindApplications, got.Kind())
}

func TestTUICommandRejectsUnknownKind(t *testing.T) {
	captureColors(t)
	open, _ := memoryOpener(t)

	_, err := execute(NewTUICmd(open, func(tea.Model) error { return nil }), "offers")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}
