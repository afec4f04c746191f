package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCommand(t *testing.T) {
	captureColors(t)
	open, store := memoryOpener(t)
	seedCandidates(t, store)

	out, err := execute(NewStatsCmd(open))
	require.NoError(t, err)
	assert.Contains(t, out, "Stored items: 12")
	assert.Contains(t, out, "candidates:")
	assert.Contains(t, out, "Recent imports:")
	assert.Contains(t, out, "seed")
}

func TestStatsCommandEmpty(t *testing.T) {
	captureColors(t)
	open, _ := memoryOpener(t)

	out, err := execute(NewStatsCmd(open), "--runs", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "No items stored")
}
