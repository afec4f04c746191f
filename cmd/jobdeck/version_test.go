package main

import (
	"testing"

	"github.com/cristianoliveira/jobdeck/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out, err := execute(NewVersionCmd())
	require.NoError(t, err)
	assert.Equal(t, "jobdeck version "+version.Version+" (commit "+version.Commit+", built "+version.Date+")\n", out)
}
