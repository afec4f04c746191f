package cmd

import (
	"bytes"
	"testing"

	"github.com/cristianoliveira/jobdeck/internal/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestPrintHelp(t *testing.T) {
	root := &cobra.Command{Use: "jobdeck", Long: "Browse collections."}
	root.AddCommand(
		&cobra.Command{Use: "version", Short: "Show version information"},
		&cobra.Command{Use: "list <kind>", Short: "List one page of a collection"},
		&cobra.Command{Use: "hidden-extra", Short: "Not listed"},
	)

	var buf bytes.Buffer
	PrintHelp(&buf, root)
	out := buf.String()

	assert.Contains(t, out, "jobdeck v"+version.String())
	assert.Contains(t, out, "Browse collections.")
	assert.Contains(t, out, "list <kind>")
	assert.Contains(t, out, "candidates, jobs, interviews, applications")
	assert.NotContains(t, out, "hidden-extra")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("list <kind>")), bytes.Index(buf.Bytes(), []byte("Show version information")),
		"commands follow the help order, not registration order")
}

func TestRootCommandConfiguration(t *testing.T) {
	assert.Equal(t, "jobdeck", RootCmd.Use)
	assert.True(t, RootCmd.SilenceUsage)
	assert.True(t, RootCmd.CompletionOptions.HiddenDefaultCmd)
	assert.Equal(t, version.String(), RootCmd.Version)
}

func TestSetupLoadsConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("JOBDECK_ENV_FILE", tmp+"/none.env")
	t.Setenv("JOBDECK_LOGGING_ENABLED", "false")

	assert.NoError(t, setup())
}
