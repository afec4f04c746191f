package main

import (
	"fmt"

	"github.com/cristianoliveira/jobdeck/cmd"
	"github.com/cristianoliveira/jobdeck/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the version, commit and build date of jobdeck.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "jobdeck version %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
			return nil
		},
	}
}

var versionCmd = NewVersionCmd()

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
