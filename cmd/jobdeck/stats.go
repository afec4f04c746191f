package main

import (
	"github.com/cristianoliveira/jobdeck/cmd"
	"github.com/cristianoliveira/jobdeck/internal/format"
	"github.com/spf13/cobra"
)

const defaultRecentRuns = 5

// NewStatsCmd creates the stats command with explicit dependencies.
func NewStatsCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewStatsCmd: store opener cannot be nil")
	}

	var runs int

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stored item counts and recent imports",
		Long: `Show how many items each collection holds and the most recent imports.

USAGE:
    jobdeck stats [--runs <n>]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			counts, err := store.Counts(ctx)
			if err != nil {
				return err
			}
			recent, err := store.ImportRuns(ctx, runs)
			if err != nil {
				return err
			}
			return format.FormatStats(cmd.OutOrStdout(), counts, recent)
		},
	}

	statsCmd.Flags().IntVar(&runs, "runs", defaultRecentRuns, "Number of recent imports to show")

	return statsCmd
}

var statsCmd = NewStatsCmd(openStore)

func init() {
	cmd.RootCmd.AddCommand(statsCmd)
}
