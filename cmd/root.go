// Package cmd holds the root command of jobdeck. Subcommands register
// themselves from package main.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/jobdeck/internal/colors"
	"github.com/cristianoliveira/jobdeck/internal/config"
	"github.com/cristianoliveira/jobdeck/internal/logging"
	"github.com/cristianoliveira/jobdeck/internal/version"
	"github.com/spf13/cobra"
)

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"list",
	"import",
	"status",
	"shortlist",
	"reject",
	"stats",
	"tui",
	"serve",
	"help",
	"version",
}

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:           "jobdeck",
	Short:         "Browse candidates, jobs, interviews and applications.",
	Long:          `Browse candidates, jobs, interviews and applications from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.ShutdownGlobal()
	},
}

// helpCmd represents the help command.
var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show this help message",
	Long:  `Show this help message.`,
	Run: func(cmd *cobra.Command, args []string) {
		PrintHelp(cmd.OutOrStdout(), cmd.Root())
	},
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.SetHelpCommand(helpCmd)
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			return
		}
		PrintHelp(cmd.OutOrStdout(), cmd)
	})
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads configuration and starts logging before any command runs.
func setup() error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	return nil
}

// PrintHelp writes the command overview of root to w.
func PrintHelp(w io.Writer, root *cobra.Command) {
	var lines []string
	for _, name := range commandOrder {
		for _, c := range root.Commands() {
			if c.Name() == name {
				lines = append(lines, fmt.Sprintf("    %-28s %s", c.Use, c.Short))
				break
			}
		}
	}

	fmt.Fprintf(w, `jobdeck v%s

%s

USAGE:
    jobdeck [COMMAND] [OPTIONS]

COMMANDS:
%s

COLLECTIONS:
    candidates, jobs, interviews, applications

OPTIONS:
    -h, --help      Show help message
`, version.String(), root.Long, strings.Join(lines, "\n"))
}
