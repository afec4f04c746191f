package main

import (
	"os"

	"github.com/cristianoliveira/jobdeck/cmd"
	"github.com/cristianoliveira/jobdeck/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run executes the CLI and returns the process exit code.
func run(args []string, execute func() error) int {
	cmd.RootCmd.SetArgs(args)
	if err := execute(); err != nil {
		logging.Error("command failed", "args", args, "error", err.Error())
		messages.Error(err.Error())
		return 1
	}
	return 0
}
