package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/jobdeck/cmd"
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/storage"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewStatusCmd: store opener cannot be nil")
	}

	return &cobra.Command{
		Use:   "status <kind> <id> <status>",
		Short: "Set the status of an item",
		Long: `Set the status of an item.

USAGE:
    jobdeck status <kind> <id> <status>

STATUSES:
    candidates     new, reviewed, shortlisted, interviewing, rejected, hired
    jobs           open, paused, closed
    interviews     scheduled, completed, cancelled, no_show
    applications   applied, viewed, shortlisted, rejected, hired`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(cmd, open, args[0], args[1], args[2])
		},
	}
}

// newStatusShortcut creates a command that sets one fixed status.
func newStatusShortcut(open storeOpener, name, status string) *cobra.Command {
	if open == nil {
		panic("newStatusShortcut: store opener cannot be nil")
	}

	return &cobra.Command{
		Use:   name + " <kind> <id>",
		Short: fmt.Sprintf("Mark a candidate or application as %s", status),
		Long: fmt.Sprintf(`Mark a candidate or application as %s.

USAGE:
    jobdeck %s <kind> <id>`, status, name),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetStatus(cmd, open, args[0], args[1], status)
		},
	}
}

func runSetStatus(cmd *cobra.Command, open storeOpener, rawKind, rawID, status string) error {
	kind, err := domain.ParseKind(rawKind)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid id: %s", rawID)
	}
	status = strings.ToLower(strings.TrimSpace(status))

	store, err := open()
	if err != nil {
		return err
	}
	defer store.Close()

	err = store.UpdateStatus(cmd.Context(), kind, id, status)
	switch {
	case errors.Is(err, storage.ErrItemNotFound):
		return fmt.Errorf("%s #%d not found", kind, id)
	case errors.Is(err, domain.ErrInvalidStatus):
		schema := domain.MustSchema(kind)
		return fmt.Errorf("%w %q for %s (allowed: %s)", domain.ErrInvalidStatus, status, kind, strings.Join(schema.Statuses, ", "))
	case err != nil:
		return err
	}
	messages.Success(fmt.Sprintf("%s #%d is now %s", kind, id, status))
	return nil
}

var (
	statusCmd    = NewStatusCmd(openStore)
	shortlistCmd = newStatusShortcut(openStore, "shortlist", "shortlisted")
	rejectCmd    = newStatusShortcut(openStore, "reject", "rejected")
)

func init() {
	cmd.RootCmd.AddCommand(statusCmd, shortlistCmd, rejectCmd)
}
