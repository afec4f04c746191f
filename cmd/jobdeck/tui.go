package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/jobdeck/cmd"
	"github.com/cristianoliveira/jobdeck/internal/config"
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/logging"
	"github.com/cristianoliveira/jobdeck/internal/query"
	"github.com/cristianoliveira/jobdeck/internal/settings"
	"github.com/cristianoliveira/jobdeck/internal/tui"
	"github.com/spf13/cobra"
)

const tuiCommandLong = `Browse collections interactively.

USAGE:
    jobdeck tui [kind]

KEYS:
    j/k          Move the cursor
    n/p, g/G     Next/previous page, first/last page
    /            Search as you type (Enter or ESC to finish)
    s            Cycle sort keys
    c            Clear search and filters
    x / r        Shortlist / reject the selected item
    v            Toggle table and compact rows
    tab          Next collection
    :            Command mode
    q            Save preferences and quit

COMMANDS:
    :filter <field> <value>   Toggle a filter
    :sort <key>               Sort by key
    :page <n>                 Go to page n
    :size <n>                 Set the page size
    :kind <collection>        Switch collection
    :clear                    Clear search and filters
    :w                        Save preferences
    :q                        Save preferences and quit`

// programRunner runs a bubbletea model.
type programRunner func(m tea.Model) error

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewTUICmd creates the tui command with explicit dependencies.
func NewTUICmd(open storeOpener, run programRunner) *cobra.Command {
	if open == nil || run == nil {
		panic("NewTUICmd: dependencies cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui [kind]",
		Short: "Browse collections interactively",
		Long:  tuiCommandLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind domain.Kind
			if len(args) == 1 {
				k, err := domain.ParseKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}

			path := settings.Path()
			prefs, err := settings.Load(path)
			if err != nil {
				messages.Warning(fmt.Sprintf("Failed to load settings, using defaults: %v", err))
				prefs = settings.DefaultSettings()
			}

			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			model, err := tui.NewModel(cmd.Context(), tui.Options{
				Store:        store,
				Settings:     prefs,
				SettingsPath: path,
				PageSize:     config.GetInt("page_size", query.DefaultPageSize),
				SearchMode:   config.Get("search_mode", ""),
				Kind:         kind,
				Logger:       logging.GetGlobal(),
			})
			if err != nil {
				return err
			}
			return run(model)
		},
	}
}

var tuiCmd = NewTUICmd(openStore, runProgram)

func init() {
	cmd.RootCmd.AddCommand(tuiCmd)
}
