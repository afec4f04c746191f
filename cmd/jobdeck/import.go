package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/jobdeck/cmd"
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/importer"
	"github.com/spf13/cobra"
)

const importCommandLong = `Import a collection file into the store.

USAGE:
    jobdeck import <kind> <file> [OPTIONS]

The file is JSON, YAML or TOML, chosen by extension unless --format is set.
It holds a list of records, or a document with an "items" list. Every record
needs a positive integer "id". "score" is optional and every other key is kept
as an attribute. Items with an existing id are updated in place.

OPTIONS:
    --replace            Replace the stored collection; on failure it is kept
    --format <format>    File format: json, yaml, toml
    -h, --help           Show this help

The import run id is printed on success.`

// NewImportCmd creates the import command with explicit dependencies.
func NewImportCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewImportCmd: store opener cannot be nil")
	}

	var replace bool
	var fileFormat string

	importCmd := &cobra.Command{
		Use:   "import <kind> <file>",
		Short: "Import a JSON, YAML or TOML collection file",
		Long:  importCommandLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			path := args[1]
			items, err := readCollection(path, fileFormat, kind)
			if err != nil {
				return err
			}

			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			var runID string
			if replace {
				var removed int64
				runID, removed, err = store.ReplaceItems(ctx, kind, path, items)
				if err != nil {
					return err
				}
				messages.Info(fmt.Sprintf("Removed %d stored %s", removed, kind))
			} else {
				runID, err = store.ImportItems(ctx, kind, path, items)
				if err != nil {
					return err
				}
			}
			messages.Success(fmt.Sprintf("Imported %d %s from %s", len(items), kind, path))
			fmt.Fprintln(cmd.OutOrStdout(), runID)
			return nil
		},
	}

	importCmd.Flags().BoolVar(&replace, "replace", false, "Replace the stored collection instead of merging into it")
	importCmd.Flags().StringVar(&fileFormat, "format", "", "File format: json, yaml, toml (default: by extension)")

	return importCmd
}

// readCollection decodes path, using fileFormat when set and the file
// extension otherwise.
func readCollection(path, fileFormat string, kind domain.Kind) ([]domain.Item, error) {
	if fileFormat == "" {
		return importer.ReadFile(path, kind)
	}
	f, err := importer.ParseFormat(fileFormat)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer file.Close()

	items, err := importer.Decode(file, f, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

var importCmd = NewImportCmd(openStore)

func init() {
	cmd.RootCmd.AddCommand(importCmd)
}
