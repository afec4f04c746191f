package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/jobdeck/cmd"
	"github.com/cristianoliveira/jobdeck/internal/config"
	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/format"
	"github.com/cristianoliveira/jobdeck/internal/query"
	"github.com/cristianoliveira/jobdeck/internal/search"
	"github.com/spf13/cobra"
)

const listCommandLong = `List one page of a collection.

USAGE:
    jobdeck list <kind> [OPTIONS]

OPTIONS:
    --search <term>          Free-text search over the collection's search fields
    --filter <field=value>   Keep items whose field equals value (repeatable)
    --sort <key>             Sort key: score, name, date, recent, experience, salary
    --page <n>               Page to show (default 1)
    --page-size <n>          Items per page (default: page_size setting)
    --format <format>        Output format: table (default), compact, json
    -h, --help               Show this help

Filters, sort keys and pages the collection does not support are reported
and ignored.`

// ListOptions holds the parameters of one list invocation.
type ListOptions struct {
	Kind       domain.Kind
	Search     string
	Filters    []string
	Sort       string
	Page       int
	PageSize   int
	Format     string
	SearchMode string
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewListCmd: store opener cannot be nil")
	}

	var opts ListOptions

	listCmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List one page of a collection",
		Long:  listCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			opts.Kind = kind
			if opts.PageSize <= 0 {
				opts.PageSize = config.GetInt("page_size", query.DefaultPageSize)
			}
			if !cmd.Flags().Changed("format") {
				opts.Format = config.Get("output_format", string(format.FormatterTypeTable))
			}
			opts.SearchMode = config.Get("search_mode", search.ModeSubstring)

			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			items, err := store.LoadItems(cmd.Context(), kind)
			if err != nil {
				return err
			}
			return PrintList(cmd.OutOrStdout(), items, opts)
		},
	}

	listCmd.Flags().StringVar(&opts.Search, "search", "", "Free-text search")
	listCmd.Flags().StringArrayVar(&opts.Filters, "filter", nil, "Filter as field=value (repeatable)")
	listCmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort key")
	listCmd.Flags().IntVar(&opts.Page, "page", 1, "Page to show")
	listCmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Items per page")
	listCmd.Flags().StringVar(&opts.Format, "format", string(format.FormatterTypeTable), "Output format: table, compact, json")

	return listCmd
}

// PrintList runs items through the query pipeline and writes the page.
func PrintList(w io.Writer, items []domain.Item, opts ListOptions) error {
	formatterType, err := format.ParseFormatterType(opts.Format)
	if err != nil {
		return err
	}
	p, err := BuildPipeline(items, opts)
	if err != nil {
		return err
	}
	return format.NewFormatter(formatterType).FormatView(w, opts.Kind, p.View(), p.State())
}

// BuildPipeline applies the options to a pipeline over items. Unsupported
// values are reported on stderr and skipped. Only a malformed --filter is
// an error.
func BuildPipeline(items []domain.Item, opts ListOptions) (*query.Pipeline, error) {
	schema, err := domain.SchemaFor(opts.Kind)
	if err != nil {
		return nil, err
	}
	provider, err := search.New(opts.SearchMode, search.ForSchema(schema))
	if err != nil {
		messages.Warning(fmt.Sprintf("%v, using substring search", err))
		provider = search.NewSubstringProvider(search.ForSchema(schema))
	}

	p := query.New(schema, query.WithProvider(provider), query.WithPageSize(opts.PageSize))
	p.Load(items)

	if opts.Search != "" {
		if v, ok := provider.(search.Validator); ok {
			if err := v.Validate(opts.Search); err != nil {
				messages.Warning(fmt.Sprintf("ignoring search %q: %v", opts.Search, err))
			}
		}
		p.SetSearchTerm(opts.Search)
	}

	for _, raw := range opts.Filters {
		field, value, ok := strings.Cut(raw, "=")
		field, value = strings.TrimSpace(field), strings.TrimSpace(value)
		if !ok || field == "" || value == "" {
			return nil, fmt.Errorf("invalid filter %q: expected field=value", raw)
		}
		if !schema.IsFilterField(field) {
			messages.Warning(fmt.Sprintf("%s cannot be filtered by %s, ignoring", opts.Kind, field))
			continue
		}
		// repeating a filter on the command line must not toggle it off
		if current, set := p.State().Filters[field]; set && strings.EqualFold(current, value) {
			continue
		}
		p.ToggleFilter(field, value)
	}

	if opts.Sort != "" {
		key, err := domain.ParseSortKey(opts.Sort)
		if err != nil || !schema.SupportsSort(key) {
			messages.Warning(fmt.Sprintf("%s cannot be sorted by %s, ignoring", opts.Kind, opts.Sort))
		} else {
			p.SetSort(key)
		}
	}

	if opts.Page != 1 {
		p.ChangePage(opts.Page)
		if p.View().CurrentPage != opts.Page {
			messages.Warning(fmt.Sprintf("page %d out of range (1-%d), showing page %d", opts.Page, p.View().TotalPages, p.View().CurrentPage))
		}
	}
	return p, nil
}

var listCmd = NewListCmd(openStore)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
