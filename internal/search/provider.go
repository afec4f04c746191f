// Package search provides a unified search abstraction for list views.
// It supports multiple strategies (substring, token, regex) through a common
// Provider interface so the CLI, TUI and HTTP views match items the same way.
package search

import (
	"fmt"

	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// Search modes accepted by New.
const (
	ModeSubstring = "substring"
	ModeToken     = "token"
	ModeRegex     = "regex"
)

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the item matches the search query.
	// An empty query matches every item.
	Match(item domain.Item, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Validator is implemented by providers whose queries can be malformed.
type Validator interface {
	Validate(query string) error
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case
	Fields          []string // Item attributes to search in
}

// DefaultOptions returns the default search options: case-insensitive,
// searching the name, title and email fields.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{"name", "title", "email"},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// ForSchema searches the schema's search fields.
func ForSchema(schema domain.Schema) Option {
	return WithFields(schema.SearchFields)
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New creates the provider for a search mode.
func New(mode string, opts ...Option) (Provider, error) {
	switch mode {
	case "", ModeSubstring:
		return NewSubstringProvider(opts...), nil
	case ModeToken:
		return NewTokenProvider(opts...), nil
	case ModeRegex:
		return NewRegexProvider(opts...), nil
	default:
		return nil, fmt.Errorf("unknown search mode: %s", mode)
	}
}
