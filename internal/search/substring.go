package search

import (
	"strings"

	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// SubstringProvider matches if any configured field contains the query.
// Sequence fields match when any element contains it.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if any configured field contains the query substring.
func (p *SubstringProvider) Match(item domain.Item, query string) bool {
	if query == "" {
		return true
	}
	needle := p.fold(query)
	for _, value := range item.SearchValues(p.opts.Fields) {
		if strings.Contains(p.fold(value), needle) {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return ModeSubstring
}

func (p *SubstringProvider) fold(s string) string {
	if p.opts.CaseInsensitive {
		return strings.ToLower(s)
	}
	return s
}
