package search

import (
	"strings"

	"github.com/cristianoliveira/jobdeck/internal/domain"
)

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens and each token must
// match at least one field (AND logic). A token of the form field:value
// only matches that field, e.g. "skills:go".
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if all tokens match at least one field.
func (p *TokenProvider) Match(item domain.Item, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}

	for _, token := range tokens {
		fields := p.opts.Fields
		if field, value, ok := strings.Cut(token, ":"); ok && field != "" && value != "" {
			fields = []string{field}
			token = value
		}
		if !p.anyContains(item.SearchValues(fields), token) {
			return false
		}
	}
	return true
}

func (p *TokenProvider) anyContains(values []string, token string) bool {
	if p.opts.CaseInsensitive {
		token = strings.ToLower(token)
	}
	for _, v := range values {
		if p.opts.CaseInsensitive {
			v = strings.ToLower(v)
		}
		if strings.Contains(v, token) {
			return true
		}
	}
	return false
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return ModeToken
}
