package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// SearchScope is the field a search term is matched against.
type SearchScope string

const (
	SearchScopeAll      SearchScope = "all"
	SearchScopeTitle    SearchScope = "title"
	SearchScopeAuthor   SearchScope = "author"
	SearchScopeAbstract SearchScope = "abstract"
	SearchScopeCategory SearchScope = "category"
)

// scopePrefixes maps a scope to the upstream API's field prefix.
var scopePrefixes = map[SearchScope]string{
	SearchScopeTitle:    "ti",
	SearchScopeAuthor:   "au",
	SearchScopeAbstract: "abs",
	SearchScopeCategory: "cat",
}

// ParseSearchScope validates a raw scope string. An empty value
// defaults to SearchScopeAll.
func ParseSearchScope(raw string) (SearchScope, error) {
	if raw == "" {
		return SearchScopeAll, nil
	}
	scope := SearchScope(raw)
	if scope != SearchScopeAll {
		if _, ok := scopePrefixes[scope]; !ok {
			return "", fmt.Errorf("%w: unknown search scope %q", ErrInvalidSearchScope, raw)
		}
	}
	return scope, nil
}

// BuildSearchQuery maps a free-text term and scope to the upstream
// field-prefixed query syntax. The term is percent-encoded.
// scope=all always yields the "all:" prefix regardless of the mapping
// table.
func BuildSearchQuery(term string, scope SearchScope) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", ErrEmptySearchTerm
	}
	if scope == SearchScopeAll {
		return "all:" + url.QueryEscape(term), nil
	}
	prefix, ok := scopePrefixes[scope]
	if !ok {
		return "", fmt.Errorf("%w: unknown search scope %q", ErrInvalidSearchScope, scope)
	}
	return prefix + ":" + url.QueryEscape(term), nil
}
