package search_article_port

import (
	"context"

	"scholarly/domain"
)

//go:generate mockgen -source=search_article_port.go -destination=../../mocks/mock_search_article_port.go -package=mocks

// SearchArticlePort fetches bibliographic search results for an
// already-built field-prefixed query.
type SearchArticlePort interface {
	SearchArticles(ctx context.Context, searchQuery string) ([]*domain.Article, error)
}
