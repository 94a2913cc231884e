package search_articles_usecase

import (
	"context"
	"log/slog"

	"scholarly/domain"
	"scholarly/port/search_article_port"
)

type SearchArticlesUsecase struct {
	searchPort search_article_port.SearchArticlePort
	logger     *slog.Logger
}

func NewSearchArticlesUsecase(searchPort search_article_port.SearchArticlePort) *SearchArticlesUsecase {
	return &SearchArticlesUsecase{
		searchPort: searchPort,
		logger:     slog.Default(),
	}
}

// Execute builds the field-prefixed query from the raw term and scope
// and runs the search. Empty terms are rejected before the upstream is
// touched; zero hits is a successful empty result.
func (u *SearchArticlesUsecase) Execute(ctx context.Context, term, scope string) ([]*domain.Article, error) {
	searchScope, err := domain.ParseSearchScope(scope)
	if err != nil {
		return nil, err
	}

	searchQuery, err := domain.BuildSearchQuery(term, searchScope)
	if err != nil {
		return nil, err
	}

	u.logger.Info("executing article search", "scope", string(searchScope))

	articles, err := u.searchPort.SearchArticles(ctx, searchQuery)
	if err != nil {
		u.logger.Error("article search failed", "error", err, "scope", string(searchScope))
		return nil, err
	}

	u.logger.Info("article search completed", "results_count", len(articles))

	return articles, nil
}
