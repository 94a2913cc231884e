package search_article_gateway

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mmcdole/gofeed/atom"

	"scholarly/domain"
	"scholarly/driver/arxiv"
	apperrors "scholarly/utils/errors"
	"scholarly/utils/logger"
)

type SearchArticleGateway struct {
	arxivClient *arxiv.Client
}

func NewSearchArticleGateway(arxivClient *arxiv.Client) *SearchArticleGateway {
	return &SearchArticleGateway{
		arxivClient: arxivClient,
	}
}

// SearchArticles fetches the Atom document for searchQuery and parses
// it into articles. Transport failures and malformed documents are
// reported as distinct errors; an empty result list is not an error.
func (g *SearchArticleGateway) SearchArticles(ctx context.Context, searchQuery string) ([]*domain.Article, error) {
	body, err := g.arxivClient.FetchFeed(ctx, searchQuery)
	if err != nil {
		return nil, err
	}

	articles, err := ParseSearchFeed(body)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to parse search feed",
			"error", err, "body_bytes", len(body))
		return nil, err
	}

	return articles, nil
}

// ParseSearchFeed decodes an Atom search response into articles. The
// mapping is deterministic: the same document always yields the same
// article list.
func ParseSearchFeed(body []byte) ([]*domain.Article, error) {
	parser := &atom.Parser{}
	feed, err := parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.FeedParseError("malformed search feed",
			fmt.Errorf("%w: %v", domain.ErrFeedParse, err), nil)
	}

	articles := make([]*domain.Article, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		articles = append(articles, entryToArticle(entry))
	}

	return articles, nil
}

func entryToArticle(entry *atom.Entry) *domain.Article {
	article := &domain.Article{
		ID:         entry.ID,
		Title:      domain.NormalizeWhitespace(entry.Title),
		Summary:    domain.NormalizeWhitespace(entry.Summary),
		Published:  entry.Published,
		Authors:    entryAuthors(entry),
		Link:       entryPrimaryLink(entry),
		PDFLink:    entryPDFLink(entry),
		Categories: domain.NormalizeCategories(entryCategoryTerms(entry)),
	}
	if entry.PublishedParsed != nil {
		article.PublishedParsed = *entry.PublishedParsed
	}
	return article
}

// entryAuthors preserves the document order of the author elements.
func entryAuthors(entry *atom.Entry) []string {
	authors := make([]string, 0, len(entry.Authors))
	for _, person := range entry.Authors {
		if person != nil && person.Name != "" {
			authors = append(authors, person.Name)
		}
	}
	return authors
}

// entryPrimaryLink is the entry ID, which for this feed is the
// abstract page URL. The alternate link only serves as a fallback for
// entries that carry no ID.
func entryPrimaryLink(entry *atom.Entry) string {
	if entry.ID != "" {
		return entry.ID
	}
	for _, link := range entry.Links {
		if link != nil && link.Rel == "alternate" && link.Href != "" {
			return link.Href
		}
	}
	return ""
}

// entryPDFLink selects the link whose title attribute is exactly
// "pdf". Rel is not reliable for this feed; the title attribute is.
func entryPDFLink(entry *atom.Entry) string {
	for _, link := range entry.Links {
		if link != nil && link.Title == "pdf" && link.Href != "" {
			return link.Href
		}
	}
	return ""
}

// entryCategoryTerms merges the primary-category extension term with
// the plain category terms, primary first, duplicates dropped.
func entryCategoryTerms(entry *atom.Entry) []string {
	terms := make([]string, 0, len(entry.Categories)+1)
	seen := make(map[string]bool)

	if exts, ok := entry.Extensions["arxiv"]; ok {
		for _, ext := range exts["primary_category"] {
			if term := ext.Attrs["term"]; term != "" && !seen[term] {
				terms = append(terms, term)
				seen[term] = true
			}
		}
	}

	for _, category := range entry.Categories {
		if category == nil || category.Term == "" || seen[category.Term] {
			continue
		}
		terms = append(terms, category.Term)
		seen[category.Term] = true
	}

	return terms
}
