package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"scholarly/di"
	"scholarly/domain"
)

func handleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	}
}

func currentUser(c echo.Context) (*domain.UserContext, error) {
	return domain.GetUserFromContext(c.Request().Context())
}

// toDomain rebuilds the article snapshot from the request payload.
func (p ArticlePayload) toDomain() *domain.Article {
	article := &domain.Article{
		ID:         p.ID,
		Title:      p.Title,
		Summary:    p.Summary,
		Authors:    p.Authors,
		Published:  p.Published,
		Link:       p.Link,
		PDFLink:    p.PDFLink,
		Categories: domain.NormalizeCategories(p.Categories),
	}
	if p.PublishedParsed != "" {
		if parsed, err := time.Parse(time.RFC3339, p.PublishedParsed); err == nil {
			article.PublishedParsed = parsed
		}
	}
	return article
}
