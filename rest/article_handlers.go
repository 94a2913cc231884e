package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarly/di"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	articles := v1.Group("/articles")

	// 検索と論文コメントの閲覧は認証不要
	articles.GET("/search", handleSearchArticles(container))
	articles.GET("/comments", handleListComments(container))
}

func handleSearchArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		term := c.QueryParam("q")
		scope := c.QueryParam("scope")

		articles, err := container.SearchArticlesUsecase.Execute(c.Request().Context(), term, scope)
		if err != nil {
			return handleError(c, err, "search_articles")
		}

		return c.JSON(http.StatusOK, articles)
	}
}

func handleListComments(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID := c.QueryParam("article_id")
		if articleID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "article_id query parameter required",
			})
		}

		comments, err := container.LibraryUsecase.ListComments(c.Request().Context(), articleID)
		if err != nil {
			return handleError(c, err, "list_comments")
		}

		return c.JSON(http.StatusOK, comments)
	}
}
