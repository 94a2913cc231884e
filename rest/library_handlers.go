package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"scholarly/di"
	middleware_custom "scholarly/middleware"
	"scholarly/utils/logger"
)

func registerLibraryRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	authMiddleware := middleware_custom.NewAuthMiddleware(container.AuthUsecase, logger.Logger)

	library := v1.Group("/library", authMiddleware.RequireAuth())

	library.GET("/favorites", handleListFavorites(container))
	library.POST("/favorites/toggle", handleToggleFavorite(container))
	library.GET("/favorites/status", handleFavoriteStatus(container))
	library.GET("/history", handleListHistory(container))
	library.POST("/history", handleRecordView(container))
	library.POST("/comments", handlePostComment(container))
	library.DELETE("/comments/:id", handleDeleteComment(container))
}

func handleListFavorites(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		favorites, err := container.LibraryUsecase.ListFavorites(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_favorites")
		}
		return c.JSON(http.StatusOK, favorites)
	}
}

func handleToggleFavorite(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload FavoritePayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, err)
		}
		if err := c.Validate(&payload); err != nil {
			return handleValidationError(c, err)
		}

		article := payload.Article.toDomain()
		favorited, err := container.LibraryUsecase.ToggleFavorite(c.Request().Context(), article)
		if err != nil {
			return handleError(c, err, "toggle_favorite")
		}

		return c.JSON(http.StatusOK, ToggleFavoriteResponse{
			ArticleID: article.ID,
			Favorited: favorited,
		})
	}
}

func handleFavoriteStatus(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID := c.QueryParam("article_id")
		if articleID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "article_id query parameter required",
			})
		}

		favorited, err := container.LibraryUsecase.IsFavorited(c.Request().Context(), articleID)
		if err != nil {
			return handleError(c, err, "favorite_status")
		}

		return c.JSON(http.StatusOK, ToggleFavoriteResponse{
			ArticleID: articleID,
			Favorited: favorited,
		})
	}
}

func handleListHistory(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		history, err := container.LibraryUsecase.ListHistory(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_history")
		}
		return c.JSON(http.StatusOK, history)
	}
}

func handleRecordView(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload HistoryPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, err)
		}
		if err := c.Validate(&payload); err != nil {
			return handleValidationError(c, err)
		}

		if err := container.LibraryUsecase.RecordView(c.Request().Context(), payload.Article.toDomain()); err != nil {
			return handleError(c, err, "record_view")
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func handlePostComment(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload CommentPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, err)
		}
		if err := c.Validate(&payload); err != nil {
			return handleValidationError(c, err)
		}

		comment, err := container.LibraryUsecase.PostComment(c.Request().Context(), payload.ArticleID, payload.Content)
		if err != nil {
			return handleError(c, err, "post_comment")
		}

		return c.JSON(http.StatusCreated, comment)
	}
}

func handleDeleteComment(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		commentID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "malformed comment id",
			})
		}

		if err := container.LibraryUsecase.DeleteComment(c.Request().Context(), commentID); err != nil {
			return handleError(c, err, "delete_comment")
		}

		return c.NoContent(http.StatusNoContent)
	}
}
