package rest

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"scholarly/config"
	"scholarly/di"
	middleware_custom "scholarly/middleware"
	"scholarly/utils/logger"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Validator = NewCustomValidator()

	// 1. Request ID middleware first - すべてのリクエストにIDを付与
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery middleware early - パニックを早期に捕捉
	e.Use(middleware.Recover())

	// 3. CORS middleware - クロスオリジン制御
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Authorization", "X-Session-Token", "X-Request-ID"},
		MaxAge:       86400,
	}))

	// 4. Request timeout - リクエスト処理時間の制限
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health")
		},
	}))

	// 5. Logging middleware - 処理内容をログに記録
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	v1 := e.Group("/v1")
	v1.GET("/health", handleHealth(container))

	registerAuthRoutes(v1, container)
	registerArticleRoutes(v1, container)
	registerLibraryRoutes(v1, container)
}
