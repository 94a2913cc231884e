package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"scholarly/utils/logger"
)

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			req := c.Request()

			// ヘルスチェックはログに残さない
			if req.URL.Path == "/v1/health" {
				return next(c)
			}
			ctx := req.Context()

			contextLogger.WithContext(ctx).InfoContext(ctx, "request started",
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
			)

			err := next(c)

			duration := time.Since(start)
			res := c.Response()

			logAttrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", duration.Milliseconds(),
				"response_size", res.Size,
			}
			if res.Status >= 500 {
				contextLogger.WithContext(ctx).ErrorContext(ctx, "request completed", logAttrs...)
			} else if res.Status >= 400 {
				contextLogger.WithContext(ctx).WarnContext(ctx, "request completed", logAttrs...)
			} else {
				contextLogger.WithContext(ctx).InfoContext(ctx, "request completed", logAttrs...)
			}

			return err
		}
	}
}
