package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"scholarly/domain"
)

// TokenValidator resolves a session token to a user context, applying
// the email-confirmation gate.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*domain.UserContext, error)
}

// AuthMiddleware guards endpoints that need an authenticated, email
// confirmed user.
type AuthMiddleware struct {
	validator TokenValidator
	logger    *slog.Logger
}

func NewAuthMiddleware(validator TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		logger:    logger,
	}
}

// RequireAuth validates the session token and stores the user context
// on the request. An unconfirmed account is rejected with 403, a
// missing or invalid token with 401; handlers never see either.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractSessionToken(c.Request())
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "session token required")
			}

			user, err := m.validator.ValidateToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrEmailNotConfirmed) {
					m.logger.Warn("unconfirmed account rejected", "path", c.Path())
					return echo.NewHTTPError(http.StatusForbidden, "email address not confirmed")
				}
				m.logger.Info("session validation failed", "path", c.Path(), "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// extractSessionToken reads the token from the X-Session-Token header
// or an Authorization bearer value.
func extractSessionToken(r *http.Request) string {
	if token := r.Header.Get("X-Session-Token"); token != "" {
		return token
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
