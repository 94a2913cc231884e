package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarly/di"
	middleware_custom "scholarly/middleware"
	"scholarly/utils/logger"
)

func registerAuthRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	authMiddleware := middleware_custom.NewAuthMiddleware(container.AuthUsecase, logger.Logger)

	auth := v1.Group("/auth")
	auth.POST("/login", handleLogin(container))
	auth.POST("/signup", handleSignup(container))

	// 認証必須パス
	auth.POST("/logout", handleLogout(container), authMiddleware.RequireAuth())
	auth.GET("/session", handleSession(container), authMiddleware.RequireAuth())
}

func handleLogin(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload LoginPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, err)
		}
		if err := c.Validate(&payload); err != nil {
			return handleValidationError(c, err)
		}

		user, err := container.AuthUsecase.Login(c.Request().Context(), payload.Identifier, payload.Password)
		if err != nil {
			return handleError(c, err, "login")
		}

		c.Response().Header().Set("X-Session-Token", user.Token)
		return c.JSON(http.StatusOK, user)
	}
}

func handleSignup(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload SignupPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, err)
		}
		if err := c.Validate(&payload); err != nil {
			return handleValidationError(c, err)
		}

		session, err := container.AuthUsecase.Signup(c.Request().Context(), payload.Email, payload.Username, payload.Password)
		if err != nil {
			return handleError(c, err, "signup")
		}

		return c.JSON(http.StatusCreated, SignupResponse{
			IdentityID: session.IdentityID.String(),
			Email:      session.Email,
			Username:   session.Username,
			Confirmed:  session.Confirmed(),
		})
	}
}

func handleLogout(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := container.AuthUsecase.Logout(c.Request().Context()); err != nil {
			return handleError(c, err, "logout")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// handleSession echoes the validated user context back. The auth
// middleware has already applied the confirmation gate.
func handleSession(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := currentUser(c)
		if err != nil {
			return handleError(c, err, "session")
		}
		return c.JSON(http.StatusOK, user)
	}
}
