package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarly/domain"
	"scholarly/utils/errors"
	"scholarly/utils/logger"
)

// handleError converts errors to HTTP responses. Domain sentinels map
// to specific statuses; transport and parse failures stay
// distinguishable in the payload so clients can message them
// differently.
func handleError(c echo.Context, err error, operation string) error {
	status, code, message := classifyError(err)

	logger.SafeErrorContext(c.Request().Context(), "request handler error",
		"operation", operation,
		"error", err,
		"error_code", code,
		"status", status,
		"path", c.Request().URL.Path,
	)

	return c.JSON(status, map[string]string{
		"error": message,
		"code":  code,
	})
}

func classifyError(err error) (status int, code, message string) {
	switch {
	case stderrors.Is(err, domain.ErrEmptySearchTerm),
		stderrors.Is(err, domain.ErrInvalidSearchScope),
		stderrors.Is(err, domain.ErrEmptyComment):
		return http.StatusBadRequest, string(errors.ErrCodeValidation), err.Error()
	case stderrors.Is(err, domain.ErrSearchUpstream):
		return http.StatusBadGateway, string(errors.ErrCodeExternalAPI), "search service unavailable"
	case stderrors.Is(err, domain.ErrFeedParse):
		return http.StatusBadGateway, string(errors.ErrCodeFeedParse), "search service returned a malformed response"
	case stderrors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, string(errors.ErrCodeAuth), "invalid email/username or password"
	case stderrors.Is(err, domain.ErrEmailNotConfirmed):
		return http.StatusForbidden, string(errors.ErrCodeAuth), "email address not confirmed"
	case stderrors.Is(err, domain.ErrUnauthorized),
		stderrors.Is(err, domain.ErrInvalidUserContext):
		return http.StatusUnauthorized, string(errors.ErrCodeAuth), "authentication required"
	case stderrors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, string(errors.ErrCodeValidation), "username already taken"
	case stderrors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, string(errors.ErrCodeValidation), "email address already registered"
	case stderrors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, string(errors.ErrCodeValidation), "comment not found"
	case stderrors.Is(err, domain.ErrNotCommentOwner):
		return http.StatusForbidden, string(errors.ErrCodeAuth), "comment belongs to another user"
	case stderrors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, string(errors.ErrCodeValidation), "profile not found"
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		switch appErr.Code {
		case errors.ErrCodeDatabase:
			return http.StatusInternalServerError, string(appErr.Code), "storage operation failed"
		case errors.ErrCodeExternalAPI, errors.ErrCodeFeedParse:
			return http.StatusBadGateway, string(appErr.Code), appErr.Message
		case errors.ErrCodeRateLimit:
			return http.StatusTooManyRequests, string(appErr.Code), appErr.Message
		case errors.ErrCodeTimeout:
			return http.StatusGatewayTimeout, string(appErr.Code), appErr.Message
		}
	}

	return http.StatusInternalServerError, string(errors.ErrCodeUnknown), "internal server error"
}

// handleValidationError responds to request binding and validation
// failures before any usecase runs.
func handleValidationError(c echo.Context, err error) error {
	logger.SafeWarnContext(c.Request().Context(), "request validation failed",
		"error", err,
		"path", c.Request().URL.Path,
	)
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": "invalid request payload",
		"code":  string(errors.ErrCodeValidation),
	})
}
