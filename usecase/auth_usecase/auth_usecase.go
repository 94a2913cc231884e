// Package auth_usecase implements login, signup, token validation and
// logout against the identity provider, including the email-or-username
// login fallback and the pre-registration username availability check.
package auth_usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"scholarly/domain"
	"scholarly/port/auth_port"
	"scholarly/port/profile_port"
	"scholarly/utils/logger"
)

type AuthUsecase struct {
	authPort    auth_port.AuthPort
	profilePort profile_port.ProfilePort
	events      chan<- domain.SessionEvent
	logger      *slog.Logger
}

func NewAuthUsecase(
	authPort auth_port.AuthPort,
	profilePort profile_port.ProfilePort,
	events chan<- domain.SessionEvent,
) *AuthUsecase {
	return &AuthUsecase{
		authPort:    authPort,
		profilePort: profilePort,
		events:      events,
		logger:      slog.Default(),
	}
}

// Login authenticates an email-or-username identifier. The identifier
// is first tried as-is; on bad credentials a non-email identifier is
// resolved to its registered email and retried exactly once. The
// caller cannot tell which path succeeded.
func (u *AuthUsecase) Login(ctx context.Context, identifier, password string) (*domain.UserContext, error) {
	session, err := u.authPort.LoginWithIdentifier(ctx, identifier, password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) || strings.Contains(identifier, "@") {
			return nil, err
		}

		email, resolveErr := u.profilePort.ResolveEmailByUsername(ctx, identifier)
		if resolveErr != nil {
			if errors.Is(resolveErr, domain.ErrProfileNotFound) {
				return nil, domain.ErrInvalidCredentials
			}
			return nil, resolveErr
		}

		u.logger.Info("retrying login with resolved email", "username", identifier)
		session, err = u.authPort.LoginWithIdentifier(ctx, email, password)
		if err != nil {
			return nil, err
		}
	}

	user, err := domain.UserContextFromSession(session)
	if err != nil {
		// Authenticated but unconfirmed: drop the session immediately
		// so the issued token cannot be replayed before confirmation.
		if errors.Is(err, domain.ErrEmailNotConfirmed) && session.Token != "" {
			if logoutErr := u.authPort.Logout(ctx, session.Token); logoutErr != nil {
				logger.SafeWarnContext(ctx, "failed to revoke unconfirmed session", "error", logoutErr)
			}
		}
		u.publish(domain.SessionEvent{
			Type:      domain.SessionEventRejected,
			UserID:    session.IdentityID,
			SessionID: session.SessionID,
			At:        time.Now(),
		})
		return nil, err
	}

	u.publish(domain.SessionEvent{
		Type:      domain.SessionEventLogin,
		UserID:    user.UserID,
		SessionID: user.SessionID,
		Confirmed: true,
		At:        time.Now(),
	})

	return user, nil
}

// Signup registers a new identity. Username availability is checked
// before the provider is contacted at all: a taken username fails
// here with zero registration calls made, so no orphan identity can
// exist without its profile row.
func (u *AuthUsecase) Signup(ctx context.Context, email, username, password string) (*domain.AuthSession, error) {
	taken, err := u.profilePort.IsUsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	session, err := u.authPort.Register(ctx, email, username, password)
	if err != nil {
		return nil, err
	}

	u.logger.Info("identity registered",
		"identity_id", session.IdentityID, "confirmed", session.Confirmed())

	// A fresh signup normally awaits email confirmation; no login
	// event is published until a confirmed session appears.
	if session.Confirmed() {
		u.publish(domain.SessionEvent{
			Type:      domain.SessionEventLogin,
			UserID:    session.IdentityID,
			SessionID: session.SessionID,
			Confirmed: true,
			At:        time.Now(),
		})
	}

	return session, nil
}

// ValidateToken resolves a session token to a user context, applying
// the confirmation gate. Both outcomes are published as events.
func (u *AuthUsecase) ValidateToken(ctx context.Context, token string) (*domain.UserContext, error) {
	session, err := u.authPort.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := domain.UserContextFromSession(session)
	if err != nil {
		u.publish(domain.SessionEvent{
			Type:      domain.SessionEventRejected,
			UserID:    session.IdentityID,
			SessionID: session.SessionID,
			At:        time.Now(),
		})
		return nil, err
	}

	u.publish(domain.SessionEvent{
		Type:      domain.SessionEventValidated,
		UserID:    user.UserID,
		SessionID: user.SessionID,
		Confirmed: true,
		At:        time.Now(),
	})

	return user, nil
}

// Logout revokes the current session and publishes the logout event.
func (u *AuthUsecase) Logout(ctx context.Context) error {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		return err
	}

	if err := u.authPort.Logout(ctx, user.Token); err != nil {
		return err
	}

	u.publish(domain.SessionEvent{
		Type:      domain.SessionEventLogout,
		UserID:    user.UserID,
		SessionID: user.SessionID,
		At:        time.Now(),
	})

	return nil
}

// publish delivers an event without ever blocking the request path. A
// full buffer drops the event; the monitor resynchronizes on the next
// event for the same user.
func (u *AuthUsecase) publish(event domain.SessionEvent) {
	if u.events == nil {
		return
	}
	select {
	case u.events <- event:
	default:
		u.logger.Warn("session event buffer full, dropping event",
			"type", string(event.Type), "user_id", event.UserID)
	}
}
