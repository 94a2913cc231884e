package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserContext represents the authenticated user context for requests.
type UserContext struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	SessionID string    `json:"session_id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsValid checks if the user context is populated and not expired.
func (uc *UserContext) IsValid() bool {
	return uc.UserID != uuid.Nil &&
		uc.Email != "" &&
		uc.ExpiresAt.After(time.Now())
}

// UserContextFromSession applies the confirmation gate: only a
// confirmed session yields a user context. Every caller that wants to
// know "is this user logged in" goes through here.
func UserContextFromSession(s *AuthSession) (*UserContext, error) {
	if s == nil || !s.Active {
		return nil, ErrUnauthorized
	}
	if !s.Confirmed() {
		return nil, ErrEmailNotConfirmed
	}
	return &UserContext{
		UserID:    s.IdentityID,
		Email:     s.Email,
		Username:  s.Username,
		SessionID: s.SessionID,
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

// コンテキストキー
type contextKey string

const UserContextKey contextKey = "user_context"

func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, fmt.Errorf("user context not found")
	}

	if !user.IsValid() {
		return nil, ErrInvalidUserContext
	}

	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
