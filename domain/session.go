package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthSession is the identity provider's view of an authenticated
// principal, as returned by login, registration and whoami calls.
type AuthSession struct {
	Token           string     `json:"-"`
	SessionID       string     `json:"session_id"`
	IdentityID      uuid.UUID  `json:"identity_id"`
	Email           string     `json:"email"`
	Username        string     `json:"username"`
	EmailVerified   bool       `json:"email_verified"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	Active          bool       `json:"active"`
	ExpiresAt       time.Time  `json:"expires_at"`
}

// Confirmed reports whether the session passed email confirmation.
// An authenticated-but-unconfirmed principal is treated as logged out
// everywhere else; this is the single gate.
func (s *AuthSession) Confirmed() bool {
	return s != nil && s.Active && s.EmailVerified
}

// SessionEventType classifies session-state notifications.
type SessionEventType string

const (
	SessionEventLogin     SessionEventType = "login"
	SessionEventLogout    SessionEventType = "logout"
	SessionEventValidated SessionEventType = "validated"
	SessionEventRejected  SessionEventType = "rejected"
)

// SessionEvent is one session-state notification. Events from login,
// logout and token validation all flow through the same channel into a
// single reconciliation routine, which re-applies the confirmation
// gate per event.
type SessionEvent struct {
	Type      SessionEventType
	UserID    uuid.UUID
	SessionID string
	Confirmed bool
	At        time.Time
}
